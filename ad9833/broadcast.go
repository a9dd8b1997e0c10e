package ad9833

// Broadcast holds the select lines of several devices on the same bus low so
// that every word sent by any member reaches all of them in the same instant.
// The usual use is releasing the counter reset of several chips together so
// their outputs start phase aligned.
//
// Control words sent inside a broadcast overwrite the shadow register of every
// member, since every member latched them.
type Broadcast struct {
	devs []*Device
}

// Join asserts the select line of each device and returns the broadcast
// holding them. The lines stay asserted until Leave; individual device calls
// made in between do not release them.
func Join(devs ...*Device) (*Broadcast, error) {
	bc := &Broadcast{devs: make([]*Device, 0, len(devs))}
	for _, d := range devs {
		if d.bc != nil {
			bc.Leave()
			return nil, errBusy
		}
		d.bc = bc
		bc.devs = append(bc.devs, d)
	}
	for _, d := range bc.devs {
		d.cs.Low()
	}
	return bc, nil
}

// Leave releases the select line of every member. The broadcast must not be
// used afterwards.
func (bc *Broadcast) Leave() {
	for _, d := range bc.devs {
		d.cs.High()
		d.bc = nil
	}
	bc.devs = nil
}

// Devices returns the members of the broadcast.
func (bc *Broadcast) Devices() []*Device {
	return bc.devs
}

// SetEnabled sends a single reset release (or assert) to all members. The
// control word is built from the first member's shadow.
func (bc *Broadcast) SetEnabled(enabled bool) error {
	if len(bc.devs) == 0 {
		return nil
	}
	return bc.devs[0].SetEnabled(enabled)
}

// Reset resets every member at once.
func (bc *Broadcast) Reset() error {
	if len(bc.devs) == 0 {
		return nil
	}
	return bc.devs[0].Reset()
}

func (bc *Broadcast) sync(creg uint16) {
	for _, d := range bc.devs {
		d.creg = creg
	}
}
