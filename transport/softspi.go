package transport

import "time"

// SoftSPI is a bit-banged SPI host. Bytes are shifted MSB first.
type SoftSPI struct {
	SCK OutputPin
	SDO OutputPin
	// SDI may be nil on transmit-only buses, received bits then read as zero.
	SDI InputPin
	// Mode is the SPI mode, Mode0 through Mode3. The AD9833 uses Mode2.
	Mode uint8
	// Delay is half a clock period. Zero runs as fast as the pins toggle.
	Delay time.Duration
}

// Configure puts the clock at its idle level and drives SDO low.
func (s *SoftSPI) Configure() {
	s.SCK.Set(s.idle())
	s.SDO.Set(false)
}

// Tx matches machine.SPI.Tx. Either buffer may be nil, otherwise both must
// have the same length.
func (s *SoftSPI) Tx(w, r []byte) error {
	switch {
	case w == nil:
		for i := range r {
			r[i] = s.transfer(0)
		}
	case r == nil:
		for _, b := range w {
			s.transfer(b)
		}
	case len(w) == len(r):
		for i, b := range w {
			r[i] = s.transfer(b)
		}
	default:
		return errLengthMismatch
	}
	return nil
}

// Transfer matches machine.SPI.Transfer.
func (s *SoftSPI) Transfer(b byte) (byte, error) {
	return s.transfer(b), nil
}

func (s *SoftSPI) idle() bool {
	return s.Mode&0b10 != 0
}

func (s *SoftSPI) transfer(b byte) (out byte) {
	for i := 7; i >= 0; i-- {
		out <<= 1
		if s.bitTransfer(b&(1<<i) != 0) {
			out |= 1
		}
	}
	return out
}

func (s *SoftSPI) bitTransfer(bit bool) (in bool) {
	idle := s.idle()
	if s.Mode&0b01 == 0 {
		// Data valid before the leading edge, sampled on it.
		s.SDO.Set(bit)
		spin(s.Delay)
		s.SCK.Set(!idle)
		in = s.sample()
		spin(s.Delay)
		s.SCK.Set(idle)
		return in
	}
	// Data changes on the leading edge, sampled on the trailing one.
	s.SCK.Set(!idle)
	s.SDO.Set(bit)
	spin(s.Delay)
	s.SCK.Set(idle)
	in = s.sample()
	spin(s.Delay)
	return in
}

func (s *SoftSPI) sample() bool {
	if s.SDI == nil {
		return false
	}
	return s.SDI.Get()
}
