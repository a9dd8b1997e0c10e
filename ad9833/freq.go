package ad9833

// DefaultMasterClock is the MCLK of the common 25MHz breakout boards.
const DefaultMasterClock = 25_000_000

// FrequencyWord converts a frequency in Hz into a 28-bit frequency register
// value for the given master clock, truncating toward zero. At 25MHz one Hz is
// 10.73741824 register counts.
func FrequencyWord(hz, mclk uint32) uint32 {
	if mclk == 0 {
		mclk = DefaultMasterClock
	}
	return uint32((uint64(hz)<<28)/uint64(mclk)) & freqMask
}

// FrequencyWord converts hz using the device's master clock.
func (d *Device) FrequencyWord(hz uint32) uint32 {
	return FrequencyWord(hz, d.mclk)
}

// PhaseWord converts an angle in degrees into a 12-bit phase register value.
// Negative angles and angles past a full turn wrap around.
func PhaseWord(degrees float32) uint16 {
	return uint16(int32(degrees*4096/360)) & phaseMask
}
