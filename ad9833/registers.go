package ad9833

// Register addresses occupy the top bits of every 16-bit word.
// Frequency writes carry 14 data bits, phase writes carry 12.
const (
	addrControl uint16 = 0x0000
	addrFreq0   uint16 = 0x4000
	addrFreq1   uint16 = 0x8000
	addrPhase0  uint16 = 0xC000
	addrPhase1  uint16 = 0xE000
)

// Control register bits.
const (
	B28     uint16 = 0x2000 // Sequential 28-bit frequency writes (LSB then MSB).
	HLB     uint16 = 0x1000 // Half-register select when B28 is clear (0=LSB, 1=MSB).
	FSelect uint16 = 0x0800 // Active frequency bank.
	PSelect uint16 = 0x0400 // Active phase bank.
	RST     uint16 = 0x0100 // Hold counters at zero, output at midpoint.
	Sleep1  uint16 = 0x0080 // Stop the internal clock, output held.
	Sleep12 uint16 = 0x0040 // Power down the DAC.
	OPBITEN uint16 = 0x0020 // Output counter MSB instead of the DAC.
	Div2    uint16 = 0x0008 // Pass the counter MSB undivided.
	Mode    uint16 = 0x0002 // Triangle instead of sine when the DAC is used.
)

const (
	waveformMask = OPBITEN | Div2 | Mode
	freqMask     = 0x0FFFFFFF
	halfMask     = 0x3FFF
	phaseMask    = 0x0FFF
)

// FreqBank selects one of the two frequency registers.
type FreqBank uint8

const (
	Freq0 FreqBank = iota
	Freq1
)

func (b FreqBank) addr() (uint16, bool) {
	switch b {
	case Freq0:
		return addrFreq0, true
	case Freq1:
		return addrFreq1, true
	}
	return 0, false
}

// PhaseBank selects one of the two phase registers.
type PhaseBank uint8

const (
	Phase0 PhaseBank = iota
	Phase1
)

func (b PhaseBank) addr() (uint16, bool) {
	switch b {
	case Phase0:
		return addrPhase0, true
	case Phase1:
		return addrPhase1, true
	}
	return 0, false
}

// Waveform is an output shape preset, expressed as the control register
// bits it sets.
type Waveform uint16

const (
	Sine       Waveform = 0
	Triangle   Waveform = Waveform(Mode)
	Square     Waveform = Waveform(OPBITEN | Div2)
	SquareDiv2 Waveform = Waveform(OPBITEN)
)

func (w Waveform) valid() bool {
	switch w {
	case Sine, Triangle, Square, SquareDiv2:
		return true
	}
	return false
}

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case SquareDiv2:
		return "square/2"
	}
	return "invalid"
}

// freqHalves splits a 28-bit frequency register value into the two 14-bit
// halves written in sequential mode.
func freqHalves(reg uint32) (lsb, msb uint16) {
	reg &= freqMask
	return uint16(reg & halfMask), uint16((reg >> 14) & halfMask)
}
