// Package ad9833 drives AD9833-class programmable waveform generators over SPI.
//
// The device is write-only, so every Device keeps a shadow copy of the
// control register. All mode changes go through the shadow and are flushed to
// the chip before any write that depends on them.
//
// A Device is not safe for concurrent use and must not be called from an
// interrupt handler: every operation blocks until the SPI transfer completes.
package ad9833

import (
	"errors"

	"tinygo.org/x/drivers"
)

var (
	errInvalidBank     = errors.New("ad9833:invalid bank")
	errInvalidWaveform = errors.New("ad9833:invalid waveform")
	errBusy            = errors.New("ad9833:device already in broadcast")
)

// Pin is the chip select (FSYNC) line. machine.Pin implements it.
type Pin interface {
	High()
	Low()
}

// Config holds the device configuration. The zero value is a 25MHz part.
type Config struct {
	// MasterClock is the MCLK frequency in Hz.
	MasterClock uint32
}

// Device is a single waveform generator on a shared SPI bus.
type Device struct {
	bus  drivers.SPI
	cs   Pin
	mclk uint32
	creg uint16
	// bc is non-nil while the device's select line is held by a Broadcast.
	bc  *Broadcast
	buf [2]byte
}

// New returns a Device on the given bus. The bus must be configured for
// SPI mode 2, MSB first. The select pin must already be configured as an output.
// Configure must be called before use.
func New(bus drivers.SPI, cs Pin) *Device {
	return &Device{bus: bus, cs: cs, mclk: DefaultMasterClock}
}

// Configure releases the select line and resets the device to its defaults.
// The output stays disabled until SetEnabled(true).
func (d *Device) Configure(cfg Config) error {
	d.mclk = cfg.MasterClock
	if d.mclk == 0 {
		d.mclk = DefaultMasterClock
	}
	if d.bc == nil {
		d.cs.High()
	}
	return d.Reset()
}

// Reset holds the counters in reset with sequential frequency writes enabled,
// then programs 500Hz into Freq0 and zero into Freq1 and both phase registers.
func (d *Device) Reset() error {
	if err := d.writeControl(B28 | RST); err != nil {
		return err
	}
	if err := d.SetFrequency(Freq0, d.FrequencyWord(500)); err != nil {
		return err
	}
	if err := d.SetFrequency(Freq1, 0); err != nil {
		return err
	}
	if err := d.SetPhase(Phase0, 0); err != nil {
		return err
	}
	return d.SetPhase(Phase1, 0)
}

// ControlRegister returns the last control word written to the device.
func (d *Device) ControlRegister() uint16 { return d.creg }

// MasterClock returns the configured MCLK frequency in Hz.
func (d *Device) MasterClock() uint32 { return d.mclk }

// SetFrequency writes a 28-bit register value to a frequency bank as two
// sequential 14-bit words. The change applies immediately if the bank is active.
func (d *Device) SetFrequency(bank FreqBank, reg uint32) error {
	addr, ok := bank.addr()
	if !ok {
		return errInvalidBank
	}
	if d.creg&B28 == 0 {
		if err := d.writeControl(d.creg | B28); err != nil {
			return err
		}
	}
	lsb, msb := freqHalves(reg)
	if err := d.writeWord(addr | lsb); err != nil {
		return err
	}
	return d.writeWord(addr | msb)
}

// SetFrequencyHz converts hz with FrequencyWord and calls SetFrequency.
func (d *Device) SetFrequencyHz(bank FreqBank, hz uint32) error {
	return d.SetFrequency(bank, d.FrequencyWord(hz))
}

// SetFrequencyMSB updates only the upper 14 bits of a frequency bank.
func (d *Device) SetFrequencyMSB(bank FreqBank, msb14 uint16) error {
	addr, ok := bank.addr()
	if !ok {
		return errInvalidBank
	}
	if d.creg&(B28|HLB) != HLB {
		if err := d.writeControl(d.creg&^B28 | HLB); err != nil {
			return err
		}
	}
	return d.writeWord(addr | msb14&halfMask)
}

// SetFrequencyLSB updates only the lower 14 bits of a frequency bank.
func (d *Device) SetFrequencyLSB(bank FreqBank, lsb14 uint16) error {
	addr, ok := bank.addr()
	if !ok {
		return errInvalidBank
	}
	if d.creg&(B28|HLB) != 0 {
		if err := d.writeControl(d.creg &^ (B28 | HLB)); err != nil {
			return err
		}
	}
	return d.writeWord(addr | lsb14&halfMask)
}

// SwitchFrequency selects the frequency bank that drives the output (FSK).
func (d *Device) SwitchFrequency(bank FreqBank) error {
	switch bank {
	case Freq0:
		return d.writeControl(d.creg &^ FSelect)
	case Freq1:
		return d.writeControl(d.creg | FSelect)
	}
	return errInvalidBank
}

// SetPhase writes a 12-bit value, in 1/4096 of a cycle, to a phase bank.
func (d *Device) SetPhase(bank PhaseBank, reg uint16) error {
	addr, ok := bank.addr()
	if !ok {
		return errInvalidBank
	}
	return d.writeWord(addr | reg&phaseMask)
}

// SwitchPhase selects the phase bank that drives the output (PSK).
func (d *Device) SwitchPhase(bank PhaseBank) error {
	switch bank {
	case Phase0:
		return d.writeControl(d.creg &^ PSelect)
	case Phase1:
		return d.writeControl(d.creg | PSelect)
	}
	return errInvalidBank
}

// SetWaveform replaces the output shape preset.
func (d *Device) SetWaveform(w Waveform) error {
	if !w.valid() {
		return errInvalidWaveform
	}
	return d.writeControl(d.creg&^waveformMask | uint16(w))
}

// Waveform returns the currently configured output shape.
func (d *Device) Waveform() Waveform {
	return Waveform(d.creg & waveformMask)
}

// Suspend stops the internal clock. The output holds its last value.
func (d *Device) Suspend() error {
	return d.writeControl(d.creg | Sleep1)
}

// Resume restarts the internal clock after Suspend.
func (d *Device) Resume() error {
	return d.writeControl(d.creg &^ Sleep1)
}

// PowerDownDAC switches the DAC off, which is only useful with the square
// waveforms since they bypass it.
func (d *Device) PowerDownDAC(off bool) error {
	if off {
		return d.writeControl(d.creg | Sleep12)
	}
	return d.writeControl(d.creg &^ Sleep12)
}

// SetEnabled releases or asserts the counter reset. While disabled the output
// sits at midscale; enabling restarts the phase accumulator from zero.
func (d *Device) SetEnabled(enabled bool) error {
	if enabled {
		return d.writeControl(d.creg &^ RST)
	}
	return d.writeControl(d.creg | RST)
}

// Enabled reports whether the counters are running.
func (d *Device) Enabled() bool {
	return d.creg&RST == 0
}

// writeControl flushes v as the new control register. The shadow is only
// kept if the transfer succeeds.
func (d *Device) writeControl(v uint16) error {
	v = addrControl | v&^0xC000
	if err := d.writeWord(v); err != nil {
		return err
	}
	d.creg = v
	if d.bc != nil {
		d.bc.sync(v)
	}
	return nil
}

// writeWord sends a single framed word. Inside a broadcast the select line is
// already held low and is left alone.
func (d *Device) writeWord(w uint16) error {
	d.buf[0] = byte(w >> 8)
	d.buf[1] = byte(w)
	if d.bc != nil {
		return d.bus.Tx(d.buf[:], nil)
	}
	d.cs.Low()
	err := d.bus.Tx(d.buf[:], nil)
	d.cs.High()
	return err
}
