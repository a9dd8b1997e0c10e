// Package demo contains the polling loops run by the example firmware.
package demo

import (
	"github.com/tinygo-org/fncgen/ad9833"
	"github.com/tinygo-org/fncgen/timebase"
)

// LED is an indicator output. machine.Pin implements it.
type LED interface {
	Set(on bool)
}

// Setup loads f0 and f1 (in Hz) into the two frequency banks, selects a sine
// output and starts the generator.
func Setup(gen *ad9833.Device, f0, f1 uint32) error {
	if err := gen.SetFrequencyHz(ad9833.Freq0, f0); err != nil {
		return err
	}
	if err := gen.SetFrequencyHz(ad9833.Freq1, f1); err != nil {
		return err
	}
	if err := gen.SetWaveform(ad9833.Sine); err != nil {
		return err
	}
	return gen.SetEnabled(true)
}

// Beeper alternates the generator between its two frequency banks every
// Interval milliseconds and toggles the LED with it. With a speaker on the
// output this is a two tone beep.
type Beeper struct {
	Clock    *timebase.Clock
	Gen      *ad9833.Device
	LED      LED
	Interval uint16

	last uint16
	on   bool
}

// Start begins timing the first interval from now.
func (b *Beeper) Start() {
	b.last = b.Clock.Now()
}

// Step switches banks if the interval has elapsed and reports whether it did.
func (b *Beeper) Step() (bool, error) {
	if !b.Clock.Every(&b.last, b.Interval) {
		return false, nil
	}
	b.on = !b.on
	if b.LED != nil {
		b.LED.Set(b.on)
	}
	bank := ad9833.Freq0
	if b.on {
		bank = ad9833.Freq1
	}
	return true, b.Gen.SwitchFrequency(bank)
}
