package demo

import "github.com/tinygo-org/fncgen/timebase"

// Sampler is an analog input returning a left aligned 16-bit sample.
// machine.ADC implements it.
type Sampler interface {
	Get() uint16
}

// PWM is a PWM slice. The machine PWM groups implement it.
type PWM interface {
	Top() uint32
	Set(channel uint8, value uint32)
}

// Duty scales a 16-bit sample onto a PWM counter range of [0, top].
func Duty(sample uint16, top uint32) uint32 {
	return uint32(uint64(sample) * uint64(top) / 0xFFFF)
}

// Dimmer copies an analog input to a PWM duty cycle every Interval
// milliseconds.
type Dimmer struct {
	Clock    *timebase.Clock
	In       Sampler
	Out      PWM
	Channel  uint8
	Interval uint16

	last uint16
}

// Step samples and updates the output if the interval has elapsed. It
// returns the duty written, or false if it was not time yet.
func (d *Dimmer) Step() (uint32, bool) {
	if !d.Clock.Every(&d.last, d.Interval) {
		return 0, false
	}
	duty := Duty(d.In.Get(), d.Out.Top())
	d.Out.Set(d.Channel, duty)
	return duty, true
}
