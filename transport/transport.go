// Package transport provides SPI bus implementations for boards where the
// generator is not wired to a hardware SPI peripheral that TinyGo already
// drives. Both types implement drivers.SPI.
package transport

import (
	"errors"
	"runtime"
	"time"

	"tinygo.org/x/drivers"
)

var (
	// ErrTimeout is returned when the peripheral does not become ready within
	// the configured number of polls.
	ErrTimeout = errors.New("transport:timeout")

	errLengthMismatch = errors.New("transport:buffer length mismatch")
	errTxOnly         = errors.New("transport:transmit only")
)

// SPI modes, numbered as CPOL<<1 | CPHA.
const (
	Mode0 uint8 = iota
	Mode1
	Mode2
	Mode3
)

// OutputPin is a push-pull output. machine.Pin implements it.
type OutputPin interface {
	Set(high bool)
}

// InputPin is a digital input. machine.Pin implements it.
type InputPin interface {
	Get() bool
}

var (
	_ drivers.SPI = (*SoftSPI)(nil)
	_ drivers.SPI = (*PolledSPI)(nil)
)

func gosched() {
	runtime.Gosched()
}

// spin busy-waits for d. TinyGo's time.Sleep may hand the CPU to the
// scheduler, which is far too coarse for a bit period.
func spin(d time.Duration) {
	if d <= 0 {
		return
	}
	end := time.Now().Add(d)
	for time.Now().Before(end) {
	}
}
