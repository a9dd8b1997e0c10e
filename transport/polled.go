package transport

// Registers is the status and data interface of a transmit-only SPI
// peripheral.
type Registers interface {
	// TxEmpty reports that the data register can accept a byte (TXE).
	TxEmpty() bool
	// Busy reports that a byte is still being shifted out (BSY).
	Busy() bool
	WriteData(b byte)
}

// PolledSPI drives a hardware SPI peripheral by polling its status flags.
type PolledSPI struct {
	Regs Registers
	// Timeout is the number of status polls allowed per wait before Tx gives
	// up with ErrTimeout. Zero waits forever, like bare-metal code without a
	// scheduler would.
	Timeout uint32
}

// Tx writes w, waiting for TXE before each byte and for the peripheral to go
// idle after the last one so the caller may release the select line. r must be
// nil or empty since nothing is received.
func (p *PolledSPI) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errTxOnly
	}
	for _, b := range w {
		if err := p.waitFor(p.Regs.TxEmpty); err != nil {
			return err
		}
		p.Regs.WriteData(b)
	}
	return p.waitFor(func() bool { return !p.Regs.Busy() })
}

// Transfer writes a single byte. The returned byte is always zero.
func (p *PolledSPI) Transfer(b byte) (byte, error) {
	var buf [1]byte
	buf[0] = b
	return 0, p.Tx(buf[:], nil)
}

func (p *PolledSPI) waitFor(ready func() bool) error {
	if p.Timeout == 0 {
		for !ready() {
			gosched()
		}
		return nil
	}
	for retries := p.Timeout; retries > 0; retries-- {
		if ready() {
			return nil
		}
		gosched()
	}
	return ErrTimeout
}
