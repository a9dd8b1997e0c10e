// Package console handles the host serial console. Received bytes are echoed
// back as they arrive.
package console

// ByteWriter is the transmit side of a UART. machine.UART and machine.Serial
// implement it.
type ByteWriter interface {
	WriteByte(c byte) error
}

// Receiver is the receive buffer of a UART filled by its interrupt handler.
type Receiver interface {
	Buffered() int
	ReadByte() (byte, error)
}

// Handler is called with each received byte.
type Handler interface {
	HandleRx(c byte)
}

// Echo writes every received byte back to Out.
type Echo struct {
	Out ByteWriter
}

// HandleRx echoes c. Transmit errors are dropped, there is nobody to tell.
func (e *Echo) HandleRx(c byte) {
	e.Out.WriteByte(c)
}

// Service passes every byte currently buffered in rx to h and returns how
// many were handled. It does not wait for more data.
func Service(rx Receiver, h Handler) int {
	n := 0
	for rx.Buffered() > 0 {
		c, err := rx.ReadByte()
		if err != nil {
			break
		}
		h.HandleRx(c)
		n++
	}
	return n
}
