package inspire

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the hand's factory serial rate.
const DefaultBaudRate = 115200

// OpenPort opens the hand's serial link with the vendor's 8N1 framing and a
// read timeout so a silent device cannot wedge a register read.
func OpenPort(path string, baudRate int) (Porter, error) {
	if baudRate <= 0 {
		baudRate = DefaultBaudRate
	}
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("inspire: open serial port %s: %w", path, err)
	}
	if err := port.SetReadTimeout(100 * time.Millisecond); err != nil {
		port.Close()
		return nil, fmt.Errorf("inspire: set read timeout: %w", err)
	}
	return port, nil
}
