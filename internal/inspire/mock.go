package inspire

import (
	"sync"
)

// MockPort is an in-memory Porter that retains register writes and answers
// register reads from its own register file, framed exactly as the device
// frames them. It backs unit tests and the dev-mode hand.
type MockPort struct {
	mu        sync.Mutex
	registers map[uint16][]byte
	pending   []byte
	writes    [][]byte
	closed    bool
}

// NewMockPort returns a mock with an empty register file.
func NewMockPort() *MockPort {
	return &MockPort{registers: make(map[uint16][]byte)}
}

// Seed preloads a register range, e.g. actual-angle feedback.
func (p *MockPort) Seed(addr uint16, val []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.registers[addr] = append([]byte(nil), val...)
}

// Writes returns the raw frames written so far.
func (p *MockPort) Writes() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]byte, len(p.writes))
	copy(out, p.writes)
	return out
}

// Write decodes one request frame and queues the device's reply.
func (p *MockPort) Write(frame []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.writes = append(p.writes, append([]byte(nil), frame...))

	if len(frame) < 8 || frame[0] != frameHeader0 || frame[1] != frameHeader1 {
		return len(frame), nil
	}

	id := frame[2]
	cmd := frame[4]
	addr := uint16(frame[5]) | uint16(frame[6])<<8

	switch cmd {
	case cmdWrite:
		n := int(frame[3]) - 3
		if 7+n <= len(frame) {
			p.registers[addr] = append([]byte(nil), frame[7:7+n]...)
		}
		// Write acknowledgement frame; content ignored by the driver.
		p.pending = []byte{frameHeader0, frameHeader1, id, 0x03, cmdWrite, 0x00, 0x00}
	case cmdRead:
		n := int(frame[7])
		val := p.registers[addr]
		if len(val) < n {
			padded := make([]byte, n)
			copy(padded, val)
			val = padded
		}
		reply := []byte{frameHeader0, frameHeader1, id, byte(n + 3), cmdRead, frame[5], frame[6]}
		reply = append(reply, val[:n]...)
		reply = append(reply, checksum(reply))
		p.pending = reply
	}
	return len(frame), nil
}

// Read drains the queued reply frame.
func (p *MockPort) Read(buf []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.pending) == 0 {
		return 0, nil
	}
	n := copy(buf, p.pending)
	p.pending = p.pending[n:]
	return n, nil
}

// Close marks the port closed.
func (p *MockPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *MockPort) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
