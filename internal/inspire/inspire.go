// Package inspire speaks the Inspire dexterous hand register protocol: EB 90
// framed register reads/writes with an additive checksum, addressed by device
// id, over a serial transport.
package inspire

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Register addresses from the vendor register map.
const (
	RegID         = 1000
	RegBaudrate   = 1001
	RegClearError = 1004
	RegForceCal   = 1009
	RegAngleSet   = 1486
	RegForceSet   = 1498
	RegSpeedSet   = 1522
	RegAngleAct   = 1546
	RegForceAct   = 1582
	RegErrCode    = 1606
	RegStatusCode = 1612
	RegTemp       = 1618
	RegActionSeq  = 2320
	RegActionRun  = 2322
)

// FingerCount is the number of actuated degrees of freedom addressed by the
// 12-byte angle/speed/force registers.
const FingerCount = 6

const (
	frameHeader0 = 0xEB
	frameHeader1 = 0x90
	cmdRead      = 0x11
	cmdWrite     = 0x12
)

// frameDelay is the settle time between a request and reading its response
// frame; the vendor protocol has no explicit response framing beyond this.
const frameDelay = 10 * time.Millisecond

var (
	// ErrShortResponse is returned when the device reply is truncated.
	ErrShortResponse = errors.New("inspire: short response frame")
	// ErrBadFrame is returned when a reply does not carry the EB 90 header.
	ErrBadFrame = errors.New("inspire: bad response frame header")
)

// Porter is the minimal transport interface for the hand's serial link.
// The indirection enables unit testing without hand hardware.
type Porter interface {
	io.ReadWriter
	io.Closer
}

// Hand drives one Inspire hand on a shared serial bus.
type Hand struct {
	port Porter
	id   byte
}

// NewHand wraps an open transport for the hand at the given bus id.
func NewHand(port Porter, id byte) *Hand {
	return &Hand{port: port, id: id}
}

// Close closes the underlying transport.
func (h *Hand) Close() error {
	return h.port.Close()
}

// checksum is the additive checksum over everything after the two header
// bytes, truncated to 8 bits.
func checksum(frame []byte) byte {
	var sum byte
	for _, b := range frame[2:] {
		sum += b
	}
	return sum
}

// WriteRegister writes val to consecutive registers starting at addr.
func (h *Hand) WriteRegister(addr uint16, val []byte) error {
	frame := make([]byte, 0, 8+len(val))
	frame = append(frame, frameHeader0, frameHeader1, h.id, byte(len(val)+3), cmdWrite)
	frame = append(frame, byte(addr&0xFF), byte(addr>>8))
	frame = append(frame, val...)
	frame = append(frame, checksum(frame))

	if _, err := h.port.Write(frame); err != nil {
		return fmt.Errorf("inspire: write register 0x%04x: %w", addr, err)
	}

	// Drain the acknowledgement frame; its content is not interpreted.
	time.Sleep(frameDelay)
	buf := make([]byte, 64)
	h.port.Read(buf)
	return nil
}

// ReadRegister reads n consecutive register bytes starting at addr.
func (h *Hand) ReadRegister(addr uint16, n int) ([]byte, error) {
	frame := make([]byte, 0, 9)
	frame = append(frame, frameHeader0, frameHeader1, h.id, 0x04, cmdRead)
	frame = append(frame, byte(addr&0xFF), byte(addr>>8), byte(n))
	frame = append(frame, checksum(frame))

	if _, err := h.port.Write(frame); err != nil {
		return nil, fmt.Errorf("inspire: read register 0x%04x: %w", addr, err)
	}

	time.Sleep(frameDelay)
	buf := make([]byte, 64)
	got, err := h.port.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("inspire: read response: %w", err)
	}
	if got < 8 {
		return nil, ErrShortResponse
	}
	if buf[0] != frameHeader0 || buf[1] != frameHeader1 {
		return nil, ErrBadFrame
	}

	// Payload length is the frame length byte minus cmd and address.
	count := int(buf[3]) - 3
	if count < 0 || 7+count > got {
		return nil, ErrShortResponse
	}
	return buf[7 : 7+count], nil
}

// packLE16 packs 16-bit values little-endian, two bytes per channel. The
// vendor uses -1 as a "leave unchanged" placeholder, carried through as-is.
func packLE16(vals [FingerCount]int16) []byte {
	out := make([]byte, 0, 2*FingerCount)
	for _, v := range vals {
		out = append(out, byte(v&0xFF), byte((v>>8)&0xFF))
	}
	return out
}

func unpackLE16(raw []byte) ([FingerCount]int16, error) {
	var out [FingerCount]int16
	if len(raw) < 2*FingerCount {
		return out, ErrShortResponse
	}
	for i := range out {
		out[i] = int16(raw[2*i]) | int16(raw[2*i+1])<<8
	}
	return out, nil
}

// SetAngles commands the finger angles, 0..1000 per channel.
func (h *Hand) SetAngles(angles [FingerCount]int16) error {
	return h.WriteRegister(RegAngleSet, packLE16(angles))
}

// SetSpeeds commands the per-finger motion speeds, 0..1000 per channel.
func (h *Hand) SetSpeeds(speeds [FingerCount]int16) error {
	return h.WriteRegister(RegSpeedSet, packLE16(speeds))
}

// SetForces commands the per-finger grip force thresholds, 0..1000.
func (h *Hand) SetForces(forces [FingerCount]int16) error {
	return h.WriteRegister(RegForceSet, packLE16(forces))
}

// Angles reads the actual finger angles.
func (h *Hand) Angles() ([FingerCount]int16, error) {
	raw, err := h.ReadRegister(RegAngleAct, 2*FingerCount)
	if err != nil {
		return [FingerCount]int16{}, err
	}
	return unpackLE16(raw)
}

// Forces reads the actual finger forces.
func (h *Hand) Forces() ([FingerCount]int16, error) {
	raw, err := h.ReadRegister(RegForceAct, 2*FingerCount)
	if err != nil {
		return [FingerCount]int16{}, err
	}
	return unpackLE16(raw)
}

// ErrorCodes reads the per-finger error codes.
func (h *Hand) ErrorCodes() ([]byte, error) {
	return h.ReadRegister(RegErrCode, FingerCount)
}

// Temperatures reads the per-finger driver temperatures.
func (h *Hand) Temperatures() ([]byte, error) {
	return h.ReadRegister(RegTemp, FingerCount)
}

// ClearErrors clears the latched error state.
func (h *Hand) ClearErrors() error {
	return h.WriteRegister(RegClearError, []byte{1})
}

// RunAction selects a gesture from the on-board action library and runs it.
func (h *Hand) RunAction(seq byte) error {
	if err := h.WriteRegister(RegActionSeq, []byte{seq}); err != nil {
		return err
	}
	return h.WriteRegister(RegActionRun, []byte{1})
}
