package piper

import (
	"bufio"
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/banshee-data/dexhand/internal/monitoring"
)

// The arm speaks CAN through a USB serial adapter using the slcan ASCII
// framing: 't' + 11-bit id (3 hex) + DLC (1 hex) + payload hex, CR
// terminated. Command frames go out on the control ids; the firmware
// broadcasts feedback frames which a reader goroutine decodes into a cache
// that the query methods snapshot.

// Command and feedback frame ids.
const (
	idMotionCtrl  = 0x151
	idJointCtrl12 = 0x155
	idJointCtrl34 = 0x156
	idJointCtrl56 = 0x157
	idGripperCtrl = 0x159
	idMotorEnable = 0x471

	idArmStatus     = 0x2A1
	idJointFeed12   = 0x2A5
	idJointFeed34   = 0x2A6
	idJointFeed56   = 0x2A7
	idDriverFeedLow = 0x261 // per-joint, 0x261..0x266
)

// Driver low-speed feedback status bits.
const (
	driverBitEnabled  = 0x02
	driverBitCommErr  = 0x04
	driverBitLimitHit = 0x08
)

// ErrNoFeedback is returned by query methods before the firmware's first
// broadcast of the relevant frame has been decoded.
var ErrNoFeedback = errors.New("no feedback received from arm yet")

// Port is the serial transport under the CAN adapter.
type Port interface {
	io.ReadWriter
	Close() error
}

// CANBus drives the arm through an slcan serial adapter. It implements Bus.
type CANBus struct {
	path string
	baud int

	mu     sync.Mutex
	port   Port
	cancel context.CancelFunc
	done   chan struct{}

	// feedback cache, guarded by fbMu
	fbMu       sync.Mutex
	status     Status
	statusSeen bool
	joints     [JointCount]int32
	jointsSeen [3]bool
	flags      [JointCount]bool
	flagsSeen  [JointCount]bool
}

var _ Bus = (*CANBus)(nil)

// NewCANBus returns an unconnected bus for the adapter at path.
func NewCANBus(path string, baud int) *CANBus {
	if baud <= 0 {
		baud = 1000000
	}
	return &CANBus{path: path, baud: baud}
}

// newCANBusOnPort wires an already-open transport, for tests.
func newCANBusOnPort(port Port) *CANBus {
	return &CANBus{port: port}
}

// Connect opens the adapter, puts the channel online, and starts the
// feedback reader.
func (b *CANBus) Connect() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.port == nil {
		mode := &serial.Mode{BaudRate: b.baud}
		port, err := serial.Open(b.path, mode)
		if err != nil {
			return fmt.Errorf("open can adapter %s: %w", b.path, err)
		}
		if err := port.SetReadTimeout(100 * time.Millisecond); err != nil {
			port.Close()
			return fmt.Errorf("set read timeout: %w", err)
		}
		b.port = port
	}

	if _, err := b.port.Write([]byte("O\r")); err != nil {
		return fmt.Errorf("open can channel: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.done = make(chan struct{})
	go b.monitor(ctx)
	return nil
}

// Disconnect stops the reader, takes the channel offline, and closes the
// adapter.
func (b *CANBus) Disconnect() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		b.cancel()
		<-b.done
		b.cancel = nil
	}
	if b.port == nil {
		return nil
	}
	if _, err := b.port.Write([]byte("C\r")); err != nil {
		monitoring.Logf("piper: close can channel: %v", err)
	}
	err := b.port.Close()
	b.port = nil
	return err
}

// monitor reads adapter lines and decodes feedback frames into the cache.
// A separate scan goroutine keeps the blocking read from pinning the
// select on context cancellation.
func (b *CANBus) monitor(ctx context.Context) {
	defer close(b.done)

	scan := bufio.NewScanner(b.port)
	scan.Split(scanCR)

	lineChan := make(chan string)
	go func() {
		defer close(lineChan)
		for scan.Scan() {
			select {
			case lineChan <- scan.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lineChan:
			if !ok {
				return
			}
			b.decodeLine(line)
		}
	}
}

// scanCR splits on the adapter's CR terminators.
func scanCR(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for i, c := range data {
		if c == '\r' {
			return i + 1, data[:i], nil
		}
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// decodeLine parses one slcan line and folds it into the feedback cache.
func (b *CANBus) decodeLine(line string) {
	line = strings.TrimSpace(line)
	if len(line) < 5 || line[0] != 't' {
		return
	}

	var id uint32
	if _, err := fmt.Sscanf(line[1:4], "%03x", &id); err != nil {
		return
	}
	dlc := int(line[4] - '0')
	if dlc < 0 || dlc > 8 || len(line) < 5+2*dlc {
		return
	}
	payload, err := hex.DecodeString(line[5 : 5+2*dlc])
	if err != nil {
		return
	}

	b.fbMu.Lock()
	defer b.fbMu.Unlock()

	switch {
	case id == idArmStatus && dlc == 8:
		b.status = Status{
			ControlMode:  ControlMode(payload[0]),
			ArmState:     ArmState(payload[1]),
			ModeFeedback: int32(payload[2]),
			TeachStatus:  int32(payload[3]),
			MotionStatus: int32(payload[4]),
			ErrorCode:    uint32(binary.BigEndian.Uint16(payload[6:8])),
			JointComm:    b.status.JointComm,
			JointLimit:   b.status.JointLimit,
		}
		b.statusSeen = true

	case id >= idJointFeed12 && id <= idJointFeed56 && dlc == 8:
		pair := int(id - idJointFeed12)
		b.joints[pair*2] = int32(binary.BigEndian.Uint32(payload[0:4]))
		b.joints[pair*2+1] = int32(binary.BigEndian.Uint32(payload[4:8]))
		b.jointsSeen[pair] = true

	case id >= idDriverFeedLow && id < idDriverFeedLow+JointCount && dlc >= 1:
		j := int(id - idDriverFeedLow)
		b.flags[j] = payload[0]&driverBitEnabled != 0
		b.flagsSeen[j] = true
		b.status.JointComm[j] = payload[0]&driverBitCommErr != 0
		b.status.JointLimit[j] = payload[0]&driverBitLimitHit != 0
	}
}

// send encodes one frame as an slcan transmit line.
func (b *CANBus) send(id uint32, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.port == nil {
		return errors.New("can bus is not connected")
	}
	line := fmt.Sprintf("t%03x%d%s\r", id, len(payload), strings.ToUpper(hex.EncodeToString(payload)))
	if _, err := b.port.Write([]byte(line)); err != nil {
		return fmt.Errorf("write can frame 0x%03x: %w", id, err)
	}
	return nil
}

func (b *CANBus) EnableArm() error {
	// 7 addresses all joint drivers at once.
	return b.send(idMotorEnable, []byte{7, 0x02})
}

func (b *CANBus) DisableArm() error {
	return b.send(idMotorEnable, []byte{7, 0x01})
}

func (b *CANBus) GripperRelease() error {
	payload := make([]byte, 8)
	binary.BigEndian.PutUint16(payload[4:6], 1000)
	payload[6] = 0x02
	return b.send(idGripperCtrl, payload)
}

func (b *CANBus) SetControlMode(mode ControlMode) error {
	return b.send(idMotionCtrl, []byte{byte(mode), 0x01, 0, 0, 0, 0, 0, 0})
}

func (b *CANBus) MotionCtrl(ctrlMode, moveMode byte, speedRatio uint8) error {
	return b.send(idMotionCtrl, []byte{ctrlMode, moveMode, speedRatio, 0, 0, 0, 0, 0})
}

func (b *CANBus) JointCtrl(joints [JointCount]int32) error {
	ids := []uint32{idJointCtrl12, idJointCtrl34, idJointCtrl56}
	for pair, id := range ids {
		payload := make([]byte, 8)
		binary.BigEndian.PutUint32(payload[0:4], uint32(joints[pair*2]))
		binary.BigEndian.PutUint32(payload[4:8], uint32(joints[pair*2+1]))
		if err := b.send(id, payload); err != nil {
			return err
		}
	}
	return nil
}

func (b *CANBus) DriverEnabled() ([JointCount]bool, error) {
	b.fbMu.Lock()
	defer b.fbMu.Unlock()
	for _, seen := range b.flagsSeen {
		if !seen {
			return [JointCount]bool{}, ErrNoFeedback
		}
	}
	return b.flags, nil
}

func (b *CANBus) JointState() ([JointCount]int32, error) {
	b.fbMu.Lock()
	defer b.fbMu.Unlock()
	for _, seen := range b.jointsSeen {
		if !seen {
			return [JointCount]int32{}, ErrNoFeedback
		}
	}
	return b.joints, nil
}

func (b *CANBus) ArmStatus() (Status, error) {
	b.fbMu.Lock()
	defer b.fbMu.Unlock()
	if !b.statusSeen {
		return Status{}, ErrNoFeedback
	}
	return b.status, nil
}
