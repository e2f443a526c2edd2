package piper

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"
)

// mockAdapterPort records outgoing adapter writes and serves scripted
// feedback through an in-memory pipe.
type mockAdapterPort struct {
	reader *io.PipeReader
	writer *io.PipeWriter

	mu      sync.Mutex
	written strings.Builder
}

func newMockAdapterPort() *mockAdapterPort {
	r, w := io.Pipe()
	return &mockAdapterPort{reader: r, writer: w}
}

func (p *mockAdapterPort) Read(buf []byte) (int, error) {
	return p.reader.Read(buf)
}

func (p *mockAdapterPort) Write(buf []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.written.Write(buf)
}

func (p *mockAdapterPort) Close() error {
	return p.reader.Close()
}

// feed pushes feedback lines to the bus reader.
func (p *mockAdapterPort) feed(t *testing.T, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if _, err := p.writer.Write([]byte(line + "\r")); err != nil {
			t.Fatalf("feed %q: %v", line, err)
		}
	}
}

// sentLines returns everything written so far, split on CR.
func (p *mockAdapterPort) sentLines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	raw := strings.TrimSuffix(p.written.String(), "\r")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\r")
}

func connectedCANBus(t *testing.T) (*CANBus, *mockAdapterPort) {
	t.Helper()
	port := newMockAdapterPort()
	bus := newCANBusOnPort(port)
	if err := bus.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { bus.Disconnect() })
	return bus, port
}

// waitFor polls until the probe stops returning an error.
func waitFor(t *testing.T, probe func() error) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		err := probe()
		if err == nil {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for feedback: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestCANBus_CommandEncoding(t *testing.T) {
	bus, port := connectedCANBus(t)

	if err := bus.EnableArm(); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if err := bus.MotionCtrl(0x01, 0x01, 30); err != nil {
		t.Fatalf("motion ctrl: %v", err)
	}
	if err := bus.JointCtrl([JointCount]int32{1000, -1000, 0, 0, 0, 0}); err != nil {
		t.Fatalf("joint ctrl: %v", err)
	}

	want := []string{
		"O",
		"t47120702", // enable all drivers
		"t1518" + "01011E0000000000",
		"t1558" + "000003E8" + "FFFFFC18",
		"t1568" + "0000000000000000",
		"t1578" + "0000000000000000",
	}
	got := port.sentLines()
	if len(got) != len(want) {
		t.Fatalf("sent %d lines, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCANBus_DisableAndGripper(t *testing.T) {
	bus, port := connectedCANBus(t)

	if err := bus.DisableArm(); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if err := bus.GripperRelease(); err != nil {
		t.Fatalf("gripper release: %v", err)
	}

	got := port.sentLines()
	if len(got) != 3 {
		t.Fatalf("sent %d lines: %v", len(got), got)
	}
	if got[1] != "t47120701" {
		t.Errorf("disable frame = %q", got[1])
	}
	if got[2] != "t1598"+"0000000003E80200" {
		t.Errorf("gripper frame = %q", got[2])
	}
}

func TestCANBus_FeedbackBeforeFirstFrame(t *testing.T) {
	bus, _ := connectedCANBus(t)

	if _, err := bus.DriverEnabled(); !errors.Is(err, ErrNoFeedback) {
		t.Errorf("DriverEnabled err = %v", err)
	}
	if _, err := bus.JointState(); !errors.Is(err, ErrNoFeedback) {
		t.Errorf("JointState err = %v", err)
	}
	if _, err := bus.ArmStatus(); !errors.Is(err, ErrNoFeedback) {
		t.Errorf("ArmStatus err = %v", err)
	}
}

func TestCANBus_DecodesDriverFlags(t *testing.T) {
	bus, port := connectedCANBus(t)

	// Five drivers enabled, joint 4 still down with a limit flag set.
	port.feed(t,
		"t261102", "t262102", "t263102",
		"t264108", "t265102", "t266102",
	)

	waitFor(t, func() error {
		_, err := bus.DriverEnabled()
		return err
	})

	flags, err := bus.DriverEnabled()
	if err != nil {
		t.Fatalf("driver enabled: %v", err)
	}
	want := [JointCount]bool{true, true, true, false, true, true}
	if flags != want {
		t.Errorf("flags = %v, want %v", flags, want)
	}
}

func TestCANBus_DecodesJointState(t *testing.T) {
	bus, port := connectedCANBus(t)

	port.feed(t,
		"t2A58000003E8FFFFFC18", // 1000, -1000
		"t2A6800001F4000000000", // 8000, 0
		"t2A780000000000000001", // 0, 1
	)

	waitFor(t, func() error {
		_, err := bus.JointState()
		return err
	})

	joints, err := bus.JointState()
	if err != nil {
		t.Fatalf("joint state: %v", err)
	}
	want := [JointCount]int32{1000, -1000, 8000, 0, 0, 1}
	if joints != want {
		t.Errorf("joints = %v, want %v", joints, want)
	}
}

func TestCANBus_DecodesArmStatus(t *testing.T) {
	bus, port := connectedCANBus(t)

	// CAN control mode, normal state, error code 0x0102.
	port.feed(t, "t2A180100010000000102")

	waitFor(t, func() error {
		_, err := bus.ArmStatus()
		return err
	})

	st, err := bus.ArmStatus()
	if err != nil {
		t.Fatalf("arm status: %v", err)
	}
	if st.ControlMode != ControlModeCAN {
		t.Errorf("control mode = %v", st.ControlMode)
	}
	if st.ArmState != ArmStateNormal {
		t.Errorf("arm state = %v", st.ArmState)
	}
	if st.ErrorCode != 0x0102 {
		t.Errorf("error code = %#x", st.ErrorCode)
	}
}

func TestCANBus_IgnoresGarbageLines(t *testing.T) {
	bus, port := connectedCANBus(t)

	port.feed(t, "zz", "t2A", "t2619ZZ", "t261102")

	waitFor(t, func() error {
		bus.fbMu.Lock()
		seen := bus.flagsSeen[0]
		bus.fbMu.Unlock()
		if !seen {
			return errors.New("flag not seen")
		}
		return nil
	})

	bus.fbMu.Lock()
	defer bus.fbMu.Unlock()
	if !bus.flags[0] {
		t.Error("valid frame after garbage was not decoded")
	}
}

func TestCANBus_SendWhenDisconnected(t *testing.T) {
	bus := NewCANBus("/dev/null", 0)
	if err := bus.EnableArm(); err == nil {
		t.Error("expected error when not connected")
	}
}
