package piper

import (
	"math"
	"testing"
	"time"

	"github.com/banshee-data/dexhand/internal/monitoring"
)

// fastHandshake compresses the retry loop so timeout paths finish quickly.
var fastHandshake = HandshakeConfig{
	PollInterval: time.Millisecond,
	Deadline:     20 * time.Millisecond,
}

// muteLogs silences handshake polling output for the duration of a test.
func muteLogs(t *testing.T) {
	t.Helper()
	orig := monitoring.Logf
	monitoring.SetLogger(nil)
	t.Cleanup(func() { monitoring.Logf = orig })
}

// noFeedbackBus wraps SimBus with a driver-flag query that reports no
// feedback for the first few polls, like a CAN adapter before the firmware's
// first broadcast.
type noFeedbackBus struct {
	*SimBus
	silentPolls int // -1 keeps the bus silent forever
}

func (b *noFeedbackBus) DriverEnabled() ([JointCount]bool, error) {
	if b.silentPolls != 0 {
		if b.silentPolls > 0 {
			b.silentPolls--
		}
		return [JointCount]bool{}, ErrNoFeedback
	}
	return b.SimBus.DriverEnabled()
}

func connectedArm(t *testing.T) (*Arm, *SimBus) {
	t.Helper()
	bus := NewSimBus()
	arm := NewArm(bus, fastHandshake)
	if err := arm.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return arm, bus
}

func TestArm_EnableSucceedsImmediately(t *testing.T) {
	arm, _ := connectedArm(t)

	start := time.Now()
	ok, err := arm.Enable()
	if err != nil {
		t.Fatalf("enable: %v", err)
	}
	if !ok {
		t.Fatal("expected enable to succeed on first poll")
	}
	if !arm.Enabled() {
		t.Error("expected Enabled() after successful handshake")
	}
	if elapsed := time.Since(start); elapsed > fastHandshake.Deadline {
		t.Errorf("enable should not wait out the deadline on success, took %s", elapsed)
	}
}

func TestArm_EnableTimesOutWithOneFlagDown(t *testing.T) {
	muteLogs(t)
	arm, bus := connectedArm(t)
	bus.SetDriverResponse([JointCount]bool{true, true, true, true, true, false})

	ok, err := arm.Enable()
	if err != nil {
		t.Fatalf("enable: %v", err)
	}
	if ok {
		t.Fatal("enable must fail softly when any flag stays down")
	}
	if arm.Enabled() {
		t.Error("arm must not report enabled after a soft timeout")
	}
}

func TestArm_DisableSucceedsWhenAllFlagsDown(t *testing.T) {
	arm, bus := connectedArm(t)
	if ok, _ := arm.Enable(); !ok {
		t.Fatal("precondition: enable failed")
	}

	ok, err := arm.Disable()
	if err != nil {
		t.Fatalf("disable: %v", err)
	}
	if !ok {
		t.Fatal("expected disable to succeed on first poll")
	}
	if arm.Enabled() {
		t.Error("arm must not report enabled after disable")
	}
	if bus.GripperReleases() == 0 {
		t.Error("disable must issue a gripper release each attempt")
	}
}

// Disable's continuation predicate is "at least one flag still enabled":
// a single stuck driver keeps the loop retrying until the deadline. This
// asymmetry with Enable (which requires all six) is intentional.
func TestArm_DisableTimesOutWithOneFlagStuck(t *testing.T) {
	muteLogs(t)
	arm, bus := connectedArm(t)
	if ok, _ := arm.Enable(); !ok {
		t.Fatal("precondition: enable failed")
	}
	bus.SetDriverResponse([JointCount]bool{false, false, false, false, false, true})

	ok, err := arm.Disable()
	if err != nil {
		t.Fatalf("disable: %v", err)
	}
	if ok {
		t.Fatal("disable must fail softly while any flag stays up")
	}
}

// A bus that has not yet decoded any driver broadcast must keep the
// handshake polling, not abort it.
func TestArm_EnableWaitsForDriverFeedback(t *testing.T) {
	muteLogs(t)
	bus := &noFeedbackBus{SimBus: NewSimBus(), silentPolls: 3}
	arm := NewArm(bus, fastHandshake)
	if err := arm.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}

	ok, err := arm.Enable()
	if err != nil {
		t.Fatalf("enable must tolerate missing feedback, got %v", err)
	}
	if !ok {
		t.Fatal("expected enable to succeed once feedback arrives")
	}
}

func TestArm_EnableSoftTimeoutWithoutFeedback(t *testing.T) {
	muteLogs(t)
	bus := &noFeedbackBus{SimBus: NewSimBus(), silentPolls: -1}
	arm := NewArm(bus, fastHandshake)
	if err := arm.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}

	start := time.Now()
	ok, err := arm.Enable()
	if err != nil {
		t.Fatalf("a silent bus is a soft timeout, not an error, got %v", err)
	}
	if ok {
		t.Fatal("enable must not succeed without driver feedback")
	}
	if elapsed := time.Since(start); elapsed < fastHandshake.Deadline {
		t.Errorf("enable gave up after %s, before the %s deadline", elapsed, fastHandshake.Deadline)
	}
}

func TestArm_DisableWaitsForDriverFeedback(t *testing.T) {
	muteLogs(t)
	bus := &noFeedbackBus{SimBus: NewSimBus()}
	arm := NewArm(bus, fastHandshake)
	if err := arm.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if ok, _ := arm.Enable(); !ok {
		t.Fatal("precondition: enable failed")
	}

	bus.silentPolls = 3
	ok, err := arm.Disable()
	if err != nil {
		t.Fatalf("disable must tolerate missing feedback, got %v", err)
	}
	if !ok {
		t.Fatal("expected disable to succeed once feedback arrives")
	}
}

func TestArm_MoveJointValidation(t *testing.T) {
	arm, _ := connectedArm(t)

	if err := arm.MoveJoint([]float64{1, 2, 3}); err == nil {
		t.Error("expected error for wrong angle count")
	}
	if err := arm.MoveJoint(make([]float64, JointCount)); err != ErrNotReady {
		t.Errorf("expected ErrNotReady before enable, got %v", err)
	}
}

func TestArm_JointRoundTrip(t *testing.T) {
	arm, bus := connectedArm(t)
	if ok, _ := arm.Enable(); !ok {
		t.Fatal("precondition: enable failed")
	}

	want := []float64{10.5, -20.25, 0.001, 179.999, -0.5, 42}
	if err := arm.MoveJoint(want); err != nil {
		t.Fatalf("move joint: %v", err)
	}

	got, err := arm.JointState()
	if err != nil {
		t.Fatalf("joint state: %v", err)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 0.001 {
			t.Errorf("joint %d: got %f, want %f within millidegree tolerance", i, got[i], want[i])
		}
	}

	// The vendor sequence writes the motion-control word on both sides of
	// the joint command.
	if n := bus.MotionCtrls(); n != 2 {
		t.Errorf("expected 2 motion ctrl writes per move, got %d", n)
	}
}

func TestArm_SetControlModeRequiresConnection(t *testing.T) {
	arm := NewArm(NewSimBus(), fastHandshake)
	if err := arm.SetControlMode(ControlModeCAN); err != ErrNotReady {
		t.Errorf("expected ErrNotReady, got %v", err)
	}
}

func TestArm_CommandRate(t *testing.T) {
	arm, _ := connectedArm(t)
	if ok, _ := arm.Enable(); !ok {
		t.Fatal("precondition: enable failed")
	}

	if rate := arm.CommandRate(); rate != 0 {
		t.Errorf("expected 0 rate before any commands, got %f", rate)
	}

	angles := make([]float64, JointCount)
	for i := 0; i < 5; i++ {
		if err := arm.MoveJoint(angles); err != nil {
			t.Fatalf("move joint: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}
	if rate := arm.CommandRate(); rate <= 0 {
		t.Errorf("expected positive command rate, got %f", rate)
	}
}
