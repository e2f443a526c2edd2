package dexhand

import (
	"errors"
	"testing"
	"time"

	"github.com/banshee-data/dexhand/internal/geom"
	"github.com/banshee-data/dexhand/internal/inspire"
	"github.com/banshee-data/dexhand/internal/piper"
)

var fastHandshake = piper.HandshakeConfig{
	PollInterval: time.Millisecond,
	Deadline:     20 * time.Millisecond,
}

func simConfig() Config {
	return Config{
		Side:      SideLeft,
		ArmType:   ArmTypePiper,
		HandType:  HandTypeInspire,
		Handshake: fastHandshake,
	}
}

func simController(t *testing.T) (*Controller, *piper.SimBus) {
	t.Helper()
	bus := piper.NewSimBus()
	ctrl, err := NewController(simConfig(), Devices{
		ArmBus:   bus,
		HandPort: inspire.NewMockPort(),
		HandID:   1,
	})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return ctrl, bus
}

func TestNewController_NameAndID(t *testing.T) {
	ctrl, _ := simController(t)
	if ctrl.Name() != "LEFT_PIPER_INSPIRE" {
		t.Errorf("name = %q", ctrl.Name())
	}
	if ctrl.ID() == "" {
		t.Error("empty controller id")
	}
	if ctrl.State() != StateCreated {
		t.Errorf("initial state = %s", ctrl.State())
	}

	other, _ := simController(t)
	if other.ID() == ctrl.ID() {
		t.Error("controller ids collide")
	}
}

func TestNewController_Validation(t *testing.T) {
	dev := Devices{ArmBus: piper.NewSimBus(), HandPort: inspire.NewMockPort()}

	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"unspecified side", Config{Side: SideUnspecified, ArmType: ArmTypePiper, HandType: HandTypeInspire}, ErrInvalidArgument},
		{"unspecified arm", Config{Side: SideLeft, HandType: HandTypeInspire}, ErrInvalidArgument},
		{"unspecified hand", Config{Side: SideLeft, ArmType: ArmTypePiper}, ErrInvalidArgument},
		{"nova arm", Config{Side: SideLeft, ArmType: ArmTypeNova, HandType: HandTypeInspire}, ErrNotImplemented},
		{"dh hand", Config{Side: SideLeft, ArmType: ArmTypePiper, HandType: HandTypeDH}, ErrNotImplemented},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewController(tc.cfg, dev); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestController_Lifecycle(t *testing.T) {
	ctrl, _ := simController(t)

	if err := ctrl.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if ctrl.State() != StateConnected {
		t.Errorf("state after connect = %s", ctrl.State())
	}
	if err := ctrl.Connect(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("double connect: %v", err)
	}

	ok, err := ctrl.Enable()
	if err != nil || !ok {
		t.Fatalf("enable = %v, %v", ok, err)
	}
	if ctrl.State() != StateEnabled {
		t.Errorf("state after enable = %s", ctrl.State())
	}

	ok, err = ctrl.Disable()
	if err != nil || !ok {
		t.Fatalf("disable = %v, %v", ok, err)
	}
	if ctrl.State() != StateConnected {
		t.Errorf("state after disable = %s", ctrl.State())
	}

	if err := ctrl.Disconnect(); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	if ctrl.State() != StateCreated {
		t.Errorf("state after disconnect = %s", ctrl.State())
	}
	if err := ctrl.Disconnect(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("double disconnect: %v", err)
	}
}

func TestController_OpsRequireConnection(t *testing.T) {
	ctrl, _ := simController(t)

	if _, err := ctrl.Enable(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("enable before connect: %v", err)
	}
	if _, err := ctrl.Disable(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("disable before connect: %v", err)
	}
	if err := ctrl.ChangeControlMode(piper.ControlModeCAN); !errors.Is(err, ErrInvalidState) {
		t.Errorf("mode change before connect: %v", err)
	}
	if _, err := ctrl.GetStatus(); !errors.Is(err, ErrNotReady) {
		t.Errorf("status before connect: %v", err)
	}
	if err := ctrl.MoveJoint(make([]float64, piper.JointCount)); !errors.Is(err, ErrNotReady) {
		t.Errorf("move before connect: %v", err)
	}
}

func TestController_EnableSoftTimeout(t *testing.T) {
	ctrl, bus := simController(t)
	bus.SetDriverResponse([piper.JointCount]bool{true, true, true, true, true, false})

	if err := ctrl.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	ok, err := ctrl.Enable()
	if err != nil {
		t.Fatalf("enable: %v", err)
	}
	if ok {
		t.Error("enable reported success with a driver down")
	}
	if ctrl.State() != StateConnected {
		t.Errorf("state after failed enable = %s", ctrl.State())
	}
}

func TestController_MoveJoint(t *testing.T) {
	ctrl, bus := simController(t)
	if err := ctrl.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := ctrl.Enable(); err != nil {
		t.Fatalf("enable: %v", err)
	}

	if err := ctrl.MoveJoint([]float64{1, 2, 3}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("short vector: %v", err)
	}

	want := []float64{1.5, -2.25, 0, 10, -10, 90}
	if err := ctrl.MoveJoint(want); err != nil {
		t.Fatalf("move joint: %v", err)
	}

	st, err := ctrl.GetStatus()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for i, got := range st.Joints {
		if diff := got - want[i]; diff > 0.001 || diff < -0.001 {
			t.Errorf("joint %d = %v, want %v", i, got, want[i])
		}
	}
	if bus.MotionCtrls() != 2 {
		t.Errorf("motion ctrl writes = %d, want 2", bus.MotionCtrls())
	}
}

func TestController_MovePose(t *testing.T) {
	ctrl, _ := simController(t)
	if err := ctrl.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := ctrl.Enable(); err != nil {
		t.Fatalf("enable: %v", err)
	}

	if err := ctrl.MovePose(geom.Point{X: 0, Y: 0, Z: 0}); !errors.Is(err, geom.ErrNotConfigured) {
		t.Errorf("pose before calibration: %v", err)
	}
	if ctrl.CanInterpolate() {
		t.Error("mapper ready before calibration")
	}

	targets := make([][]float64, geom.VertexCount)
	for i := range targets {
		targets[i] = []float64{float64(i * 10), 0, 0, 0, 0, 0}
	}
	if err := ctrl.SetupModel(targets); err != nil {
		t.Fatalf("setup model: %v", err)
	}
	if !ctrl.CanInterpolate() {
		t.Error("mapper not ready after full setup")
	}

	if err := ctrl.MovePose(geom.Point{X: 0.2, Y: -0.1, Z: 0.3}); err != nil {
		t.Fatalf("move pose: %v", err)
	}
	if err := ctrl.MovePose(geom.Point{X: 2, Y: 2, Z: 2}); !errors.Is(err, geom.ErrOutOfRange) {
		t.Errorf("out-of-range pose: %v", err)
	}
}

func TestController_CalibrateVertex(t *testing.T) {
	ctrl, _ := simController(t)

	if err := ctrl.CalibrateVertex(0, []float64{1, 2, 3, 4, 5, 6}); err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	if ctrl.CanInterpolate() {
		t.Error("mapper ready with one vertex calibrated")
	}
	if err := ctrl.CalibrateVertex(geom.VertexCount, []float64{1}); err == nil {
		t.Error("vertex index out of bounds accepted")
	}
}
