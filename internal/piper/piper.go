// Package piper wraps the Piper arm vendor protocol behind a narrow Bus
// interface and layers the control-runtime semantics on top: connection
// state, the bounded-retry enable/disable handshake, integer protocol
// scaling, and status decoding.
package piper

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/banshee-data/dexhand/internal/monitoring"
	"github.com/banshee-data/dexhand/internal/units"
)

// JointCount is the number of arm joints the protocol addresses.
const JointCount = 6

// ErrNotReady is returned for motion commands issued before the arm is both
// connected and enabled.
var ErrNotReady = errors.New("arm is not connected and enabled")

// ControlMode is the arm's commanded control mode.
type ControlMode int32

const (
	ControlModeStandby ControlMode = iota
	ControlModeCAN
	ControlModeTeach
	ControlModeEthernet
)

// ArmState is the coarse arm status reported by the vendor firmware.
type ArmState int32

const (
	ArmStateNormal ArmState = iota
	ArmStateEmergencyStop
	ArmStateNoSolution
	ArmStateFault
)

// Status is the decoded arm status block: mode/state enums, the firmware
// error code, and the per-joint error flags.
type Status struct {
	ControlMode  ControlMode
	ArmState     ArmState
	ModeFeedback int32
	MotionStatus int32
	TeachStatus  int32
	ErrorCode    uint32
	JointComm    [JointCount]bool
	JointLimit   [JointCount]bool
}

// Bus is the vendor driver boundary. Implementations encode commands onto the
// transport (CAN for the real arm, loopback for the simulator); everything
// above this interface is transport-agnostic.
type Bus interface {
	// Connect opens the transport.
	Connect() error
	// Disconnect closes the transport.
	Disconnect() error
	// EnableArm issues the arm-level enable command to all joint drivers.
	EnableArm() error
	// DisableArm issues the arm-level disable command to all joint drivers.
	DisableArm() error
	// GripperRelease commands the gripper to release its hold.
	GripperRelease() error
	// DriverEnabled queries the per-joint driver enable flags.
	DriverEnabled() ([JointCount]bool, error)
	// SetControlMode switches the arm control mode.
	SetControlMode(mode ControlMode) error
	// MotionCtrl sets the motion control word (control mode, move mode,
	// speed ratio percentage).
	MotionCtrl(ctrlMode, moveMode byte, speedRatio uint8) error
	// JointCtrl commands all six joints in millidegree units.
	JointCtrl(joints [JointCount]int32) error
	// JointState reads the six raw joint angles in millidegree units.
	JointState() ([JointCount]int32, error)
	// ArmStatus reads the decoded status block.
	ArmStatus() (Status, error)
}

// HandshakeConfig tunes the enable/disable retry loop. The zero value is
// replaced by the production defaults.
type HandshakeConfig struct {
	PollInterval time.Duration
	Deadline     time.Duration
}

func (c HandshakeConfig) withDefaults() HandshakeConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = 500 * time.Millisecond
	}
	if c.Deadline <= 0 {
		c.Deadline = 5 * time.Second
	}
	return c
}

// Arm owns one Bus and tracks connection/enable state. It is not
// self-locking: the owning controller serializes access.
type Arm struct {
	bus       Bus
	handshake HandshakeConfig

	speedRatio uint8

	connected bool
	enabled   bool

	// command timestamps for rate diagnostics, newest last
	stampMu sync.Mutex
	stamps  []time.Time
}

// NewArm wraps a Bus. speedRatio is the motion-control speed percentage used
// when bracketing joint commands.
func NewArm(bus Bus, handshake HandshakeConfig) *Arm {
	return &Arm{
		bus:        bus,
		handshake:  handshake.withDefaults(),
		speedRatio: 30,
	}
}

// Connected reports whether the transport is open.
func (a *Arm) Connected() bool { return a.connected }

// Enabled reports whether the last handshake left the joint drivers enabled.
func (a *Arm) Enabled() bool { return a.enabled }

// Connect opens the bus transport.
func (a *Arm) Connect() error {
	if err := a.bus.Connect(); err != nil {
		return fmt.Errorf("connect arm bus: %w", err)
	}
	a.connected = true
	return nil
}

// Disconnect closes the bus transport and drops the enabled state.
func (a *Arm) Disconnect() error {
	if err := a.bus.Disconnect(); err != nil {
		return fmt.Errorf("disconnect arm bus: %w", err)
	}
	a.connected = false
	a.enabled = false
	return nil
}

// Enable runs the bounded-retry enable handshake: every poll interval it
// issues the arm-level enable command and reads the six driver-enable flags,
// succeeding once all six are true. Deadline expiry is a soft failure
// reported as false, not an error; only hard bus failures return an error.
func (a *Arm) Enable() (bool, error) {
	deadline := time.Now().Add(a.handshake.Deadline)

	for {
		if err := a.bus.EnableArm(); err != nil {
			return false, fmt.Errorf("enable arm: %w", err)
		}
		flags, err := a.bus.DriverEnabled()
		switch {
		case errors.Is(err, ErrNoFeedback):
			// No driver broadcast decoded yet; treat as flags still down
			// and keep polling to the deadline.
			monitoring.Logf("piper: enable flags not reported yet")
		case err != nil:
			return false, fmt.Errorf("query driver enable flags: %w", err)
		default:
			monitoring.Logf("piper: enable flags %v", flags)
			if allEnabled(flags) {
				a.enabled = true
				return true, nil
			}
		}
		if time.Now().After(deadline) {
			monitoring.Logf("piper: enable handshake timed out after %s", a.handshake.Deadline)
			return false, nil
		}
		time.Sleep(a.handshake.PollInterval)
	}
}

// Disable runs the disable handshake. Each attempt issues the arm-level
// disable command plus a gripper release, then polls the same six flags.
// Success requires that no flag remains set; the loop keeps retrying while
// at least one driver reports enabled. Note the asymmetry with Enable
// (all() there, not-any() here): this mirrors the firmware's observed
// behaviour and is kept deliberately.
func (a *Arm) Disable() (bool, error) {
	deadline := time.Now().Add(a.handshake.Deadline)

	for {
		if err := a.bus.DisableArm(); err != nil {
			return false, fmt.Errorf("disable arm: %w", err)
		}
		if err := a.bus.GripperRelease(); err != nil {
			return false, fmt.Errorf("release gripper: %w", err)
		}
		flags, err := a.bus.DriverEnabled()
		switch {
		case errors.Is(err, ErrNoFeedback):
			monitoring.Logf("piper: disable flags not reported yet")
		case err != nil:
			return false, fmt.Errorf("query driver enable flags: %w", err)
		default:
			monitoring.Logf("piper: disable flags %v", flags)
			if !anyEnabled(flags) {
				a.enabled = false
				return true, nil
			}
		}
		if time.Now().After(deadline) {
			monitoring.Logf("piper: disable handshake timed out after %s", a.handshake.Deadline)
			return false, nil
		}
		time.Sleep(a.handshake.PollInterval)
	}
}

func allEnabled(flags [JointCount]bool) bool {
	for _, f := range flags {
		if !f {
			return false
		}
	}
	return true
}

func anyEnabled(flags [JointCount]bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}

// MoveJoint commands the six joints, in degrees. Angles are scaled to the
// driver's millidegree integers and the JointCtrl is bracketed by identical
// MotionCtrl writes, as the vendor reference sequence does.
func (a *Arm) MoveJoint(angles []float64) error {
	if len(angles) != JointCount {
		return fmt.Errorf("expected %d joint angles, got %d", JointCount, len(angles))
	}
	if !(a.connected && a.enabled) {
		return ErrNotReady
	}

	a.recordStamp()

	var joints [JointCount]int32
	for i, deg := range angles {
		joints[i] = units.DegreesToMillidegrees(deg)
	}

	if err := a.bus.MotionCtrl(0x01, 0x01, a.speedRatio); err != nil {
		return fmt.Errorf("motion ctrl: %w", err)
	}
	if err := a.bus.JointCtrl(joints); err != nil {
		return fmt.Errorf("joint ctrl: %w", err)
	}
	if err := a.bus.MotionCtrl(0x01, 0x01, a.speedRatio); err != nil {
		return fmt.Errorf("motion ctrl: %w", err)
	}
	return nil
}

// SetControlMode forwards a control-mode switch to the bus. Valid in any
// connected state.
func (a *Arm) SetControlMode(mode ControlMode) error {
	if !a.connected {
		return ErrNotReady
	}
	return a.bus.SetControlMode(mode)
}

// JointState reads the raw joint angles and converts them back to degrees.
func (a *Arm) JointState() ([]float64, error) {
	raw, err := a.bus.JointState()
	if err != nil {
		return nil, fmt.Errorf("read joint state: %w", err)
	}
	out := make([]float64, JointCount)
	for i, v := range raw {
		out[i] = units.MillidegreesToDegrees(v)
	}
	return out, nil
}

// Status reads the decoded arm status block.
func (a *Arm) Status() (Status, error) {
	return a.bus.ArmStatus()
}

// recordStamp keeps the last ten command timestamps for rate diagnostics.
func (a *Arm) recordStamp() {
	a.stampMu.Lock()
	defer a.stampMu.Unlock()
	a.stamps = append(a.stamps, time.Now())
	if len(a.stamps) > 10 {
		a.stamps = a.stamps[len(a.stamps)-10:]
	}
}

// CommandRate returns the average command frequency in Hz over the recent
// command window, or 0 with fewer than two samples.
func (a *Arm) CommandRate() float64 {
	a.stampMu.Lock()
	defer a.stampMu.Unlock()
	if len(a.stamps) < 2 {
		return 0
	}
	elapsed := a.stamps[len(a.stamps)-1].Sub(a.stamps[0]).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(len(a.stamps)-1) / elapsed
}
