// Package dexhand implements the per-device control runtime: the controller
// lifecycle state machine over one arm and one hand, and the thread-safe
// registry that owns all controllers in a process.
package dexhand

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/banshee-data/dexhand/internal/geom"
	"github.com/banshee-data/dexhand/internal/inspire"
	"github.com/banshee-data/dexhand/internal/piper"
)

// Side identifies which arm of the rig a controller drives.
type Side int32

const (
	SideUnspecified Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "LEFT"
	case SideRight:
		return "RIGHT"
	default:
		return "UNSPECIFIED"
	}
}

// ArmType identifies the arm vendor driver.
type ArmType int32

const (
	ArmTypeUnspecified ArmType = iota
	ArmTypePiper
	ArmTypeNova
)

func (a ArmType) String() string {
	switch a {
	case ArmTypePiper:
		return "PIPER"
	case ArmTypeNova:
		return "NOVA"
	default:
		return "UNSPECIFIED"
	}
}

// HandType identifies the hand vendor driver.
type HandType int32

const (
	HandTypeUnspecified HandType = iota
	HandTypeInspire
	HandTypeDH
)

func (h HandType) String() string {
	switch h {
	case HandTypeInspire:
		return "INSPIRE"
	case HandTypeDH:
		return "DH"
	default:
		return "UNSPECIFIED"
	}
}

// State is the controller lifecycle state.
type State int32

const (
	StateCreated State = iota
	StateConnected
	StateEnabled
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "CONNECTED"
	case StateEnabled:
		return "ENABLED"
	default:
		return "CREATED"
	}
}

// Config declares the device pair a controller drives.
type Config struct {
	Side     Side
	ArmType  ArmType
	HandType HandType

	Handshake piper.HandshakeConfig
}

// Devices supplies the opened hardware transports for one controller. The
// factory that builds them is injected at startup so the runtime never
// opens hardware on its own.
type Devices struct {
	ArmBus   piper.Bus
	HandPort inspire.Porter
	HandID   byte
}

// Status is a snapshot of the controller's device state.
type Status struct {
	ID     string
	Name   string
	State  State
	Joints []float64
	Arm    piper.Status
}

// Controller is the per-device state machine. All operations serialize on
// the controller's own mutex; operations on distinct controllers never
// contend. The mutex is not reentrant: internal helpers assume the lock is
// already held and never re-acquire it.
type Controller struct {
	id       string
	name     string
	side     Side
	armType  ArmType
	handType HandType

	mu     sync.Mutex
	state  State
	arm    *piper.Arm
	hand   *inspire.Hand
	mapper *geom.Mapper
}

// NewController builds a controller for the declared device pair.
// Construction is all-or-nothing: an unsupported or unspecified vendor type
// fails before anything is built, so no half-built controller escapes.
func NewController(cfg Config, dev Devices) (*Controller, error) {
	var arm *piper.Arm
	switch cfg.ArmType {
	case ArmTypePiper:
		if dev.ArmBus == nil {
			return nil, fmt.Errorf("%w: no arm bus supplied", ErrInvalidArgument)
		}
		arm = piper.NewArm(dev.ArmBus, cfg.Handshake)
	case ArmTypeNova:
		return nil, fmt.Errorf("%w: nova arm", ErrNotImplemented)
	default:
		return nil, fmt.Errorf("%w: arm type unspecified", ErrInvalidArgument)
	}

	var hand *inspire.Hand
	switch cfg.HandType {
	case HandTypeInspire:
		if dev.HandPort == nil {
			return nil, fmt.Errorf("%w: no hand port supplied", ErrInvalidArgument)
		}
		hand = inspire.NewHand(dev.HandPort, dev.HandID)
	case HandTypeDH:
		return nil, fmt.Errorf("%w: dh hand", ErrNotImplemented)
	default:
		return nil, fmt.Errorf("%w: hand type unspecified", ErrInvalidArgument)
	}

	if cfg.Side == SideUnspecified {
		return nil, fmt.Errorf("%w: side unspecified", ErrInvalidArgument)
	}

	return &Controller{
		id:       uuid.NewString(),
		name:     fmt.Sprintf("%s_%s_%s", cfg.Side, cfg.ArmType, cfg.HandType),
		side:     cfg.Side,
		armType:  cfg.ArmType,
		handType: cfg.HandType,
		arm:      arm,
		hand:     hand,
		mapper:   geom.NewMapper(),
	}, nil
}

// ID returns the controller's unique id.
func (c *Controller) ID() string { return c.id }

// Name returns the SIDE_ARM_HAND display name.
func (c *Controller) Name() string { return c.name }

// Side returns the declared rig side.
func (c *Controller) Side() Side { return c.side }

// ArmType returns the declared arm vendor.
func (c *Controller) ArmType() ArmType { return c.armType }

// HandType returns the declared hand vendor.
func (c *Controller) HandType() HandType { return c.handType }

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect opens the arm transport. The hand has no connect phase on its
// register protocol yet; connectHand keeps the call site explicit so a real
// hand handshake has a slot when the vendor adds one.
func (c *Controller) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateCreated {
		return fmt.Errorf("%w: connect from %s", ErrInvalidState, c.state)
	}
	if err := c.arm.Connect(); err != nil {
		return &ConnectionError{Op: "connect arm", Err: err}
	}
	c.connectHand()
	c.state = StateConnected
	return nil
}

// connectHand is deliberately a no-op: the Inspire register protocol is
// connectionless over the shared serial bus. Kept as a call site, not
// omitted, pending a hand protocol with a real session handshake.
func (c *Controller) connectHand() {}

// Disconnect closes the arm transport and returns to Created.
func (c *Controller) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCreated {
		return fmt.Errorf("%w: disconnect from %s", ErrInvalidState, c.state)
	}
	if err := c.arm.Disconnect(); err != nil {
		return &ConnectionError{Op: "disconnect arm", Err: err}
	}
	c.state = StateCreated
	return nil
}

// Enable runs the arm enable handshake and reports its boolean outcome.
// A soft timeout is a false result, not an error. The controller lock is
// held for the full handshake, serializing against concurrent commands to
// this controller only.
func (c *Controller) Enable() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCreated {
		return false, fmt.Errorf("%w: enable from %s", ErrInvalidState, c.state)
	}
	ok, err := c.arm.Enable()
	if err != nil {
		return false, &ConnectionError{Op: "enable arm", Err: err}
	}
	if ok {
		c.state = StateEnabled
	}
	return ok, nil
}

// Disable runs the arm disable handshake and reports its boolean outcome.
func (c *Controller) Disable() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCreated {
		return false, fmt.Errorf("%w: disable from %s", ErrInvalidState, c.state)
	}
	ok, err := c.arm.Disable()
	if err != nil {
		return false, &ConnectionError{Op: "disable arm", Err: err}
	}
	if ok && c.state == StateEnabled {
		c.state = StateConnected
	}
	return ok, nil
}

// MoveJoint commands the six arm joints, in degrees.
func (c *Controller) MoveJoint(angles []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moveJointLocked(angles)
}

// moveJointLocked issues the joint command. Callers hold c.mu.
func (c *Controller) moveJointLocked(angles []float64) error {
	if len(angles) != piper.JointCount {
		return fmt.Errorf("%w: expected %d joint angles, got %d", ErrInvalidArgument, piper.JointCount, len(angles))
	}
	if c.state != StateEnabled {
		return ErrNotReady
	}
	if err := c.arm.MoveJoint(angles); err != nil {
		if err == piper.ErrNotReady {
			return ErrNotReady
		}
		return &ConnectionError{Op: "joint command", Err: err}
	}
	return nil
}

// MovePose maps a 3-D control point through the workspace mapper and
// forwards the interpolated joint vector. Mapper errors (not calibrated,
// out of range, degenerate simplex) propagate unchanged.
func (c *Controller) MovePose(p geom.Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	angles, err := c.mapper.Interpolate(p)
	if err != nil {
		return err
	}
	return c.moveJointLocked(angles)
}

// SetupModel calibrates all eight mapper vertices at once, in vertex order.
func (c *Controller) SetupModel(targets [][]float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mapper.SetTargets(targets)
}

// CalibrateVertex assigns one vertex's joint-space target.
func (c *Controller) CalibrateVertex(vertex int, target []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mapper.Calibrate(vertex, target)
}

// CanInterpolate reports mapper readiness.
func (c *Controller) CanInterpolate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mapper.CanInterpolate()
}

// ChangeControlMode forwards a control-mode switch to the arm. Valid in any
// connected state.
func (c *Controller) ChangeControlMode(mode piper.ControlMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCreated {
		return fmt.Errorf("%w: change control mode from %s", ErrInvalidState, c.state)
	}
	if err := c.arm.SetControlMode(mode); err != nil {
		return &ConnectionError{Op: "set control mode", Err: err}
	}
	return nil
}

// GetStatus snapshots joint angles and arm status. Read-only; requires a
// connected arm but not the enabled state. The lock is held only for the
// snapshot, never across any wait.
func (c *Controller) GetStatus() (Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCreated {
		return Status{}, ErrNotReady
	}
	joints, err := c.arm.JointState()
	if err != nil {
		return Status{}, &ConnectionError{Op: "read joint state", Err: err}
	}
	armStatus, err := c.arm.Status()
	if err != nil {
		return Status{}, &ConnectionError{Op: "read arm status", Err: err}
	}
	return Status{
		ID:     c.id,
		Name:   c.name,
		State:  c.state,
		Joints: joints,
		Arm:    armStatus,
	}, nil
}

// Hand exposes the hand driver for direct register access (diagnostics
// tooling, gesture playback). The hand is not yet part of the motion path.
func (c *Controller) Hand() *inspire.Hand { return c.hand }
