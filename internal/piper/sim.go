package piper

import (
	"errors"
	"sync"
)

// SimBus is a loopback Bus for dev mode and tests. Joint commands are
// retained and echoed back by JointState, and the per-joint driver flags
// follow EnableArm/DisableArm unless a response pattern is pinned with
// SetDriverResponse.
type SimBus struct {
	mu sync.Mutex

	connected bool
	flags     [JointCount]bool
	pinned    bool

	joints      [JointCount]int32
	controlMode ControlMode
	status      Status

	gripperReleases int
	motionCtrls     int
}

// NewSimBus returns a disconnected simulator with all driver flags down.
func NewSimBus() *SimBus {
	return &SimBus{}
}

// SetDriverResponse pins the flag pattern reported by DriverEnabled,
// ignoring subsequent EnableArm/DisableArm commands. Used to simulate a
// joint driver that never comes up (or never shuts down).
func (b *SimBus) SetDriverResponse(flags [JointCount]bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flags = flags
	b.pinned = true
}

func (b *SimBus) Connect() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.connected = true
	return nil
}

func (b *SimBus) Disconnect() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.connected = false
	return nil
}

func (b *SimBus) EnableArm() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return errors.New("sim bus not connected")
	}
	if !b.pinned {
		for i := range b.flags {
			b.flags[i] = true
		}
	}
	return nil
}

func (b *SimBus) DisableArm() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return errors.New("sim bus not connected")
	}
	if !b.pinned {
		for i := range b.flags {
			b.flags[i] = false
		}
	}
	return nil
}

func (b *SimBus) GripperRelease() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gripperReleases++
	return nil
}

// GripperReleases returns how many release commands have been issued.
func (b *SimBus) GripperReleases() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gripperReleases
}

func (b *SimBus) DriverEnabled() ([JointCount]bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return [JointCount]bool{}, errors.New("sim bus not connected")
	}
	return b.flags, nil
}

func (b *SimBus) SetControlMode(mode ControlMode) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.controlMode = mode
	b.status.ControlMode = mode
	return nil
}

func (b *SimBus) MotionCtrl(ctrlMode, moveMode byte, speedRatio uint8) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.motionCtrls++
	return nil
}

// MotionCtrls returns how many motion-control words have been written.
func (b *SimBus) MotionCtrls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.motionCtrls
}

func (b *SimBus) JointCtrl(joints [JointCount]int32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return errors.New("sim bus not connected")
	}
	b.joints = joints
	return nil
}

func (b *SimBus) JointState() ([JointCount]int32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return [JointCount]int32{}, errors.New("sim bus not connected")
	}
	return b.joints, nil
}

func (b *SimBus) ArmStatus() (Status, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return Status{}, errors.New("sim bus not connected")
	}
	return b.status, nil
}
