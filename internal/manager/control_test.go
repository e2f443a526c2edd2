package manager

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/banshee-data/dexhand/internal/dexhand"
	"github.com/banshee-data/dexhand/internal/geom"
	"github.com/banshee-data/dexhand/internal/inspire"
	"github.com/banshee-data/dexhand/internal/manager/pb"
	"github.com/banshee-data/dexhand/internal/piper"
)

// controlFixture wires a registry whose sim buses are captured so tests can
// pin driver responses.
type controlFixture struct {
	svc     *Service
	control *ControlService
	buses   []*piper.SimBus
}

func newControlFixture(t *testing.T) *controlFixture {
	t.Helper()
	f := &controlFixture{}
	reg := dexhand.NewRegistry(func(cfg dexhand.Config) (dexhand.Devices, error) {
		bus := piper.NewSimBus()
		f.buses = append(f.buses, bus)
		return dexhand.Devices{
			ArmBus:   bus,
			HandPort: inspire.NewMockPort(),
			HandID:   1,
		}, nil
	})
	reg.SetHandshake(fastHandshake)
	f.svc = NewService(reg)
	f.control = NewControlService(reg)
	return f
}

func (f *controlFixture) create(t *testing.T) string {
	t.Helper()
	resp, err := f.svc.CreateDexHand(context.Background(), &pb.CreateDexHandRequest{Config: testConfig()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return resp.GetDexhand().GetId()
}

func (f *controlFixture) connectAndEnable(t *testing.T, id string) {
	t.Helper()
	ctx := context.Background()
	if _, err := f.control.ConnectDexHand(ctx, &pb.ConnectDexHandRequest{Id: id}); err != nil {
		t.Fatalf("connect: %v", err)
	}
	resp, err := f.control.EnableDexHand(ctx, &pb.EnableDexHandRequest{Id: id})
	if err != nil {
		t.Fatalf("enable: %v", err)
	}
	if !resp.GetEnabled() {
		t.Fatal("enable handshake did not complete")
	}
}

func TestControl_ConnectEnableDisable(t *testing.T) {
	f := newControlFixture(t)
	id := f.create(t)
	ctx := context.Background()

	f.connectAndEnable(t, id)

	resp, err := f.control.DisableDexHand(ctx, &pb.DisableDexHandRequest{Id: id})
	if err != nil {
		t.Fatalf("disable: %v", err)
	}
	if !resp.GetDisabled() {
		t.Error("disable handshake did not complete")
	}
	if _, err := f.control.DisconnectDexHand(ctx, &pb.DisconnectDexHandRequest{Id: id}); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
}

func TestControl_UnknownID(t *testing.T) {
	f := newControlFixture(t)
	ctx := context.Background()

	checks := []struct {
		name string
		call func() error
	}{
		{"connect", func() error {
			_, err := f.control.ConnectDexHand(ctx, &pb.ConnectDexHandRequest{Id: "x"})
			return err
		}},
		{"enable", func() error {
			_, err := f.control.EnableDexHand(ctx, &pb.EnableDexHandRequest{Id: "x"})
			return err
		}},
		{"set joint", func() error {
			_, err := f.control.SetJoint(ctx, &pb.SetJointRequest{Id: "x"})
			return err
		}},
		{"joint state", func() error {
			_, err := f.control.GetJointState(ctx, &pb.GetJointStateRequest{Id: "x"})
			return err
		}},
	}
	for _, c := range checks {
		if code := status.Code(c.call()); code != codes.NotFound {
			t.Errorf("%s: code = %v, want NotFound", c.name, code)
		}
	}
}

func TestControl_EnableTimeoutIsNotAnError(t *testing.T) {
	f := newControlFixture(t)
	reg := dexhand.NewRegistry(func(cfg dexhand.Config) (dexhand.Devices, error) {
		bus := piper.NewSimBus()
		bus.SetDriverResponse([piper.JointCount]bool{true, true, true, true, true, false})
		return dexhand.Devices{ArmBus: bus, HandPort: inspire.NewMockPort(), HandID: 1}, nil
	})
	reg.SetHandshake(fastHandshake)
	f.svc = NewService(reg)
	f.control = NewControlService(reg)

	ctx := context.Background()
	resp, err := f.svc.CreateDexHand(ctx, &pb.CreateDexHandRequest{Config: testConfig()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := resp.GetDexhand().GetId()

	if _, err := f.control.ConnectDexHand(ctx, &pb.ConnectDexHandRequest{Id: id}); err != nil {
		t.Fatalf("connect: %v", err)
	}
	eresp, err := f.control.EnableDexHand(ctx, &pb.EnableDexHandRequest{Id: id})
	if err != nil {
		t.Fatalf("enable returned an RPC error on soft timeout: %v", err)
	}
	if eresp.GetEnabled() {
		t.Error("enable reported success with a driver down")
	}
}

func TestControl_SetJoint(t *testing.T) {
	f := newControlFixture(t)
	id := f.create(t)
	ctx := context.Background()

	_, err := f.control.SetJoint(ctx, &pb.SetJointRequest{Id: id, Angles: []float64{1, 2, 3, 4, 5, 6}})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("set joint before enable code = %v", status.Code(err))
	}

	f.connectAndEnable(t, id)

	_, err = f.control.SetJoint(ctx, &pb.SetJointRequest{Id: id, Angles: []float64{1, 2}})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("short vector code = %v", status.Code(err))
	}

	want := []float64{10, -5, 2.5, 0, 90, -90}
	if _, err := f.control.SetJoint(ctx, &pb.SetJointRequest{Id: id, Angles: want}); err != nil {
		t.Fatalf("set joint: %v", err)
	}

	resp, err := f.control.GetJointState(ctx, &pb.GetJointStateRequest{Id: id})
	if err != nil {
		t.Fatalf("joint state: %v", err)
	}
	for i, got := range resp.GetAngles() {
		if diff := got - want[i]; diff > 0.001 || diff < -0.001 {
			t.Errorf("joint %d = %v, want %v", i, got, want[i])
		}
	}
}

func TestControl_SetPose(t *testing.T) {
	f := newControlFixture(t)
	id := f.create(t)
	ctx := context.Background()
	f.connectAndEnable(t, id)

	_, err := f.control.SetPose(ctx, &pb.SetPoseRequest{Id: id, Pose: &pb.Pose{}})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("pose before calibration code = %v", status.Code(err))
	}

	targets := make([]*pb.VertexTarget, geom.VertexCount)
	for i := range targets {
		targets[i] = &pb.VertexTarget{Joints: []float64{float64(i), 0, 0, 0, 0, 0}}
	}
	if _, err := f.control.SetupModel(ctx, &pb.SetupModelRequest{Id: id, Targets: targets}); err != nil {
		t.Fatalf("setup model: %v", err)
	}

	if _, err := f.control.SetPose(ctx, &pb.SetPoseRequest{Id: id, Pose: &pb.Pose{X: 0.1, Y: 0.2, Z: -0.3}}); err != nil {
		t.Fatalf("set pose: %v", err)
	}

	_, err = f.control.SetPose(ctx, &pb.SetPoseRequest{Id: id, Pose: &pb.Pose{X: 2, Y: 2, Z: 2}})
	if status.Code(err) != codes.OutOfRange {
		t.Errorf("out-of-range pose code = %v", status.Code(err))
	}

	_, err = f.control.SetPose(ctx, &pb.SetPoseRequest{Id: id})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("nil pose code = %v", status.Code(err))
	}
}

func TestControl_CalibrateVertex(t *testing.T) {
	f := newControlFixture(t)
	id := f.create(t)
	ctx := context.Background()

	if _, err := f.control.CalibrateVertex(ctx, &pb.CalibrateVertexRequest{Id: id, Vertex: 0, Target: []float64{1, 2, 3, 4, 5, 6}}); err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	_, err := f.control.CalibrateVertex(ctx, &pb.CalibrateVertexRequest{Id: id, Vertex: 99, Target: []float64{1}})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("bad vertex code = %v", status.Code(err))
	}
}

func TestControl_ChangeControlMode(t *testing.T) {
	f := newControlFixture(t)
	id := f.create(t)
	ctx := context.Background()

	_, err := f.control.ChangeControlMode(ctx, &pb.ChangeControlModeRequest{Id: id, Mode: pb.ControlMode_CONTROL_MODE_CAN})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("mode change before connect code = %v", status.Code(err))
	}

	if _, err := f.control.ConnectDexHand(ctx, &pb.ConnectDexHandRequest{Id: id}); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := f.control.ChangeControlMode(ctx, &pb.ChangeControlModeRequest{Id: id, Mode: pb.ControlMode_CONTROL_MODE_CAN}); err != nil {
		t.Fatalf("mode change: %v", err)
	}

	_, err = f.control.ChangeControlMode(ctx, &pb.ChangeControlModeRequest{Id: id})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("unspecified mode code = %v", status.Code(err))
	}
}
