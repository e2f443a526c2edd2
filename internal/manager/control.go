package manager

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/banshee-data/dexhand/internal/dexhand"
	"github.com/banshee-data/dexhand/internal/geom"
	"github.com/banshee-data/dexhand/internal/manager/pb"
)

// Ensure ControlService implements the gRPC interface.
var _ pb.DexHandControlServiceServer = (*ControlService)(nil)

// ControlService implements DexHandControlService: unary device operations
// plus the SendJoint/SendPose/ReceiveStatus streams.
type ControlService struct {
	pb.UnimplementedDexHandControlServiceServer

	registry     *dexhand.Registry
	statusPeriod time.Duration
}

// NewControlService creates the control service with the production 1 Hz
// status push period.
func NewControlService(registry *dexhand.Registry) *ControlService {
	return &ControlService{
		registry:     registry,
		statusPeriod: time.Second,
	}
}

// SetStatusPeriod overrides the status push period. Tests compress it.
func (s *ControlService) SetStatusPeriod(d time.Duration) {
	if d > 0 {
		s.statusPeriod = d
	}
}

// ConnectDexHand attaches a controller to its devices.
func (s *ControlService) ConnectDexHand(ctx context.Context, req *pb.ConnectDexHandRequest) (*pb.ConnectDexHandResponse, error) {
	ctrl, err := s.registry.Get(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	if err := ctrl.Connect(); err != nil {
		return nil, toStatus(err)
	}
	log.Printf("manager: connected %s", ctrl.Name())
	return &pb.ConnectDexHandResponse{}, nil
}

// DisconnectDexHand detaches a controller from its devices.
func (s *ControlService) DisconnectDexHand(ctx context.Context, req *pb.DisconnectDexHandRequest) (*pb.DisconnectDexHandResponse, error) {
	ctrl, err := s.registry.Get(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	if err := ctrl.Disconnect(); err != nil {
		return nil, toStatus(err)
	}
	log.Printf("manager: disconnected %s", ctrl.Name())
	return &pb.DisconnectDexHandResponse{}, nil
}

// EnableDexHand runs the enable handshake. A handshake timeout is a normal
// reply with enabled=false, never an RPC error.
func (s *ControlService) EnableDexHand(ctx context.Context, req *pb.EnableDexHandRequest) (*pb.EnableDexHandResponse, error) {
	ctrl, err := s.registry.Get(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	ok, err := ctrl.Enable()
	if err != nil {
		return nil, toStatus(err)
	}
	if !ok {
		log.Printf("manager: enable handshake timed out for %s", ctrl.Name())
	}
	return &pb.EnableDexHandResponse{Enabled: ok}, nil
}

// DisableDexHand runs the disable handshake, same timeout semantics.
func (s *ControlService) DisableDexHand(ctx context.Context, req *pb.DisableDexHandRequest) (*pb.DisableDexHandResponse, error) {
	ctrl, err := s.registry.Get(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	ok, err := ctrl.Disable()
	if err != nil {
		return nil, toStatus(err)
	}
	if !ok {
		log.Printf("manager: disable handshake timed out for %s", ctrl.Name())
	}
	return &pb.DisableDexHandResponse{Disabled: ok}, nil
}

// ChangeControlMode switches the arm control mode.
func (s *ControlService) ChangeControlMode(ctx context.Context, req *pb.ChangeControlModeRequest) (*pb.ChangeControlModeResponse, error) {
	ctrl, err := s.registry.Get(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	mode, ok := controlModeFromProto(req.GetMode())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "control mode unspecified")
	}
	if err := ctrl.ChangeControlMode(mode); err != nil {
		return nil, toStatus(err)
	}
	return &pb.ChangeControlModeResponse{}, nil
}

// SetupModel bulk-calibrates all eight workspace vertices.
func (s *ControlService) SetupModel(ctx context.Context, req *pb.SetupModelRequest) (*pb.SetupModelResponse, error) {
	ctrl, err := s.registry.Get(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	targets := make([][]float64, len(req.GetTargets()))
	for i, t := range req.GetTargets() {
		targets[i] = t.GetJoints()
	}
	if err := ctrl.SetupModel(targets); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	log.Printf("manager: workspace model configured for %s", ctrl.Name())
	return &pb.SetupModelResponse{}, nil
}

// CalibrateVertex assigns one vertex's joint-space target.
func (s *ControlService) CalibrateVertex(ctx context.Context, req *pb.CalibrateVertexRequest) (*pb.CalibrateVertexResponse, error) {
	ctrl, err := s.registry.Get(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	if err := ctrl.CalibrateVertex(int(req.GetVertex()), req.GetTarget()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &pb.CalibrateVertexResponse{}, nil
}

// SetPose applies one mapped pose command.
func (s *ControlService) SetPose(ctx context.Context, req *pb.SetPoseRequest) (*pb.SetPoseResponse, error) {
	ctrl, err := s.registry.Get(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	p := req.GetPose()
	if p == nil {
		return nil, status.Error(codes.InvalidArgument, "pose is required")
	}
	if err := ctrl.MovePose(geom.Point{X: p.GetX(), Y: p.GetY(), Z: p.GetZ()}); err != nil {
		return nil, toStatus(err)
	}
	return &pb.SetPoseResponse{}, nil
}

// SetJoint applies one joint-space command.
func (s *ControlService) SetJoint(ctx context.Context, req *pb.SetJointRequest) (*pb.SetJointResponse, error) {
	ctrl, err := s.registry.Get(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	if err := ctrl.MoveJoint(req.GetAngles()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.SetJointResponse{}, nil
}

// GetJointState reads the current joint angles.
func (s *ControlService) GetJointState(ctx context.Context, req *pb.GetJointStateRequest) (*pb.GetJointStateResponse, error) {
	ctrl, err := s.registry.Get(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	st, err := ctrl.GetStatus()
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetJointStateResponse{Angles: st.Joints}, nil
}
