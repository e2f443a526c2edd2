// Package manager exposes the controller registry and device operations
// over gRPC: DexHandService for registry CRUD and DexHandControlService
// for device control, calibration, and the streaming command protocol.
package manager

import (
	"context"
	"log"

	"github.com/banshee-data/dexhand/internal/dexhand"
	"github.com/banshee-data/dexhand/internal/manager/pb"
)

// Ensure Service implements the gRPC interface.
var _ pb.DexHandServiceServer = (*Service)(nil)

// Service implements the DexHandService registry CRUD.
type Service struct {
	pb.UnimplementedDexHandServiceServer

	registry *dexhand.Registry
}

// NewService creates the registry service.
func NewService(registry *dexhand.Registry) *Service {
	return &Service{registry: registry}
}

// CreateDexHand builds and registers a controller for the declared config.
func (s *Service) CreateDexHand(ctx context.Context, req *pb.CreateDexHandRequest) (*pb.CreateDexHandResponse, error) {
	cfg := req.GetConfig()
	if cfg == nil {
		return nil, toStatus(dexhand.ErrInvalidArgument)
	}

	ctrl, err := s.registry.Create(dexhand.Config{
		Side:     dexhand.Side(cfg.GetSide()),
		ArmType:  dexhand.ArmType(cfg.GetArmType()),
		HandType: dexhand.HandType(cfg.GetHandType()),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	log.Printf("manager: created dexhand %s (%s)", ctrl.ID(), ctrl.Name())
	return &pb.CreateDexHandResponse{Dexhand: dexhandToProto(ctrl)}, nil
}

// GetDexHand looks up one controller by id.
func (s *Service) GetDexHand(ctx context.Context, req *pb.GetDexHandRequest) (*pb.GetDexHandResponse, error) {
	ctrl, err := s.registry.Get(req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetDexHandResponse{Dexhand: dexhandToProto(ctrl)}, nil
}

// ListDexHands returns all controllers in creation order.
func (s *Service) ListDexHands(ctx context.Context, req *pb.ListDexHandsRequest) (*pb.ListDexHandsResponse, error) {
	ctrls := s.registry.List()
	out := make([]*pb.DexHand, len(ctrls))
	for i, c := range ctrls {
		out[i] = dexhandToProto(c)
	}
	return &pb.ListDexHandsResponse{Dexhands: out}, nil
}

// DeleteDexHand removes a controller, disconnecting it if attached.
func (s *Service) DeleteDexHand(ctx context.Context, req *pb.DeleteDexHandRequest) (*pb.DeleteDexHandResponse, error) {
	if err := s.registry.Delete(req.GetId()); err != nil {
		return nil, toStatus(err)
	}
	log.Printf("manager: deleted dexhand %s", req.GetId())
	return &pb.DeleteDexHandResponse{}, nil
}
