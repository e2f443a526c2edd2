package manager

import (
	"io"
	"log"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/banshee-data/dexhand/internal/dexhand"
	"github.com/banshee-data/dexhand/internal/geom"
	"github.com/banshee-data/dexhand/internal/manager/pb"
)

// The command streams share one protocol: the first inbound message must be
// a Setup naming the target controller and is acknowledged once the
// controller is bound, every Packet is applied synchronously and
// acknowledged exactly once, and Cancel (or client EOF) ends the stream
// cleanly. Protocol violations terminate the stream with a status error and
// zero acks for the offending message.

// SendJoint streams joint-space commands to one controller.
func (s *ControlService) SendJoint(stream pb.DexHandControlService_SendJointServer) error {
	first, err := stream.Recv()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	setup := first.GetSetup()
	if setup == nil {
		return status.Error(codes.FailedPrecondition, "first message must be setup")
	}
	ctrl, err := s.registry.Get(setup.GetDexhandId())
	if err != nil {
		return toStatus(err)
	}
	log.Printf("manager: joint stream bound to %s", ctrl.Name())
	if err := stream.Send(ackFor(nil)); err != nil {
		return err
	}

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch cmd := req.GetCommand().(type) {
		case *pb.SendJointRequest_Cancel:
			log.Printf("manager: joint stream cancelled for %s", ctrl.Name())
			return nil
		case *pb.SendJointRequest_Packet:
			if err := stream.Send(ackFor(ctrl.MoveJoint(cmd.Packet.GetAngles()))); err != nil {
				return err
			}
		case *pb.SendJointRequest_Setup:
			return status.Error(codes.FailedPrecondition, "stream is already set up")
		default:
			return status.Error(codes.InvalidArgument, "empty stream command")
		}
	}
}

// SendPose streams pose commands, mapped through the workspace model.
func (s *ControlService) SendPose(stream pb.DexHandControlService_SendPoseServer) error {
	first, err := stream.Recv()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	setup := first.GetSetup()
	if setup == nil {
		return status.Error(codes.FailedPrecondition, "first message must be setup")
	}
	ctrl, err := s.registry.Get(setup.GetDexhandId())
	if err != nil {
		return toStatus(err)
	}
	log.Printf("manager: pose stream bound to %s", ctrl.Name())
	if err := stream.Send(ackFor(nil)); err != nil {
		return err
	}

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch cmd := req.GetCommand().(type) {
		case *pb.SendPoseRequest_Cancel:
			log.Printf("manager: pose stream cancelled for %s", ctrl.Name())
			return nil
		case *pb.SendPoseRequest_Packet:
			p := geom.Point{X: cmd.Packet.GetX(), Y: cmd.Packet.GetY(), Z: cmd.Packet.GetZ()}
			if err := stream.Send(ackFor(ctrl.MovePose(p))); err != nil {
				return err
			}
		case *pb.SendPoseRequest_Setup:
			return status.Error(codes.FailedPrecondition, "stream is already set up")
		default:
			return status.Error(codes.InvalidArgument, "empty stream command")
		}
	}
}

// ackFor wraps one packet outcome. Command failures ride in the ack so the
// stream survives a bad packet; only transport failures end the stream.
func ackFor(err error) *pb.CommandAck {
	if err != nil {
		return &pb.CommandAck{Ok: false, Message: err.Error()}
	}
	return &pb.CommandAck{Ok: true}
}

// ReceiveStatus pushes one status snapshot per period until the client
// cancels. A reader goroutine owns Recv and signals cancellation over a
// channel; the push loop selects on the ticker, the cancel signal, and the
// stream context so cancellation never waits out a full tick.
func (s *ControlService) ReceiveStatus(stream pb.DexHandControlService_ReceiveStatusServer) error {
	first, err := stream.Recv()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	setup := first.GetSetup()
	if setup == nil {
		return status.Error(codes.FailedPrecondition, "first message must be setup")
	}
	ctrl, err := s.registry.Get(setup.GetDexhandId())
	if err != nil {
		return toStatus(err)
	}
	log.Printf("manager: status stream bound to %s", ctrl.Name())

	cancelled := make(chan struct{})
	go func() {
		defer close(cancelled)
		for {
			req, err := stream.Recv()
			if err != nil {
				return
			}
			if req.GetCancel() != nil {
				return
			}
		}
	}()

	// First snapshot goes out immediately; the ticker paces the rest.
	if err := stream.Send(snapshotStatus(ctrl)); err != nil {
		return err
	}

	ticker := time.NewTicker(s.statusPeriod)
	defer ticker.Stop()
	ctx := stream.Context()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-cancelled:
			log.Printf("manager: status stream cancelled for %s", ctrl.Name())
			return nil
		case <-ticker.C:
			if err := stream.Send(snapshotStatus(ctrl)); err != nil {
				return err
			}
		}
	}
}

// snapshotStatus reads what the controller can report in its current
// state. Before the controller is connected only identity and lifecycle
// state are available.
func snapshotStatus(ctrl *dexhand.Controller) *pb.DexHandStatus {
	st, err := ctrl.GetStatus()
	if err != nil {
		return &pb.DexHandStatus{
			Id:    ctrl.ID(),
			Name:  ctrl.Name(),
			State: pb.DexHandState(ctrl.State()),
		}
	}
	return statusToProto(st)
}
