// Command jointstream exercises the joint streaming path against a running
// daemon: it creates a simulated dexhand (or attaches to an existing one),
// connects and enables it, then drives a sinusoidal joint sweep through a
// SendJoint stream and prints the per-packet acks.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/banshee-data/dexhand/internal/manager/pb"
)

var (
	addr      = flag.String("addr", "localhost:50051", "Daemon gRPC address")
	dexhandID = flag.String("id", "", "Existing dexhand id (created if empty)")
	rateHz    = flag.Float64("rate", 10, "Packet rate in Hz")
	duration  = flag.Duration("duration", 5*time.Second, "Sweep duration")
	amplitude = flag.Float64("amplitude", 15, "Sweep amplitude in degrees")
	keep      = flag.Bool("keep", false, "Leave the dexhand enabled on exit")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *duration+30*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(ctx, *addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatalf("failed to dial %s: %v", *addr, err)
	}
	defer conn.Close()

	device := pb.NewDexHandServiceClient(conn)
	control := pb.NewDexHandControlServiceClient(conn)

	id := *dexhandID
	if id == "" {
		created, err := device.CreateDexHand(ctx, &pb.CreateDexHandRequest{
			Config: &pb.DexHandConfig{
				Side:     pb.Side_SIDE_LEFT,
				ArmType:  pb.ArmType_ARM_TYPE_PIPER,
				HandType: pb.HandType_HAND_TYPE_INSPIRE,
			},
		})
		if err != nil {
			log.Fatalf("failed to create dexhand: %v", err)
		}
		id = created.GetDexhand().GetId()
		log.Printf("created dexhand %s (%s)", id, created.GetDexhand().GetName())
	}

	if _, err := control.ConnectDexHand(ctx, &pb.ConnectDexHandRequest{Id: id}); err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	enabled, err := control.EnableDexHand(ctx, &pb.EnableDexHandRequest{Id: id})
	if err != nil {
		log.Fatalf("failed to enable: %v", err)
	}
	if !enabled.GetEnabled() {
		log.Fatal("enable handshake timed out")
	}
	log.Printf("dexhand %s enabled, streaming for %s at %.1f Hz", id, *duration, *rateHz)

	stream, err := control.SendJoint(ctx)
	if err != nil {
		log.Fatalf("failed to open joint stream: %v", err)
	}

	if err := stream.Send(&pb.SendJointRequest{
		Command: &pb.SendJointRequest_Setup{
			Setup: &pb.StreamSetup{DexhandId: id},
		},
	}); err != nil {
		log.Fatalf("failed to send setup: %v", err)
	}

	// ack reader, so slow acks never stall the send loop
	done := make(chan struct{})
	go func() {
		defer close(done)
		var sent, failed int
		for {
			ack, err := stream.Recv()
			if err == io.EOF {
				log.Printf("stream closed: %d acks, %d failures", sent, failed)
				return
			}
			if err != nil {
				log.Printf("stream error after %d acks: %v", sent, err)
				return
			}
			sent++
			if !ack.GetOk() {
				failed++
				log.Printf("packet rejected: %s", ack.GetMessage())
			}
		}
	}()

	ticker := time.NewTicker(time.Duration(float64(time.Second) / *rateHz))
	defer ticker.Stop()
	start := time.Now()

	for time.Since(start) < *duration {
		<-ticker.C
		phase := 2 * math.Pi * time.Since(start).Seconds() / duration.Seconds()
		angles := make([]float64, 6)
		for i := range angles {
			angles[i] = *amplitude * math.Sin(phase+float64(i)*math.Pi/6)
		}
		if err := stream.Send(&pb.SendJointRequest{
			Command: &pb.SendJointRequest_Packet{
				Packet: &pb.JointCommand{Angles: angles},
			},
		}); err != nil {
			log.Fatalf("failed to send packet: %v", err)
		}
	}

	if err := stream.Send(&pb.SendJointRequest{
		Command: &pb.SendJointRequest_Cancel{Cancel: &pb.StreamCancel{}},
	}); err != nil {
		log.Fatalf("failed to send cancel: %v", err)
	}
	if err := stream.CloseSend(); err != nil {
		log.Fatalf("failed to close stream: %v", err)
	}
	<-done

	if !*keep {
		if _, err := control.DisableDexHand(ctx, &pb.DisableDexHandRequest{Id: id}); err != nil {
			log.Printf("failed to disable: %v", err)
		}
		if _, err := control.DisconnectDexHand(ctx, &pb.DisconnectDexHandRequest{Id: id}); err != nil {
			log.Printf("failed to disconnect: %v", err)
		}
	}
}
