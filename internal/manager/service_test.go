package manager

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/banshee-data/dexhand/internal/dexhand"
	"github.com/banshee-data/dexhand/internal/inspire"
	"github.com/banshee-data/dexhand/internal/manager/pb"
	"github.com/banshee-data/dexhand/internal/piper"
)

func testRegistry() *dexhand.Registry {
	return dexhand.NewRegistry(func(cfg dexhand.Config) (dexhand.Devices, error) {
		return dexhand.Devices{
			ArmBus:   piper.NewSimBus(),
			HandPort: inspire.NewMockPort(),
			HandID:   1,
		}, nil
	})
}

func testConfig() *pb.DexHandConfig {
	return &pb.DexHandConfig{
		Side:     pb.Side_SIDE_LEFT,
		ArmType:  pb.ArmType_ARM_TYPE_PIPER,
		HandType: pb.HandType_HAND_TYPE_INSPIRE,
	}
}

// createDexHand registers one sim-backed controller and returns its id.
func createDexHand(t *testing.T, svc *Service) string {
	t.Helper()
	resp, err := svc.CreateDexHand(context.Background(), &pb.CreateDexHandRequest{Config: testConfig()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return resp.GetDexhand().GetId()
}

// fastHandshake keeps handshake-timeout tests quick.
var fastHandshake = piper.HandshakeConfig{
	PollInterval: time.Millisecond,
	Deadline:     20 * time.Millisecond,
}

func TestService_CreateDexHand(t *testing.T) {
	svc := NewService(testRegistry())

	resp, err := svc.CreateDexHand(context.Background(), &pb.CreateDexHandRequest{Config: testConfig()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	hand := resp.GetDexhand()
	if hand.GetId() == "" {
		t.Error("empty id")
	}
	if hand.GetName() != "LEFT_PIPER_INSPIRE" {
		t.Errorf("name = %q", hand.GetName())
	}
	if hand.GetState() != pb.DexHandState_DEX_HAND_STATE_CREATED {
		t.Errorf("state = %v", hand.GetState())
	}
}

func TestService_CreateDexHand_Invalid(t *testing.T) {
	svc := NewService(testRegistry())

	cases := []struct {
		name string
		cfg  *pb.DexHandConfig
		code codes.Code
	}{
		{"nil config", nil, codes.InvalidArgument},
		{"unspecified side", &pb.DexHandConfig{ArmType: pb.ArmType_ARM_TYPE_PIPER, HandType: pb.HandType_HAND_TYPE_INSPIRE}, codes.InvalidArgument},
		{"nova arm", &pb.DexHandConfig{Side: pb.Side_SIDE_LEFT, ArmType: pb.ArmType_ARM_TYPE_NOVA, HandType: pb.HandType_HAND_TYPE_INSPIRE}, codes.Unimplemented},
		{"dh hand", &pb.DexHandConfig{Side: pb.Side_SIDE_LEFT, ArmType: pb.ArmType_ARM_TYPE_PIPER, HandType: pb.HandType_HAND_TYPE_DH}, codes.Unimplemented},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateDexHand(context.Background(), &pb.CreateDexHandRequest{Config: tc.cfg})
			if status.Code(err) != tc.code {
				t.Errorf("code = %v, want %v (err %v)", status.Code(err), tc.code, err)
			}
		})
	}
}

func TestService_GetDexHand(t *testing.T) {
	svc := NewService(testRegistry())
	id := createDexHand(t, svc)

	resp, err := svc.GetDexHand(context.Background(), &pb.GetDexHandRequest{Id: id})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.GetDexhand().GetId() != id {
		t.Errorf("id = %q, want %q", resp.GetDexhand().GetId(), id)
	}

	_, err = svc.GetDexHand(context.Background(), &pb.GetDexHandRequest{Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Errorf("unknown id code = %v", status.Code(err))
	}
}

func TestService_ListDexHands(t *testing.T) {
	svc := NewService(testRegistry())

	var want []string
	for i := 0; i < 3; i++ {
		want = append(want, createDexHand(t, svc))
	}

	resp, err := svc.ListDexHands(context.Background(), &pb.ListDexHandsRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.GetDexhands()) != 3 {
		t.Fatalf("listed %d controllers", len(resp.GetDexhands()))
	}
	for i, hand := range resp.GetDexhands() {
		if hand.GetId() != want[i] {
			t.Errorf("position %d: id = %q, want %q", i, hand.GetId(), want[i])
		}
	}
}

func TestService_DeleteDexHand(t *testing.T) {
	svc := NewService(testRegistry())
	id := createDexHand(t, svc)

	if _, err := svc.DeleteDexHand(context.Background(), &pb.DeleteDexHandRequest{Id: id}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err := svc.GetDexHand(context.Background(), &pb.GetDexHandRequest{Id: id})
	if status.Code(err) != codes.NotFound {
		t.Errorf("get after delete code = %v", status.Code(err))
	}
	_, err = svc.DeleteDexHand(context.Background(), &pb.DeleteDexHandRequest{Id: id})
	if status.Code(err) != codes.NotFound {
		t.Errorf("double delete code = %v", status.Code(err))
	}
}
