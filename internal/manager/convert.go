package manager

import (
	"github.com/banshee-data/dexhand/internal/dexhand"
	"github.com/banshee-data/dexhand/internal/manager/pb"
	"github.com/banshee-data/dexhand/internal/piper"
)

// The Side/ArmType/HandType/DexHandState wire enums share numbering with
// the domain enums, so those convert by cast. ControlMode does not: the
// wire enum reserves 0 for unspecified while the arm's mode word starts at
// standby, so it shifts by one.

func controlModeFromProto(m pb.ControlMode) (piper.ControlMode, bool) {
	switch m {
	case pb.ControlMode_CONTROL_MODE_STANDBY:
		return piper.ControlModeStandby, true
	case pb.ControlMode_CONTROL_MODE_CAN:
		return piper.ControlModeCAN, true
	case pb.ControlMode_CONTROL_MODE_TEACH:
		return piper.ControlModeTeach, true
	case pb.ControlMode_CONTROL_MODE_ETHERNET:
		return piper.ControlModeEthernet, true
	default:
		return 0, false
	}
}

func controlModeToProto(m piper.ControlMode) pb.ControlMode {
	switch m {
	case piper.ControlModeStandby:
		return pb.ControlMode_CONTROL_MODE_STANDBY
	case piper.ControlModeCAN:
		return pb.ControlMode_CONTROL_MODE_CAN
	case piper.ControlModeTeach:
		return pb.ControlMode_CONTROL_MODE_TEACH
	case piper.ControlModeEthernet:
		return pb.ControlMode_CONTROL_MODE_ETHERNET
	default:
		return pb.ControlMode_CONTROL_MODE_UNSPECIFIED
	}
}

func dexhandToProto(c *dexhand.Controller) *pb.DexHand {
	return &pb.DexHand{
		Id:       c.ID(),
		Name:     c.Name(),
		Side:     pb.Side(c.Side()),
		ArmType:  pb.ArmType(c.ArmType()),
		HandType: pb.HandType(c.HandType()),
		State:    pb.DexHandState(c.State()),
	}
}

func statusToProto(st dexhand.Status) *pb.DexHandStatus {
	return &pb.DexHandStatus{
		Id:          st.ID,
		Name:        st.Name,
		State:       pb.DexHandState(st.State),
		Joints:      st.Joints,
		ControlMode: controlModeToProto(st.Arm.ControlMode),
		ArmState:    int32(st.Arm.ArmState),
		ErrorCode:   st.Arm.ErrorCode,
	}
}
