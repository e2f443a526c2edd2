// Package units provides angle scaling between the degree interface used
// by callers and the integer units the device protocols speak.
package units

import "math"

// Millidegrees is the arm protocol's integer scale: one unit is 0.001 deg.
const Millidegrees = 1000

// HandRangeMax is the hand protocol's actuation range ceiling. Finger
// channels accept 0..1000, where 1000 is fully open.
const HandRangeMax = 1000

// DegreesToMillidegrees converts degrees to the arm's integer units,
// rounding to the nearest unit.
func DegreesToMillidegrees(deg float64) int32 {
	return int32(math.Round(deg * Millidegrees))
}

// MillidegreesToDegrees converts the arm's integer units back to degrees.
func MillidegreesToDegrees(mdeg int32) float64 {
	return float64(mdeg) / Millidegrees
}

// ClampHandRange clamps a hand channel value to the protocol's 0..1000
// actuation range.
func ClampHandRange(v int) int16 {
	if v < 0 {
		return 0
	}
	if v > HandRangeMax {
		return HandRangeMax
	}
	return int16(v)
}

// InHandRange reports whether v is a valid hand channel value.
func InHandRange(v int) bool {
	return v >= 0 && v <= HandRangeMax
}
