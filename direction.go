package mire

import "math"

// Direction returns the angle of travel from one point to another, in whole
// degrees in [0, 360), measured counter-clockwise from the positive x axis
// with positive y pointing up.
//
// The fractional part is truncated toward zero before normalization, so
// (-2,1)→(2,3) is 26, not 27.
//
// A zero-length vector (from == to) is a caller precondition violation; the
// result for it is unspecified.
func Direction(from, to Vec2) int {
	deg := int(math.Atan2(to.Y-from.Y, to.X-from.X) * 180 / math.Pi)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// DirectionMovement returns the unit movement vector (cos θ, sin θ) for the
// given whole-degree angle, each component rounded to two decimal places.
// The quantization is intentional: consumers only need a coarse direction for
// nudging sprite positions, e.g. 45 → (0.71, 0.71).
func DirectionMovement(deg int) Vec2 {
	rad := float64(deg) * math.Pi / 180
	return Vec2{
		X: roundHundredths(math.Cos(rad)),
		Y: roundHundredths(math.Sin(rad)),
	}
}

func roundHundredths(v float64) float64 {
	return math.Round(v*100) / 100
}

// sectorOrientation maps 45-degree sectors, counting counter-clockwise from
// the positive x axis, to facings. Index 0 covers angles nearest 0 degrees.
var sectorOrientation = [8]Orientation{
	OrientationRight,
	OrientationUpRight,
	OrientationUp,
	OrientationUpLeft,
	OrientationLeft,
	OrientationDownLeft,
	OrientationDown,
	OrientationDownRight,
}

// OrientationFromDirection buckets a whole-degree travel angle into the
// nearest of the eight facings. Each facing owns the 45-degree sector
// centered on its canonical angle (Right = 0, Up = 90, and so on).
func OrientationFromDirection(deg int) Orientation {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	sector := ((deg + 22) / 45) % 8
	return sectorOrientation[sector]
}
