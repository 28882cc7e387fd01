package gamemath

import "math"

// Clamp clamps v to [lo, hi]. An empty range collapses to its midpoint.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampMagnitude rescales (x, y) so its length does not exceed max.
func ClampMagnitude(x, y, max float64) (float64, float64) {
	speed := math.Hypot(x, y)
	if speed > max && speed > 0 {
		return x / speed * max, y / speed * max
	}
	return x, y
}

// Confine keeps a body of the given radius inside [0, bound] minus margin on one axis.
// If the body extends past the margin its velocity is scaled by bounce, then the
// position is clamped into [radius+margin, bound-radius-margin].
func Confine(pos, vel, radius, margin, bound, bounce float64) (float64, float64) {
	lo := radius + margin
	hi := bound - radius - margin
	if pos < lo || pos > hi {
		vel *= bounce
	}
	return Clamp(pos, lo, hi), vel
}

// Scale maps a coordinate proportionally from an old extent to a new one.
func Scale(v, oldBound, newBound float64) float64 {
	if oldBound <= 0 {
		return v
	}
	return v * newBound / oldBound
}
