package gamemath

import "math"

// Coulomb returns the force on body A from body B for charges qa and qb.
// The force points along A-B: same-sign charges repel, opposite signs attract.
// Coincident bodies get no force; callers gate on a minimum separation.
func Coulomb(k, qa, qb, ax, ay, bx, by float64) (fx, fy float64) {
	dx := ax - bx
	dy := ay - by
	distSq := dx*dx + dy*dy
	if distSq == 0 {
		return 0, 0
	}
	dist := math.Sqrt(distSq)
	f := k * qa * qb / distSq
	return f * dx / dist, f * dy / dist
}

// Distance returns the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}
