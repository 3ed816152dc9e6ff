// Package gamemath provides the collision math shared by the
// simulation systems and their tests.
package gamemath

import "github.com/solarlune/resolv"

// Overlaps reports whether two axis-aligned boxes overlap. The
// inequalities are strict: boxes that merely touch along an edge do not
// overlap.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Clamp constrains a value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
