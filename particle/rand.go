package particle

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Range is a half-open integer range [Min, Max). A range with Max <= Min
// collapses to Min.
type Range struct {
	Min, Max int
}

// Exactly returns a range that always yields n.
func Exactly(n int) Range {
	return Range{Min: n, Max: n}
}

// Rect is an axis-aligned region in world units.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether pt lies in [X, X+Width) x [Y, Y+Height).
func (r Rect) Contains(pt mgl64.Vec2) bool {
	return pt[0] >= r.X && pt[0] < r.X+r.Width &&
		pt[1] >= r.Y && pt[1] < r.Y+r.Height
}

// Source supplies the randomness used by emission. All ranges are half-open.
type Source interface {
	IntRange(min, max int) int
	FloatRange(min, max float64) float64
	PointIn(r Rect) mgl64.Vec2
}

// Rand is a Source backed by a PCG generator. It is not safe for concurrent
// use; a pool only draws from it under its own lock, so do not share one
// Rand between pools that are driven from different goroutines.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a deterministic source for the given seed.
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// newRandomRand seeds a source from the runtime's global generator.
func newRandomRand() *Rand {
	return NewRand(rand.Uint64())
}

// IntRange returns a uniform integer in [min, max), or min if max <= min.
func (s *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.IntN(max-min)
}

// FloatRange returns a uniform float in [min, max), or min if max <= min.
func (s *Rand) FloatRange(min, max float64) float64 {
	if !(max > min) {
		return min
	}
	v := min + s.r.Float64()*(max-min)
	// Rounding can land exactly on max for wide ranges.
	if v >= max {
		v = math.Nextafter(max, min)
	}
	return v
}

// PointIn returns a uniform point inside r.
func (s *Rand) PointIn(r Rect) mgl64.Vec2 {
	return mgl64.Vec2{
		s.FloatRange(r.X, r.X+r.Width),
		s.FloatRange(r.Y, r.Y+r.Height),
	}
}
