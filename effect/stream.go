package effect

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Stream emits into a system at a steady rate while active, independent of
// frame rate. Bursts use the system's count range, so Rate is bursts per second.
type Stream struct {
	Rate   float64 // bursts per second
	active bool
	timer  float64 // time since last burst
}

// NewStream creates an inactive stream.
func NewStream(rate float64) *Stream {
	return &Stream{Rate: rate}
}

// SetActive starts or stops emission. Stopping resets the accumulator.
func (s *Stream) SetActive(active bool) {
	s.active = active
	if !active {
		s.timer = 0
	}
}

// Active reports whether the stream is emitting.
func (s *Stream) Active() bool {
	return s.active
}

// Advance accumulates dt and fires as many bursts at the given location as
// are due. It returns the number of particles emitted.
func (s *Stream) Advance(sys *System, dt float64, at mgl64.Vec2) int {
	if !s.active || s.Rate <= 0 || dt <= 0 {
		return 0
	}

	s.timer += dt
	bursts := int(s.Rate * s.timer)
	if bursts == 0 {
		return 0
	}
	s.timer -= float64(bursts) / s.Rate

	emitted := 0
	for i := 0; i < bursts; i++ {
		emitted += sys.Trigger(at)
	}
	return emitted
}
