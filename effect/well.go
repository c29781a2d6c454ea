package effect

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"sparkpool/particle"
)

// GravityWell pulls particles toward a movable point with an inverse-square
// force. The well can be moved and toggled from the frame driver while the
// pool updates.
type GravityWell struct {
	Strength    float64 // units^3 / s^2
	MinDistance float64 // softening radius, avoids the singularity at the center

	center  atomic.Pointer[mgl64.Vec2]
	enabled atomic.Bool
}

// NewGravityWell creates a disabled well at the given point.
func NewGravityWell(center mgl64.Vec2, strength float64) *GravityWell {
	w := &GravityWell{Strength: strength, MinDistance: 16}
	w.Move(center)
	return w
}

// Move relocates the well.
func (w *GravityWell) Move(center mgl64.Vec2) {
	w.center.Store(&center)
}

// Center returns the current location of the well.
func (w *GravityWell) Center() mgl64.Vec2 {
	return *w.center.Load()
}

// SetEnabled turns the pull on or off.
func (w *GravityWell) SetEnabled(on bool) {
	w.enabled.Store(on)
}

// Enabled reports whether the well is pulling.
func (w *GravityWell) Enabled() bool {
	return w.enabled.Load()
}

// Pull returns the acceleration the well exerts at pos.
func (w *GravityWell) Pull(pos mgl64.Vec2) mgl64.Vec2 {
	d := w.Center().Sub(pos)
	dist := d.Len()
	if dist == 0 {
		return mgl64.Vec2{}
	}
	dir := d.Mul(1 / dist)
	if dist < w.MinDistance {
		dist = w.MinDistance
	}
	return dir.Mul(w.Strength / (dist * dist))
}

// Wrap returns an updater that adds the well's pull to the particle's
// velocity before running next.
func (w *GravityWell) Wrap(next particle.Updater) particle.Updater {
	return func(p *particle.Particle, dt float64) {
		if w.Enabled() {
			p.Velocity = p.Velocity.Add(w.Pull(p.Position).Mul(dt))
		}
		next(p, dt)
	}
}
