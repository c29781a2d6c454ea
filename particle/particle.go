package particle

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// White is the default particle color.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Particle represents a single pooled particle.
// A particle is active while Age < Lifetime; there is no separate flag.
type Particle struct {
	Position     mgl64.Vec2 // world position
	Velocity     mgl64.Vec2 // units per second
	Acceleration mgl64.Vec2 // units per second^2

	Rotation            float64 // radians
	AngularVelocity     float64 // radians per second
	AngularAcceleration float64 // radians per second^2

	Scale float64
	Color color.NRGBA

	Lifetime float64 // total lifetime in seconds
	Age      float64 // seconds since activation
}

// Spawn holds the values a particle is (re)initialized with.
type Spawn struct {
	Position     mgl64.Vec2
	Velocity     mgl64.Vec2
	Acceleration mgl64.Vec2

	Rotation            float64
	AngularVelocity     float64
	AngularAcceleration float64

	Scale    float64
	Color    color.NRGBA
	Lifetime float64
}

// NewSpawn returns the default spawn parameters at the given position:
// at rest, white, scale 1, one second of life.
func NewSpawn(at mgl64.Vec2) Spawn {
	return Spawn{
		Position: at,
		Scale:    1,
		Color:    White,
		Lifetime: 1,
	}
}

// Initialize overwrites every field of p from s and resets its age.
// A lifetime <= 0 yields a particle that is inactive immediately.
func (p *Particle) Initialize(s Spawn) {
	*p = Particle{
		Position:            s.Position,
		Velocity:            s.Velocity,
		Acceleration:        s.Acceleration,
		Rotation:            s.Rotation,
		AngularVelocity:     s.AngularVelocity,
		AngularAcceleration: s.AngularAcceleration,
		Scale:               s.Scale,
		Color:               s.Color,
		Lifetime:            s.Lifetime,
	}
}

// IsActive returns true if the particle is still alive
func (p *Particle) IsActive() bool {
	return p.Age < p.Lifetime
}

// Integrate advances the particle by dt seconds using semi-implicit Euler:
// velocities are updated before they are applied to position and rotation.
func (p *Particle) Integrate(dt float64) {
	p.Velocity = p.Velocity.Add(p.Acceleration.Mul(dt))
	p.Position = p.Position.Add(p.Velocity.Mul(dt))

	p.AngularVelocity += p.AngularAcceleration * dt
	p.Rotation += p.AngularVelocity * dt

	p.Age += dt
}

// Progress returns how far through its life the particle is, in [0, 1].
func (p Particle) Progress() float64 {
	if p.Lifetime <= 0 {
		return 1
	}
	t := p.Age / p.Lifetime
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
