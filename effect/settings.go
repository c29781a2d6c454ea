// Package effect builds particle pools for specific visual effects by
// supplying initializer and updater policies instead of subclassing.
package effect

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"sparkpool/particle"
)

// BlendMode selects how a renderer composites an effect's particles.
type BlendMode int

const (
	BlendAlpha    BlendMode = iota // regular source-over
	BlendAdditive                  // lighter, for glow and fire
)

func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "alpha"
	case BlendAdditive:
		return "additive"
	default:
		return "unknown"
	}
}

// Span is a half-open float range [Min, Max).
type Span struct {
	Min, Max float64
}

func (s Span) sample(src particle.Source) float64 {
	return src.FloatRange(s.Min, s.Max)
}

// Settings describes how an effect spawns and moves its particles.
type Settings struct {
	Capacity int            // pool size
	Counts   particle.Range // particles per burst

	Direction float64 // emission angle in radians (0 = +x, Pi/2 = +y)
	Spread    float64 // half-angle around Direction in radians

	Speed           Span // initial speed
	Lifetime        Span // seconds
	Scale           Span
	Rotation        Span // initial rotation
	AngularVelocity Span

	Gravity mgl64.Vec2 // constant acceleration
	Drag    float64    // fraction of velocity lost per second

	StartColor     color.NRGBA
	ColorVariation color.NRGBA // +/- per channel, ignored when fading
	EndColor       color.NRGBA
	Fade           bool // blend StartColor to EndColor over the particle's life

	Blend BlendMode
}

// Initializer returns an initializer that samples a new particle from s.
func (s Settings) Initializer(src particle.Source) particle.Initializer {
	return func(p *particle.Particle, at mgl64.Vec2) {
		angle := s.Direction + src.FloatRange(-s.Spread, s.Spread)
		speed := s.Speed.sample(src)

		sp := particle.NewSpawn(at)
		sp.Velocity = mgl64.Vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}
		sp.Acceleration = s.Gravity
		sp.Lifetime = s.Lifetime.sample(src)
		sp.Scale = s.Scale.sample(src)
		sp.Rotation = s.Rotation.sample(src)
		sp.AngularVelocity = s.AngularVelocity.sample(src)
		sp.Color = s.StartColor
		if !s.Fade {
			sp.Color = vary(s.StartColor, s.ColorVariation, src)
		}
		p.Initialize(sp)
	}
}

// Updater returns the per-frame step for s: drag, integration, then fade.
func (s Settings) Updater() particle.Updater {
	steps := []particle.Updater{}
	if s.Drag > 0 {
		steps = append(steps, Drag(s.Drag))
	}
	steps = append(steps, particle.Integrate)
	if s.Fade {
		steps = append(steps, ColorFade(s.StartColor, s.EndColor))
	}
	return particle.Chain(steps...)
}

// Config returns a pool configuration using the policies of s.
func (s Settings) Config(src particle.Source) particle.Config {
	return particle.Config{
		Capacity: s.Capacity,
		Init:     s.Initializer(src),
		Update:   s.Updater(),
		Rand:     src,
	}
}

// Drag damps velocity by rate per second.
func Drag(rate float64) particle.Updater {
	return func(p *particle.Particle, dt float64) {
		k := math.Max(0, 1-rate*dt)
		p.Velocity = p.Velocity.Mul(k)
	}
}

// ColorFade sets each particle's color by its progress from start to end,
// interpolated in Lab space. Alpha is interpolated linearly.
func ColorFade(start, end color.NRGBA) particle.Updater {
	from := toColorful(start)
	to := toColorful(end)
	return func(p *particle.Particle, _ float64) {
		t := p.Progress()
		r, g, b := from.BlendLab(to, t).Clamped().RGB255()
		a := float64(start.A) + (float64(end.A)-float64(start.A))*t
		p.Color = color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a))}
	}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// vary offsets each color channel of base by up to +/- spread.
func vary(base, spread color.NRGBA, src particle.Source) color.NRGBA {
	ch := func(b, s uint8) uint8 {
		if s == 0 {
			return b
		}
		v := float64(b) + src.FloatRange(-float64(s), float64(s))
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return color.NRGBA{
		R: ch(base.R, spread.R),
		G: ch(base.G, spread.G),
		B: ch(base.B, spread.B),
		A: ch(base.A, spread.A),
	}
}
