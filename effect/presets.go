package effect

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"

	"sparkpool/particle"
)

// Screen space: +y points down, so "up" is -Pi/2.
const up = -math.Pi / 2

func named(c color.RGBA) color.NRGBA {
	return color.NRGBA(c)
}

func transparent(c color.RGBA) color.NRGBA {
	n := color.NRGBA(c)
	n.A = 0
	return n
}

// Explosion is a fiery additive burst that slows down and cools to red.
func Explosion() Settings {
	return Settings{
		Capacity:        800,
		Counts:          particle.Range{Min: 20, Max: 26},
		Spread:          math.Pi,
		Speed:           Span{Min: 40, Max: 500},
		Lifetime:        Span{Min: 0.5, Max: 1.0},
		Scale:           Span{Min: 0.3, Max: 1.0},
		Rotation:        Span{Min: 0, Max: 2 * math.Pi},
		AngularVelocity: Span{Min: -1, Max: 1},
		Drag:            2.5,
		StartColor:      named(colornames.Gold),
		EndColor:        transparent(colornames.Darkred),
		Fade:            true,
		Blend:           BlendAdditive,
	}
}

// ExplosionSmoke is the slow grey cloud left behind by an explosion.
func ExplosionSmoke() Settings {
	return Settings{
		Capacity:        400,
		Counts:          particle.Range{Min: 10, Max: 20},
		Spread:          math.Pi,
		Speed:           Span{Min: 20, Max: 200},
		Lifetime:        Span{Min: 1, Max: 3.5},
		Scale:           Span{Min: 1, Max: 2.5},
		Rotation:        Span{Min: 0, Max: 2 * math.Pi},
		AngularVelocity: Span{Min: -2, Max: 2},
		Gravity:         mgl64.Vec2{0, -20},
		Drag:            1.5,
		StartColor:      named(colornames.Lightgray),
		EndColor:        transparent(colornames.Dimgray),
		Fade:            true,
		Blend:           BlendAlpha,
	}
}

// SmokePlume rises and drifts with a light wind. Meant to be fed by a Stream.
func SmokePlume() Settings {
	return Settings{
		Capacity:        600,
		Counts:          particle.Range{Min: 1, Max: 3},
		Direction:       up,
		Spread:          math.Pi / 8,
		Speed:           Span{Min: 20, Max: 100},
		Lifetime:        Span{Min: 2, Max: 4},
		Scale:           Span{Min: 0.8, Max: 2},
		Rotation:        Span{Min: 0, Max: 2 * math.Pi},
		AngularVelocity: Span{Min: -1, Max: 1},
		Gravity:         mgl64.Vec2{15, -10},
		StartColor:      named(colornames.Gainsboro),
		EndColor:        transparent(colornames.Slategray),
		Fade:            true,
		Blend:           BlendAlpha,
	}
}

// Fountain sprays water upward that falls back under gravity.
func Fountain() Settings {
	return Settings{
		Capacity:       1500,
		Counts:         particle.Range{Min: 4, Max: 8},
		Direction:      up,
		Spread:         math.Pi / 12,
		Speed:          Span{Min: 250, Max: 350},
		Lifetime:       Span{Min: 1.5, Max: 2.5},
		Scale:          Span{Min: 0.3, Max: 0.6},
		Gravity:        mgl64.Vec2{0, 400},
		StartColor:     named(colornames.Deepskyblue),
		ColorVariation: color.NRGBA{R: 20, G: 30, B: 20},
		Blend:          BlendAdditive,
	}
}

// Sparks are short, bright streaks that die out quickly.
func Sparks() Settings {
	return Settings{
		Capacity:       500,
		Counts:         particle.Range{Min: 8, Max: 16},
		Spread:         math.Pi,
		Speed:          Span{Min: 150, Max: 400},
		Lifetime:       Span{Min: 0.15, Max: 0.4},
		Scale:          Span{Min: 0.15, Max: 0.35},
		Gravity:        mgl64.Vec2{0, 200},
		Drag:           3,
		StartColor:     named(colornames.Yellow),
		ColorVariation: color.NRGBA{G: 60},
		Blend:          BlendAdditive,
	}
}
