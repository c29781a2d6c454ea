// Package render draws particle pools with ebiten.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"iter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sparkpool/effect"
	"sparkpool/particle"
)

// ErrNoImage is returned when a sprite is configured without a texture.
var ErrNoImage = errors.New("render: sprite image is required")

// Sprite is the texture and blend used to draw one effect's particles.
type Sprite struct {
	Image *ebiten.Image
	Blend ebiten.Blend

	halfW, halfH float64
}

// NewSprite validates the texture up front so a missing resource fails at
// setup instead of on the first draw.
func NewSprite(img *ebiten.Image, mode effect.BlendMode) (*Sprite, error) {
	if img == nil {
		return nil, fmt.Errorf("%w (blend %s)", ErrNoImage, mode)
	}
	b := img.Bounds()
	return &Sprite{
		Image: img,
		Blend: BlendFor(mode),
		halfW: float64(b.Dx()) / 2,
		halfH: float64(b.Dy()) / 2,
	}, nil
}

// BlendFor maps an effect blend mode to the ebiten blend.
func BlendFor(mode effect.BlendMode) ebiten.Blend {
	switch mode {
	case effect.BlendAdditive:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

// GeoM returns the transform that rotates a w x h texture around its
// center, scales it, and places that center at the particle's position.
func GeoM(p particle.Particle, w, h float64) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.Translate(-w/2, -h/2)
	geo.Rotate(p.Rotation)
	geo.Scale(p.Scale, p.Scale)
	geo.Translate(p.Position[0], p.Position[1])
	return geo
}

// Draw issues one draw call per particle onto dst.
func Draw(dst *ebiten.Image, sprite *Sprite, particles iter.Seq[particle.Particle], camera ebiten.GeoM) {
	op := &ebiten.DrawImageOptions{Blend: sprite.Blend, Filter: ebiten.FilterLinear}
	for p := range particles {
		op.GeoM = GeoM(p, sprite.halfW*2, sprite.halfH*2)
		op.GeoM.Concat(camera)
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(p.Color)
		dst.DrawImage(sprite.Image, op)
	}
}

// NewDotImage builds a soft round texture: concentric circles whose alpha
// falls off toward the edge.
func NewDotImage(radius int) *ebiten.Image {
	size := radius * 2
	img := ebiten.NewImage(size, size)
	c := float32(radius)
	const rings = 6
	for i := 0; i < rings; i++ {
		r := c * float32(rings-i) / rings
		a := uint8(255 * (i + 1) / rings)
		vector.DrawFilledCircle(img, c, c, r, color.NRGBA{R: 255, G: 255, B: 255, A: a / 2}, true)
	}
	return img
}
