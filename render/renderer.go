package render

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"sparkpool/effect"
	"sparkpool/particle"
)

// Camera maps world coordinates to the screen.
type Camera struct {
	X, Y   float64 // world position at the screen center
	Zoom   float64
	Width  float64 // viewport size in pixels
	Height float64
}

// NewCamera creates a camera centered on the middle of a width x height world.
func NewCamera(width, height float64) *Camera {
	return &Camera{
		X:      width / 2,
		Y:      height / 2,
		Zoom:   1,
		Width:  width,
		Height: height,
	}
}

// GeoM returns the world-to-screen transform.
func (c *Camera) GeoM() ebiten.GeoM {
	var geo ebiten.GeoM
	geo.Translate(-c.X, -c.Y)
	geo.Scale(c.Zoom, c.Zoom)
	geo.Translate(c.Width/2, c.Height/2)
	return geo
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := (sx-c.Width/2)/c.Zoom + c.X
	wy := (sy-c.Height/2)/c.Zoom + c.Y
	return wx, wy
}

// Renderer holds the rendering resources for a scene: one sprite per system.
type Renderer struct {
	camera  *Camera
	scene   *effect.Scene
	sprites map[string]*Sprite
	buf     []particle.Particle
}

// NewRenderer binds sprites to the systems of scene. Every system must have a
// sprite; a missing one is reported here rather than at draw time.
func NewRenderer(camera *Camera, scene *effect.Scene, sprites map[string]*Sprite) (*Renderer, error) {
	for sys := range scene.Systems() {
		if sprites[sys.Name] == nil {
			return nil, fmt.Errorf("render: no sprite for system %q", sys.Name)
		}
	}
	return &Renderer{
		camera:  camera,
		scene:   scene,
		sprites: sprites,
	}, nil
}

// Camera returns the renderer's camera.
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Render draws every system in scene order. Each pool is snapshotted first so
// no pool lock is held while draw calls are issued.
func (r *Renderer) Render(screen *ebiten.Image) {
	camera := r.camera.GeoM()
	for sys := range r.scene.Systems() {
		sprite := r.sprites[sys.Name]
		if sprite == nil {
			continue
		}
		r.buf = sys.Pool.Snapshot(r.buf[:0])
		Draw(screen, sprite, slices.Values(r.buf), camera)
	}
}
