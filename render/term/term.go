// Package term draws particles as glyphs on a tcell screen.
package term

import (
	"iter"
	"math"

	"github.com/gdamore/tcell/v2"

	"sparkpool/particle"
)

// Glyphs from birth to death.
var ramp = []rune{'@', '*', '+', ':', '.'}

// Renderer maps world units onto terminal cells.
type Renderer struct {
	screen tcell.Screen

	// CellWidth and CellHeight are the world units covered by one cell.
	CellWidth, CellHeight float64
}

// New creates a renderer for screen. Terminal cells are roughly twice as tall
// as they are wide, so callers usually pass cellHeight = 2 * cellWidth.
func New(screen tcell.Screen, cellWidth, cellHeight float64) *Renderer {
	return &Renderer{screen: screen, CellWidth: cellWidth, CellHeight: cellHeight}
}

// Cell returns the cell containing a world position.
func (r *Renderer) Cell(p particle.Particle) (int, int) {
	return int(math.Floor(p.Position[0] / r.CellWidth)), int(math.Floor(p.Position[1] / r.CellHeight))
}

// WorldAt returns the world position at the center of a cell.
func (r *Renderer) WorldAt(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * r.CellWidth, (float64(y) + 0.5) * r.CellHeight
}

// Bounds returns the visible world area.
func (r *Renderer) Bounds() particle.Rect {
	w, h := r.screen.Size()
	return particle.Rect{Width: float64(w) * r.CellWidth, Height: float64(h) * r.CellHeight}
}

// Draw sets one cell per particle. Later particles overwrite earlier ones in
// the same cell. Off-screen particles are skipped.
func (r *Renderer) Draw(particles iter.Seq[particle.Particle]) {
	w, h := r.screen.Size()
	for p := range particles {
		x, y := r.Cell(p)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		r.screen.SetContent(x, y, Glyph(p), nil, Style(p))
	}
}

// Glyph picks a character by how far the particle is through its life.
func Glyph(p particle.Particle) rune {
	i := int(p.Progress() * float64(len(ramp)))
	if i >= len(ramp) {
		i = len(ramp) - 1
	}
	return ramp[i]
}

// Style renders the particle color composited over black.
func Style(p particle.Particle) tcell.Style {
	a := int32(p.Color.A)
	fg := tcell.NewRGBColor(
		int32(p.Color.R)*a/255,
		int32(p.Color.G)*a/255,
		int32(p.Color.B)*a/255,
	)
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}
