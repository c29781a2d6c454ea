package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is a snapshot of the controls for one frame.
type InputState struct {
	CursorX, CursorY float64 // screen position

	Burst    bool // left button pressed this frame
	Smoke    bool // left button held
	Fountain bool // right button held

	ToggleWell bool
	Clear      bool
	Profile    bool
	ToggleHUD  bool
}

// InputProvider supplies per-frame input to the game.
type InputProvider interface {
	Poll() InputState
}

// MouseInput reads ebiten's mouse and keyboard state.
type MouseInput struct{}

// Poll returns the current mouse and keyboard state
func (MouseInput) Poll() InputState {
	x, y := ebiten.CursorPosition()
	return InputState{
		CursorX:    float64(x),
		CursorY:    float64(y),
		Burst:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Smoke:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Fountain:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ToggleWell: inpututil.IsKeyJustPressed(ebiten.KeyG),
		Clear:      inpututil.IsKeyJustPressed(ebiten.KeyC),
		Profile:    inpututil.IsKeyJustPressed(ebiten.KeyP),
		ToggleHUD:  inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}
}
