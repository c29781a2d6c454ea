// Command termsparks runs the standard particle scene in a terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"sparkpool/effect"
	"sparkpool/particle"
	"sparkpool/render/term"
)

const (
	tickRate   = 30
	cellWidth  = 4.0
	cellHeight = 8.0
)

type app struct {
	screen   tcell.Screen
	scene    *effect.Scene
	renderer *term.Renderer
	smoke    *effect.Stream
	well     *effect.GravityWell

	fountain bool
	buttons  tcell.ButtonMask
}

func newApp(seed uint64) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	a := &app{
		screen:   screen,
		renderer: term.New(screen, cellWidth, cellHeight),
		smoke:    effect.NewStream(10),
	}
	a.well = effect.NewGravityWell(a.center(), 1e6)
	a.scene = effect.NewStandardScene(effect.StandardOptions{Seed: seed, CapacityScale: 0.5, Well: a.well})
	return a, nil
}

func (a *app) center() mgl64.Vec2 {
	b := a.renderer.Bounds()
	return mgl64.Vec2{b.Width / 2, b.Height / 2}
}

func (a *app) burst(at mgl64.Vec2) {
	a.scene.System(effect.NameExplosion).Trigger(at)
	a.scene.System(effect.NameExplosionSmoke).Trigger(at)
	a.scene.System(effect.NameSparks).Trigger(at)
}

// handleInput returns false when the user quits.
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case ' ':
			a.burst(a.center())
		case 'f':
			a.fountain = !a.fountain
		case 's':
			a.smoke.SetActive(!a.smoke.Active())
		case 'g':
			a.well.SetEnabled(!a.well.Enabled())
		case 'c':
			a.scene.Clear()
		case 'q':
			return false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		wx, wy := a.renderer.WorldAt(x, y)
		a.well.Move(mgl64.Vec2{wx, wy})

		pressed := ev.Buttons() &^ a.buttons
		a.buttons = ev.Buttons()
		if pressed&tcell.Button1 != 0 {
			a.burst(mgl64.Vec2{wx, wy})
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) tick(dt float64) {
	b := a.renderer.Bounds()
	if a.fountain {
		a.scene.System(effect.NameFountain).TriggerIn(particle.Rect{
			X: b.Width/2 - 2*cellWidth, Y: b.Height - cellHeight, Width: 4 * cellWidth, Height: cellHeight,
		})
	}
	a.smoke.Advance(a.scene.System(effect.NameSmokePlume), dt, mgl64.Vec2{b.Width / 4, b.Height - cellHeight})
	a.scene.Update(dt)
}

func (a *app) draw() {
	a.screen.Clear()

	var buf []particle.Particle
	for sys := range a.scene.Systems() {
		buf = sys.Pool.Snapshot(buf[:0])
		a.renderer.Draw(slices.Values(buf))
	}

	status := fmt.Sprintf(" %d particles  [space] burst [f] fountain %v [s] smoke %v [g] well %v [c] clear [esc] quit ",
		a.scene.ActiveCount(), a.fountain, a.smoke.Active(), a.well.Enabled())
	for i, r := range status {
		a.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	a.screen.Show()
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	dt := 1.0 / tickRate
	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.tick(dt)
			a.draw()
		}
	}
}

func main() {
	seed := flag.Uint64("seed", 0, "random seed (0 = random)")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		particle.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	a, err := newApp(*seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.screen.Fini()

	a.run()
}
