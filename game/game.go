package game

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"sparkpool/effect"
	"sparkpool/particle"
	"sparkpool/render"
)

var colorBackground = color.RGBA{20, 20, 40, 255} // dark blue

// Game drives the particle scene from ebiten's update loop
type Game struct {
	config   Config
	scene    *effect.Scene
	renderer *render.Renderer
	input    InputProvider
	well     *effect.GravityWell
	smoke    *effect.Stream
	profiler *Profiler

	showHUD bool
	frames  uint64
}

// NewGame creates a game with the standard scene and a generated dot texture
func NewGame(config Config) (*Game, error) {
	dot := render.NewDotImage(config.DotRadius)
	return newGame(config, MouseInput{}, func(sys *effect.System) (*render.Sprite, error) {
		return render.NewSprite(dot, sys.Settings.Blend)
	})
}

// newGame wires the frame driver around an input source. spriteFor is asked
// once per system for the sprite it is drawn with.
func newGame(config Config, input InputProvider, spriteFor func(*effect.System) (*render.Sprite, error)) (*Game, error) {
	if config.TPS <= 0 {
		return nil, errors.New("game: TPS must be positive")
	}

	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	well := effect.NewGravityWell(mgl64.Vec2{w / 2, h / 2}, config.WellStrength)
	scene := effect.NewStandardScene(effect.StandardOptions{
		Seed:          config.Seed,
		CapacityScale: config.CapacityScale,
		Well:          well,
	})

	sprites := make(map[string]*render.Sprite, scene.Len())
	for sys := range scene.Systems() {
		s, err := spriteFor(sys)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", sys.Name, err)
		}
		sprites[sys.Name] = s
	}

	renderer, err := render.NewRenderer(render.NewCamera(w, h), scene, sprites)
	if err != nil {
		return nil, err
	}

	particle.Logger().Info("game created",
		"width", config.ScreenWidth, "height", config.ScreenHeight, "tps", config.TPS)

	return &Game{
		config:   config,
		scene:    scene,
		renderer: renderer,
		input:    input,
		well:     well,
		smoke:    effect.NewStream(config.SmokeRate),
		profiler: NewProfiler(config.ProfilesDir),
		showHUD:  true,
	}, nil
}

// Update advances the simulation by one fixed tick
func (g *Game) Update() error {
	g.step(g.input.Poll(), 1/float64(g.config.TPS))
	return nil
}

// step applies one frame of input, then advances every pool by dt.
func (g *Game) step(in InputState, dt float64) {
	wx, wy := g.renderer.Camera().ScreenToWorld(in.CursorX, in.CursorY)
	at := mgl64.Vec2{wx, wy}

	g.well.Move(at)
	if in.ToggleWell {
		g.well.SetEnabled(!g.well.Enabled())
		particle.Logger().Debug("gravity well toggled", "enabled", g.well.Enabled())
	}

	if in.Burst {
		g.scene.System(effect.NameExplosion).Trigger(at)
		g.scene.System(effect.NameExplosionSmoke).Trigger(at)
		g.scene.System(effect.NameSparks).Trigger(at)
	}

	g.smoke.SetActive(in.Smoke)
	g.smoke.Advance(g.scene.System(effect.NameSmokePlume), dt, at)

	if in.Fountain {
		g.scene.System(effect.NameFountain).TriggerIn(particle.Rect{
			X: wx - 8, Y: wy - 2, Width: 16, Height: 4,
		})
	}

	if in.Clear {
		g.scene.Clear()
	}
	if in.Profile {
		if err := g.profiler.CaptureProfile("manual"); err != nil {
			particle.Logger().Warn("profile capture skipped", "err", err)
		}
	}
	if in.ToggleHUD {
		g.showHUD = !g.showHUD
	}

	g.scene.Update(dt)
	g.frames++
}

// Draw renders the scene and HUD
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.renderer.Render(screen)
	if g.showHUD {
		ebitenutil.DebugPrint(screen, g.hud())
	}
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

func (g *Game) hud() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  FPS %.0f  frame %d\n", ebiten.ActualTPS(), ebiten.ActualFPS(), g.frames)
	fmt.Fprintf(&b, "particles %d  well %v\n", g.scene.ActiveCount(), g.well.Enabled())
	for sys := range g.scene.Systems() {
		fmt.Fprintf(&b, "  %-16s %4d / %d\n", sys.Name, sys.Pool.ActiveCount(), sys.Pool.Capacity())
	}
	b.WriteString("LMB burst/smoke  RMB fountain  G well  C clear  P profile  F1 hud")
	return b.String()
}
