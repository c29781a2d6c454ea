package effect

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"sparkpool/particle"
)

func TestPresetsProduceActiveParticles(t *testing.T) {
	presets := []struct {
		name     string
		settings Settings
	}{
		{"explosion", Explosion()},
		{"smoke", ExplosionSmoke()},
		{"plume", SmokePlume()},
		{"fountain", Fountain()},
		{"sparks", Sparks()},
	}

	for _, tt := range presets {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewSystem(tt.name, tt.settings, particle.NewRand(3))
			n := sys.Trigger(mgl64.Vec2{100, 100})
			if n < tt.settings.Counts.Min || n >= max(tt.settings.Counts.Max, tt.settings.Counts.Min+1) {
				t.Errorf("Trigger() = %d, want within %+v", n, tt.settings.Counts)
			}

			for p := range sys.Pool.Particles() {
				if p.Lifetime < tt.settings.Lifetime.Min || p.Lifetime >= tt.settings.Lifetime.Max {
					t.Errorf("lifetime %v outside %+v", p.Lifetime, tt.settings.Lifetime)
				}
				if p.Scale < tt.settings.Scale.Min || p.Scale >= tt.settings.Scale.Max {
					t.Errorf("scale %v outside %+v", p.Scale, tt.settings.Scale)
				}
				speed := p.Velocity.Len()
				if speed < tt.settings.Speed.Min-1e-9 || speed > tt.settings.Speed.Max+1e-9 {
					t.Errorf("speed %v outside %+v", speed, tt.settings.Speed)
				}
			}

			// Every preset must burn out within its maximum lifetime.
			for i := 0; i < 100; i++ {
				sys.Update(tt.settings.Lifetime.Max / 50)
			}
			if got := sys.Pool.ActiveCount(); got != 0 {
				t.Errorf("ActiveCount() = %d after max lifetime, want 0", got)
			}
		})
	}
}

func TestInitializerDirectionAndSpread(t *testing.T) {
	s := Settings{
		Capacity:  200,
		Counts:    particle.Exactly(200),
		Direction: -math.Pi / 2,
		Spread:    math.Pi / 12,
		Speed:     Span{Min: 10, Max: 20},
		Lifetime:  Span{Min: 1, Max: 2},
		Scale:     Span{Min: 1, Max: 1},
	}
	sys := NewSystem("test", s, particle.NewRand(11))
	sys.Trigger(mgl64.Vec2{})

	for p := range sys.Pool.Particles() {
		angle := math.Atan2(p.Velocity[1], p.Velocity[0])
		if math.Abs(angle-s.Direction) > s.Spread+1e-9 {
			t.Fatalf("angle %v outside %v +/- %v", angle, s.Direction, s.Spread)
		}
		if p.Scale != 1 {
			t.Errorf("Scale = %v, want collapsed span value 1", p.Scale)
		}
	}
}

func TestColorVariationBounds(t *testing.T) {
	base := color.NRGBA{R: 250, G: 100, B: 0, A: 255}
	spread := color.NRGBA{R: 20, G: 10}
	src := particle.NewRand(5)

	for i := 0; i < 500; i++ {
		c := vary(base, spread, src)
		if c.R < 230 {
			t.Fatalf("R = %d, below base-spread", c.R)
		}
		if c.G < 90 || c.G > 110 {
			t.Fatalf("G = %d, outside 100 +/- 10", c.G)
		}
		if c.B != 0 || c.A != 255 {
			t.Fatalf("unvaried channels changed: %+v", c)
		}
	}
}

func TestColorFadeEndpoints(t *testing.T) {
	start := color.NRGBA{R: 255, G: 200, B: 0, A: 255}
	end := color.NRGBA{R: 80, G: 0, B: 0, A: 0}
	fade := ColorFade(start, end)

	p := particle.Particle{Lifetime: 2}
	fade(&p, 0)
	if p.Color != start {
		t.Errorf("color at birth = %+v, want %+v", p.Color, start)
	}

	p.Age = 1
	fade(&p, 0)
	if p.Color.A < 126 || p.Color.A > 129 {
		t.Errorf("alpha at half life = %d, want ~127", p.Color.A)
	}

	p.Age = 2
	fade(&p, 0)
	if p.Color != end {
		t.Errorf("color at death = %+v, want %+v", p.Color, end)
	}
}

func TestDragSlowsParticles(t *testing.T) {
	p := particle.Particle{Velocity: mgl64.Vec2{100, 0}, Lifetime: 1}
	Drag(0.5)(&p, 1)
	if p.Velocity[0] != 50 {
		t.Errorf("Velocity = %v, want 50", p.Velocity[0])
	}

	Drag(10)(&p, 1)
	if p.Velocity[0] != 0 {
		t.Errorf("over-damped velocity = %v, want 0", p.Velocity[0])
	}
}

func TestStreamRate(t *testing.T) {
	s := Settings{
		Capacity: 1000,
		Counts:   particle.Exactly(1),
		Lifetime: Span{Min: 100, Max: 200},
		Scale:    Span{Min: 1, Max: 1},
	}
	sys := NewSystem("stream", s, particle.NewRand(1))
	stream := NewStream(30)

	if n := stream.Advance(sys, 1, mgl64.Vec2{}); n != 0 {
		t.Errorf("inactive stream emitted %d", n)
	}

	stream.SetActive(true)
	total := 0
	for i := 0; i < 64; i++ {
		total += stream.Advance(sys, 1.0/64, mgl64.Vec2{})
	}
	// One second at 30 bursts per second, allowing one burst of slack for
	// the sub-frame remainder.
	if total < 29 || total > 30 {
		t.Errorf("emitted %d particles in 1s at rate 30", total)
	}

	stream.SetActive(false)
	if stream.Active() {
		t.Error("stream should be inactive")
	}
}

func TestGravityWellPullsTowardCenter(t *testing.T) {
	w := NewGravityWell(mgl64.Vec2{100, 0}, 1e6)

	update := w.Wrap(particle.Integrate)
	p := particle.Particle{Lifetime: 10}

	update(&p, 0.1)
	if p.Velocity != (mgl64.Vec2{}) {
		t.Errorf("disabled well changed velocity to %v", p.Velocity)
	}

	w.SetEnabled(true)
	update(&p, 0.1)
	if p.Velocity[0] <= 0 {
		t.Errorf("Velocity = %v, want pull toward +x", p.Velocity)
	}
	if p.Velocity[1] != 0 {
		t.Errorf("Velocity = %v, want no y component", p.Velocity)
	}

	if got := w.Pull(w.Center()); got != (mgl64.Vec2{}) {
		t.Errorf("Pull at center = %v, want zero", got)
	}
}

func TestGravityWellSoftening(t *testing.T) {
	w := NewGravityWell(mgl64.Vec2{}, 100)
	w.MinDistance = 10

	near := w.Pull(mgl64.Vec2{1, 0}).Len()
	atSoft := w.Pull(mgl64.Vec2{10, 0}).Len()
	if math.Abs(near-atSoft) > 1e-12 {
		t.Errorf("pull inside softening radius = %v, want %v", near, atSoft)
	}
}

func TestSceneOrderAndReplace(t *testing.T) {
	src := particle.NewRand(1)
	a := NewSystem("a", Sparks(), src)
	b := NewSystem("b", Sparks(), src)
	scene := NewScene(a, b)

	a2 := NewSystem("a", Fountain(), src)
	scene.Add(a2)

	var names []*System
	for sys := range scene.Systems() {
		names = append(names, sys)
	}
	if len(names) != 2 || names[0] != a2 || names[1] != b {
		t.Errorf("scene order after replace is wrong")
	}
	if scene.System("a") != a2 {
		t.Error("System(\"a\") did not return the replacement")
	}
	if scene.System("missing") != nil {
		t.Error("System(\"missing\") should be nil")
	}
}

func TestSceneUpdateAndClear(t *testing.T) {
	src := particle.NewRand(1)
	scene := NewScene(
		NewSystem("sparks", Sparks(), src),
		NewSystem("fountain", Fountain(), src),
	)

	for sys := range scene.Systems() {
		sys.Trigger(mgl64.Vec2{})
	}
	if scene.ActiveCount() == 0 {
		t.Fatal("expected active particles after triggering")
	}

	scene.Update(0.01)
	scene.Clear()
	if scene.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d after Clear, want 0", scene.ActiveCount())
	}
}

func TestBlendModeString(t *testing.T) {
	if BlendAdditive.String() != "additive" || BlendAlpha.String() != "alpha" {
		t.Error("unexpected BlendMode names")
	}
	if BlendMode(42).String() != "unknown" {
		t.Error("unexpected name for unknown blend mode")
	}
}

func TestStandardScene(t *testing.T) {
	well := NewGravityWell(mgl64.Vec2{}, 1)
	scene := NewStandardScene(StandardOptions{Seed: 9, CapacityScale: 0.5, Well: well})

	want := []string{NameSmokePlume, NameExplosionSmoke, NameFountain, NameExplosion, NameSparks}
	i := 0
	for sys := range scene.Systems() {
		if i >= len(want) || sys.Name != want[i] {
			t.Fatalf("system %d = %q, want order %v", i, sys.Name, want)
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("scene has %d systems, want %d", i, len(want))
	}

	if got, want := scene.System(NameFountain).Pool.Capacity(), Fountain().Capacity/2; got != want {
		t.Errorf("fountain capacity = %d, want %d", got, want)
	}
}
