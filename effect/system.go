package effect

import (
	"github.com/go-gl/mathgl/mgl64"

	"sparkpool/particle"
)

// System pairs an effect's settings with the pool that runs it.
type System struct {
	Name     string
	Settings Settings
	Pool     *particle.Pool
}

// NewSystem creates a system whose pool uses the policies from settings.
func NewSystem(name string, settings Settings, src particle.Source) *System {
	return NewSystemWith(name, settings, src, settings.Updater())
}

// NewSystemWith is NewSystem with an explicit updater, for effects that
// layer extra behavior (such as a GravityWell) over the settings' step.
func NewSystemWith(name string, settings Settings, src particle.Source, update particle.Updater) *System {
	cfg := settings.Config(src)
	cfg.Update = update
	return &System{
		Name:     name,
		Settings: settings,
		Pool:     particle.NewPool(cfg),
	}
}

// Trigger emits one burst at a point and returns how many particles started.
func (s *System) Trigger(at mgl64.Vec2) int {
	return s.Pool.Emit(at, s.Settings.Counts)
}

// TriggerIn emits one burst spread uniformly across region.
func (s *System) TriggerIn(region particle.Rect) int {
	return s.Pool.EmitIn(region, s.Settings.Counts)
}

// Update advances the system's pool.
func (s *System) Update(dt float64) {
	s.Pool.Update(dt)
}
