package particle

import (
	"context"
	"iter"
	"log/slog"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Initializer prepares a claimed slot for a new life at the spawn location.
type Initializer func(p *Particle, at mgl64.Vec2)

// Updater advances one active particle by dt seconds.
type Updater func(p *Particle, dt float64)

// InitializeAt is the default Initializer: default spawn values at the location.
func InitializeAt(p *Particle, at mgl64.Vec2) {
	p.Initialize(NewSpawn(at))
}

// Integrate is the default Updater.
func Integrate(p *Particle, dt float64) {
	p.Integrate(dt)
}

// Chain runs updaters in order. Nil entries are skipped.
func Chain(steps ...Updater) Updater {
	return func(p *Particle, dt float64) {
		for _, step := range steps {
			if step != nil {
				step(p, dt)
			}
		}
	}
}

// Config holds pool construction parameters
type Config struct {
	// Capacity is the fixed number of particle slots
	Capacity int

	// Init initializes emitted particles (nil = InitializeAt)
	Init Initializer

	// Update advances active particles each frame (nil = Integrate)
	Update Updater

	// Rand drives burst sizes and region sampling (nil = randomly seeded)
	Rand Source
}

// DefaultConfig returns a configuration with the default policies
func DefaultConfig(capacity int) Config {
	return Config{
		Capacity: capacity,
		Init:     InitializeAt,
		Update:   Integrate,
	}
}

// Pool is a fixed-capacity particle allocator with free-list recycling.
//
// A slot is in use iff its index is not on the free list. Expired particles
// are reclaimed during Update, so between updates a slot may hold an expired
// particle that has not yet been returned. Read views never report those.
//
// All methods are safe for concurrent use. Particles and All hold a read
// lock while iterating; the loop body must not call mutating methods.
type Pool struct {
	mu     sync.RWMutex
	slots  []Particle
	inUse  []bool
	free   freeList
	init   Initializer
	update Updater
	rng    Source
}

// NewPool allocates every slot up front and marks them all free.
func NewPool(cfg Config) *Pool {
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
	if cfg.Init == nil {
		cfg.Init = InitializeAt
	}
	if cfg.Update == nil {
		cfg.Update = Integrate
	}
	if cfg.Rand == nil {
		cfg.Rand = newRandomRand()
	}

	Logger().Debug("particle pool created", "capacity", cfg.Capacity)

	return &Pool{
		slots:  make([]Particle, cfg.Capacity),
		inUse:  make([]bool, cfg.Capacity),
		free:   newFreeList(cfg.Capacity),
		init:   cfg.Init,
		update: cfg.Update,
		rng:    cfg.Rand,
	}
}

// Capacity returns the fixed number of slots.
func (p *Pool) Capacity() int {
	return len(p.slots)
}

// ActiveCount returns the number of slots not on the free list.
func (p *Pool) ActiveCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.slots) - p.free.len()
}

// FreeCount returns the number of slots available for emission.
func (p *Pool) FreeCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.free.len()
}

// Update advances every live particle with the pool's updater and reclaims
// the slots of particles that expired.
func (p *Pool) Update(dt float64) {
	p.UpdateWith(dt, p.update)
}

// UpdateWith is Update with a per-call updater.
func (p *Pool) UpdateWith(dt float64, step Updater) {
	if dt < 0 || math.IsNaN(dt) {
		Logger().Debug("particle update: clamping dt", "dt", dt)
		dt = 0
	}
	if step == nil {
		step = p.update
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.slots {
		if !p.inUse[i] {
			continue
		}
		pt := &p.slots[i]
		if pt.IsActive() {
			step(pt, dt)
		}
		if !pt.IsActive() {
			p.release(i)
		}
	}
}

// Emit spawns a burst at a point using the pool's initializer. The burst size
// is drawn from counts; when the pool runs out of free slots the remainder is
// dropped. It returns the number of particles emitted.
func (p *Pool) Emit(at mgl64.Vec2, counts Range) int {
	return p.EmitWith(at, counts, p.init)
}

// EmitWith is Emit with a per-call initializer.
func (p *Pool) EmitWith(at mgl64.Vec2, counts Range, init Initializer) int {
	return p.emit(counts, init, func() mgl64.Vec2 { return at })
}

// EmitIn spawns a burst where each particle starts at an independent uniform
// point inside region.
func (p *Pool) EmitIn(region Rect, counts Range) int {
	return p.emit(counts, p.init, func() mgl64.Vec2 { return p.rng.PointIn(region) })
}

func (p *Pool) emit(counts Range, init Initializer, locate func() mgl64.Vec2) int {
	if init == nil {
		init = p.init
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	requested := p.rng.IntRange(counts.Min, counts.Max)
	emitted := 0
	for emitted < requested {
		i, ok := p.free.pop()
		if !ok {
			break
		}
		p.inUse[i] = true
		init(&p.slots[i], locate())
		emitted++
	}

	if emitted < requested {
		if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.Debug("particle burst truncated",
				"requested", requested, "emitted", emitted, "capacity", len(p.slots))
		}
	}
	return emitted
}

// Clear returns every slot to the free list.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.slots {
		p.slots[i] = Particle{}
		p.inUse[i] = false
	}
	p.free.reset()
}

// Particles yields a copy of every live particle in slot order.
func (p *Pool) Particles() iter.Seq[Particle] {
	return func(yield func(Particle) bool) {
		for _, pt := range p.All() {
			if !yield(pt) {
				return
			}
		}
	}
}

// All yields slot index and a copy of every live particle in slot order.
func (p *Pool) All() iter.Seq2[int, Particle] {
	return func(yield func(int, Particle) bool) {
		p.mu.RLock()
		defer p.mu.RUnlock()
		for i := range p.slots {
			if !p.inUse[i] || !p.slots[i].IsActive() {
				continue
			}
			if !yield(i, p.slots[i]) {
				return
			}
		}
	}
}

// Snapshot appends copies of every live particle to dst and returns it.
// Use it to render without holding the pool's lock.
func (p *Pool) Snapshot(dst []Particle) []Particle {
	for pt := range p.Particles() {
		dst = append(dst, pt)
	}
	return dst
}

// release must be called with mu held.
func (p *Pool) release(i int) {
	p.inUse[i] = false
	p.free.push(i)
}
