package effect

import (
	"iter"
)

// Scene is an ordered set of systems driven together by one frame driver.
// Systems are drawn in the order they were added.
type Scene struct {
	systems []*System
	byName  map[string]*System
}

// NewScene creates a scene with the given systems.
func NewScene(systems ...*System) *Scene {
	s := &Scene{byName: make(map[string]*System)}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

// Add appends a system. A system with the same name replaces the old one.
func (s *Scene) Add(sys *System) {
	if old, ok := s.byName[sys.Name]; ok {
		for i, existing := range s.systems {
			if existing == old {
				s.systems[i] = sys
				break
			}
		}
	} else {
		s.systems = append(s.systems, sys)
	}
	s.byName[sys.Name] = sys
}

// System returns the named system, or nil.
func (s *Scene) System(name string) *System {
	return s.byName[name]
}

// Systems yields systems in draw order.
func (s *Scene) Systems() iter.Seq[*System] {
	return func(yield func(*System) bool) {
		for _, sys := range s.systems {
			if !yield(sys) {
				return
			}
		}
	}
}

// Len returns the number of systems.
func (s *Scene) Len() int {
	return len(s.systems)
}

// Update advances every system by dt.
func (s *Scene) Update(dt float64) {
	for _, sys := range s.systems {
		sys.Update(dt)
	}
}

// ActiveCount sums in-use slots across all systems.
func (s *Scene) ActiveCount() int {
	n := 0
	for _, sys := range s.systems {
		n += sys.Pool.ActiveCount()
	}
	return n
}

// Clear empties every system.
func (s *Scene) Clear() {
	for _, sys := range s.systems {
		sys.Pool.Clear()
	}
}
