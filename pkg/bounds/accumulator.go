package bounds

import (
	"sync"

	"github.com/philipparndt/gobounds/pkg/geometry"
)

// Accumulator is a bounding box that may be grown from several goroutines.
// The zero value is not ready for use; call NewAccumulator.
type Accumulator struct {
	mu    sync.Mutex
	box   geometry.AABB
	count int
}

// NewAccumulator returns an accumulator holding the empty box.
func NewAccumulator() *Accumulator {
	return &Accumulator{box: geometry.NewAABB()}
}

// Add expands the accumulated box by b.
func (a *Accumulator) Add(b geometry.AABB) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.box.Expand(b)
	a.count++
}

// AddPoint expands the accumulated box to include p.
func (a *Accumulator) AddPoint(p geometry.Vector3) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.box.ExpandPoint(p)
	a.count++
}

// Box returns a copy of the current box.
func (a *Accumulator) Box() geometry.AABB {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.box
}

// Count returns how many boxes and points have been added.
func (a *Accumulator) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}

// Reset empties the accumulator.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.box = geometry.NewAABB()
	a.count = 0
}
