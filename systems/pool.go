package systems

import "github.com/pthm-cable/flurry/components"

const (
	// PoolCapacity is the number of particle slots.
	PoolCapacity = 3600

	// GroupSize is the number of slots in one spawn group.
	GroupSize = 4
)

// Pool is a fixed ring of particle slots written in groups of GroupSize.
// The write cursor ignores whether a slot is alive, so once the ring wraps the
// oldest particles are overwritten.
type Pool struct {
	particles [PoolCapacity]components.Particle
	block     int // first slot of the current group
	sub       int // offset within the group
}

// NewPool creates a pool with every slot dead.
func NewPool() *Pool {
	return &Pool{}
}

// Next returns the slot at the write cursor and advances the cursor.
// wasAlive reports whether the slot held a live particle before this write.
func (p *Pool) Next() (slot *components.Particle, wasAlive bool) {
	slot = &p.particles[p.block+p.sub]
	wasAlive = slot.Alive

	p.sub++
	if p.sub == GroupSize {
		p.block += GroupSize
		p.sub = 0
	}
	if p.block >= PoolCapacity {
		p.block = 0
		p.sub = 0
	}
	return slot, wasAlive
}

// Cursor returns the block and sub cursors.
func (p *Pool) Cursor() (block, sub int) {
	return p.block, p.sub
}

// At returns slot i.
func (p *Pool) At(i int) *components.Particle {
	return &p.particles[i]
}

// Len returns the pool capacity.
func (p *Pool) Len() int {
	return PoolCapacity
}

// LiveCount counts live slots.
func (p *Pool) LiveCount() int {
	n := 0
	for i := range p.particles {
		if p.particles[i].Alive {
			n++
		}
	}
	return n
}

// Reset kills every slot and rewinds the cursor.
func (p *Pool) Reset() {
	for i := range p.particles {
		p.particles[i].Alive = false
	}
	p.block, p.sub = 0, 0
}
