package fx

import "github.com/lixenwraith/constellation/parameter"

// Pool is a fixed-capacity particle arena
// Free slots are kept on a stack, live slots in spawn order
// Overflow: oldest live particle is evicted
type Pool struct {
	slots [parameter.ParticleCapacity]Particle
	free  []int
	live  []int
}

// NewPool returns an empty pool with every slot free
func NewPool() *Pool {
	p := &Pool{
		free: make([]int, 0, parameter.ParticleCapacity),
		live: make([]int, 0, parameter.ParticleCapacity),
	}
	for i := parameter.ParticleCapacity - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	return p
}

// Cap returns the slot count
func (p *Pool) Cap() int { return len(p.slots) }

// Len returns the live particle count
func (p *Pool) Len() int { return len(p.live) }

// Spawn stores a particle, evicting the oldest when full, returns the slot index
func (p *Pool) Spawn(pt Particle) int {
	var idx int
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = p.live[0]
		copy(p.live, p.live[1:])
		p.live = p.live[:len(p.live)-1]
	}
	p.slots[idx] = pt
	p.live = append(p.live, idx)
	return idx
}

// Tick advances every live particle and culls expired ones back to the free stack
func (p *Pool) Tick(dt float64) {
	kept := p.live[:0]
	for _, idx := range p.live {
		pt := &p.slots[idx]
		pt.step(dt)
		if pt.Expired() {
			p.free = append(p.free, idx)
			continue
		}
		kept = append(kept, idx)
	}
	p.live = kept
}

// Each visits live particles oldest first
func (p *Pool) Each(fn func(*Particle)) {
	for _, idx := range p.live {
		fn(&p.slots[idx])
	}
}

// Count returns the number of live particles of kind
func (p *Pool) Count(k Kind) int {
	n := 0
	for _, idx := range p.live {
		if p.slots[idx].Kind == k {
			n++
		}
	}
	return n
}

// Snapshot copies live particles oldest first into dst
func (p *Pool) Snapshot(dst []Particle) []Particle {
	dst = dst[:0]
	for _, idx := range p.live {
		dst = append(dst, p.slots[idx])
	}
	return dst
}

// Clear releases every live particle
func (p *Pool) Clear() {
	for _, idx := range p.live {
		p.free = append(p.free, idx)
	}
	p.live = p.live[:0]
}
