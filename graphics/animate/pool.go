package animate

import "log"

const (
	poolInitialSize   = 500
	poolExpansionSize = 100
)

// Pool recycles Tween allocations so per-frame animation rebuilds do
// not churn the garbage collector. It is only touched from the UI
// goroutine, so no locking is needed.
type Pool struct {
	free []*Tween
}

// NewPool preallocates the initial free list.
func NewPool() *Pool {
	p := &Pool{free: make([]*Tween, 0, poolInitialSize)}
	for i := 0; i < poolInitialSize; i++ {
		p.free = append(p.free, &Tween{})
	}
	return p
}

// Acquire returns a reinitialized tween, growing the pool when the
// free list is empty. Acquire never returns nil.
func (p *Pool) Acquire(property Property, algorithm Algorithm, start, end, duration float64) *Tween {
	if len(p.free) == 0 {
		log.Printf("tween pool exhausted, expanding by %d", poolExpansionSize)
		for i := 0; i < poolExpansionSize; i++ {
			p.free = append(p.free, &Tween{})
		}
	}
	t := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	t.Reinit(property, algorithm, start, end, duration)
	return t
}

// Release returns a tween to the free list for reuse.
func (p *Pool) Release(t *Tween) {
	if t == nil {
		return
	}
	p.free = append(p.free, t)
}

// Available reports how many tweens are ready for reuse.
func (p *Pool) Available() int {
	return len(p.free)
}
