package video

import "sync"

// Factory builds a playback backend. softOverlay selects a cheaper
// output path suited to overlay videos.
type Factory func(monitor int, softOverlay bool) Player

// Pool recycles Player instances per (monitor, list) bucket so menu
// rebuilds reuse warm pipelines instead of tearing them down.
type Pool struct {
	mu      sync.Mutex
	factory Factory
	buckets map[poolKey]*bucket
}

type poolKey struct {
	monitor int
	listID  int
}

type bucket struct {
	idle      []Player
	active    int
	maxActive int
}

// NewPool returns an empty pool with no backend factory. Acquire on a
// factoryless pool hands out silent placeholders.
func NewPool() *Pool {
	return &Pool{buckets: make(map[poolKey]*bucket)}
}

// SetFactory installs the backend constructor used for new players.
func (p *Pool) SetFactory(f Factory) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.factory = f
}

// Acquire returns an idle player from the bucket or builds a new one.
func (p *Pool) Acquire(monitor, listID int, softOverlay bool) Player {
	p.mu.Lock()
	defer p.mu.Unlock()

	b := p.bucket(monitor, listID)
	b.active++
	if b.active > b.maxActive {
		b.maxActive = b.active
	}

	if n := len(b.idle); n > 0 {
		v := b.idle[n-1]
		b.idle = b.idle[:n-1]
		return v
	}
	if p.factory == nil {
		return nullPlayer{}
	}
	return p.factory(monitor, softOverlay)
}

// Release stops a player and parks it for reuse.
func (p *Pool) Release(v Player, monitor, listID int) {
	if v == nil {
		return
	}
	v.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()

	b := p.bucket(monitor, listID)
	if b.active > 0 {
		b.active--
	}
	if _, ok := v.(nullPlayer); ok {
		return
	}
	b.idle = append(b.idle, v)
}

// ReleaseBatch releases several players into the same bucket.
func (p *Pool) ReleaseBatch(players []Player, monitor, listID int) {
	for _, v := range players {
		p.Release(v, monitor, listID)
	}
}

// Cleanup stops and drops every idle player in a bucket.
func (p *Pool) Cleanup(monitor, listID int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := poolKey{monitor, listID}
	b, ok := p.buckets[key]
	if !ok {
		return
	}
	for _, v := range b.idle {
		v.Stop()
	}
	if b.active == 0 {
		delete(p.buckets, key)
	} else {
		b.idle = nil
	}
}

// Shutdown stops every pooled player and empties the pool.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key, b := range p.buckets {
		for _, v := range b.idle {
			v.Stop()
		}
		delete(p.buckets, key)
	}
}

// IdleCount reports how many players are parked in a bucket.
func (p *Pool) IdleCount(monitor, listID int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok := p.buckets[poolKey{monitor, listID}]; ok {
		return len(b.idle)
	}
	return 0
}

func (p *Pool) bucket(monitor, listID int) *bucket {
	key := poolKey{monitor, listID}
	b, ok := p.buckets[key]
	if !ok {
		b = &bucket{}
		p.buckets[key] = b
	}
	return b
}
