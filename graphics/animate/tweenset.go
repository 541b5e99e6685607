package animate

// TweenSet is one step of an animation: a group of tweens that play
// simultaneously, at most one per property. Insertion order is kept so
// copies replay identically.
type TweenSet struct {
	tweens []*Tween
	byProp map[Property]int
}

// NewTweenSet returns an empty set.
func NewTweenSet() *TweenSet {
	return &TweenSet{byProp: make(map[Property]int)}
}

// Push adds a tween to the set. A tween already present for the same
// property is replaced and returned to the pool.
func (s *TweenSet) Push(pool *Pool, t *Tween) {
	if t == nil {
		return
	}
	if i, ok := s.byProp[t.Property]; ok {
		pool.Release(s.tweens[i])
		s.tweens[i] = t
		return
	}
	s.byProp[t.Property] = len(s.tweens)
	s.tweens = append(s.tweens, t)
}

// Tween returns the tween at insertion index i, or nil when out of
// range.
func (s *TweenSet) Tween(i int) *Tween {
	if i < 0 || i >= len(s.tweens) {
		return nil
	}
	return s.tweens[i]
}

// ByProperty returns the set's tween for property p, or nil.
func (s *TweenSet) ByProperty(p Property) *Tween {
	if i, ok := s.byProp[p]; ok {
		return s.tweens[i]
	}
	return nil
}

// Len returns the number of tweens in the set.
func (s *TweenSet) Len() int {
	return len(s.tweens)
}

// Duration returns the longest tween duration in the set.
func (s *TweenSet) Duration() float64 {
	var d float64
	for _, t := range s.tweens {
		if t.Duration > d {
			d = t.Duration
		}
	}
	return d
}

// Copy deep-copies the set, acquiring fresh tweens from the pool.
func (s *TweenSet) Copy(pool *Pool) *TweenSet {
	out := NewTweenSet()
	for _, t := range s.tweens {
		nt := pool.Acquire(t.Property, t.Algorithm, t.Start, t.End, t.Duration)
		nt.StartDefined = t.StartDefined
		nt.PlaylistFilter = t.PlaylistFilter
		out.Push(pool, nt)
	}
	return out
}

// Destroy returns every tween to the pool and empties the set.
func (s *TweenSet) Destroy(pool *Pool) {
	for _, t := range s.tweens {
		pool.Release(t)
	}
	s.tweens = s.tweens[:0]
	s.byProp = make(map[Property]int)
}
