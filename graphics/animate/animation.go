package animate

// Animation is an ordered sequence of tween sets played one after the
// other. Components hold animations by pointer while they play, so
// Destroy marks the animation dead instead of leaving dangling tweens
// behind the player's back.
type Animation struct {
	sets      []*TweenSet
	destroyed bool
}

// NewAnimation returns an empty animation.
func NewAnimation() *Animation {
	return &Animation{}
}

// Push appends a tween set as the next step of the sequence.
func (a *Animation) Push(s *TweenSet) {
	a.sets = append(a.sets, s)
}

// TweenSet returns step i, or nil when out of range.
func (a *Animation) TweenSet(i int) *TweenSet {
	if i < 0 || i >= len(a.sets) {
		return nil
	}
	return a.sets[i]
}

// Len returns the number of steps.
func (a *Animation) Len() int {
	return len(a.sets)
}

// Destroyed reports whether Destroy has been called. A player holding
// this animation must drop it without touching its tweens again.
func (a *Animation) Destroyed() bool {
	return a.destroyed
}

// Copy deep-copies the animation, acquiring tweens from the pool.
func (a *Animation) Copy(pool *Pool) *Animation {
	out := NewAnimation()
	for _, s := range a.sets {
		out.Push(s.Copy(pool))
	}
	return out
}

// Clear destroys every step and empties the sequence without marking
// the animation dead, so it can be refilled.
func (a *Animation) Clear(pool *Pool) {
	for _, s := range a.sets {
		s.Destroy(pool)
	}
	a.sets = a.sets[:0]
}

// Destroy releases all tweens to the pool and marks the animation
// dead.
func (a *Animation) Destroy(pool *Pool) {
	a.Clear(pool)
	a.destroyed = true
}
