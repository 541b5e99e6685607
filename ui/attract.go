package ui

// attractEvent is what the attract timer wants the app to do this
// frame.
type attractEvent int

const (
	attractNone attractEvent = iota
	attractEnter
	attractTick
)

// attractTimer tracks input idleness and paces attract mode: after
// idleSeconds without input the mode enters, then re-fires every
// nextIdleSeconds. Input cancels it, but not before minSeconds have
// passed.
type attractTimer struct {
	idleSeconds     float64
	nextIdleSeconds float64
	minSeconds      float64

	elapsed   float64
	activeFor float64
	active    bool
}

// update advances the timer by dt seconds of input silence.
func (t *attractTimer) update(dt float64) attractEvent {
	if t.idleSeconds <= 0 {
		return attractNone
	}
	t.elapsed += dt
	if t.active {
		t.activeFor += dt
		next := t.nextIdleSeconds
		if next <= 0 {
			next = t.idleSeconds
		}
		if t.elapsed >= next {
			t.elapsed = 0
			return attractTick
		}
		return attractNone
	}
	if t.elapsed >= t.idleSeconds {
		t.active = true
		t.activeFor = 0
		t.elapsed = 0
		return attractEnter
	}
	return attractNone
}

// interrupt registers user input and reports whether attract mode
// exited. The mode holds on until minSeconds have passed.
func (t *attractTimer) interrupt() bool {
	t.elapsed = 0
	if t.active && t.activeFor >= t.minSeconds {
		t.active = false
		return true
	}
	return false
}

// reset drops all state, used when focus returns from a child
// process.
func (t *attractTimer) reset() {
	t.elapsed = 0
	t.activeFor = 0
	t.active = false
}

func (t *attractTimer) isActive() bool { return t.active }
