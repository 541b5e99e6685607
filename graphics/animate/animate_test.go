package animate

import (
	"math"
	"testing"
)

func TestEaseEndpoints(t *testing.T) {
	algs := []Algorithm{
		Linear,
		EaseInQuadratic, EaseOutQuadratic, EaseInOutQuadratic,
		EaseInCubic, EaseOutCubic, EaseInOutCubic,
		EaseInQuartic, EaseOutQuartic, EaseInOutQuartic,
		EaseInQuintic, EaseOutQuintic, EaseInOutQuintic,
		EaseInSine, EaseOutSine, EaseInOutSine,
		EaseInCircular, EaseOutCircular, EaseInOutCircular,
	}
	for _, a := range algs {
		got := Ease(a, 0, 2, 10, 5)
		if math.Abs(got-10) > 1e-6 {
			t.Errorf("alg %d at t=0: got %v, want 10", a, got)
		}
		got = Ease(a, 2, 2, 10, 5)
		if math.Abs(got-15) > 1e-6 {
			t.Errorf("alg %d at t=d: got %v, want 15", a, got)
		}
	}
}

func TestEaseZeroDuration(t *testing.T) {
	for a := range easings {
		if got := Ease(a, 0, 0, 3, 7); got != 3 {
			t.Errorf("alg %d with d=0: got %v, want 3", a, got)
		}
	}
}

func TestEaseLinearMidpoint(t *testing.T) {
	if got := Ease(Linear, 1, 2, 0, 10); math.Abs(got-5) > 1e-9 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestEaseInOutSplitsAtHalf(t *testing.T) {
	// In/out pairs meet the midpoint of the value range at d/2.
	algs := []Algorithm{EaseInOutQuadratic, EaseInOutCubic, EaseInOutQuartic, EaseInOutQuintic, EaseInOutSine}
	for _, a := range algs {
		got := Ease(a, 1, 2, 0, 10)
		if math.Abs(got-5) > 1e-6 {
			t.Errorf("alg %d at d/2: got %v, want 5", a, got)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		name string
		want Algorithm
	}{
		{"linear", Linear},
		{"EaseInOutCubic", EaseInOutCubic},
		{"EASEOUTSINE", EaseOutSine},
		{"bogus", Linear},
		{"", Linear},
	}
	for _, c := range cases {
		if got := ParseAlgorithm(c.name); got != c.want {
			t.Errorf("ParseAlgorithm(%q) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestParseProperty(t *testing.T) {
	p, ok := ParseProperty("XOffset")
	if !ok || p != PropertyXOffset {
		t.Errorf("ParseProperty(XOffset) = %d, %v", p, ok)
	}
	if _, ok := ParseProperty("bogus"); ok {
		t.Error("expected unknown property to fail")
	}
}

func TestTweenAnimateClamps(t *testing.T) {
	tw := &Tween{Property: PropertyX, Algorithm: Linear, Start: 0, End: 100, Duration: 2, StartDefined: true}
	if got := tw.Animate(-1); got != 0 {
		t.Errorf("negative elapsed: got %v, want 0", got)
	}
	if got := tw.Animate(5); got != 100 {
		t.Errorf("past duration: got %v, want 100", got)
	}
	if got := tw.AnimateFrom(50, 1); math.Abs(got-75) > 1e-9 {
		t.Errorf("AnimateFrom midpoint: got %v, want 75", got)
	}
}

func TestTweenZeroDurationCommits(t *testing.T) {
	tw := &Tween{Property: PropertyAlpha, Algorithm: EaseInCubic, Start: 0, End: 1, Duration: 0}
	if got := tw.Animate(0); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestPoolRecycles(t *testing.T) {
	p := NewPool()
	before := p.Available()
	tw := p.Acquire(PropertyX, Linear, 0, 1, 1)
	if tw == nil {
		t.Fatal("Acquire returned nil")
	}
	if p.Available() != before-1 {
		t.Errorf("available = %d, want %d", p.Available(), before-1)
	}
	p.Release(tw)
	if p.Available() != before {
		t.Errorf("after release: available = %d, want %d", p.Available(), before)
	}
	// Reuse must reinitialize the tween.
	tw2 := p.Acquire(PropertyAlpha, EaseOutSine, 2, 3, 4)
	if tw2 != tw {
		t.Error("expected released tween to be reused")
	}
	if tw2.Property != PropertyAlpha || tw2.Start != 2 || tw2.End != 3 || tw2.Duration != 4 {
		t.Errorf("reused tween not reinitialized: %+v", tw2)
	}
}

func TestPoolGrowsWhenExhausted(t *testing.T) {
	p := &Pool{}
	tw := p.Acquire(PropertyX, Linear, 0, 1, 1)
	if tw == nil {
		t.Fatal("Acquire returned nil on empty pool")
	}
	if p.Available() != poolExpansionSize-1 {
		t.Errorf("available = %d, want %d", p.Available(), poolExpansionSize-1)
	}
}

func TestTweenSetReplacesByProperty(t *testing.T) {
	p := NewPool()
	s := NewTweenSet()
	first := p.Acquire(PropertyX, Linear, 0, 1, 1)
	second := p.Acquire(PropertyX, Linear, 5, 6, 1)
	other := p.Acquire(PropertyY, Linear, 0, 1, 1)
	s.Push(p, first)
	s.Push(p, other)
	avail := p.Available()
	s.Push(p, second)
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}
	if got := s.ByProperty(PropertyX); got != second {
		t.Error("property X not replaced")
	}
	if p.Available() != avail+1 {
		t.Error("displaced tween not returned to pool")
	}
}

func TestTweenSetDuration(t *testing.T) {
	p := NewPool()
	s := NewTweenSet()
	s.Push(p, p.Acquire(PropertyX, Linear, 0, 1, 0.5))
	s.Push(p, p.Acquire(PropertyY, Linear, 0, 1, 2))
	if got := s.Duration(); got != 2 {
		t.Errorf("duration = %v, want 2", got)
	}
}

func TestAnimationCopyIsDeep(t *testing.T) {
	p := NewPool()
	a := NewAnimation()
	s := NewTweenSet()
	s.Push(p, p.Acquire(PropertyX, Linear, 0, 1, 1))
	a.Push(s)

	cp := a.Copy(p)
	if cp.Len() != 1 || cp.TweenSet(0).Len() != 1 {
		t.Fatalf("copy shape: %d sets", cp.Len())
	}
	if cp.TweenSet(0).Tween(0) == a.TweenSet(0).Tween(0) {
		t.Error("copy shares tweens with original")
	}
}

func TestAnimationDestroyReleasesTweens(t *testing.T) {
	p := NewPool()
	a := NewAnimation()
	s := NewTweenSet()
	s.Push(p, p.Acquire(PropertyX, Linear, 0, 1, 1))
	s.Push(p, p.Acquire(PropertyY, Linear, 0, 1, 1))
	a.Push(s)

	avail := p.Available()
	a.Destroy(p)
	if p.Available() != avail+2 {
		t.Errorf("available = %d, want %d", p.Available(), avail+2)
	}
	if !a.Destroyed() {
		t.Error("animation not marked destroyed")
	}
}

func TestEventsWildcardFallback(t *testing.T) {
	p := NewPool()
	e := NewEvents()

	// Unknown event and index must still yield a playable animation.
	a := e.Get("enter", 3)
	if a == nil {
		t.Fatal("Get returned nil")
	}
	if a.Len() != 0 {
		t.Errorf("expected empty wildcard, got %d sets", a.Len())
	}

	specific := NewAnimation()
	e.Set(p, "enter", 3, specific)
	if got := e.Get("enter", 3); got != specific {
		t.Error("specific index not preferred")
	}
	if got := e.Get("enter", 7); got == specific {
		t.Error("unrelated index resolved to specific entry")
	}
}

func TestEventsSetReplacesAndDestroys(t *testing.T) {
	p := NewPool()
	e := NewEvents()
	old := NewAnimation()
	e.Set(p, "exit", -1, old)
	e.Set(p, "exit", -1, NewAnimation())
	if !old.Destroyed() {
		t.Error("replaced animation not destroyed")
	}
}
