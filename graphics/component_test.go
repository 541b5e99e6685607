package graphics

import (
	"testing"

	"github.com/CoinOPS-Official/retrofe/graphics/animate"
)

func newTestBase() *Base {
	return NewBase(nil, animate.NewPool())
}

// singleTween builds an animation with one set holding one tween.
func singleTween(pool *animate.Pool, p animate.Property, start, end, duration float64) *animate.Animation {
	set := animate.NewTweenSet()
	set.Push(pool, pool.Acquire(p, animate.Linear, start, end, duration))
	a := animate.NewAnimation()
	a.Push(set)
	return a
}

func TestUpdateWithoutEventsLeavesViewUnchanged(t *testing.T) {
	b := newTestBase()
	b.BaseViewInfo.X = 42
	b.BaseViewInfo.Alpha = 0.5
	before := b.BaseViewInfo

	for i := 0; i < 10; i++ {
		if !b.Update(0.016) {
			t.Fatal("empty component should stay complete")
		}
	}
	if b.BaseViewInfo != before {
		t.Error("view changed with no pending event and no animations")
	}
}

func TestTriggerAppliesAnimationNextUpdate(t *testing.T) {
	b := newTestBase()
	b.Tweens().Set(b.Pool(), "highlightEnter", -1, singleTween(b.Pool(), animate.PropertyX, 0, 100, 1))

	b.Trigger("highlightEnter", -1)
	if b.BaseViewInfo.X != 0 {
		t.Error("trigger applied before update")
	}

	// The install tick snapshots the view at elapsed zero.
	b.Update(0)
	b.Update(0.5)
	if got := b.BaseViewInfo.X; got != 50 {
		t.Errorf("X at midpoint = %v, want 50", got)
	}
	if b.IsIdle() {
		t.Error("idle during an in-flight transition")
	}

	b.Update(0.5)
	if got := b.BaseViewInfo.X; got != 100 {
		t.Errorf("X at end = %v, want 100", got)
	}
	if !b.IsIdle() {
		t.Error("not idle after the animation completed")
	}
}

func TestUnknownEventKeepsCurrentState(t *testing.T) {
	b := newTestBase()
	b.Tweens().Set(b.Pool(), "highlightEnter", -1, singleTween(b.Pool(), animate.PropertyX, 0, 100, 1))
	b.Trigger("highlightEnter", -1)
	b.Update(0)
	b.Update(0.25)

	// An event with no table entry must not cancel the running one.
	b.Trigger("noSuchEvent", -1)
	b.Update(0.25)
	if got := b.BaseViewInfo.X; got != 50 {
		t.Errorf("X = %v, want 50: unknown event disturbed the animation", got)
	}
}

func TestPlaylistFilterSkipsTweens(t *testing.T) {
	b := newTestBase()
	pool := b.Pool()

	set := animate.NewTweenSet()
	tw := pool.Acquire(animate.PropertyX, animate.Linear, 0, 100, 0)
	tw.PlaylistFilter = "arcade,console"
	set.Push(pool, tw)
	a := animate.NewAnimation()
	a.Push(set)
	b.Tweens().Set(pool, "playlistEnter", -1, a)

	b.SetPlaylist("snes")
	b.Trigger("playlistEnter", -1)
	b.Update(0.016)
	if b.BaseViewInfo.X != 0 {
		t.Errorf("filtered tween ran for playlist snes, X = %v", b.BaseViewInfo.X)
	}

	b2 := newTestBase()
	pool2 := b2.Pool()
	set2 := animate.NewTweenSet()
	tw2 := pool2.Acquire(animate.PropertyX, animate.Linear, 0, 100, 0)
	tw2.PlaylistFilter = "arcade,console"
	set2.Push(pool2, tw2)
	a2 := animate.NewAnimation()
	a2.Push(set2)
	b2.Tweens().Set(pool2, "playlistEnter", -1, a2)

	b2.SetPlaylist("console")
	b2.Trigger("playlistEnter", -1)
	b2.Update(0.016)
	if b2.BaseViewInfo.X != 100 {
		t.Errorf("matching tween skipped, X = %v", b2.BaseViewInfo.X)
	}
}

func TestHighIndexPrefersHighBucket(t *testing.T) {
	b := newTestBase()
	pool := b.Pool()
	b.Tweens().Set(pool, "menuEnter", animate.MenuIndexHigh, singleTween(pool, animate.PropertyX, 0, 10, 0))
	b.Tweens().Set(pool, "menuEnter", 1, singleTween(pool, animate.PropertyX, 0, 20, 0))

	b.Trigger("menuEnter", animate.MenuIndexHigh+1)
	b.Update(0.016)
	if got := b.BaseViewInfo.X; got != 10 {
		t.Errorf("X = %v, want 10 from the high bucket", got)
	}
}

func TestHighIndexFallsBackToStrippedIndex(t *testing.T) {
	b := newTestBase()
	pool := b.Pool()
	b.Tweens().Set(pool, "menuEnter", 1, singleTween(pool, animate.PropertyX, 0, 20, 0))

	b.Trigger("menuEnter", animate.MenuIndexHigh+1)
	b.Update(0.016)
	if got := b.BaseViewInfo.X; got != 20 {
		t.Errorf("X = %v, want 20 from the stripped index", got)
	}
}

func TestMultiSetAnimationAdvances(t *testing.T) {
	b := newTestBase()
	pool := b.Pool()

	first := animate.NewTweenSet()
	first.Push(pool, pool.Acquire(animate.PropertyX, animate.Linear, 0, 50, 1))
	second := animate.NewTweenSet()
	second.Push(pool, pool.Acquire(animate.PropertyY, animate.Linear, 0, 30, 1))
	a := animate.NewAnimation()
	a.Push(first)
	a.Push(second)
	b.Tweens().Set(pool, "enter", -1, a)

	b.Trigger("enter", -1)
	b.Update(0)
	b.Update(1)
	if b.BaseViewInfo.X != 50 || b.BaseViewInfo.Y != 0 {
		t.Errorf("after first set: X=%v Y=%v, want 50, 0", b.BaseViewInfo.X, b.BaseViewInfo.Y)
	}
	done := b.Update(1)
	if !done {
		t.Error("animation should complete after the second set")
	}
	if b.BaseViewInfo.Y != 30 {
		t.Errorf("Y = %v, want 30", b.BaseViewInfo.Y)
	}
}

func TestRestartPulse(t *testing.T) {
	b := newTestBase()
	pool := b.Pool()

	set := animate.NewTweenSet()
	set.Push(pool, pool.Acquire(animate.PropertyRestart, animate.Linear, 0, 1, 0.5))
	a := animate.NewAnimation()
	a.Push(set)
	b.Tweens().Set(pool, "menuScroll", -1, a)

	b.Trigger("menuScroll", -1)
	b.Update(0)
	if !b.BaseViewInfo.Restart {
		t.Error("restart pulse not raised at transition start")
	}
	b.Update(0.1)
	if b.BaseViewInfo.Restart {
		t.Error("restart pulse still raised mid-transition")
	}
}

func TestScrollClassification(t *testing.T) {
	b := newTestBase()
	b.Tweens().Set(b.Pool(), "menuScroll", -1, singleTween(b.Pool(), animate.PropertyX, 0, 100, 1))

	b.Trigger("menuScroll", -1)
	b.Update(0.25)
	if !b.IsMenuScrolling() {
		t.Error("menuScroll transition not classified as scrolling")
	}
	if b.IsPlaylistScrolling() {
		t.Error("menuScroll classified as playlist scrolling")
	}
	b.Update(1)
	if b.IsMenuScrolling() {
		t.Error("still scrolling after completion")
	}
}
