package video

import "testing"

type fakePlayer struct {
	nullPlayer
	stopped int
}

func (f *fakePlayer) Stop() { f.stopped++ }

func TestAcquireWithoutFactory(t *testing.T) {
	p := NewPool()
	v := p.Acquire(0, 1, false)
	if v == nil {
		t.Fatal("Acquire returned nil")
	}
	if v.IsPlaying() {
		t.Error("placeholder reports playing")
	}
}

func TestPoolReusesReleasedPlayer(t *testing.T) {
	p := NewPool()
	built := 0
	p.SetFactory(func(monitor int, softOverlay bool) Player {
		built++
		return &fakePlayer{}
	})

	v := p.Acquire(0, 1, false)
	p.Release(v, 0, 1)
	if p.IdleCount(0, 1) != 1 {
		t.Errorf("idle = %d, want 1", p.IdleCount(0, 1))
	}

	v2 := p.Acquire(0, 1, false)
	if v2 != v {
		t.Error("released player not reused")
	}
	if built != 1 {
		t.Errorf("factory called %d times, want 1", built)
	}
}

func TestReleaseStopsPlayer(t *testing.T) {
	p := NewPool()
	f := &fakePlayer{}
	p.Release(f, 0, 0)
	if f.stopped != 1 {
		t.Errorf("stopped %d times, want 1", f.stopped)
	}
}

func TestBucketsAreIndependent(t *testing.T) {
	p := NewPool()
	p.SetFactory(func(int, bool) Player { return &fakePlayer{} })

	v := p.Acquire(0, 1, false)
	p.Release(v, 0, 1)

	v2 := p.Acquire(1, 1, false)
	if v2 == v {
		t.Error("player crossed monitor buckets")
	}
}

func TestCleanupDropsIdle(t *testing.T) {
	p := NewPool()
	p.SetFactory(func(int, bool) Player { return &fakePlayer{} })

	f := p.Acquire(0, 2, false).(*fakePlayer)
	p.Release(f, 0, 2)
	p.Cleanup(0, 2)

	if p.IdleCount(0, 2) != 0 {
		t.Errorf("idle = %d after cleanup", p.IdleCount(0, 2))
	}
	if f.stopped != 2 {
		t.Errorf("stopped %d times, want 2", f.stopped)
	}
}

func TestShutdownEmptiesPool(t *testing.T) {
	p := NewPool()
	p.SetFactory(func(int, bool) Player { return &fakePlayer{} })

	players := []Player{p.Acquire(0, 1, false), p.Acquire(0, 1, false)}
	p.ReleaseBatch(players, 0, 1)
	p.Shutdown()

	if p.IdleCount(0, 1) != 0 {
		t.Errorf("idle = %d after shutdown", p.IdleCount(0, 1))
	}
}
