package graphics

import (
	"testing"

	"github.com/CoinOPS-Official/retrofe/graphics/animate"
	"github.com/CoinOPS-Official/retrofe/storage"
	"github.com/CoinOPS-Official/retrofe/video"
)

// stubPlayer records the calls the component drives it with.
type stubPlayer struct {
	playing  bool
	paused   bool
	position float64
	err      bool

	plays       int
	pauses      int
	resumes     int
	restarts    int
	volumeTicks int
	volume      float64
}

func (s *stubPlayer) Play(string) error {
	s.playing = true
	s.paused = false
	s.plays++
	return nil
}
func (s *stubPlayer) Stop()   { s.playing = false }
func (s *stubPlayer) Pause()  { s.paused = true; s.pauses++ }
func (s *stubPlayer) Resume() { s.paused = false; s.resumes++ }
func (s *stubPlayer) Restart() error {
	s.position = 0
	s.restarts++
	return nil
}
func (s *stubPlayer) SetVolume(v float64) { s.volume = v }
func (s *stubPlayer) VolumeTick()         { s.volumeTicks++ }
func (s *stubPlayer) SetLoops(int)        {}
func (s *stubPlayer) Tick()               {}
func (s *stubPlayer) Current() float64    { return s.position }
func (s *stubPlayer) Duration() float64   { return 60 }
func (s *stubPlayer) Width() int          { return 640 }
func (s *stubPlayer) Height() int         { return 480 }
func (s *stubPlayer) IsPlaying() bool     { return s.playing }
func (s *stubPlayer) IsPaused() bool      { return s.paused }
func (s *stubPlayer) HasError() bool      { return s.err }

func newTestVideo(page *Page) (*VideoComponent, *stubPlayer) {
	sp := &stubPlayer{}
	pool := video.NewPool()
	pool.SetFactory(func(monitor int, softOverlay bool) video.Player { return sp })
	base := NewBase(page, animate.NewPool())
	c := NewVideoComponent(base, pool, "intro.mp4", 0, 0, 1, false)
	c.AllocateGraphicsMemory()
	return c, sp
}

func TestVideoPausesWhileInvisible(t *testing.T) {
	c, sp := newTestVideo(nil)

	c.BaseViewInfo.Alpha = 0
	c.Update(0.016)
	c.Update(0.016)
	if !sp.paused {
		t.Fatal("invisible video not paused")
	}
	if sp.pauses != 1 {
		t.Errorf("pause called %d times, want 1", sp.pauses)
	}

	c.BaseViewInfo.Alpha = 1
	c.Update(0.016)
	if sp.paused {
		t.Error("visible video still paused")
	}
	if sp.resumes != 1 {
		t.Errorf("resume called %d times, want 1", sp.resumes)
	}
}

func TestVideoStaysPlayingDuringFastScroll(t *testing.T) {
	page := NewPage(nil)
	menu := newTestList(t, ListOptions{})
	menu.SetStartScrollTime(0.1)
	menu.SetMinScrollTime(0.1)
	page.PushMenu(menu, 0)
	page.activeMenu = page.menus[0]

	c, sp := newTestVideo(page)
	page.SetScrolling(ScrollDirectionForward)

	c.BaseViewInfo.Alpha = 0
	c.Update(0.016)
	if sp.paused {
		t.Error("paused during a fast scroll")
	}

	page.SetScrolling(ScrollDirectionIdle)
	c.Update(0.016)
	if !sp.paused {
		t.Error("not paused once the scroll settled")
	}
}

func TestVideoVolumeTickGatedByScroll(t *testing.T) {
	page := NewPage(nil)
	c, sp := newTestVideo(page)

	page.SetScrolling(ScrollDirectionForward)
	c.Update(0.016)
	if sp.volumeTicks != 0 {
		t.Error("volume ramped while the menu was scrolling")
	}

	page.SetScrolling(ScrollDirectionIdle)
	c.Update(0.016)
	if sp.volumeTicks != 1 {
		t.Errorf("volume ticks = %d, want 1", sp.volumeTicks)
	}
}

func TestVideoVolumeScaledByAudioSettings(t *testing.T) {
	settings := storage.DefaultSettings()
	settings.Audio.Volume = 0.5
	page := NewPage(settings)
	c, sp := newTestVideo(page)
	c.BaseViewInfo.Volume = 0.8

	c.Update(0.016)
	if sp.volume != 0.4 {
		t.Errorf("player volume = %v, want 0.4", sp.volume)
	}

	settings.Audio.Muted = true
	c.Update(0.016)
	if sp.volume != 0 {
		t.Errorf("player volume while muted = %v, want 0", sp.volume)
	}
}

func TestVideoRestartWaitsForPipeline(t *testing.T) {
	c, sp := newTestVideo(nil)

	c.BaseViewInfo.Alpha = 1
	c.Update(0.016) // marks the video as having been visible

	c.BaseViewInfo.Restart = true
	sp.position = 0
	c.Update(0.016)
	if sp.restarts != 0 {
		t.Error("restarted before the pipeline produced a frame")
	}
	if !c.BaseViewInfo.Restart {
		t.Error("restart pulse dropped while waiting")
	}

	sp.position = 1
	c.Update(0.016)
	if sp.restarts != 1 {
		t.Errorf("restarts = %d, want 1", sp.restarts)
	}
	if c.BaseViewInfo.Restart {
		t.Error("restart pulse not cleared after restarting")
	}
}

func TestVideoRestartIgnoredBeforeVisible(t *testing.T) {
	c, sp := newTestVideo(nil)

	c.BaseViewInfo.Alpha = 1
	c.BaseViewInfo.Restart = true
	sp.position = 1
	// First update makes the video visible and honors the pulse on the
	// same frame; a never-visible video must not restart.
	c.BaseViewInfo.Alpha = 0
	c.Update(0.016)
	if sp.restarts != 0 {
		t.Errorf("restarts = %d, want 0 before first visibility", sp.restarts)
	}
}

func TestVideoPublishesDimensions(t *testing.T) {
	c, _ := newTestVideo(nil)
	c.Update(0.016)
	if c.BaseViewInfo.ImageWidth != 640 || c.BaseViewInfo.ImageHeight != 480 {
		t.Errorf("image size = %vx%v, want 640x480",
			c.BaseViewInfo.ImageWidth, c.BaseViewInfo.ImageHeight)
	}
}

func TestVideoReacquiresOnError(t *testing.T) {
	c, sp := newTestVideo(nil)
	sp.err = true
	c.Update(0.016)
	sp.err = false
	if sp.plays != 2 {
		t.Errorf("plays = %d, want 2 after error recovery", sp.plays)
	}
}
