package graphics

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/CoinOPS-Official/retrofe/video"
)

// restartThreshold is the minimum playback position, in seconds,
// before a restart pulse is honored. Seeking earlier than this
// thrashes pipelines that have not produced a frame yet.
const restartThreshold = 0.001

// VideoComponent drives one pooled video player through the slot
// lifecycle: play on allocate, pause while invisible, restart on cue,
// release on free.
type VideoComponent struct {
	*Base

	pool        *video.Pool
	player      video.Player
	filePath    string
	monitor     int
	listID      int
	numLoops    int
	softOverlay bool

	instanceReady  bool
	hasBeenVisible bool
}

// NewVideoComponent returns a video component for a file. Playback
// starts at AllocateGraphicsMemory.
func NewVideoComponent(base *Base, pool *video.Pool, filePath string, monitor, listID, numLoops int, softOverlay bool) *VideoComponent {
	return &VideoComponent{
		Base:        base,
		pool:        pool,
		filePath:    filePath,
		monitor:     monitor,
		listID:      listID,
		numLoops:    numLoops,
		softOverlay: softOverlay,
	}
}

// FilePath returns the backing file.
func (c *VideoComponent) FilePath() string { return c.filePath }

// Player exposes the backing player, nil before allocation.
func (c *VideoComponent) Player() video.Player { return c.player }

// AllocateGraphicsMemory acquires a player from the pool and starts
// playback.
func (c *VideoComponent) AllocateGraphicsMemory() {
	c.Base.AllocateGraphicsMemory()
	if c.instanceReady || c.filePath == "" {
		return
	}
	if c.player == nil {
		c.player = c.pool.Acquire(c.monitor, c.listID, c.softOverlay)
	}
	c.player.SetLoops(c.numLoops)
	if err := c.player.Play(c.filePath); err != nil {
		log.Printf("video %s: %v", c.filePath, err)
		return
	}
	c.instanceReady = true
}

// FreeGraphicsMemory releases the player back to the pool.
func (c *VideoComponent) FreeGraphicsMemory() {
	c.Base.FreeGraphicsMemory()
	if c.player == nil {
		return
	}
	c.instanceReady = false
	c.pool.Release(c.player, c.monitor, c.listID)
	c.player = nil
}

// Update forwards view state into the player, then steps the base
// animation machine.
func (c *VideoComponent) Update(dt float64) bool {
	if !c.instanceReady || c.player == nil {
		return c.Base.Update(dt)
	}

	if c.player.HasError() {
		log.Printf("video %s: backend error, reacquiring", c.filePath)
		c.instanceReady = false
		c.pool.Release(c.player, c.monitor, c.listID)
		c.player = nil
		c.AllocateGraphicsMemory()
		return c.Base.Update(dt)
	}

	volume := c.BaseViewInfo.Volume
	if c.page != nil {
		volume *= c.page.AudioScale()
	}
	c.player.SetVolume(volume)
	if c.page == nil || !c.page.IsMenuScrolling() {
		c.player.VolumeTick()
	}
	c.player.Tick()

	if w, h := c.player.Width(), c.player.Height(); w != 0 && h != 0 {
		c.BaseViewInfo.ImageWidth = float64(w)
		c.BaseViewInfo.ImageHeight = float64(h)
	}

	visible := c.BaseViewInfo.Alpha > 0
	if visible {
		c.hasBeenVisible = true
	}

	if c.BaseViewInfo.PauseOnScroll {
		if !visible && !c.player.IsPaused() && (c.page == nil || !c.page.IsMenuFastScrolling()) {
			c.player.Pause()
		} else if visible && c.player.IsPaused() {
			c.player.Resume()
		}
	}

	if c.BaseViewInfo.Restart && c.hasBeenVisible {
		if c.player.IsPaused() {
			c.player.Resume()
		}
		// Hold the pulse until the pipeline has really started.
		if c.player.Current() > restartThreshold {
			if err := c.player.Restart(); err != nil {
				log.Printf("video %s: restart: %v", c.filePath, err)
			}
			c.BaseViewInfo.Restart = false
		}
	}

	return c.Base.Update(dt)
}

// Draw renders nothing itself; frame output is owned by the backend.
// The base background still applies.
func (c *VideoComponent) Draw(screen *ebiten.Image) {
	c.Base.Draw(screen)
}

func (c *VideoComponent) IsPlaying() bool {
	return c.player != nil && c.player.IsPlaying()
}

func (c *VideoComponent) Current() float64 {
	if c.player == nil {
		return 0
	}
	return c.player.Current()
}

func (c *VideoComponent) Duration() float64 {
	if c.player == nil {
		return 0
	}
	return c.player.Duration()
}

func (c *VideoComponent) Pause() {
	if c.player != nil {
		c.player.Pause()
	}
}

func (c *VideoComponent) Resume() {
	if c.player != nil {
		c.player.Resume()
	}
}

func (c *VideoComponent) Restart() {
	if c.player != nil {
		if err := c.player.Restart(); err != nil {
			log.Printf("video %s: restart: %v", c.filePath, err)
		}
	}
}
