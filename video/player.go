// Package video defines the playback contract media components drive
// and a pool that recycles player instances across menu rebuilds.
package video

// VolumeTickStep is the per-frame increment the volume ramp moves by.
const VolumeTickStep = 0.005

// MuteThreshold silences playback when the target volume sits below it.
const MuteThreshold = 0.1

// Player is a playback backend for one video stream. Implementations
// are driven from the UI goroutine once per frame via Tick and
// VolumeTick.
type Player interface {
	// Play opens the file and starts playback from the beginning.
	Play(path string) error
	// Stop halts playback and releases the stream.
	Stop()
	// Pause freezes playback keeping the stream open.
	Pause()
	// Resume continues paused playback.
	Resume()
	// Restart seeks back to the start without reopening.
	Restart() error

	// SetVolume sets the target volume in [0, 1]. The audible volume
	// approaches the target through VolumeTick.
	SetVolume(v float64)
	// VolumeTick advances the ramp one step toward the target and
	// applies muting below the threshold.
	VolumeTick()

	// SetLoops caps how many times the stream replays. Zero or
	// negative loops forever.
	SetLoops(n int)
	// Tick advances end-of-stream handling, replaying until the loop
	// cap is reached.
	Tick()

	// Current returns the playback position in seconds.
	Current() float64
	// Duration returns the stream length in seconds, zero when
	// unknown.
	Duration() float64
	Width() int
	Height() int

	IsPlaying() bool
	IsPaused() bool
	HasError() bool
}

// nullPlayer is the placeholder used when no backend factory is
// installed. It accepts every call and reports nothing playing.
type nullPlayer struct{}

func (nullPlayer) Play(string) error { return nil }
func (nullPlayer) Stop()             {}
func (nullPlayer) Pause()            {}
func (nullPlayer) Resume()           {}
func (nullPlayer) Restart() error    { return nil }
func (nullPlayer) SetVolume(float64) {}
func (nullPlayer) VolumeTick()       {}
func (nullPlayer) SetLoops(int)      {}
func (nullPlayer) Tick()             {}
func (nullPlayer) Current() float64  { return 0 }
func (nullPlayer) Duration() float64 { return 0 }
func (nullPlayer) Width() int        { return 0 }
func (nullPlayer) Height() int       { return 0 }
func (nullPlayer) IsPlaying() bool   { return false }
func (nullPlayer) IsPaused() bool    { return false }
func (nullPlayer) HasError() bool    { return false }
