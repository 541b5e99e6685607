// Package sound plays one-shot event sounds for the front-end.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the shared playback rate for all event sounds.
const SampleRate = 44100

var (
	contextOnce sync.Once
	context     *audio.Context
)

// Context returns the process audio context, creating it on first use.
// Ebiten allows exactly one context per process.
func Context() *audio.Context {
	contextOnce.Do(func() {
		context = audio.NewContext(SampleRate)
	})
	return context
}

// Sound is a WAV file decoded into memory and played fire-and-forget.
// Allocate before the first Play; a Sound with no data plays nothing.
type Sound struct {
	path   string
	volume float64
	pcm    []byte
	player *audio.Player
}

// New returns an unallocated sound bound to a file path.
func New(path string) *Sound {
	return &Sound{path: path, volume: 1}
}

// SetVolume scales playback, 0 to 1. Zero silences the sound.
func (s *Sound) SetVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	s.volume = v
	if s.player != nil {
		s.player.SetVolume(v)
	}
}

// Allocate reads and decodes the WAV file. Allocating an already
// allocated sound is a no-op.
func (s *Sound) Allocate() error {
	if s.pcm != nil || s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read sound %s: %w", s.path, err)
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode sound %s: %w", s.path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("decode sound %s: %w", s.path, err)
	}
	s.pcm = pcm
	return nil
}

// Free drops the decoded samples.
func (s *Sound) Free() {
	s.pcm = nil
	s.player = nil
}

// Play starts playback from the beginning. Overlapping plays restart
// the sound rather than mixing with themselves.
func (s *Sound) Play() {
	if s.pcm == nil {
		return
	}
	if s.player != nil {
		s.player.Close()
	}
	s.player = Context().NewPlayerFromBytes(s.pcm)
	s.player.SetVolume(s.volume)
	s.player.Play()
}

// IsPlaying reports whether the last Play is still audible.
func (s *Sound) IsPlaying() bool {
	return s.player != nil && s.player.IsPlaying()
}
