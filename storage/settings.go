package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// Settings is the application configuration stored in settings.json.
type Settings struct {
	Version    int              `json:"version"`
	Layout     string           `json:"layout"`
	Collection string           `json:"collection"`
	Window     WindowSettings   `json:"window"`
	Scroll     ScrollSettings   `json:"scroll"`
	Attract    AttractSettings  `json:"attract"`
	Audio      AudioSettings    `json:"audio"`
	Launcher   LauncherSettings `json:"launcher"`

	// RememberMenu restores the last selection when re-entering a menu.
	RememberMenu bool `json:"rememberMenu"`
	// PrevLetterSubToCurrent makes a backward letter jump stop at the
	// start of the current letter block before moving to the previous
	// letter.
	PrevLetterSubToCurrent bool `json:"prevLetterSubToCurrent"`
	// RandomStart picks a random item on startup.
	RandomStart bool `json:"randomStart"`
	// RandomPlaylistExclude names playlists the random playlist picker
	// skips.
	RandomPlaylistExclude []string `json:"randomPlaylistExclude"`
	// PlaylistCycle lists the playlists next/prev cycling walks, in
	// order. Empty means all playlists in sorted order.
	PlaylistCycle []string `json:"playlistCycle"`
	// LastPlayedSize caps the lastplayed playlist.
	LastPlayedSize int `json:"lastPlayedSize"`
}

// WindowSettings holds window geometry.
type WindowSettings struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
}

// ScrollSettings tunes menu scroll timing, in seconds.
type ScrollSettings struct {
	StartPeriod  float64 `json:"startPeriod"`
	MinPeriod    float64 `json:"minPeriod"`
	Acceleration float64 `json:"acceleration"`
}

// AttractSettings tunes attract mode.
type AttractSettings struct {
	IdleSeconds     float64 `json:"idleSeconds"`
	NextIdleSeconds float64 `json:"nextIdleSeconds"`
	MinSeconds      float64 `json:"minSeconds"`
}

// AudioSettings holds global audio state.
type AudioSettings struct {
	Volume float64 `json:"volume"`
	Muted  bool    `json:"muted"`
}

// LauncherSettings configures how leaf items launch. Args entries may
// use %ITEM_FILEPATH%, %ITEM_NAME% and %ITEM_COLLECTION% placeholders.
type LauncherSettings struct {
	Executable string   `json:"executable"`
	Args       []string `json:"args"`
	WorkingDir string   `json:"workingDir"`
	// WaitTimeout caps how long a child may run, in seconds. Zero
	// means no limit.
	WaitTimeout float64 `json:"waitTimeout"`
}

// DefaultSettings returns a Settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Version:    1,
		Layout:     "default",
		Collection: "main",
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
		},
		Scroll: ScrollSettings{
			StartPeriod:  0.50,
			MinPeriod:    0.07,
			Acceleration: 0.06,
		},
		Attract: AttractSettings{
			IdleSeconds:     0,
			NextIdleSeconds: 0,
			MinSeconds:      0,
		},
		Audio: AudioSettings{
			Volume: 1.0,
		},
		Launcher: LauncherSettings{
			Args: []string{"%ITEM_FILEPATH%"},
		},
		RememberMenu:   true,
		LastPlayedSize: 10,
	}
}

// SettingsPath returns the settings file under baseDir.
func SettingsPath(baseDir string) string {
	return filepath.Join(baseDir, "settings.json")
}

// LoadSettings loads settings.json from baseDir. A missing file yields
// defaults; a corrupt file is an error.
func LoadSettings(baseDir string) (*Settings, error) {
	path := SettingsPath(baseDir)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}

	settings := &Settings{}
	if err := ReadJSON(path, settings); err != nil {
		return nil, err
	}

	return migrateSettings(settings), nil
}

// SaveSettings writes settings.json atomically.
func SaveSettings(baseDir string, settings *Settings) error {
	return AtomicWriteJSON(SettingsPath(baseDir), settings)
}

// CreateSettingsIfMissing writes a default settings.json when none
// exists.
func CreateSettingsIfMissing(baseDir string) error {
	if _, err := os.Stat(SettingsPath(baseDir)); errors.Is(err, os.ErrNotExist) {
		return SaveSettings(baseDir, DefaultSettings())
	}
	return nil
}

// migrateSettings fills defaults for fields older files lack.
func migrateSettings(settings *Settings) *Settings {
	if settings.Version == 0 {
		settings.Version = 1
	}
	if settings.Layout == "" {
		settings.Layout = "default"
	}
	if settings.Collection == "" {
		settings.Collection = "main"
	}
	if settings.Window.Width == 0 {
		settings.Window.Width = 1280
	}
	if settings.Window.Height == 0 {
		settings.Window.Height = 720
	}
	if settings.Scroll.StartPeriod == 0 {
		settings.Scroll.StartPeriod = 0.50
	}
	if settings.Scroll.MinPeriod == 0 {
		settings.Scroll.MinPeriod = 0.07
	}
	if settings.Scroll.Acceleration == 0 {
		settings.Scroll.Acceleration = 0.06
	}
	if settings.Audio.Volume == 0 && !settings.Audio.Muted {
		settings.Audio.Volume = 1.0
	}
	if settings.LastPlayedSize == 0 {
		settings.LastPlayedSize = 10
	}
	if len(settings.Launcher.Args) == 0 {
		settings.Launcher.Args = []string{"%ITEM_FILEPATH%"}
	}
	return settings
}
