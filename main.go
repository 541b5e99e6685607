package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/CoinOPS-Official/retrofe/collection"
	"github.com/CoinOPS-Official/retrofe/graphics"
	"github.com/CoinOPS-Official/retrofe/graphics/animate"
	"github.com/CoinOPS-Official/retrofe/layout"
	"github.com/CoinOPS-Official/retrofe/sound"
	"github.com/CoinOPS-Official/retrofe/storage"
	"github.com/CoinOPS-Official/retrofe/ui"
	"github.com/CoinOPS-Official/retrofe/video"
)

func main() {
	baseDir := flag.String("base", ".", "base directory holding layouts/ and collections/")
	layoutName := flag.String("layout", "", "layout name (overrides settings)")
	collectionName := flag.String("collection", "", "root collection name (overrides settings)")
	flag.Parse()

	if err := storage.CreateSettingsIfMissing(*baseDir); err != nil {
		log.Printf("settings: %v", err)
	}
	settings, err := storage.LoadSettings(*baseDir)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *layoutName != "" {
		settings.Layout = *layoutName
	}
	if *collectionName != "" {
		settings.Collection = *collectionName
	}

	cache, err := graphics.NewTextureCache()
	if err != nil {
		log.Fatalf("Failed to create texture cache: %v", err)
	}

	builder := layout.NewBuilder(*baseDir, settings.Layout, settings,
		animate.NewPool(), cache, video.NewPool())
	built, err := builder.Build()
	if err != nil {
		log.Fatalf("Failed to build layout %q: %v", settings.Layout, err)
	}

	volume := settings.Audio.Volume
	if settings.Audio.Muted {
		volume = 0
	}
	page := built.Page
	page.SetSounds(
		loadSound(built.Sounds["load"], volume),
		loadSound(built.Sounds["unload"], volume),
		loadSound(built.Sounds["highlight"], volume),
		loadSound(built.Sounds["select"], volume),
	)

	root, err := collection.Load(*baseDir, settings.Collection)
	if err != nil {
		log.Fatalf("Failed to load collection %q: %v", settings.Collection, err)
	}
	if len(root.Items) == 0 {
		log.Printf("collection %q is empty", settings.Collection)
	}
	page.PushCollection(root)
	if settings.RandomStart {
		page.SelectRandom()
	}

	app := ui.NewApp(*baseDir, settings, page, built.Width, built.Height)

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle("RetroFE")
	ebiten.SetFullscreen(settings.Window.Fullscreen)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app.Start()
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// loadSound allocates an event sound, or returns nil when the layout
// ships none so the page can skip it.
func loadSound(path string, volume float64) graphics.SoundChunk {
	if path == "" {
		return nil
	}
	s := sound.New(path)
	if err := s.Allocate(); err != nil {
		log.Printf("sound %s: %v", path, err)
		return nil
	}
	s.SetVolume(volume)
	return s
}
