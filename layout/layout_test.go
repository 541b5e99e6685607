package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CoinOPS-Official/retrofe/collection"
	"github.com/CoinOPS-Official/retrofe/graphics/animate"
	"github.com/CoinOPS-Official/retrofe/storage"
	"github.com/CoinOPS-Official/retrofe/video"
)

func writeLayout(t *testing.T, content string) *Builder {
	t.Helper()
	base := t.TempDir()
	dir := filepath.Join(base, "layouts", "test")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "layout.xml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return NewBuilder(base, "test", storage.DefaultSettings(), animate.NewPool(), nil, video.NewPool())
}

func testCollection(name string, itemNames ...string) *collection.Collection {
	c := collection.New(name)
	for _, n := range itemNames {
		c.Add(&collection.Item{Name: n, Title: n, FullTitle: n, Collection: c})
	}
	c.SetPlaylist("all", c.Items)
	return c
}

func TestBuildAssemblesPage(t *testing.T) {
	b := writeLayout(t, `<layout width="1920" height="1080" minShowTime="1.5">
		<sound type="load" src="load.wav"/>
		<sound type="highlight" src="click.wav"/>
		<sound type="bogus" src="x.wav"/>
		<menu type="vertical" textFallback="true" scrollTime="0.25" y="100" height="440">
			<itemDefaults x="40" width="400" height="100" spacing="10"/>
			<item index="1" selected="true"/>
		</menu>
		<image src="bg.png" layer="2" alpha="0.5"/>
		<text value="hello" x="center" y="bottom"/>
	</layout>`)

	res, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.Width != 1920 || res.Height != 1080 {
		t.Errorf("dimensions = %dx%d, want 1920x1080", res.Width, res.Height)
	}
	if res.MinShowTime != 1.5 {
		t.Errorf("minShowTime = %v, want 1.5", res.MinShowTime)
	}
	if len(res.Sounds) != 2 {
		t.Errorf("sounds = %v, want load and highlight only", res.Sounds)
	}
	if !strings.HasSuffix(res.Sounds["load"], filepath.Join("layouts", "test", "load.wav")) {
		t.Errorf("load sound path = %q", res.Sounds["load"])
	}
	if n := len(res.Page.LayerComponents()); n != 2 {
		t.Errorf("layer components = %d, want 2", n)
	}

	coll := testCollection("arcade", "a", "b", "c", "d", "e", "f", "g", "h")
	if !res.Page.PushCollection(coll) {
		t.Fatal("push failed")
	}
	menu := res.Page.ActiveMenus()[0]
	// 440px of menu at 100px rows with 10px spacing gives four visible
	// rows plus the entry and exit points.
	if menu.Capacity() != 6 {
		t.Errorf("capacity = %d, want 6", menu.Capacity())
	}
	if menu.SelectedOffset() != 2 {
		t.Errorf("selected offset = %d, want 2", menu.SelectedOffset())
	}
}

func TestVerticalPointsGeometry(t *testing.T) {
	b := writeLayout(t, `<layout width="1000" height="500">
		<menu type="vertical" textFallback="true" y="0" height="330">
			<itemDefaults x="10" width="200" height="100" spacing="10"/>
		</menu>
	</layout>`)

	res, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !res.Page.PushCollection(testCollection("c", "a", "b", "c", "d", "e")) {
		t.Fatal("push failed")
	}
	menu := res.Page.ActiveMenus()[0]
	points, _ := menu.Points()
	if len(points) != 5 {
		t.Fatalf("points = %d, want 3 rows plus entry and exit", len(points))
	}
	if points[0].Y != -110 || points[0].Alpha != 0 {
		t.Errorf("entry point y = %v alpha = %v, want -110 and 0", points[0].Y, points[0].Alpha)
	}
	if points[1].Y != 0 || points[2].Y != 110 || points[3].Y != 220 {
		t.Errorf("row ys = %v %v %v, want 0 110 220", points[1].Y, points[2].Y, points[3].Y)
	}
	if points[4].Y != 330 || points[4].Alpha != 0 {
		t.Errorf("exit point y = %v alpha = %v, want 330 and 0", points[4].Y, points[4].Alpha)
	}
	if menu.SelectedOffset() != 1 {
		t.Errorf("selected offset = %d, want 1", menu.SelectedOffset())
	}
}

func TestScrollTimingDefaultsComeFromSettings(t *testing.T) {
	b := writeLayout(t, `<layout width="1000" height="500">
		<menu type="vertical" textFallback="true" y="0" height="330">
			<itemDefaults x="10" width="200" height="100" spacing="10"/>
		</menu>
	</layout>`)
	b.settings.Scroll = storage.ScrollSettings{StartPeriod: 0.9, MinPeriod: 0.2, Acceleration: 0.1}

	res, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !res.Page.PushCollection(testCollection("c", "a", "b", "c")) {
		t.Fatal("push failed")
	}
	menu := res.Page.ActiveMenus()[0]
	if got := menu.StartScrollTime(); got != 0.9 {
		t.Errorf("start scroll time = %v, want the settings 0.9", got)
	}
	if got := menu.MinScrollTime(); got != 0.2 {
		t.Errorf("min scroll time = %v, want the settings 0.2", got)
	}
	if got := menu.ScrollAcceleration(); got != 0.1 {
		t.Errorf("scroll acceleration = %v, want the settings 0.1", got)
	}
}

func TestScrollTimingAttributesOverrideSettings(t *testing.T) {
	b := writeLayout(t, `<layout width="1000" height="500">
		<menu type="vertical" textFallback="true" scrollTime="0.25" scrollAcceleration="0.05" minScrollTime="0.02" y="0" height="330">
			<itemDefaults x="10" width="200" height="100" spacing="10"/>
		</menu>
	</layout>`)
	b.settings.Scroll = storage.ScrollSettings{StartPeriod: 0.9, MinPeriod: 0.2, Acceleration: 0.1}

	res, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !res.Page.PushCollection(testCollection("c", "a", "b", "c")) {
		t.Fatal("push failed")
	}
	menu := res.Page.ActiveMenus()[0]
	if got := menu.StartScrollTime(); got != 0.25 {
		t.Errorf("start scroll time = %v, want the attribute 0.25", got)
	}
	if got := menu.ScrollAcceleration(); got != 0.05 {
		t.Errorf("scroll acceleration = %v, want the attribute 0.05", got)
	}
	if got := menu.MinScrollTime(); got != 0.02 {
		t.Errorf("min scroll time = %v, want the attribute 0.02", got)
	}
}

func TestCustomMenuUsesItemsVerbatim(t *testing.T) {
	b := writeLayout(t, `<layout width="1000" height="500">
		<menu type="custom" textFallback="true">
			<item x="0" y="0" width="100" height="50"/>
			<item x="0" y="100" width="100" height="50" selected="true"/>
			<item x="0" y="200" width="100" height="50"/>
		</menu>
	</layout>`)

	res, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !res.Page.PushCollection(testCollection("c", "a", "b", "c", "d")) {
		t.Fatal("push failed")
	}
	menu := res.Page.ActiveMenus()[0]
	if menu.Capacity() != 3 {
		t.Errorf("capacity = %d, want 3", menu.Capacity())
	}
	if menu.SelectedOffset() != 1 {
		t.Errorf("selected offset = %d, want 1", menu.SelectedOffset())
	}
}

func TestPlaylistMenuDetection(t *testing.T) {
	b := writeLayout(t, `<layout width="1000" height="500">
		<menu type="custom" imageType="playlistLogo" textFallback="true">
			<item x="0" y="0" width="100" height="50"/>
		</menu>
		<menu type="custom" textFallback="true">
			<item x="0" y="0" width="100" height="50"/>
		</menu>
	</layout>`)

	res, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !res.Page.PushCollection(testCollection("c", "a", "b")) {
		t.Fatal("push failed")
	}
	menus := res.Page.ActiveMenus()
	if len(menus) != 2 {
		t.Fatalf("menus = %d, want 2", len(menus))
	}
	if !menus[0].IsPlaylist() {
		t.Error("first menu should be a playlist menu")
	}
	if menus[1].IsPlaylist() {
		t.Error("second menu should not be a playlist menu")
	}
}

func TestBuildRejectsMissingDimensions(t *testing.T) {
	b := writeLayout(t, `<layout height="500"/>`)
	if _, err := b.Build(); err == nil || !strings.Contains(err.Error(), "width") {
		t.Errorf("err = %v, want width complaint", err)
	}
}

func TestBuildMissingFileFails(t *testing.T) {
	base := t.TempDir()
	b := NewBuilder(base, "absent", storage.DefaultSettings(), animate.NewPool(), nil, video.NewPool())
	if _, err := b.Build(); err == nil {
		t.Error("expected error for missing layout.xml")
	}
}
