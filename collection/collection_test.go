package collection

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestCollection() *Collection {
	c := New("arcade")
	for _, name := range []string{"pacman", "galaga", "dkong"} {
		c.Add(&Item{Name: name, Title: name, FullTitle: name})
	}
	return c
}

func TestPlaylistNamesSorted(t *testing.T) {
	c := newTestCollection()
	c.SetPlaylist("shooters", nil)
	c.SetPlaylist("all", nil)
	c.SetPlaylist("favorites", nil)

	want := []string{"all", "favorites", "shooters"}
	if got := c.PlaylistNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("PlaylistNames() = %v, want %v", got, want)
	}
}

func TestNextPrevPlaylistWraps(t *testing.T) {
	c := newTestCollection()
	c.SetPlaylist("all", nil)
	c.SetPlaylist("favorites", nil)

	if got := c.NextPlaylist("favorites"); got != "all" {
		t.Errorf("NextPlaylist(favorites) = %q, want all", got)
	}
	if got := c.PrevPlaylist("all"); got != "favorites" {
		t.Errorf("PrevPlaylist(all) = %q, want favorites", got)
	}
	if got := c.NextPlaylist("unknown"); got != "all" {
		t.Errorf("NextPlaylist(unknown) = %q, want all", got)
	}
}

func TestToggleFavorite(t *testing.T) {
	c := newTestCollection()
	item := c.FindItem("pacman")

	c.ToggleFavorite(item)
	if !item.IsFavorite {
		t.Error("item not marked favorite")
	}
	if !c.SaveRequest {
		t.Error("SaveRequest not set")
	}
	favs, _ := c.Playlist("favorites")
	if len(favs) != 1 || favs[0] != item {
		t.Errorf("favorites = %v", favs)
	}

	c.ToggleFavorite(item)
	favs, _ = c.Playlist("favorites")
	if item.IsFavorite || len(favs) != 0 {
		t.Errorf("toggle off: favorite=%v len=%d", item.IsFavorite, len(favs))
	}
}

func TestToggleFavoriteKeepsSorted(t *testing.T) {
	c := newTestCollection()
	c.ToggleFavorite(c.FindItem("pacman"))
	c.ToggleFavorite(c.FindItem("dkong"))
	favs, _ := c.Playlist("favorites")
	if len(favs) != 2 || favs[0].Name != "dkong" || favs[1].Name != "pacman" {
		t.Errorf("favorites order wrong: %v", favNames(favs))
	}
}

func favNames(items []*Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestSaveNameFormat(t *testing.T) {
	c := New("arcade")
	game := &Item{Name: "pacman"}
	c.Add(game)
	if got := game.SaveName(); got != "_arcade:pacman" {
		t.Errorf("SaveName() = %q, want _arcade:pacman", got)
	}

	sub := &Item{Name: "arcade"}
	c.Add(sub)
	if got := sub.SaveName(); got != "arcade" {
		t.Errorf("submenu SaveName() = %q, want arcade", got)
	}
}

func TestParseSaveName(t *testing.T) {
	cases := []struct {
		line, wantColl, wantItem string
	}{
		{"_arcade:pacman", "arcade", "pacman"},
		{"pacman", "main", "pacman"},
		{"_:odd", "main", "_:odd"},
	}
	for _, tc := range cases {
		coll, item := ParseSaveName(tc.line, "main")
		if coll != tc.wantColl || item != tc.wantItem {
			t.Errorf("ParseSaveName(%q) = %q, %q; want %q, %q", tc.line, coll, item, tc.wantColl, tc.wantItem)
		}
	}
}

func TestFavoritesRoundTrip(t *testing.T) {
	dir := t.TempDir()

	c := newTestCollection()
	c.ToggleFavorite(c.FindItem("galaga"))
	c.ToggleFavorite(c.FindItem("pacman"))

	if err := c.SaveFavorites(dir); err != nil {
		t.Fatalf("SaveFavorites: %v", err)
	}
	if c.SaveRequest {
		t.Error("SaveRequest not cleared after save")
	}

	data, err := os.ReadFile(filepath.Join(dir, "collections", "arcade", "playlists", "favorites.txt"))
	if err != nil {
		t.Fatalf("reading favorites file: %v", err)
	}
	want := "_arcade:galaga\n_arcade:pacman\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}

	fresh := newTestCollection()
	if err := fresh.LoadFavorites(dir, nil); err != nil {
		t.Fatalf("LoadFavorites: %v", err)
	}
	favs, _ := fresh.Playlist("favorites")
	if got := favNames(favs); !reflect.DeepEqual(got, []string{"galaga", "pacman"}) {
		t.Errorf("loaded favorites = %v", got)
	}
	if !fresh.FindItem("galaga").IsFavorite {
		t.Error("loaded item not marked favorite")
	}
}

func TestLoadFavoritesMissingFile(t *testing.T) {
	c := newTestCollection()
	if err := c.LoadFavorites(t.TempDir(), nil); err != nil {
		t.Fatalf("LoadFavorites: %v", err)
	}
	favs, ok := c.Playlist("favorites")
	if !ok || len(favs) != 0 {
		t.Errorf("expected empty favorites playlist, got ok=%v len=%d", ok, len(favs))
	}
}

func TestSaveFavoritesWithoutRequestIsNoop(t *testing.T) {
	dir := t.TempDir()
	c := newTestCollection()
	if err := c.SaveFavorites(dir); err != nil {
		t.Fatalf("SaveFavorites: %v", err)
	}
	if _, err := os.Stat(FavoritesPath(dir, c.Name)); !os.IsNotExist(err) {
		t.Error("favorites file written without save request")
	}
}

func TestMetaAttribute(t *testing.T) {
	item := &Item{Name: "sf2", Title: "Street Fighter II", CloneOf: "sf2base"}
	item.SetInfo("region", "JP")
	if got := item.MetaAttribute("CloneOf"); got != "sf2base" {
		t.Errorf("MetaAttribute(CloneOf) = %q", got)
	}
	if got := item.MetaAttribute("region"); got != "JP" {
		t.Errorf("MetaAttribute(region) = %q", got)
	}
	if got := item.MetaAttribute("missing"); got != "" {
		t.Errorf("MetaAttribute(missing) = %q", got)
	}
}
