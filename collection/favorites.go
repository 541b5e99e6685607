package collection

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FavoritesPath returns the favorites playlist file for a collection
// under the given base directory.
func FavoritesPath(baseDir, collectionName string) string {
	return filepath.Join(baseDir, "collections", collectionName, "playlists", "favorites.txt")
}

// SaveFavorites writes the favorites playlist to disk, one item per
// line, creating the playlists directory if needed. The write goes
// through a temp file and rename so a crash never leaves a truncated
// playlist. A collection without a pending save request is a no-op.
func (c *Collection) SaveFavorites(baseDir string) error {
	if !c.SaveRequest || c.Name == "" {
		return nil
	}

	path := FavoritesPath(baseDir, c.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating playlists dir: %w", err)
	}

	favs, _ := c.Playlist("favorites")
	var b strings.Builder
	for _, item := range favs {
		b.WriteString(item.SaveName())
		b.WriteByte('\n')
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing favorites: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing favorites: %w", err)
	}

	c.SaveRequest = false
	return nil
}

// LoadFavorites reads the favorites playlist from disk and installs
// it, marking matching items as favorites. A missing file leaves the
// collection with an empty favorites playlist.
func (c *Collection) LoadFavorites(baseDir string, resolve func(collectionName, itemName string) *Item) error {
	path := FavoritesPath(baseDir, c.Name)
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		c.SetPlaylist("favorites", nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening favorites: %w", err)
	}
	defer f.Close()

	var favs []*Item
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		collectionName, itemName := ParseSaveName(line, c.Name)

		var item *Item
		if resolve != nil {
			item = resolve(collectionName, itemName)
		} else if collectionName == c.Name {
			item = c.FindItem(itemName)
		}
		if item == nil {
			continue
		}
		item.IsFavorite = true
		favs = append(favs, item)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading favorites: %w", err)
	}

	c.SetPlaylist("favorites", favs)
	return nil
}

// ParseSaveName splits a playlist line into collection and item names.
// Lines of the form _<collection>:<name> name a foreign collection;
// anything else belongs to the owning collection.
func ParseSaveName(line, owner string) (collectionName, itemName string) {
	if strings.HasPrefix(line, "_") {
		if idx := strings.Index(line, ":"); idx > 1 {
			return line[1:idx], line[idx+1:]
		}
	}
	return owner, line
}
