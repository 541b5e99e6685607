package collection

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a collection from <baseDir>/collections/<name>/: one
// leaf item per file in roms/, sub-collection entries from menu.txt,
// and the favorites playlist. The roms directory may be absent for a
// pure menu collection.
func Load(baseDir, name string) (*Collection, error) {
	c := New(name)
	dir := filepath.Join(baseDir, "collections", name)

	romsDir := filepath.Join(dir, "roms")
	entries, err := os.ReadDir(romsDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", romsDir, err)
	}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		file := e.Name()
		title := strings.TrimSuffix(file, filepath.Ext(file))
		c.Add(&Item{
			Name:       title,
			File:       file,
			Filepath:   filepath.Join(romsDir, file),
			Title:      title,
			FullTitle:  title,
			Leaf:       true,
			Collection: c,
		})
	}

	// menu.txt lists sub-collections shown as descendable entries.
	if f, err := os.Open(filepath.Join(dir, "menu.txt")); err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			c.Add(&Item{
				Name:       line,
				Title:      line,
				FullTitle:  line,
				Collection: c,
			})
		}
		f.Close()
	}

	c.SortItems()
	c.SetPlaylist("all", c.Items)
	if err := c.LoadFavorites(baseDir, nil); err != nil {
		log.Printf("collection %s: %v", name, err)
	}
	return c, nil
}
