package collection

import (
	"sort"
	"strings"
)

// Collection is a named list of items plus its playlists. Playlist
// names are kept in sorted order so cycling through them is stable
// across runs.
type Collection struct {
	Name         string
	ListPath     string
	Launcher     string
	MetadataType string

	Items []*Item

	// SaveRequest is set when the favorites playlist changed and has
	// not been written back yet.
	SaveRequest bool

	playlists     map[string][]*Item
	playlistOrder []string
}

// New returns an empty collection.
func New(name string) *Collection {
	return &Collection{
		Name:      name,
		playlists: make(map[string][]*Item),
	}
}

// LowercaseName returns the collection name folded to lower case.
func (c *Collection) LowercaseName() string {
	return strings.ToLower(c.Name)
}

// Add appends an item and claims it for this collection if it has no
// home yet.
func (c *Collection) Add(item *Item) {
	if item.Collection == nil {
		item.Collection = c
	}
	c.Items = append(c.Items, item)
}

// SetPlaylist installs a playlist, replacing any previous list of the
// same name.
func (c *Collection) SetPlaylist(name string, items []*Item) {
	if _, ok := c.playlists[name]; !ok {
		c.playlistOrder = append(c.playlistOrder, name)
		sort.Strings(c.playlistOrder)
	}
	c.playlists[name] = items
}

// Playlist returns the named playlist and whether it exists.
func (c *Collection) Playlist(name string) ([]*Item, bool) {
	items, ok := c.playlists[name]
	return items, ok
}

// PlaylistNames returns playlist names in sorted order.
func (c *Collection) PlaylistNames() []string {
	out := make([]string, len(c.playlistOrder))
	copy(out, c.playlistOrder)
	return out
}

// NextPlaylist returns the playlist name after current in sorted
// order, wrapping at the end. An unknown current name returns the
// first playlist.
func (c *Collection) NextPlaylist(current string) string {
	if len(c.playlistOrder) == 0 {
		return current
	}
	for i, name := range c.playlistOrder {
		if name == current {
			return c.playlistOrder[(i+1)%len(c.playlistOrder)]
		}
	}
	return c.playlistOrder[0]
}

// PrevPlaylist returns the playlist name before current in sorted
// order, wrapping at the start.
func (c *Collection) PrevPlaylist(current string) string {
	if len(c.playlistOrder) == 0 {
		return current
	}
	for i, name := range c.playlistOrder {
		if name == current {
			return c.playlistOrder[(i+len(c.playlistOrder)-1)%len(c.playlistOrder)]
		}
	}
	return c.playlistOrder[0]
}

// ToggleFavorite flips an item's favorite flag, updates the favorites
// playlist, and marks the collection for saving. The favorites list
// stays sorted by item name.
func (c *Collection) ToggleFavorite(item *Item) {
	item.IsFavorite = !item.IsFavorite
	favs := c.playlists["favorites"]
	if item.IsFavorite {
		favs = append(favs, item)
		sort.Slice(favs, func(a, b int) bool { return favs[a].Name < favs[b].Name })
	} else {
		for i, it := range favs {
			if it == item {
				favs = append(favs[:i], favs[i+1:]...)
				break
			}
		}
	}
	c.SetPlaylist("favorites", favs)
	c.SaveRequest = true
}

// UpdateLastPlayed moves an item to the front of the lastplayed
// playlist, bumps its play count, and caps the list length. The
// collection is marked for saving.
func (c *Collection) UpdateLastPlayed(item *Item, size int) {
	item.PlayCount++
	list := c.playlists["lastplayed"]
	for i, it := range list {
		if it == item {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	list = append([]*Item{item}, list...)
	if size > 0 && len(list) > size {
		list = list[:size]
	}
	c.SetPlaylist("lastplayed", list)
	c.SaveRequest = true
}

// PlaylistMenuItems returns one item per playlist, in sorted order.
// Playlist-typed menus list these instead of games.
func (c *Collection) PlaylistMenuItems() []*Item {
	items := make([]*Item, 0, len(c.playlistOrder))
	for _, name := range c.playlistOrder {
		items = append(items, &Item{
			Name:       name,
			Title:      name,
			FullTitle:  name,
			Collection: c,
		})
	}
	return items
}

// SortItems orders the item list by lowercase full title.
func (c *Collection) SortItems() {
	sort.Slice(c.Items, func(a, b int) bool {
		return c.Items[a].LowercaseFullTitle() < c.Items[b].LowercaseFullTitle()
	})
}

// FindItem returns the first item with the given name.
func (c *Collection) FindItem(name string) *Item {
	for _, it := range c.Items {
		if it.Name == name {
			return it
		}
	}
	return nil
}
