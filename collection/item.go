// Package collection models game lists: items, their metadata, and the
// named playlists a front-end scrolls through.
package collection

import "strings"

// Item is one launchable entry in a collection. An item imported from
// another collection keeps a pointer to its home collection so
// favorites can be written back with a collection prefix.
type Item struct {
	Name          string
	Filepath      string
	File          string
	Title         string
	FullTitle     string
	Year          string
	Manufacturer  string
	Developer     string
	Genre         string
	CloneOf       string
	NumberPlayers string
	NumberButtons string
	CtrlType      string
	JoyWays       string
	Rating        string
	Score         string
	Playlist      string
	LastPlayed    string
	PlayCount     int
	TimeSpent     float64
	IsFavorite    bool
	Leaf          bool

	// Collection is the item's home collection, which may differ from
	// the collection whose menu currently shows it.
	Collection *Collection

	info map[string]string
}

// SetInfo records an extra metadata attribute.
func (i *Item) SetInfo(key, value string) {
	if i.info == nil {
		i.info = make(map[string]string)
	}
	i.info[key] = value
}

// Info looks up an extra metadata attribute.
func (i *Item) Info(key string) (string, bool) {
	v, ok := i.info[key]
	return v, ok
}

// MetaAttribute returns the named attribute, preferring the typed
// fields over extra info entries.
func (i *Item) MetaAttribute(attribute string) string {
	switch strings.ToLower(attribute) {
	case "name":
		return i.Name
	case "title":
		return i.Title
	case "fulltitle":
		return i.FullTitle
	case "year":
		return i.Year
	case "manufacturer":
		return i.Manufacturer
	case "developer":
		return i.Developer
	case "genre":
		return i.Genre
	case "cloneof":
		return i.CloneOf
	case "numberplayers":
		return i.NumberPlayers
	case "numberbuttons":
		return i.NumberButtons
	case "ctrltype":
		return i.CtrlType
	case "joyways":
		return i.JoyWays
	case "rating":
		return i.Rating
	case "score":
		return i.Score
	case "playlist":
		return i.Playlist
	}
	v, _ := i.info[strings.ToLower(attribute)]
	return v
}

// LowercaseTitle returns the title folded to lower case for sorting.
func (i *Item) LowercaseTitle() string {
	return strings.ToLower(i.Title)
}

// LowercaseFullTitle returns the full title folded to lower case.
func (i *Item) LowercaseFullTitle() string {
	return strings.ToLower(i.FullTitle)
}

// SaveName is the line written for this item in playlist files. An
// item whose name matches its home collection (a submenu entry) is
// written bare; everything else is qualified as _<collection>:<name>.
func (i *Item) SaveName() string {
	if i.Collection == nil || i.Collection.Name == i.Name {
		return i.Name
	}
	return "_" + i.Collection.Name + ":" + i.Name
}
