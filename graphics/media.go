package graphics

import (
	"os"
	"path/filepath"

	"github.com/CoinOPS-Official/retrofe/collection"
)

var imageExtensions = []string{"png", "PNG", "jpg", "JPG", "jpeg"}
var videoExtensions = []string{"mp4", "MP4", "avi", "AVI", "mkv", "MKV"}

// MediaLocator resolves artwork directories for collections and items.
// LayoutMode roots searches under the active layout; CommonMode uses
// the shared _common collection instead of per-collection directories.
type MediaLocator struct {
	BaseDir    string
	LayoutName string
	LayoutMode bool
	CommonMode bool
}

// CollectionDir returns the medium-artwork directory for a collection
// and media type.
func (l *MediaLocator) CollectionDir(collectionName, mediaType string) string {
	name := collectionName
	if l.CommonMode {
		name = "_common"
	}
	if l.LayoutMode {
		return filepath.Join(l.BaseDir, "layouts", l.LayoutName, "collections", name, "medium_artwork", mediaType)
	}
	return filepath.Join(l.BaseDir, "collections", name, "medium_artwork", mediaType)
}

// SystemDir returns the system-artwork directory keyed by an item
// name (used when the item is itself a collection entry).
func (l *MediaLocator) SystemDir(itemName string) string {
	name := itemName
	if l.CommonMode {
		name = "_common"
	}
	if l.LayoutMode {
		return filepath.Join(l.BaseDir, "layouts", l.LayoutName, "collections", name, "system_artwork")
	}
	return filepath.Join(l.BaseDir, "collections", name, "system_artwork")
}

// FindFile probes a directory for name.<ext> over the extension list
// and returns the first hit.
func FindFile(dir, name string, extensions []string) (string, bool) {
	if dir == "" || name == "" {
		return "", false
	}
	for _, ext := range extensions {
		path := filepath.Join(dir, name+"."+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// mediaCandidates composes the ordered name list probed for an item's
// artwork: name, full title, clone parent, a type-dependent attribute,
// then the shared default.
func mediaCandidates(item *collection.Item, mediaType string) []string {
	names := []string{item.Name, item.FullTitle}
	if item.CloneOf != "" {
		names = append(names, item.CloneOf)
	}
	attr := item.MetaAttribute(mediaType)
	if mediaType == "developer" && attr == "" {
		attr = item.Manufacturer
	}
	if attr != "" {
		names = append(names, attr)
	}
	names = append(names, "default")
	return names
}
