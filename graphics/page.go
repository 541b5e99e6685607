package graphics

import (
	"log"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/CoinOPS-Official/retrofe/collection"
	"github.com/CoinOPS-Official/retrofe/graphics/animate"
	"github.com/CoinOPS-Official/retrofe/storage"
)

// NumLayers is the number of draw layers. Within a monitor, layer 0 is
// drawn first.
const NumLayers = 20

// settingsPlaylistName is never entered by playlist cycling or random
// selection.
const settingsPlaylistName = "settings"

// ScrollDirection is a scroll intent from the input layer.
type ScrollDirection int

const (
	ScrollDirectionIdle ScrollDirection = iota
	ScrollDirectionForward
	ScrollDirectionBack
)

// SoundChunk is the contract page event sounds satisfy.
type SoundChunk interface {
	Play()
	IsPlaying() bool
}

// menuFrame is one collection on the page's navigation stack.
type menuFrame struct {
	collection   *collection.Collection
	playlistName string
	queueDelete  bool
}

// Page composes menus and layer components into one navigable screen.
// Menus are kept per depth; pushing a sub-collection activates the
// next depth, popping returns to the previous one.
type Page struct {
	settings *storage.Settings

	menus        [][]*ScrollingList
	menuDepth    int
	activeMenu   []*ScrollingList
	anActive     *ScrollingList
	playlistMenu *ScrollingList

	layerComponents []Component

	frames       []*menuFrame
	deleteFrames []*menuFrame

	selectedItem        *collection.Item
	lastPlaylistOffsets map[string]int

	scrollActive bool
	minShowTime  float64

	loadSound      SoundChunk
	unloadSound    SoundChunk
	highlightSound SoundChunk
	selectSound    SoundChunk
}

// NewPage returns an empty page. Menus and layer components are
// installed by the layout loader.
func NewPage(settings *storage.Settings) *Page {
	return &Page{
		settings:            settings,
		lastPlaylistOffsets: make(map[string]int),
	}
}

// PushMenu registers a menu at a depth, growing the depth table as
// needed. A playlist-typed menu becomes the page's playlist menu.
func (p *Page) PushMenu(menu *ScrollingList, depth int) {
	if menu == nil {
		return
	}
	if depth > len(p.menus) {
		depth = len(p.menus)
	}
	for len(p.menus) <= depth {
		p.menus = append(p.menus, nil)
	}
	p.menus[depth] = append(p.menus[depth], menu)
	if menu.IsPlaylist() {
		p.playlistMenu = menu
	}
}

// AddLayerComponent registers a non-menu component for draw and event
// dispatch.
func (p *Page) AddLayerComponent(c Component) {
	if c != nil {
		p.layerComponents = append(p.layerComponents, c)
	}
}

// LayerComponents returns the registered non-menu components.
func (p *Page) LayerComponents() []Component { return p.layerComponents }

// SetSounds installs the page event sounds. Any of them may be nil.
func (p *Page) SetSounds(load, unload, highlight, sel SoundChunk) {
	p.loadSound = load
	p.unloadSound = unload
	p.highlightSound = highlight
	p.selectSound = sel
}

// MenuDepth returns the current navigation depth.
func (p *Page) MenuDepth() int { return p.menuDepth }

// ActiveMenus returns the menus at the current depth.
func (p *Page) ActiveMenus() []*ScrollingList { return p.activeMenu }

// anActiveMenu returns the first non-playlist menu at the current
// depth, cached until the depth changes.
func (p *Page) anActiveMenu() *ScrollingList {
	if p.anActive != nil {
		return p.anActive
	}
	for _, m := range p.activeMenu {
		if m != nil && !m.IsPlaylist() {
			p.anActive = m
			return m
		}
	}
	return nil
}

func (p *Page) currentFrame() *menuFrame {
	if len(p.frames) == 0 {
		return nil
	}
	return p.frames[len(p.frames)-1]
}

// PlaylistName returns the active playlist name, empty when no
// collection is pushed.
func (p *Page) PlaylistName() string {
	if f := p.currentFrame(); f != nil {
		return f.playlistName
	}
	return ""
}

// CollectionName returns the active collection name, empty when no
// collection is pushed.
func (p *Page) CollectionName() string {
	if f := p.currentFrame(); f != nil {
		return f.collection.Name
	}
	return ""
}

// CurrentCollection returns the active collection, nil when none is
// pushed.
func (p *Page) CurrentCollection() *collection.Collection {
	if f := p.currentFrame(); f != nil {
		return f.collection
	}
	return nil
}

// setActiveMenuItems points a menu at the frame's current playlist, or
// at the playlist name list for a playlist-typed menu.
func (p *Page) setActiveMenuItems(f *menuFrame, menu *ScrollingList) {
	if menu == nil {
		return
	}
	if menu.IsPlaylist() && len(f.collection.PlaylistNames()) > 0 {
		menu.SetItems(f.collection.PlaylistMenuItems())
		return
	}
	items, _ := f.collection.Playlist(f.playlistName)
	menu.SetItems(items)
}

// PushCollection enters a collection. When a collection is already
// active, the active menus are cloned into the next depth first.
func (p *Page) PushCollection(c *collection.Collection) bool {
	if c == nil {
		return false
	}

	if len(p.menus) <= p.menuDepth && p.anActiveMenu() != nil {
		for _, m := range p.activeMenu {
			if m == nil {
				continue
			}
			clone := m.Clone()
			if clone.IsPlaylist() {
				p.playlistMenu = clone
			}
			p.PushMenu(clone, p.menuDepth)
		}
	}

	if len(p.menus) == 0 {
		log.Printf("layout has no menus")
	} else {
		depth := p.menuDepth
		if depth >= len(p.menus) {
			depth = len(p.menus) - 1
		}
		p.activeMenu = p.menus[depth]
		p.anActive = nil
		p.selectedItem = nil
	}

	f := &menuFrame{collection: c}
	if names := c.PlaylistNames(); len(names) > 0 {
		f.playlistName = names[0]
	}
	p.frames = append(p.frames, f)

	for _, m := range p.activeMenu {
		if m == nil {
			continue
		}
		m.SetCollectionName(c.Name)
		p.setActiveMenuItems(f, m)
	}

	p.playlistChange()
	if p.menuDepth < len(p.menus) {
		p.menuDepth++
	}
	return true
}

// PopCollection leaves the current collection and returns to the
// previous depth. The root collection cannot be popped.
func (p *Page) PopCollection() bool {
	if p.anActiveMenu() == nil || p.menuDepth <= 1 || len(p.frames) <= 1 {
		return false
	}

	leaving := p.currentFrame()
	leaving.queueDelete = true
	p.deleteFrames = append(p.deleteFrames, leaving)
	p.frames = p.frames[:len(p.frames)-1]

	for _, m := range p.menus[p.menuDepth-1] {
		if m != nil {
			m.FreeGraphicsMemory()
		}
	}

	f := p.currentFrame()
	if p.playlistMenu != nil && len(f.collection.PlaylistNames()) > 0 {
		p.playlistMenu.SetItems(f.collection.PlaylistMenuItems())
	}

	p.menuDepth--
	p.activeMenu = p.menus[p.menuDepth-1]
	p.anActive = nil
	p.selectedItem = nil

	for _, m := range p.activeMenu {
		if m != nil {
			m.AllocateGraphicsMemory()
		}
	}
	p.playlistChange()
	return true
}

// Cleanup drops collection frames queued for deletion on pop.
func (p *Page) Cleanup() {
	kept := p.deleteFrames[:0]
	for _, f := range p.deleteFrames {
		if !f.queueDelete {
			kept = append(kept, f)
		}
	}
	p.deleteFrames = kept
}

// setSelectedItem refreshes the selected item cache from the active
// menu.
func (p *Page) setSelectedItem() {
	if amenu := p.anActiveMenu(); amenu != nil {
		p.selectedItem = amenu.SelectedItem()
	}
}

// SelectedItem returns the selected item, resolving it from the active
// menu when the cache is empty.
func (p *Page) SelectedItem() *collection.Item {
	if p.selectedItem == nil {
		p.setSelectedItem()
	}
	return p.selectedItem
}

// SelectedItemOffset returns the item offset positions away from the
// selection on the active menu.
func (p *Page) SelectedItemOffset(offset int) *collection.Item {
	amenu := p.anActiveMenu()
	if amenu == nil {
		return nil
	}
	return amenu.ItemByOffset(offset)
}

// RemoveSelectedItem drops the selected item cache.
func (p *Page) RemoveSelectedItem() {
	p.selectedItem = nil
}

// OnNewItemSelected refreshes the selection cache and rebuilds slot
// media after a jump that moved the window without scrolling.
func (p *Page) OnNewItemSelected() {
	if p.anActiveMenu() == nil {
		return
	}
	p.setSelectedItem()
	p.ReallocateMenuSpritePoints(false)
}

// onNewScrollItemSelected refreshes the selection cache after a scroll
// step. Scrolling already rebuilt the one slot that changed.
func (p *Page) onNewScrollItemSelected() {
	p.setSelectedItem()
}

// RememberSelectedItem records the active offset for the current
// playlist so it can be restored later.
func (p *Page) RememberSelectedItem() {
	amenu := p.anActiveMenu()
	if amenu == nil || amenu.Size() == 0 {
		return
	}
	if name := p.PlaylistName(); name != "" && p.selectedItem != nil {
		p.lastPlaylistOffsets[name] = amenu.ScrollOffsetIndex()
	}
}

// ReturnToRememberSelectedItem restores the remembered offset for the
// current playlist.
func (p *Page) ReturnToRememberSelectedItem() {
	if p.anActiveMenu() == nil {
		return
	}
	if name := p.PlaylistName(); name != "" {
		if offset := p.lastPlaylistOffsets[name]; offset != 0 {
			p.SetScrollOffsetIndex(offset)
		}
	}
	p.OnNewItemSelected()
}

// SetScrollOffsetIndex moves every non-playlist active menu to the
// given item index.
func (p *Page) SetScrollOffsetIndex(index int) {
	if p.anActiveMenu() == nil {
		return
	}
	for _, m := range p.activeMenu {
		if m != nil && !m.IsPlaylist() {
			m.SetScrollOffsetIndex(index)
		}
	}
}

// ScrollOffsetIndex returns the active menu's selected item index.
func (p *Page) ScrollOffsetIndex() int {
	amenu := p.anActiveMenu()
	if amenu == nil {
		return 0
	}
	return amenu.ScrollOffsetIndex()
}

// playlistChange propagates the playlist name to every active menu and
// layer component, syncs the playlist menu position, and broadcasts
// the change.
func (p *Page) playlistChange() {
	name := p.PlaylistName()
	for _, m := range p.activeMenu {
		if m != nil {
			m.SetPlaylist(name)
		}
	}
	for _, c := range p.layerComponents {
		c.SetPlaylist(name)
	}
	p.UpdatePlaylistMenuPosition()
	p.TriggerEventOnAllMenus("playlistChange")
}

// UpdatePlaylistMenuPosition moves the playlist menu's selection onto
// the active playlist name.
func (p *Page) UpdatePlaylistMenuPosition() {
	if p.playlistMenu == nil {
		return
	}
	if name := p.PlaylistName(); name != "" {
		p.playlistMenu.SelectItemByName(name)
	}
}

// PlaylistExists reports whether the active collection has a non-empty
// playlist with the given name.
func (p *Page) PlaylistExists(name string) bool {
	f := p.currentFrame()
	if f == nil {
		return false
	}
	items, ok := f.collection.Playlist(name)
	return ok && len(items) > 0
}

// randomizablePlaylist excludes playlists whose order is meaningful or
// whose content is configuration.
func randomizablePlaylist(name string) bool {
	return name != settingsPlaylistName && name != "lastplayed"
}

// SelectPlaylist switches the active playlist. A missing or empty
// target leaves the current playlist in place.
func (p *Page) SelectPlaylist(name string) {
	f := p.currentFrame()
	if f == nil {
		return
	}

	rememberMenu := p.settings == nil || p.settings.RememberMenu
	if rememberMenu {
		p.RememberSelectedItem()
	}

	items, ok := f.collection.Playlist(name)
	if !ok || len(items) == 0 {
		log.Printf("playlist %q missing or empty, keeping %q", name, f.playlistName)
		return
	}
	f.playlistName = name

	for _, m := range p.activeMenu {
		p.setActiveMenuItems(f, m)
	}

	offset := 0
	if rememberMenu {
		offset = p.lastPlaylistOffsets[name]
	}
	if offset == 0 && p.settings != nil && p.settings.RandomStart && randomizablePlaylist(name) {
		offset = rand.Intn(len(items))
	}
	p.SetScrollOffsetIndex(offset)
	p.selectedItem = nil
	p.setSelectedItem()
	p.ReallocateMenuSpritePoints(false)
	p.playlistChange()
}

// stepPlaylist walks the sorted playlist names cyclically until a
// non-empty one is found.
func (p *Page) stepPlaylist(forward bool) {
	f := p.currentFrame()
	if f == nil {
		return
	}

	names := f.collection.PlaylistNames()
	current := f.playlistName
	for range names {
		if forward {
			current = f.collection.NextPlaylist(current)
		} else {
			current = f.collection.PrevPlaylist(current)
		}
		if items, ok := f.collection.Playlist(current); ok && len(items) > 0 {
			break
		}
	}
	p.SelectPlaylist(current)
}

// NextPlaylist advances to the next non-empty playlist.
func (p *Page) NextPlaylist() { p.stepPlaylist(true) }

// PrevPlaylist moves back to the previous non-empty playlist.
func (p *Page) PrevPlaylist() { p.stepPlaylist(false) }

// cyclePlaylists returns the configured cycle order, or every playlist
// in sorted order when no cycle is configured.
func (p *Page) cyclePlaylists() []string {
	if p.settings != nil && len(p.settings.PlaylistCycle) > 0 {
		return p.settings.PlaylistCycle
	}
	if f := p.currentFrame(); f != nil {
		return f.collection.PlaylistNames()
	}
	return nil
}

// cycleEligible skips the settings playlist and names that do not
// exist or are empty.
func (p *Page) cycleEligible(name string) bool {
	return name != settingsPlaylistName && p.PlaylistExists(name)
}

// NextCyclePlaylist advances within the configured playlist cycle.
func (p *Page) NextCyclePlaylist() {
	list := p.cyclePlaylists()
	if len(list) == 0 {
		return
	}
	p.PlaylistNextEnter()
	current := p.PlaylistName()

	start := -1
	for i, name := range list {
		if name == current {
			start = i
			break
		}
	}
	if start < 0 {
		for _, name := range list {
			if p.cycleEligible(name) {
				p.SelectPlaylist(name)
				return
			}
		}
		return
	}
	for i := 1; i <= len(list); i++ {
		name := list[(start+i)%len(list)]
		if name == current {
			return
		}
		if p.cycleEligible(name) {
			p.SelectPlaylist(name)
			return
		}
	}
}

// PrevCyclePlaylist moves backward within the configured playlist
// cycle.
func (p *Page) PrevCyclePlaylist() {
	list := p.cyclePlaylists()
	if len(list) == 0 {
		return
	}
	p.PlaylistPrevEnter()
	current := p.PlaylistName()

	start := -1
	for i, name := range list {
		if name == current {
			start = i
			break
		}
	}
	if start < 0 {
		for i := len(list) - 1; i >= 0; i-- {
			if p.cycleEligible(list[i]) {
				p.SelectPlaylist(list[i])
				return
			}
		}
		return
	}
	for i := 1; i <= len(list); i++ {
		name := list[((start-i)%len(list)+len(list))%len(list)]
		if name == current {
			return
		}
		if p.cycleEligible(name) {
			p.SelectPlaylist(name)
			return
		}
	}
}

// SelectRandomPlaylist jumps to a random eligible playlist. Favorites,
// lastplayed, settings and configured exclusions never come up.
func (p *Page) SelectRandomPlaylist() {
	f := p.currentFrame()
	if f == nil {
		return
	}

	excluded := func(name string) bool {
		if name == settingsPlaylistName || name == "favorites" || name == "lastplayed" {
			return true
		}
		if p.settings != nil {
			for _, e := range p.settings.RandomPlaylistExclude {
				if name == e {
					return true
				}
			}
		}
		return false
	}

	var candidates []string
	for _, name := range f.collection.PlaylistNames() {
		if items, ok := f.collection.Playlist(name); ok && len(items) > 0 && !excluded(name) {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return
	}
	p.SelectPlaylist(candidates[rand.Intn(len(candidates))])
}

// FavPlaylist toggles between the favorites playlist and the full
// list.
func (p *Page) FavPlaylist() {
	if p.PlaylistName() == "favorites" {
		p.SelectPlaylist("all")
	} else {
		p.SelectPlaylist("favorites")
	}
}

// ToggleFavorite adds or removes the selected item from the favorites
// playlist. Removing while viewing favorites keeps the selection on
// the item that followed the removed one.
func (p *Page) ToggleFavorite() {
	item := p.SelectedItem()
	f := p.currentFrame()
	if item == nil || f == nil {
		return
	}

	if p.PlaylistName() == "favorites" && item.IsFavorite {
		p.removeFavorite(f, item)
		return
	}
	f.collection.ToggleFavorite(item)
}

func (p *Page) removeFavorite(f *menuFrame, item *collection.Item) {
	var next *collection.Item
	if amenu := p.anActiveMenu(); amenu != nil {
		next = amenu.ItemByOffset(1)
	}

	f.collection.ToggleFavorite(item)

	for _, m := range p.activeMenu {
		p.setActiveMenuItems(f, m)
	}
	if next != nil && next != item {
		for _, m := range p.activeMenu {
			if m != nil && !m.IsPlaylist() {
				m.SelectItemByName(next.Name)
			}
		}
	}
	p.selectedItem = nil
	p.OnNewItemSelected()
}

// Scroll steps the active menus whose playlist flag matches and
// broadcasts the matching scroll event to layer components.
func (p *Page) Scroll(forward, playlist bool) {
	for _, m := range p.activeMenu {
		if m != nil && m.IsPlaylist() == playlist {
			m.Scroll(forward)
		}
	}
	event := "menuScroll"
	if playlist {
		event = "playlistScroll"
	}
	for _, c := range p.layerComponents {
		c.Trigger(event, p.menuDepth-1)
	}
	p.onNewScrollItemSelected()
	if p.highlightSound != nil {
		p.highlightSound.Play()
	}
}

// menuScrollBroadcast fires menuScroll on every layer component.
func (p *Page) menuScrollBroadcast() {
	if p.selectedItem == nil {
		return
	}
	for _, c := range p.layerComponents {
		c.Trigger("menuScroll", p.menuDepth-1)
	}
}

// SetScrolling tracks the held-scroll state. The first transition into
// an active direction broadcasts menuScroll.
func (p *Page) SetScrolling(direction ScrollDirection) {
	switch direction {
	case ScrollDirectionForward, ScrollDirectionBack:
		if !p.scrollActive {
			p.menuScrollBroadcast()
		}
		p.scrollActive = true
	default:
		p.scrollActive = false
	}
}

// IsMenuScrolling reports whether a scroll direction is held.
func (p *Page) IsMenuScrolling() bool { return p.scrollActive }

// IsMenuFastScrolling reports a held scroll that has accelerated to
// the minimum period.
func (p *Page) IsMenuFastScrolling() bool {
	amenu := p.anActiveMenu()
	return p.scrollActive && amenu != nil && amenu.IsFastScrolling()
}

// IsHorizontalScroll reports the active menu's scroll axis.
func (p *Page) IsHorizontalScroll() bool {
	amenu := p.anActiveMenu()
	return amenu != nil && amenu.HorizontalScroll()
}

// ResetScrollPeriod returns every active menu to its resting scroll
// speed.
func (p *Page) ResetScrollPeriod() {
	for _, m := range p.activeMenu {
		if m != nil {
			m.ResetScrollPeriod()
		}
	}
}

// UpdateScrollPeriod accelerates every active menu's held scroll.
func (p *Page) UpdateScrollPeriod() {
	for _, m := range p.activeMenu {
		if m != nil {
			m.UpdateScrollPeriod()
		}
	}
}

// PageScroll jumps a full ring of items in the given direction.
func (p *Page) PageScroll(direction ScrollDirection) {
	amenu := p.anActiveMenu()
	if amenu == nil {
		return
	}
	if direction == ScrollDirectionForward {
		amenu.PageDown()
	} else if direction == ScrollDirectionBack {
		amenu.PageUp()
	}
	index := amenu.ScrollOffsetIndex()
	for _, m := range p.activeMenu {
		if m != nil && !m.IsPlaylist() {
			m.SetScrollOffsetIndex(index)
		}
	}
	p.selectedItem = nil
	p.OnNewItemSelected()
}

// SelectRandom jumps to a random item.
func (p *Page) SelectRandom() {
	amenu := p.anActiveMenu()
	if amenu == nil {
		return
	}
	amenu.Random()
	index := amenu.ScrollOffsetIndex()
	for _, m := range p.activeMenu {
		if m != nil && !m.IsPlaylist() {
			m.SetScrollOffsetIndex(index)
		}
	}
	p.selectedItem = nil
	p.OnNewItemSelected()
}

// LetterScroll jumps to the next or previous alphabetic group.
func (p *Page) LetterScroll(direction ScrollDirection) {
	for _, m := range p.activeMenu {
		if m == nil || m.IsPlaylist() {
			continue
		}
		if direction == ScrollDirectionForward {
			m.LetterUp()
		} else if direction == ScrollDirectionBack {
			m.LetterDown()
		}
	}
	p.selectedItem = nil
	p.OnNewItemSelected()
}

// MetaScroll jumps to the next or previous value of a metadata
// attribute.
func (p *Page) MetaScroll(direction ScrollDirection, attribute string) {
	attribute = strings.ToLower(attribute)
	for _, m := range p.activeMenu {
		if m == nil || m.IsPlaylist() {
			continue
		}
		if direction == ScrollDirectionForward {
			m.MetaUp(attribute)
		} else if direction == ScrollDirectionBack {
			m.MetaDown(attribute)
		}
	}
	p.selectedItem = nil
	p.OnNewItemSelected()
}

// TriggerEventOnAllMenus broadcasts an event to every menu at every
// depth and to the layer components. Menus at the current depth get
// the high slot index for their depth; menus at other depths and
// layer components get the bare depth.
func (p *Page) TriggerEventOnAllMenus(event string) {
	if p.selectedItem == nil {
		return
	}
	depth := p.menuDepth - 1
	for i, menuList := range p.menus {
		index := depth
		if depth == i {
			index = animate.MenuIndexHigh + depth
		}
		for _, m := range menuList {
			if m != nil {
				m.TriggerEventOnAll(event, index)
			}
		}
	}
	for _, c := range p.layerComponents {
		c.Trigger(event, depth)
	}
}

// TriggerEvent fires an event on the layer components only.
func (p *Page) TriggerEvent(event string) {
	for _, c := range p.layerComponents {
		c.Trigger(event, -1)
	}
}

// EnterMenu broadcasts the sub-menu entry transition.
func (p *Page) EnterMenu() { p.TriggerEventOnAllMenus("menuEnter") }

// ExitMenu broadcasts the sub-menu exit transition.
func (p *Page) ExitMenu() { p.TriggerEventOnAllMenus("menuExit") }

// EnterGame broadcasts the launch transition.
func (p *Page) EnterGame() { p.TriggerEventOnAllMenus("gameEnter") }

// ExitGame broadcasts the return-from-launch transition.
func (p *Page) ExitGame() { p.TriggerEventOnAllMenus("gameExit") }

// HighlightEnter broadcasts the selection highlight start.
func (p *Page) HighlightEnter() { p.TriggerEventOnAllMenus("highlightEnter") }

// HighlightExit broadcasts the selection highlight end.
func (p *Page) HighlightExit() { p.TriggerEventOnAllMenus("highlightExit") }

// PlaylistEnter broadcasts arrival in a playlist.
func (p *Page) PlaylistEnter() {
	p.setSelectedItem()
	p.TriggerEventOnAllMenus("playlistEnter")
}

// PlaylistExit broadcasts departure from a playlist.
func (p *Page) PlaylistExit() { p.TriggerEventOnAllMenus("playlistExit") }

// PlaylistNextEnter broadcasts forward playlist navigation.
func (p *Page) PlaylistNextEnter() { p.TriggerEventOnAllMenus("playlistNextEnter") }

// PlaylistNextExit ends forward playlist navigation.
func (p *Page) PlaylistNextExit() { p.TriggerEventOnAllMenus("playlistNextExit") }

// PlaylistPrevEnter broadcasts backward playlist navigation.
func (p *Page) PlaylistPrevEnter() { p.TriggerEventOnAllMenus("playlistPrevEnter") }

// PlaylistPrevExit ends backward playlist navigation.
func (p *Page) PlaylistPrevExit() { p.TriggerEventOnAllMenus("playlistPrevExit") }

// MenuJumpEnter broadcasts a letter, meta or page jump.
func (p *Page) MenuJumpEnter() {
	p.setSelectedItem()
	p.TriggerEventOnAllMenus("menuJumpEnter")
}

// MenuJumpExit ends a jump transition.
func (p *Page) MenuJumpExit() { p.TriggerEventOnAllMenus("menuJumpExit") }

// AttractEnter broadcasts attract mode start.
func (p *Page) AttractEnter() { p.TriggerEventOnAllMenus("attractEnter") }

// Attract broadcasts an attract mode tick.
func (p *Page) Attract() { p.TriggerEventOnAllMenus("attract") }

// AttractExit broadcasts attract mode end.
func (p *Page) AttractExit() { p.TriggerEventOnAllMenus("attractExit") }

// JukeboxJump broadcasts a jukebox skip.
func (p *Page) JukeboxJump() { p.TriggerEventOnAllMenus("jukeboxJump") }

// Start fires the enter animation on everything and plays the load
// sound.
func (p *Page) Start() {
	for _, menuList := range p.menus {
		for _, m := range menuList {
			if m != nil {
				m.TriggerEventOnAll("enter", -1)
			}
		}
	}
	if p.loadSound != nil {
		p.loadSound.Play()
	}
	for _, c := range p.layerComponents {
		c.Trigger("enter", -1)
	}
}

// Stop fires the exit animation on everything and plays the unload
// sound.
func (p *Page) Stop() {
	for _, menuList := range p.menus {
		for _, m := range menuList {
			if m != nil {
				m.TriggerEventOnAll("exit", -1)
			}
		}
	}
	if p.unloadSound != nil {
		p.unloadSound.Play()
	}
	for _, c := range p.layerComponents {
		c.Trigger("exit", -1)
	}
}

// PlaySelect plays the select sound.
func (p *Page) PlaySelect() {
	if p.selectSound != nil {
		p.selectSound.Play()
	}
}

// IsSelectPlaying reports whether the select sound is still audible.
func (p *Page) IsSelectPlaying() bool {
	return p.selectSound != nil && p.selectSound.IsPlaying()
}

// SetMinShowTime sets the minimum time the page stays up before a
// launch may proceed.
func (p *Page) SetMinShowTime(t float64) { p.minShowTime = t }

// MinShowTime returns the minimum show time.
func (p *Page) MinShowTime() float64 { return p.minShowTime }

// ReallocateMenuSpritePoints rebuilds slot media on the active menus.
// The playlist menu is skipped unless requested.
func (p *Page) ReallocateMenuSpritePoints(updatePlaylistMenu bool) {
	for _, m := range p.activeMenu {
		if m == nil || (m.IsPlaylist() && !updatePlaylistMenu) {
			continue
		}
		m.DeallocateSpritePoints()
		m.AllocateSpritePoints()
	}
}

// Update ticks every menu and layer component. Components flagged for
// removal after their animation completes are dropped here.
func (p *Page) Update(dt float64) {
	name := p.PlaylistName()

	for _, menuList := range p.menus {
		for _, m := range menuList {
			if m == nil {
				continue
			}
			m.SetPlaylist(name)
			m.Update(dt)
		}
	}

	kept := p.layerComponents[:0]
	for _, c := range p.layerComponents {
		c.SetPlaylist(name)
		if c.Update(dt) && c.AnimationDoneRemove() {
			c.FreeGraphicsMemory()
			continue
		}
		kept = append(kept, c)
	}
	p.layerComponents = kept

	p.Cleanup()
}

// Draw renders one monitor, walking layers from back to front. Within
// a layer, layer components draw before menu slots.
func (p *Page) Draw(screen *ebiten.Image, monitor int) {
	for layer := 0; layer < NumLayers; layer++ {
		for _, c := range p.layerComponents {
			if c.View().Layer == layer && c.View().Monitor == monitor {
				c.Draw(screen)
			}
		}
		for _, menuList := range p.menus {
			for _, m := range menuList {
				if m != nil {
					m.DrawLayer(screen, layer, monitor)
				}
			}
		}
	}
}

// AudioScale returns the global volume multiplier from settings, 0
// when muted.
func (p *Page) AudioScale() float64 {
	if p.settings == nil {
		return 1
	}
	if p.settings.Audio.Muted {
		return 0
	}
	return p.settings.Audio.Volume
}

// IsIdle reports whether every menu and layer component is idle.
func (p *Page) IsIdle() bool {
	for _, menuList := range p.menus {
		for _, m := range menuList {
			if m != nil && !m.IsIdle() {
				return false
			}
		}
	}
	for _, c := range p.layerComponents {
		if !c.IsIdle() {
			return false
		}
	}
	return true
}

// IsAttractIdle is IsIdle without counting attract animations as idle.
func (p *Page) IsAttractIdle() bool {
	for _, menuList := range p.menus {
		for _, m := range menuList {
			if m != nil && !m.IsAttractIdle() {
				return false
			}
		}
	}
	for _, c := range p.layerComponents {
		if !c.IsAttractIdle() {
			return false
		}
	}
	return true
}

// IsGraphicsIdle reports whether the layer components alone are idle.
func (p *Page) IsGraphicsIdle() bool {
	for _, c := range p.layerComponents {
		if !c.IsIdle() {
			return false
		}
	}
	return true
}

// IsPlaying reports whether any primary-monitor layer component has
// media playing.
func (p *Page) IsPlaying() bool {
	for _, c := range p.layerComponents {
		if c.View().Monitor == 0 && c.IsPlaying() {
			return true
		}
	}
	return false
}

// FreeGraphicsMemory releases all GPU and media resources held by the
// page's menus and components.
func (p *Page) FreeGraphicsMemory() {
	for _, menuList := range p.menus {
		for _, m := range menuList {
			if m != nil {
				m.FreeGraphicsMemory()
			}
		}
	}
	for _, c := range p.layerComponents {
		c.FreeGraphicsMemory()
	}
}

// AllocateGraphicsMemory re-acquires resources for the active depth
// and the layer components.
func (p *Page) AllocateGraphicsMemory() {
	for _, m := range p.activeMenu {
		if m != nil {
			m.AllocateGraphicsMemory()
		}
	}
	for _, c := range p.layerComponents {
		c.AllocateGraphicsMemory()
	}
}
