package graphics

import (
	"math"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/CoinOPS-Official/retrofe/collection"
	"github.com/CoinOPS-Official/retrofe/graphics/animate"
	"github.com/CoinOPS-Official/retrofe/video"
)

// scrollEpsilon is the change threshold below which a float property
// is considered unchanged between two scroll points.
const scrollEpsilon = 1e-4

// ListOptions carries the construction-time flags of a menu list.
type ListOptions struct {
	ImageType        string
	VideoType        string
	CollectionName   string
	SelectedImage    bool
	TextFallback     bool
	PlaylistType     bool
	HorizontalScroll bool
	UseTextureCache  bool

	// PrevLetterSubToCurrent makes a backward letter jump first land
	// on the start of the current letter block.
	PrevLetterSubToCurrent bool

	ListID   int
	NumLoops int
}

// scrollTarget is the precomputed neighbor tuple consulted for one
// slot during a scroll.
type scrollTarget struct {
	tweens *animate.Events
	cur    *ViewInfo
	next   *ViewInfo
}

// ScrollingList is a menu: a ring of component slots mapped over a
// sliding window of items. Scrolling rebuilds exactly one slot and
// retargets the rest with linear transitions to their neighbor's
// anchor.
type ScrollingList struct {
	*Base
	opts ListOptions

	items     []*collection.Item
	itemIndex int

	// selectedOffsetIndex is the slot treated as the selection.
	selectedOffsetIndex int

	scrollPoints []*ViewInfo
	tweenPoints  []*animate.Events

	// components is physical storage; head makes the ring rotation a
	// pure index remap.
	components []Component
	head       int

	forwardMap  []int
	backwardMap []int
	forwardTw   []scrollTarget
	backwardTw  []scrollTarget

	scrollPeriod       float64
	startScrollTime    float64
	minScrollTime      float64
	scrollAcceleration float64

	locator   *MediaLocator
	cache     *TextureCache
	videoPool *video.Pool
}

// NewScrollingList builds an empty list. Items and points are
// installed separately by the layout.
func NewScrollingList(base *Base, opts ListOptions, locator *MediaLocator, cache *TextureCache, videoPool *video.Pool) *ScrollingList {
	if !opts.UseTextureCache {
		cache = nil
	}
	return &ScrollingList{
		Base:      base,
		opts:      opts,
		locator:   locator,
		cache:     cache,
		videoPool: videoPool,
	}
}

// Clone builds an independent list sharing this list's layout anchors
// and animation tables. The page clones active menus when a deeper
// collection is pushed.
func (l *ScrollingList) Clone() *ScrollingList {
	base := NewBase(l.Page(), l.Pool())
	base.BaseViewInfo = l.BaseViewInfo
	base.SetTweens(l.Tweens())
	nl := NewScrollingList(base, l.opts, l.locator, l.cache, l.videoPool)
	nl.scrollAcceleration = l.scrollAcceleration
	nl.startScrollTime = l.startScrollTime
	nl.scrollPeriod = l.startScrollTime
	nl.minScrollTime = l.minScrollTime
	nl.selectedOffsetIndex = l.selectedOffsetIndex
	if l.scrollPoints != nil {
		nl.SetPoints(l.scrollPoints, l.tweenPoints)
	}
	return nl
}

func loopIncrement(offset, index, size int) int {
	if size == 0 {
		return 0
	}
	return (offset + index) % size
}

func loopDecrement(offset, index, size int) int {
	if size == 0 {
		return 0
	}
	return ((offset+size-index)%size + size) % size
}

// slot returns the component at logical ring position i.
func (l *ScrollingList) slot(i int) Component {
	if len(l.components) == 0 {
		return nil
	}
	return l.components[(l.head+i)%len(l.components)]
}

func (l *ScrollingList) setSlot(i int, c Component) {
	l.components[(l.head+i)%len(l.components)] = c
}

// IsPlaylist reports whether this menu lists playlist names rather
// than items.
func (l *ScrollingList) IsPlaylist() bool { return l.opts.PlaylistType }

// SetCollectionName points artwork lookups at another collection. The
// page calls this when a sub-collection is pushed.
func (l *ScrollingList) SetCollectionName(name string) { l.opts.CollectionName = name }

// CollectionName returns the collection artwork lookups resolve
// against.
func (l *ScrollingList) CollectionName() string { return l.opts.CollectionName }

// Items returns the backing item list.
func (l *ScrollingList) Items() []*collection.Item { return l.items }

// Options returns a copy of the construction flags, used when a menu
// is cloned into a deeper page level.
func (l *ScrollingList) Options() ListOptions { return l.opts }

// Points returns the installed anchors and animation tables, used when
// a menu is cloned into a deeper page level.
func (l *ScrollingList) Points() ([]*ViewInfo, []*animate.Events) {
	return l.scrollPoints, l.tweenPoints
}

// HorizontalScroll reports the scroll axis flag from the layout.
func (l *ScrollingList) HorizontalScroll() bool { return l.opts.HorizontalScroll }

// Size returns the item count.
func (l *ScrollingList) Size() int { return len(l.items) }

// Capacity returns the number of slots.
func (l *ScrollingList) Capacity() int { return len(l.components) }

// SetScrollAcceleration sets the per-step period reduction.
func (l *ScrollingList) SetScrollAcceleration(v float64) { l.scrollAcceleration = v }

// ScrollAcceleration returns the per-step scroll speedup in seconds.
func (l *ScrollingList) ScrollAcceleration() float64 { return l.scrollAcceleration }

// SetStartScrollTime sets the initial scroll period.
func (l *ScrollingList) SetStartScrollTime(v float64) {
	l.startScrollTime = v
	l.scrollPeriod = v
}

// StartScrollTime returns the initial scroll period in seconds.
func (l *ScrollingList) StartScrollTime() float64 { return l.startScrollTime }

// SetMinScrollTime sets the fastest allowed scroll period.
func (l *ScrollingList) SetMinScrollTime(v float64) { l.minScrollTime = v }

// MinScrollTime returns the fastest allowed scroll period.
func (l *ScrollingList) MinScrollTime() float64 { return l.minScrollTime }

// ResetScrollPeriod returns the period to its resting value.
func (l *ScrollingList) ResetScrollPeriod() { l.scrollPeriod = l.startScrollTime }

// UpdateScrollPeriod accelerates a held scroll, clamped at the
// minimum.
func (l *ScrollingList) UpdateScrollPeriod() {
	l.scrollPeriod -= l.scrollAcceleration
	if l.scrollPeriod < l.minScrollTime {
		l.scrollPeriod = l.minScrollTime
	}
}

// IsFastScrolling reports whether the scroll period has hit its
// floor.
func (l *ScrollingList) IsFastScrolling() bool {
	return l.scrollPeriod <= l.minScrollTime
}

// SetItems replaces the backing item list and aligns the ring so the
// selected slot shows the first item.
func (l *ScrollingList) SetItems(items []*collection.Item) {
	l.items = items
	l.itemIndex = loopDecrement(0, l.selectedOffsetIndex, len(items))
}

// SetSelectedOffset picks which slot is treated as the selection.
func (l *ScrollingList) SetSelectedOffset(index int) {
	l.selectedOffsetIndex = index
}

// SelectedOffset returns the selected slot index.
func (l *ScrollingList) SelectedOffset() int { return l.selectedOffsetIndex }

// SelectedIndex returns the item index under the selected slot.
func (l *ScrollingList) SelectedIndex() int {
	return loopIncrement(l.itemIndex, l.selectedOffsetIndex, len(l.items))
}

// SetSelectedIndex scrolls the window so the given item index lands
// under the selected slot.
func (l *ScrollingList) SetSelectedIndex(index int) {
	if len(l.items) == 0 {
		return
	}
	l.itemIndex = loopDecrement(index, l.selectedOffsetIndex, len(l.items))
}

// ScrollOffsetIndex is SelectedIndex under the name pages use when
// remembering menu positions.
func (l *ScrollingList) ScrollOffsetIndex() int { return l.SelectedIndex() }

// SetScrollOffsetIndex restores a remembered position.
func (l *ScrollingList) SetScrollOffsetIndex(index int) { l.SetSelectedIndex(index) }

// SelectedItem returns the item under the selected slot, nil when
// empty.
func (l *ScrollingList) SelectedItem() *collection.Item {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[l.SelectedIndex()]
}

// ItemByOffset returns the item offset positions away from the
// selection.
func (l *ScrollingList) ItemByOffset(offset int) *collection.Item {
	if len(l.items) == 0 {
		return nil
	}
	index := l.SelectedIndex()
	if offset >= 0 {
		index = loopIncrement(index, offset, len(l.items))
	} else {
		index = loopDecrement(index, -offset, len(l.items))
	}
	return l.items[index]
}

// SelectedItemName returns the selected item's name, empty when the
// list is empty.
func (l *ScrollingList) SelectedItemName() string {
	if item := l.SelectedItem(); item != nil {
		return item.Name
	}
	return ""
}

// SelectItemByName walks backward from the current position until the
// named item sits under the selected slot.
func (l *ScrollingList) SelectItemByName(name string) {
	size := len(l.items)
	for i := 0; i < size; i++ {
		index := loopDecrement(l.itemIndex, i, size)
		if l.items[(index+l.selectedOffsetIndex)%size].Name == name {
			l.itemIndex = index
			return
		}
	}
}

// SetPoints installs the per-slot anchors and animation tables,
// resizes the ring, and precomputes the neighbor tuples consulted on
// every scroll.
func (l *ScrollingList) SetPoints(scrollPoints []*ViewInfo, tweenPoints []*animate.Events) {
	l.DeallocateSpritePoints()
	l.scrollPoints = scrollPoints
	l.tweenPoints = tweenPoints
	l.components = make([]Component, len(scrollPoints))
	l.head = 0

	n := len(scrollPoints)
	l.forwardMap = make([]int, n)
	l.backwardMap = make([]int, n)
	l.forwardTw = make([]scrollTarget, n)
	l.backwardTw = make([]scrollTarget, n)
	for i := 0; i < n; i++ {
		fwd := i - 1
		if i == 0 {
			fwd = n - 1
		}
		bwd := i + 1
		if i == n-1 {
			bwd = 0
		}
		l.forwardMap[i] = fwd
		l.backwardMap[i] = bwd
		l.forwardTw[i] = scrollTarget{l.tweenPoints[fwd], l.scrollPoints[i], l.scrollPoints[fwd]}
		l.backwardTw[i] = scrollTarget{l.tweenPoints[bwd], l.scrollPoints[i], l.scrollPoints[bwd]}
	}

	if l.items != nil {
		l.itemIndex = loopDecrement(0, l.selectedOffsetIndex, len(l.items))
	}
	l.AllocateSpritePoints()
}

// AllocateSpritePoints builds media for every slot from the current
// window of items.
func (l *ScrollingList) AllocateSpritePoints() {
	if len(l.items) == 0 || len(l.scrollPoints) == 0 || len(l.components) == 0 {
		return
	}
	for i := range l.scrollPoints {
		item := l.items[loopIncrement(l.itemIndex, i, len(l.items))]
		l.allocateTexture(i, item)
		c := l.slot(i)
		if c == nil {
			continue
		}
		c.AllocateGraphicsMemory()
		view := l.scrollPoints[i]
		l.resetTweens(c, l.tweenPoints[i], view, view, 0)
	}
}

// DeallocateSpritePoints frees every slot's media.
func (l *ScrollingList) DeallocateSpritePoints() {
	for i := range l.components {
		if c := l.slot(i); c != nil {
			c.FreeGraphicsMemory()
		}
	}
}

// AllocateGraphicsMemory re-acquires slot media after a page returns
// to this depth.
func (l *ScrollingList) AllocateGraphicsMemory() {
	l.Base.AllocateGraphicsMemory()
	l.AllocateSpritePoints()
}

// FreeGraphicsMemory drops slot media and resets the scroll period.
func (l *ScrollingList) FreeGraphicsMemory() {
	l.Base.FreeGraphicsMemory()
	l.scrollPeriod = l.startScrollTime
	l.DeallocateSpritePoints()
}

// Scroll advances the window one step. Exactly one slot is rebuilt;
// every other slot tweens to its neighbor's anchor, and the ring is
// rotated so slot indices keep their anchors.
func (l *ScrollingList) Scroll(forward bool) {
	if len(l.items) == 0 || len(l.scrollPoints) == 0 {
		return
	}
	if l.scrollPeriod < l.minScrollTime {
		l.scrollPeriod = l.minScrollTime
	}

	itemsSize := len(l.items)
	n := len(l.scrollPoints)

	// The item index moves before the exiting slot is rebuilt so the
	// new item resolves against the updated window.
	if forward {
		item := l.items[loopIncrement(l.itemIndex, n, itemsSize)]
		l.itemIndex = loopIncrement(l.itemIndex, 1, itemsSize)
		l.deallocateTexture(0)
		l.allocateTexture(0, item)
	} else {
		item := l.items[loopDecrement(l.itemIndex, 1, itemsSize)]
		l.itemIndex = loopDecrement(l.itemIndex, 1, itemsSize)
		l.deallocateTexture(n - 1)
		l.allocateTexture(n-1, item)
	}

	targets := l.forwardTw
	if !forward {
		targets = l.backwardTw
	}
	for i := 0; i < n; i++ {
		c := l.slot(i)
		if c == nil {
			continue
		}
		t := targets[i]
		c.AllocateGraphicsMemory()
		l.resetTweens(c, t.tweens, t.cur, t.next, l.scrollPeriod)
		c.View().Font = t.next.Font
		c.Trigger("menuScroll", -1)
	}

	if forward {
		l.head = (l.head + 1) % n
	} else {
		l.head = (l.head + n - 1) % n
	}
}

// PageUp moves the window backward by one ring's worth of items.
func (l *ScrollingList) PageUp() {
	if len(l.components) == 0 {
		return
	}
	l.itemIndex = loopDecrement(l.itemIndex, len(l.components), len(l.items))
}

// PageDown moves the window forward by one ring's worth of items.
func (l *ScrollingList) PageDown() {
	if len(l.components) == 0 {
		return
	}
	l.itemIndex = loopIncrement(l.itemIndex, len(l.components), len(l.items))
}

// Random jumps to a uniformly random item.
func (l *ScrollingList) Random() {
	if len(l.items) == 0 {
		return
	}
	l.itemIndex = rand.Intn(len(l.items))
}

// LetterUp jumps forward to the next alphabetic group.
func (l *ScrollingList) LetterUp() { l.letterChange(true) }

// LetterDown jumps backward across the previous alphabetic boundary.
func (l *ScrollingList) LetterDown() { l.letterChange(false) }

func firstRune(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// letterBoundary reports a group transition between two title
// initials: alphabetic flips to non-alphabetic or the letter changes.
func letterBoundary(a, b byte) bool {
	if isAlpha(a) != isAlpha(b) {
		return true
	}
	return isAlpha(a) && isAlpha(b) && a != b
}

func (l *ScrollingList) letterChange(increment bool) {
	size := len(l.items)
	if size == 0 {
		return
	}

	startItem := l.items[(l.itemIndex+l.selectedOffsetIndex)%size]
	start := firstRune(startItem.LowercaseFullTitle())

	for i := 0; i < size; i++ {
		var index int
		if increment {
			index = loopIncrement(l.itemIndex, i, size)
		} else {
			index = loopDecrement(l.itemIndex, i, size)
		}
		end := firstRune(l.items[(index+l.selectedOffsetIndex)%size].LowercaseFullTitle())
		if letterBoundary(start, end) {
			l.itemIndex = index
			break
		}
	}

	if increment {
		return
	}

	// Backward jumps land past the boundary; either rewind to the
	// start of that letter group or step back onto the current group.
	if !l.opts.PrevLetterSubToCurrent || l.items[(l.itemIndex+1+l.selectedOffsetIndex)%size] == startItem {
		start = firstRune(l.items[(l.itemIndex+l.selectedOffsetIndex)%size].LowercaseFullTitle())
		for i := 0; i < size; i++ {
			index := loopDecrement(l.itemIndex, i, size)
			end := firstRune(l.items[(index+l.selectedOffsetIndex)%size].LowercaseFullTitle())
			if letterBoundary(start, end) {
				l.itemIndex = loopIncrement(index, 1, size)
				break
			}
		}
	} else {
		l.itemIndex = loopIncrement(l.itemIndex, 1, size)
	}
}

// MetaUp jumps forward to the next value of an arbitrary metadata
// attribute.
func (l *ScrollingList) MetaUp(attribute string) { l.metaChange(true, attribute) }

// MetaDown jumps backward across the previous attribute boundary.
func (l *ScrollingList) MetaDown(attribute string) { l.metaChange(false, attribute) }

func (l *ScrollingList) metaChange(increment bool, attribute string) {
	size := len(l.items)
	if size == 0 {
		return
	}

	startItem := l.items[(l.itemIndex+l.selectedOffsetIndex)%size]
	start := startItem.MetaAttribute(attribute)

	for i := 0; i < size; i++ {
		var index int
		if increment {
			index = loopIncrement(l.itemIndex, i, size)
		} else {
			index = loopDecrement(l.itemIndex, i, size)
		}
		if l.items[(index+l.selectedOffsetIndex)%size].MetaAttribute(attribute) != start {
			l.itemIndex = index
			break
		}
	}

	if increment {
		return
	}

	if !l.opts.PrevLetterSubToCurrent || l.items[(l.itemIndex+1+l.selectedOffsetIndex)%size] == startItem {
		start = l.items[(l.itemIndex+l.selectedOffsetIndex)%size].MetaAttribute(attribute)
		for i := 0; i < size; i++ {
			index := loopDecrement(l.itemIndex, i, size)
			if l.items[(index+l.selectedOffsetIndex)%size].MetaAttribute(attribute) != start {
				l.itemIndex = loopIncrement(index, 1, size)
				break
			}
		}
	} else {
		l.itemIndex = loopIncrement(l.itemIndex, 1, size)
	}
}

// resetTweens rebinds a slot to its animation table and replaces its
// menuScroll animation with one linear set moving cur to next. Only
// properties that actually differ are emitted.
func (l *ScrollingList) resetTweens(c Component, sets *animate.Events, cur, next *ViewInfo, scrollTime float64) {
	if c == nil || sets == nil || cur == nil || next == nil {
		return
	}

	view := c.View()
	cur.ImageWidth = view.ImageWidth
	cur.ImageHeight = view.ImageHeight
	next.ImageWidth = view.ImageWidth
	next.ImageHeight = view.ImageHeight
	next.BackgroundAlpha = view.BackgroundAlpha

	c.SetTweens(sets)

	scrollTween := sets.GetAny("menuScroll")
	scrollTween.Clear(l.Pool())
	*view = *cur

	set := animate.NewTweenSet()

	if cur.Restart != next.Restart && l.scrollPeriod > l.minScrollTime {
		set.Push(l.Pool(), l.Pool().Acquire(animate.PropertyRestart, animate.Linear, boolFloat(cur.Restart), boolFloat(next.Restart), 0))
	}

	floatProps := []struct {
		p    animate.Property
		a, b float64
	}{
		{animate.PropertyHeight, cur.Height, next.Height},
		{animate.PropertyWidth, cur.Width, next.Width},
		{animate.PropertyAngle, cur.Angle, next.Angle},
		{animate.PropertyAlpha, cur.Alpha, next.Alpha},
		{animate.PropertyX, cur.X, next.X},
		{animate.PropertyY, cur.Y, next.Y},
		{animate.PropertyXOrigin, cur.XOrigin, next.XOrigin},
		{animate.PropertyYOrigin, cur.YOrigin, next.YOrigin},
		{animate.PropertyXOffset, cur.XOffset, next.XOffset},
		{animate.PropertyYOffset, cur.YOffset, next.YOffset},
		{animate.PropertyFontSize, cur.FontSize, next.FontSize},
		{animate.PropertyBackgroundAlpha, cur.BackgroundAlpha, next.BackgroundAlpha},
		{animate.PropertyMaxWidth, cur.MaxWidth, next.MaxWidth},
		{animate.PropertyMaxHeight, cur.MaxHeight, next.MaxHeight},
		{animate.PropertyVolume, cur.Volume, next.Volume},
	}
	for _, fp := range floatProps {
		if math.Abs(fp.b-fp.a) > scrollEpsilon {
			set.Push(l.Pool(), l.Pool().Acquire(fp.p, animate.Linear, fp.a, fp.b, scrollTime))
		}
	}
	if cur.Layer != next.Layer {
		set.Push(l.Pool(), l.Pool().Acquire(animate.PropertyLayer, animate.Linear, float64(cur.Layer), float64(next.Layer), scrollTime))
	}
	if cur.Monitor != next.Monitor {
		set.Push(l.Pool(), l.Pool().Acquire(animate.PropertyMonitor, animate.Linear, float64(cur.Monitor), float64(next.Monitor), scrollTime))
	}

	scrollTween.Push(set)
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// allocateTexture builds the media component for a slot: videos when
// configured, images otherwise, falling back through candidate names,
// artwork directories, and finally text.
func (l *ScrollingList) allocateTexture(index int, item *collection.Item) {
	if index >= len(l.components) || item == nil {
		return
	}

	names := mediaCandidates(item, strings.ToLower(l.opts.ImageType))
	selected := l.opts.SelectedImage && item.Name == l.SelectedItemName()

	var c Component

	imageDirs := []string{l.locator.CollectionDir(l.opts.CollectionName, l.opts.ImageType)}
	videoDirs := []string{l.locator.CollectionDir(l.opts.CollectionName, l.opts.VideoType)}
	if !l.locator.CommonMode && item.Collection != nil {
		imageDirs = append(imageDirs, l.locator.CollectionDir(item.Collection.Name, l.opts.ImageType))
		videoDirs = append(videoDirs, l.locator.CollectionDir(item.Collection.Name, l.opts.VideoType))
	}

	wantVideo := l.opts.VideoType != "" && l.opts.VideoType != "null"

	if wantVideo {
		c = l.probeVideo(videoDirs, names)
	} else {
		c = l.probeImage(imageDirs, names, selected)
	}

	// System artwork keyed by the item's own name.
	if c == nil {
		dir := l.locator.SystemDir(item.Name)
		if wantVideo {
			c = l.probeVideo([]string{dir}, []string{l.opts.VideoType})
		} else {
			c = l.probeImage([]string{dir}, []string{l.opts.ImageType}, selected)
		}
	}

	// The item's own directory.
	if c == nil && item.Filepath != "" {
		dir := filepath.Dir(item.Filepath)
		if wantVideo {
			c = l.probeVideo([]string{dir}, []string{l.opts.VideoType})
		} else {
			c = l.probeImage([]string{dir}, []string{l.opts.ImageType}, selected)
		}
	}

	// A configured video with no match falls back through images.
	if c == nil && wantVideo {
		c = l.probeImage(imageDirs, names, selected)
		if c == nil {
			c = l.probeImage([]string{l.locator.SystemDir(item.Name)}, []string{l.opts.ImageType}, selected)
		}
		if c == nil && item.Filepath != "" {
			c = l.probeImage([]string{filepath.Dir(item.Filepath)}, []string{l.opts.ImageType}, selected)
		}
	}

	if c == nil {
		title := ""
		if l.opts.TextFallback {
			title = item.Title
		}
		text := NewTextComponent(NewBase(l.Page(), l.Pool()), title, l.BaseViewInfo.Font)
		text.View().Monitor = l.BaseViewInfo.Monitor
		c = text
	}

	l.setSlot(index, c)
}

func (l *ScrollingList) probeImage(dirs, names []string, selected bool) Component {
	for _, name := range names {
		for _, dir := range dirs {
			if selected {
				if path, ok := FindFile(dir, name+"-selected", imageExtensions); ok {
					return l.newImage(path)
				}
			}
			if path, ok := FindFile(dir, name, imageExtensions); ok {
				return l.newImage(path)
			}
		}
	}
	return nil
}

func (l *ScrollingList) probeVideo(dirs, names []string) Component {
	for _, name := range names {
		for _, dir := range dirs {
			if path, ok := FindFile(dir, name, videoExtensions); ok {
				base := NewBase(l.Page(), l.Pool())
				base.BaseViewInfo.Monitor = l.BaseViewInfo.Monitor
				return NewVideoComponent(base, l.videoPool, path, l.BaseViewInfo.Monitor, l.opts.ListID, l.opts.NumLoops, false)
			}
		}
	}
	return nil
}

func (l *ScrollingList) newImage(path string) Component {
	base := NewBase(l.Page(), l.Pool())
	base.BaseViewInfo.Monitor = l.BaseViewInfo.Monitor
	base.BaseViewInfo.Additive = l.BaseViewInfo.Additive
	return NewImageComponent(base, path, l.cache)
}

func (l *ScrollingList) deallocateTexture(index int) {
	if c := l.slot(index); c != nil {
		c.FreeGraphicsMemory()
	}
}

// Update steps the list and every slot. Slots inherit the list's
// playlist name for tween filtering.
func (l *ScrollingList) Update(dt float64) bool {
	done := l.Base.Update(dt)
	for i := range l.components {
		c := l.slot(i)
		if c == nil {
			continue
		}
		c.SetPlaylist(l.Playlist())
		if !c.Update(dt) {
			done = false
		}
	}
	return done
}

// DrawLayer draws the slots assigned to one layer of one monitor.
func (l *ScrollingList) DrawLayer(screen *ebiten.Image, layer, monitor int) {
	for i := range l.components {
		c := l.slot(i)
		if c != nil && c.View().Layer == layer && c.View().Monitor == monitor {
			c.Draw(screen)
		}
	}
}

// IsIdle aggregates idle state over the list and its slots.
func (l *ScrollingList) IsIdle() bool {
	if !l.Base.IsIdle() {
		return false
	}
	for i := range l.components {
		if c := l.slot(i); c != nil && !c.IsIdle() {
			return false
		}
	}
	return true
}

// IsAttractIdle aggregates attract-idle state over the list and its
// slots.
func (l *ScrollingList) IsAttractIdle() bool {
	if !l.Base.IsAttractIdle() {
		return false
	}
	for i := range l.components {
		if c := l.slot(i); c != nil && !c.IsAttractIdle() {
			return false
		}
	}
	return true
}

// TriggerEventOnAll requests an event on the list and every slot.
func (l *ScrollingList) TriggerEventOnAll(event string, menuIndex int) {
	l.Trigger(event, menuIndex)
	for i := range l.components {
		if c := l.slot(i); c != nil {
			c.Trigger(event, menuIndex)
		}
	}
}

// SlotComponent exposes the component at a logical slot, for draw
// ordering and tests.
func (l *ScrollingList) SlotComponent(i int) Component {
	return l.slot(i)
}
