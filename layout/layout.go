package layout

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/CoinOPS-Official/retrofe/graphics"
	"github.com/CoinOPS-Official/retrofe/graphics/animate"
	"github.com/CoinOPS-Official/retrofe/storage"
	"github.com/CoinOPS-Official/retrofe/video"
)

// defaultScrollTime is the menu scroll period used when a layout does
// not set one.
const defaultScrollTime = 0.5

// Builder assembles a page from a layout directory.
type Builder struct {
	BaseDir    string
	LayoutName string

	settings  *storage.Settings
	pool      *animate.Pool
	cache     *graphics.TextureCache
	videoPool *video.Pool

	geom     geometry
	font     text.Face
	fontSize float64
	monitor  int
}

// Result is the assembled layout handed to the application.
type Result struct {
	Page        *graphics.Page
	Width       int
	Height      int
	MinShowTime float64

	// Sounds maps sound types (load, unload, highlight, select) to
	// file paths. Allocation is up to the caller so building a layout
	// never touches the audio device.
	Sounds map[string]string
}

// NewBuilder returns a builder for the named layout under baseDir.
func NewBuilder(baseDir, layoutName string, settings *storage.Settings, pool *animate.Pool, cache *graphics.TextureCache, videoPool *video.Pool) *Builder {
	return &Builder{
		BaseDir:    baseDir,
		LayoutName: layoutName,
		settings:   settings,
		pool:       pool,
		cache:      cache,
		videoPool:  videoPool,
	}
}

func (b *Builder) layoutDir() string {
	return filepath.Join(b.BaseDir, "layouts", b.LayoutName)
}

// Build reads layout.xml and assembles the page: menus with scroll
// points and animation tables, static layer components, and sound
// bindings.
func (b *Builder) Build() (*Result, error) {
	path := filepath.Join(b.layoutDir(), "layout.xml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	w, err := strconv.ParseFloat(doc.Width, 64)
	if err != nil {
		return nil, fmt.Errorf("layout %s: bad or missing width attribute", b.LayoutName)
	}
	h, err := strconv.ParseFloat(doc.Height, 64)
	if err != nil {
		return nil, fmt.Errorf("layout %s: bad or missing height attribute", b.LayoutName)
	}
	b.geom = geometry{width: w, height: h}

	b.monitor = 0
	if n, ok := parseIntAttr(doc.Monitor); ok {
		b.monitor = n
	}
	b.fontSize = 24
	if f, ok := parseFloatAttr(doc.FontSize); ok {
		b.fontSize = f
	}
	if doc.Font != "" {
		b.font = loadFont(filepath.Join(b.layoutDir(), doc.Font), b.fontSize)
	}

	page := graphics.NewPage(b.settings)
	res := &Result{
		Page:   page,
		Width:  int(w),
		Height: int(h),
		Sounds: make(map[string]string),
	}
	if f, ok := parseFloatAttr(doc.MinShowTime); ok {
		page.SetMinShowTime(f)
		res.MinShowTime = f
	}

	for _, s := range doc.Sounds {
		switch s.Type {
		case "load", "unload", "highlight", "select":
			res.Sounds[s.Type] = filepath.Join(b.layoutDir(), s.Src)
		default:
			log.Printf("layout: unknown sound type %q ignored", s.Type)
		}
	}

	// Menus stack one navigation depth each, except playlist-typed
	// menus, which ride along at the depth of the menu they accompany.
	depth := 0
	for i := range doc.Menus {
		m := &doc.Menus[i]
		list := b.buildMenu(page, m)
		d := depth
		if n, ok := parseIntAttr(m.MenuIndex); ok {
			d = n
		} else if list.IsPlaylist() && depth > 0 {
			d = depth - 1
		}
		page.PushMenu(list, d)
		if !list.IsPlaylist() && d >= depth {
			depth = d + 1
		}
	}

	for i := range doc.Images {
		b.buildImage(page, &doc.Images[i])
	}
	for i := range doc.Videos {
		b.buildVideo(page, &doc.Videos[i])
	}
	for i := range doc.Texts {
		b.buildText(page, &doc.Texts[i])
	}

	return res, nil
}

func (b *Builder) buildMenu(page *graphics.Page, m *menuNode) *graphics.ScrollingList {
	base := graphics.NewBase(page, b.pool)
	view := &base.BaseViewInfo
	view.Monitor = b.monitor
	b.applyView(view, &m.viewAttrs)
	if view.Font == nil {
		view.Font = b.font
	}
	base.SetTweens(buildEvents(b.pool, m.Events, b.geom))
	base.SetMenuScrollReload(parseBool(m.MenuScrollReload))

	opts := graphics.ListOptions{
		ImageType:        m.ImageType,
		VideoType:        m.VideoType,
		SelectedImage:    parseBool(m.SelectedImage),
		TextFallback:     parseBool(m.TextFallback),
		PlaylistType:     strings.HasPrefix(m.ImageType, "playlist") || strings.HasPrefix(m.VideoType, "playlist"),
		HorizontalScroll: strings.EqualFold(m.Orientation, "horizontal"),
		UseTextureCache:  parseBool(m.UseTextureCache),
	}
	if b.settings != nil {
		opts.PrevLetterSubToCurrent = b.settings.PrevLetterSubToCurrent
	}

	locator := &graphics.MediaLocator{BaseDir: b.BaseDir, LayoutName: b.LayoutName}
	switch strings.ToLower(m.Mode) {
	case "layout":
		locator.LayoutMode = true
	case "common":
		locator.CommonMode = true
	case "commonlayout":
		locator.LayoutMode = true
		locator.CommonMode = true
	}

	list := graphics.NewScrollingList(base, opts, locator, b.cache, b.videoPool)

	// Settings supply the scroll timing defaults; layout attributes
	// override per menu.
	scrollTime := defaultScrollTime
	if b.settings != nil && b.settings.Scroll.StartPeriod > 0 {
		scrollTime = b.settings.Scroll.StartPeriod
	}
	if f, ok := parseFloatAttr(m.ScrollTime); ok {
		scrollTime = f
	}
	list.SetStartScrollTime(scrollTime)
	if b.settings != nil {
		if b.settings.Scroll.Acceleration > 0 {
			list.SetScrollAcceleration(b.settings.Scroll.Acceleration)
		}
		if b.settings.Scroll.MinPeriod > 0 {
			list.SetMinScrollTime(b.settings.Scroll.MinPeriod)
		}
	}
	if f, ok := parseFloatAttr(m.ScrollAcceleration); ok {
		list.SetScrollAcceleration(f)
		list.SetMinScrollTime(f)
	}
	if f, ok := parseFloatAttr(m.MinScrollTime); ok {
		list.SetMinScrollTime(f)
	}

	var points []*graphics.ViewInfo
	var tweens []*animate.Events
	var selected int
	if strings.EqualFold(m.Type, "custom") {
		points, tweens, selected = b.customPoints(m)
	} else {
		points, tweens, selected = b.verticalPoints(m)
	}
	list.SetPoints(points, tweens)
	list.SetSelectedOffset(selected)
	return list
}

// itemPoint builds one scroll point from the item defaults and an
// optional per-item override.
func (b *Builder) itemPoint(defaults, override *itemNode) (*graphics.ViewInfo, *animate.Events) {
	v := graphics.NewViewInfo()
	v.Monitor = b.monitor
	if defaults != nil {
		b.applyView(&v, &defaults.viewAttrs)
	}
	if override != nil {
		b.applyView(&v, &override.viewAttrs)
	}
	if v.Font == nil {
		v.Font = b.font
	}

	var events []eventNode
	if override != nil && len(override.Events) > 0 {
		events = override.Events
	} else if defaults != nil {
		events = defaults.Events
	}
	return &v, buildEvents(b.pool, events, b.geom)
}

// customPoints uses the layout's <item> elements verbatim, one scroll
// point each, in document order.
func (b *Builder) customPoints(m *menuNode) ([]*graphics.ViewInfo, []*animate.Events, int) {
	points := make([]*graphics.ViewInfo, 0, len(m.Items))
	tweens := make([]*animate.Events, 0, len(m.Items))
	selected := 0
	for i := range m.Items {
		it := &m.Items[i]
		v, ev := b.itemPoint(m.ItemDefaults, it)
		points = append(points, v)
		tweens = append(tweens, ev)
		if parseBool(it.Selected) {
			selected = i
		}
	}
	return points, tweens, selected
}

// verticalPoints stacks item defaults down the menu's height, with an
// invisible entry point above and exit point below so scrolled items
// fade through the edges. Items may override individual rows by index,
// or the synthetic points with index="start" and index="end".
func (b *Builder) verticalPoints(m *menuNode) ([]*graphics.ViewInfo, []*animate.Events, int) {
	defaults := m.ItemDefaults

	var startItem, endItem, firstItem, lastItem *itemNode
	byRow := make(map[int]*itemNode)
	for i := range m.Items {
		it := &m.Items[i]
		switch strings.ToLower(it.Index) {
		case "start":
			startItem = it
		case "end":
			endItem = it
		case "first":
			firstItem = it
		case "last":
			lastItem = it
		case "":
			log.Printf("layout: vertical menu item without index ignored")
		default:
			n, err := strconv.Atoi(it.Index)
			if err != nil {
				log.Printf("layout: bad item index %q ignored", it.Index)
				continue
			}
			byRow[n] = it
		}
	}

	menuY, _ := b.geom.resolve(m.Y, false)
	menuH, ok := b.geom.resolve(m.Height, false)
	if !ok {
		menuH = b.geom.height
	}
	itemH := menuH / 8
	if defaults != nil {
		if f, ok := b.geom.resolve(defaults.Height, false); ok {
			itemH = f
		}
	}
	spacing := 0.0
	if defaults != nil {
		if f, ok := parseFloatAttr(defaults.Spacing); ok {
			spacing = f
		}
	}
	rowStep := itemH + spacing
	rows := 1
	if rowStep > 0 {
		if n := int((menuH + spacing) / rowStep); n > 1 {
			rows = n
		}
	}

	mk := func(override *itemNode, y float64) (*graphics.ViewInfo, *animate.Events) {
		v, ev := b.itemPoint(defaults, override)
		if override == nil || override.Y == "" {
			v.Y = y
		}
		if v.Height < 0 {
			v.Height = itemH
		}
		return v, ev
	}

	points := make([]*graphics.ViewInfo, 0, rows+2)
	tweens := make([]*animate.Events, 0, rows+2)

	enter, enterEv := mk(startItem, menuY-rowStep)
	if startItem == nil {
		enter.Alpha = 0
	}
	points = append(points, enter)
	tweens = append(tweens, enterEv)

	selected := 1
	for i := 0; i < rows; i++ {
		override := byRow[i]
		if i == 0 && firstItem != nil {
			override = firstItem
		}
		if i == rows-1 && lastItem != nil {
			override = lastItem
		}
		v, ev := mk(override, menuY+float64(i)*rowStep)
		points = append(points, v)
		tweens = append(tweens, ev)
		if override != nil && parseBool(override.Selected) {
			selected = i + 1
		}
	}

	exit, exitEv := mk(endItem, menuY+float64(rows)*rowStep)
	if endItem == nil {
		exit.Alpha = 0
	}
	points = append(points, exit)
	tweens = append(tweens, exitEv)

	return points, tweens, selected
}

func (b *Builder) layerBase(page *graphics.Page, a *viewAttrs, events []eventNode) *graphics.Base {
	base := graphics.NewBase(page, b.pool)
	view := &base.BaseViewInfo
	view.Monitor = b.monitor
	b.applyView(view, a)
	if view.Font == nil {
		view.Font = b.font
	}
	base.SetTweens(buildEvents(b.pool, events, b.geom))
	return base
}

func (b *Builder) buildImage(page *graphics.Page, n *imageNode) {
	if n.Src == "" {
		log.Printf("layout: image without src ignored")
		return
	}
	base := b.layerBase(page, &n.viewAttrs, n.Events)
	base.BaseViewInfo.Additive = parseBool(n.Additive)
	base.SetMenuScrollReload(parseBool(n.MenuScrollReload))
	base.SetAnimationDoneRemove(parseBool(n.AnimationDoneRemove))
	path := filepath.Join(b.layoutDir(), n.Src)
	page.AddLayerComponent(graphics.NewImageComponent(base, path, b.cache))
}

func (b *Builder) buildVideo(page *graphics.Page, n *videoNode) {
	if n.Src == "" {
		log.Printf("layout: video without src ignored")
		return
	}
	base := b.layerBase(page, &n.viewAttrs, n.Events)
	view := &base.BaseViewInfo
	if n.PauseOnScroll != "" {
		view.PauseOnScroll = parseBool(n.PauseOnScroll)
	}
	base.SetMenuScrollReload(parseBool(n.MenuScrollReload))
	base.SetAnimationDoneRemove(parseBool(n.AnimationDoneRemove))
	numLoops := 0
	if v, ok := parseIntAttr(n.NumLoops); ok {
		numLoops = v
	}
	path := filepath.Join(b.layoutDir(), n.Src)
	c := graphics.NewVideoComponent(base, b.videoPool, path, view.Monitor, -1, numLoops, parseBool(n.SoftOverlay))
	page.AddLayerComponent(c)
}

func (b *Builder) buildText(page *graphics.Page, n *textNode) {
	base := b.layerBase(page, &n.viewAttrs, n.Events)
	page.AddLayerComponent(graphics.NewTextComponent(base, n.Value, b.font))
}

// applyView copies the attributes present in a onto v, resolving
// coordinate keywords against the layout dimensions.
func (b *Builder) applyView(v *graphics.ViewInfo, a *viewAttrs) {
	g := b.geom
	if f, ok := g.resolve(a.X, true); ok {
		v.X = f
	}
	if f, ok := g.resolve(a.Y, false); ok {
		v.Y = f
	}
	if f, ok := g.resolve(a.XOffset, true); ok {
		v.XOffset = f
	}
	if f, ok := g.resolve(a.YOffset, false); ok {
		v.YOffset = f
	}
	if f, ok := resolveOrigin(a.XOrigin); ok {
		v.XOrigin = f
	}
	if f, ok := resolveOrigin(a.YOrigin); ok {
		v.YOrigin = f
	}
	if f, ok := g.resolve(a.Width, true); ok {
		v.Width = f
	}
	if f, ok := g.resolve(a.Height, false); ok {
		v.Height = f
	}
	if f, ok := parseFloatAttr(a.MinWidth); ok {
		v.MinWidth = f
	}
	if f, ok := parseFloatAttr(a.MinHeight); ok {
		v.MinHeight = f
	}
	if f, ok := parseFloatAttr(a.MaxWidth); ok {
		v.MaxWidth = f
	}
	if f, ok := parseFloatAttr(a.MaxHeight); ok {
		v.MaxHeight = f
	}
	if f, ok := parseFloatAttr(a.FontSize); ok {
		v.FontSize = f
	}
	if f, ok := parseFloatAttr(a.Alpha); ok {
		v.Alpha = f
	}
	if f, ok := parseFloatAttr(a.Angle); ok {
		v.Angle = f
	}
	if n, ok := parseIntAttr(a.Layer); ok {
		v.Layer = n
	}
	if r, gr, bl, ok := parseColor(a.BackgroundColor); ok {
		v.BackgroundRed, v.BackgroundGreen, v.BackgroundBlue = r, gr, bl
	}
	if f, ok := parseFloatAttr(a.BackgroundAlpha); ok {
		v.BackgroundAlpha = f
	}
	if a.Reflection != "" {
		v.Reflection = a.Reflection
	}
	if n, ok := parseIntAttr(a.ReflectionDistance); ok {
		v.ReflectionDistance = n
	}
	if f, ok := parseFloatAttr(a.ReflectionScale); ok {
		v.ReflectionScale = f
	}
	if f, ok := parseFloatAttr(a.ReflectionAlpha); ok {
		v.ReflectionAlpha = f
	}
	if f, ok := g.resolve(a.ContainerX, true); ok {
		v.ContainerX = f
	}
	if f, ok := g.resolve(a.ContainerY, false); ok {
		v.ContainerY = f
	}
	if f, ok := g.resolve(a.ContainerWidth, true); ok {
		v.ContainerWidth = f
	}
	if f, ok := g.resolve(a.ContainerHeight, false); ok {
		v.ContainerHeight = f
	}
	if n, ok := parseIntAttr(a.Monitor); ok {
		v.Monitor = n
	}
	if f, ok := parseFloatAttr(a.Volume); ok {
		v.Volume = f
	}
}

// loadFont reads a TrueType or OpenType file into an ebiten text
// face. Failures fall back to the built-in bitmap face with a log
// line rather than failing the whole layout.
func loadFont(path string, size float64) text.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("layout: font %s: %v", path, err)
		return nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		log.Printf("layout: font %s: %v", path, err)
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size}
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "yes")
}

func parseFloatAttr(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("layout: bad numeric attribute %q", s)
		return 0, false
	}
	return f, true
}

func parseIntAttr(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("layout: bad integer attribute %q", s)
		return 0, false
	}
	return n, true
}

// resolveOrigin parses an origin attribute into a 0..1 fraction of
// the component size.
func resolveOrigin(s string) (float64, bool) {
	switch strings.ToLower(s) {
	case "":
		return 0, false
	case "left", "top":
		return 0, true
	case "center":
		return 0.5, true
	case "right", "bottom":
		return 1, true
	}
	if strings.HasSuffix(s, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			log.Printf("layout: bad origin value %q", s)
			return 0, false
		}
		return pct / 100, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("layout: bad origin value %q", s)
		return 0, false
	}
	return f, true
}

// parseColor parses an RRGGBB hex color into 0..1 channel fractions.
func parseColor(s string) (r, g, b float64, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		if s != "" {
			log.Printf("layout: bad color %q", s)
		}
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		log.Printf("layout: bad color %q", s)
		return 0, 0, 0, false
	}
	r = float64(n>>16&0xff) / 255
	g = float64(n>>8&0xff) / 255
	b = float64(n&0xff) / 255
	return r, g, b, true
}
