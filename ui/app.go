// Package ui owns the front-end run loop: it implements ebiten.Game,
// routes input to the page, drives attract mode, and supervises
// emulator launches while holding a still frame.
package ui

import (
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/CoinOPS-Official/retrofe/collection"
	"github.com/CoinOPS-Official/retrofe/graphics"
	"github.com/CoinOPS-Official/retrofe/input"
	"github.com/CoinOPS-Official/retrofe/launcher"
	"github.com/CoinOPS-Official/retrofe/storage"
)

// maxFrameTime clamps the per-frame delta so a stalled frame (window
// drag, machine sleep) does not teleport every animation to its end.
const maxFrameTime = 0.25

// transition carries a jump, playlist switch or scroll settle through
// its exit and enter animations: the exit event fires at request time,
// the page settles, then the selection refreshes and the enter event
// fires.
type transition int

const (
	transitionNone transition = iota
	transitionHighlight
	transitionMenuJump
	transitionPlaylistNextOut
	transitionPlaylistPrevOut
	transitionPlaylistIn
)

// App is the running front-end.
type App struct {
	baseDir  string
	settings *storage.Settings
	page     *graphics.Page

	width  int
	height int

	in    *input.Manager
	procs *launcher.ProcessManager

	attract   attractTimer
	pending   transition
	lastFrame time.Time

	launching  atomic.Bool
	terminate  atomic.Bool
	launchDone chan struct{}

	quit bool
}

// NewApp wires a page into the run loop. The page should already hold
// its root collection.
func NewApp(baseDir string, settings *storage.Settings, page *graphics.Page, width, height int) *App {
	return &App{
		baseDir:  baseDir,
		settings: settings,
		page:     page,
		width:    width,
		height:   height,
		in:       input.NewManager(),
		procs:    launcher.New(),
		attract: attractTimer{
			idleSeconds:     settings.Attract.IdleSeconds,
			nextIdleSeconds: settings.Attract.NextIdleSeconds,
			minSeconds:      settings.Attract.MinSeconds,
		},
	}
}

// Start fires the page's entry animations. Call once before RunGame.
func (a *App) Start() {
	a.page.Start()
	a.lastFrame = time.Now()
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	now := time.Now()
	dt := now.Sub(a.lastFrame).Seconds()
	a.lastFrame = now
	if dt > maxFrameTime {
		dt = maxFrameTime
	}

	a.in.UpdateKeystate()

	if a.launching.Load() {
		// A child is running: hold the still frame and let the
		// operator kill it.
		if a.in.Fired(input.ActionQuit) {
			a.terminate.Store(true)
		}
		select {
		case <-a.launchDone:
			a.finishLaunch()
		default:
		}
		return nil
	}

	if a.quit {
		return ebiten.Termination
	}

	a.advanceTransition()
	a.handleInput(dt)
	a.page.Update(dt)
	return nil
}

// advanceTransition steps the pending hand-off once the page has gone
// idle, so each broadcast's animation finishes before the next fires.
func (a *App) advanceTransition() {
	if a.pending == transitionNone || !a.page.IsIdle() {
		return
	}
	switch a.pending {
	case transitionHighlight:
		a.pending = transitionNone
		a.page.OnNewItemSelected()
		a.page.HighlightEnter()
	case transitionMenuJump:
		a.pending = transitionNone
		a.page.OnNewItemSelected()
		a.page.MenuJumpEnter()
	case transitionPlaylistNextOut:
		a.pending = transitionPlaylistIn
		a.page.PlaylistNextExit()
	case transitionPlaylistPrevOut:
		a.pending = transitionPlaylistIn
		a.page.PlaylistPrevExit()
	case transitionPlaylistIn:
		a.pending = transitionNone
		a.page.OnNewItemSelected()
		a.page.ReallocateMenuSpritePoints(true)
		a.page.PlaylistEnter()
	}
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.page.Draw(screen, 0)
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func (a *App) handleInput(dt float64) {
	anyInput := a.in.AnyPressed()
	if anyInput && a.attract.interrupt() {
		a.page.AttractExit()
	}

	if a.in.Fired(input.ActionQuit) {
		a.requestExit()
		return
	}

	a.handleScroll()

	if a.in.Fired(input.ActionNextPlaylist) {
		a.cyclePlaylist(true)
	}
	if a.in.Fired(input.ActionPrevPlaylist) {
		a.cyclePlaylist(false)
	}
	if a.in.Fired(input.ActionPageUp) {
		a.menuJump(func() { a.page.PageScroll(graphics.ScrollDirectionBack) })
	}
	if a.in.Fired(input.ActionPageDown) {
		a.menuJump(func() { a.page.PageScroll(graphics.ScrollDirectionForward) })
	}
	if a.in.Fired(input.ActionLetterUp) {
		a.menuJump(func() { a.page.LetterScroll(graphics.ScrollDirectionBack) })
	}
	if a.in.Fired(input.ActionLetterDown) {
		a.menuJump(func() { a.page.LetterScroll(graphics.ScrollDirectionForward) })
	}
	if a.in.Fired(input.ActionFavorite) {
		a.toggleFavorite()
	}
	if a.in.Fired(input.ActionRandom) {
		a.menuJump(a.page.SelectRandom)
	}
	if a.in.Fired(input.ActionBack) {
		a.back()
	}
	if a.in.Fired(input.ActionSelect) {
		a.selectItem()
	}

	if !anyInput {
		switch a.attract.update(dt) {
		case attractEnter:
			a.page.AttractEnter()
			a.page.SelectRandom()
		case attractTick:
			a.page.Attract()
			a.page.SelectRandom()
		}
	}
}

// handleScroll maps held directions onto the page's scroll state
// machine: a fired step scrolls and accelerates, release settles the
// selection.
func (a *App) handleScroll() {
	forwardAction, backAction := input.ActionDown, input.ActionUp
	if a.page.IsHorizontalScroll() {
		forwardAction, backAction = input.ActionRight, input.ActionLeft
	}

	switch {
	case a.in.Fired(forwardAction):
		a.page.SetScrolling(graphics.ScrollDirectionForward)
		a.page.Scroll(true, false)
		a.page.UpdateScrollPeriod()
	case a.in.Fired(backAction):
		a.page.SetScrolling(graphics.ScrollDirectionBack)
		a.page.Scroll(false, false)
		a.page.UpdateScrollPeriod()
	case !a.in.Pressed(forwardAction) && !a.in.Pressed(backAction) && a.page.IsMenuScrolling():
		a.page.SetScrolling(graphics.ScrollDirectionIdle)
		a.page.ResetScrollPeriod()
		a.page.HighlightExit()
		a.pending = transitionHighlight
	}
}

// menuJump wraps a letter, page or random jump in the menuJump exit
// and enter broadcasts.
func (a *App) menuJump(move func()) {
	move()
	a.page.MenuJumpExit()
	a.page.SetScrolling(graphics.ScrollDirectionIdle)
	a.pending = transitionMenuJump
}

// cyclePlaylist switches playlists and starts the playlist hand-off
// animations.
func (a *App) cyclePlaylist(forward bool) {
	if forward {
		a.page.NextCyclePlaylist()
		a.pending = transitionPlaylistNextOut
	} else {
		a.page.PrevCyclePlaylist()
		a.pending = transitionPlaylistPrevOut
	}
	a.page.PlaylistExit()
	a.page.ResetScrollPeriod()
	a.page.SetScrolling(graphics.ScrollDirectionIdle)
}

func (a *App) toggleFavorite() {
	a.page.ToggleFavorite()
	if c := a.page.CurrentCollection(); c != nil {
		if err := c.SaveFavorites(a.baseDir); err != nil {
			log.Printf("ui: %v", err)
		}
	}
}

func (a *App) back() {
	a.page.ExitMenu()
	if !a.page.PopCollection() {
		a.requestExit()
		return
	}
	a.page.EnterMenu()
}

func (a *App) selectItem() {
	item := a.page.SelectedItem()
	if item == nil {
		return
	}
	if !item.Leaf {
		sub, err := collection.Load(a.baseDir, item.Name)
		if err != nil {
			log.Printf("ui: %v", err)
			return
		}
		if a.page.PushCollection(sub) {
			a.page.EnterMenu()
		}
		return
	}
	a.launch(item)
}

func (a *App) launch(item *collection.Item) {
	exe := a.settings.Launcher.Executable
	if exe == "" {
		log.Printf("ui: no launcher configured, cannot start %s", item.Name)
		return
	}
	args := expandArgs(a.settings.Launcher.Args, item)

	a.page.PlaySelect()
	a.page.EnterGame()
	if c := item.Collection; c != nil {
		c.UpdateLastPlayed(item, a.settings.LastPlayedSize)
	}

	if !a.procs.Launch(exe, args, a.settings.Launcher.WorkingDir) {
		a.page.ExitGame()
		return
	}

	a.terminate.Store(false)
	a.launching.Store(true)
	a.launchDone = make(chan struct{})
	go func() {
		result := a.procs.Wait(a.settings.Launcher.WaitTimeout,
			func() bool { return a.terminate.Load() }, nil)
		log.Printf("ui: launch finished: %v", result)
		close(a.launchDone)
	}()
}

func (a *App) finishLaunch() {
	a.launching.Store(false)
	a.in.Reset()
	a.attract.reset()
	a.page.ExitGame()
	if code, ok := a.procs.TryExitCode(); ok && code != 0 {
		log.Printf("ui: emulator exit code %d", code)
	}
}

func (a *App) requestExit() {
	a.page.Stop()
	a.quit = true
}

// expandArgs substitutes item placeholders into launcher argument
// templates.
func expandArgs(args []string, item *collection.Item) []string {
	collectionName := ""
	if item.Collection != nil {
		collectionName = item.Collection.Name
	}
	r := strings.NewReplacer(
		"%ITEM_FILEPATH%", item.Filepath,
		"%ITEM_NAME%", item.Name,
		"%ITEM_COLLECTION%", collectionName,
	)
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = r.Replace(arg)
	}
	return out
}
