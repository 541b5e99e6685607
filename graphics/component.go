package graphics

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/CoinOPS-Official/retrofe/graphics/animate"
)

// Component is a visual element with animated view attributes.
// Capabilities absent in a kind (media control, text) are no-ops on
// the base.
type Component interface {
	View() *ViewInfo
	SetTweens(*animate.Events)
	Trigger(event string, menuIndex int)
	Update(dt float64) bool
	Draw(screen *ebiten.Image)
	AllocateGraphicsMemory()
	FreeGraphicsMemory()

	IsIdle() bool
	IsAttractIdle() bool
	IsMenuScrolling() bool
	IsPlaylistScrolling() bool

	IsPlaying() bool
	Current() float64
	Duration() float64
	Pause()
	Resume()
	Restart()
	SetText(string)

	SetPlaylist(name string)
	SetMenuScrollReload(bool)
	MenuScrollReload() bool
	SetAnimationDoneRemove(bool)
	AnimationDoneRemove() bool
}

// Base carries the animation state machine shared by every component
// kind. Concrete kinds embed it and override media behavior.
type Base struct {
	BaseViewInfo ViewInfo

	page  *Page
	pool  *animate.Pool
	tween *animate.Events

	currentAnimation *animate.Animation
	animationType    string
	setCursor        int
	elapsed          float64
	complete         bool
	storeView        ViewInfo

	requested      bool
	requestedEvent string
	menuIndex      int

	playlistName string

	backgroundFill      *ebiten.Image
	menuScrollReload    bool
	animationDoneRemove bool
}

// NewBase returns a component base drawing nothing, bound to a page
// for scroll-state queries.
func NewBase(page *Page, pool *animate.Pool) *Base {
	return &Base{
		BaseViewInfo: NewViewInfo(),
		page:         page,
		pool:         pool,
		tween:        animate.NewEvents(),
		complete:     true,
	}
}

func (b *Base) View() *ViewInfo { return &b.BaseViewInfo }

// SetTweens replaces the component's animation table.
func (b *Base) SetTweens(t *animate.Events) {
	b.tween = t
}

// Tweens returns the component's animation table.
func (b *Base) Tweens() *animate.Events { return b.tween }

// Pool returns the tween pool the component allocates from.
func (b *Base) Pool() *animate.Pool { return b.pool }

// Page returns the owning page, which may be nil.
func (b *Base) Page() *Page { return b.page }

// Trigger requests a named animation event. The effect is applied on
// the next Update.
func (b *Base) Trigger(event string, menuIndex int) {
	b.requested = true
	b.requestedEvent = event
	b.menuIndex = menuIndex
}

// MenuIndex returns the slot index the last trigger carried.
func (b *Base) MenuIndex() int { return b.menuIndex }

// PendingEvent returns the animation event requested but not yet
// consumed by Update.
func (b *Base) PendingEvent() string {
	if !b.requested {
		return ""
	}
	return b.requestedEvent
}

// IsIdle reports whether the component would accept a new scroll
// without cutting a transition short.
func (b *Base) IsIdle() bool {
	return b.complete || b.animationType == "idle" || b.animationType == "menuIdle" || b.animationType == "attract"
}

// IsAttractIdle is IsIdle without counting the attract animation as
// idle.
func (b *Base) IsAttractIdle() bool {
	return b.complete || b.animationType == "idle" || b.animationType == "menuIdle"
}

// IsMenuScrolling reports an in-flight menu or playlist scroll.
func (b *Base) IsMenuScrolling() bool {
	return !b.complete && (b.animationType == "menuScroll" || b.animationType == "playlistScroll")
}

// IsPlaylistScrolling reports an in-flight playlist scroll.
func (b *Base) IsPlaylistScrolling() bool {
	return !b.complete && b.animationType == "playlistScroll"
}

// SetPlaylist records the current playlist name for tween filters.
func (b *Base) SetPlaylist(name string) { b.playlistName = name }

// Playlist returns the recorded playlist name.
func (b *Base) Playlist() string { return b.playlistName }

func (b *Base) SetMenuScrollReload(v bool)    { b.menuScrollReload = v }
func (b *Base) MenuScrollReload() bool        { return b.menuScrollReload }
func (b *Base) SetAnimationDoneRemove(v bool) { b.animationDoneRemove = v }
func (b *Base) AnimationDoneRemove() bool     { return b.animationDoneRemove }

// resolveAnimation applies the slot lookup rule. Indices at or above
// MenuIndexHigh first try the MenuIndexHigh bucket, then the index
// with the offset stripped; everything falls back to the wildcard.
func (b *Base) resolveAnimation(event string) *animate.Animation {
	if b.menuIndex >= animate.MenuIndexHigh {
		if a := b.tween.Get(event, animate.MenuIndexHigh); a.Len() > 0 {
			return a
		}
		return b.tween.Get(event, b.menuIndex-animate.MenuIndexHigh)
	}
	return b.tween.Get(event, b.menuIndex)
}

func (b *Base) install(event string, a *animate.Animation) {
	b.animationType = event
	b.currentAnimation = a
	b.setCursor = 0
	b.elapsed = 0
	b.storeView = b.BaseViewInfo
	b.complete = false
}

// Update advances the animation state machine by dt seconds and
// reports whether the current animation has completed.
func (b *Base) Update(dt float64) bool {
	b.elapsed += dt

	if b.requested && b.requestedEvent != "" {
		if a := b.resolveAnimation(b.requestedEvent); a.Len() > 0 {
			b.install(b.requestedEvent, a)
		}
		b.requested = false
	}

	if b.complete {
		idle := b.resolveAnimation("idle")
		if idle.Len() == 0 && (b.page == nil || !b.page.IsMenuScrolling()) {
			idle = b.resolveAnimation("menuIdle")
		}
		b.install("idle", idle)
		b.requested = false
	}

	if b.currentAnimation != nil && !b.currentAnimation.Destroyed() {
		b.complete = b.animate()
		if b.complete {
			b.currentAnimation = nil
			b.setCursor = 0
		}
	} else {
		b.currentAnimation = nil
		b.complete = true
	}

	return b.complete
}

// animate applies the current tween set to the view and advances the
// set cursor when every member tween has run out.
func (b *Base) animate() bool {
	a := b.currentAnimation
	if a == nil || b.setCursor >= a.Len() {
		return true
	}

	set := a.TweenSet(b.setCursor)
	done := true
	for i := 0; i < set.Len(); i++ {
		tw := set.Tween(i)

		if tw.PlaylistFilter != "" && b.playlistName != "" {
			found := false
			for _, p := range strings.Split(tw.PlaylistFilter, ",") {
				if b.playlistName == p {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}

		elapsed := b.elapsed
		if elapsed < tw.Duration {
			done = false
		} else {
			elapsed = tw.Duration
		}

		switch tw.Property {
		case animate.PropertyNop:
		case animate.PropertyRestart:
			b.BaseViewInfo.Restart = tw.Duration != 0 && elapsed == 0
		default:
			var v float64
			if tw.StartDefined {
				v = tw.Animate(elapsed)
			} else {
				v = tw.AnimateFrom(b.storeView.property(tw.Property), elapsed)
			}
			b.BaseViewInfo.setProperty(tw.Property, v)
		}
	}

	if done {
		b.setCursor++
		b.elapsed = 0
		b.storeView = b.BaseViewInfo
	}

	return b.setCursor >= a.Len()
}

// Draw fills the component box with the background color. Kinds with
// real media override this.
func (b *Base) Draw(screen *ebiten.Image) {
	if b.BaseViewInfo.Alpha <= 0 || b.BaseViewInfo.BackgroundAlpha <= 0 {
		return
	}
	w := b.BaseViewInfo.ScaledWidth()
	h := b.BaseViewInfo.ScaledHeight()
	if w <= 0 || h <= 0 {
		return
	}
	if b.backgroundFill == nil {
		b.backgroundFill = ebiten.NewImage(1, 1)
		b.backgroundFill.Fill(whiteColor)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(b.BaseViewInfo.XRelativeToOrigin(), b.BaseViewInfo.YRelativeToOrigin())
	op.ColorScale.Scale(
		float32(b.BaseViewInfo.BackgroundRed),
		float32(b.BaseViewInfo.BackgroundGreen),
		float32(b.BaseViewInfo.BackgroundBlue),
		float32(b.BaseViewInfo.BackgroundAlpha*b.BaseViewInfo.Alpha),
	)
	screen.DrawImage(b.backgroundFill, op)
}

// AllocateGraphicsMemory is a no-op on the base.
func (b *Base) AllocateGraphicsMemory() {}

// FreeGraphicsMemory drops the GPU resources the base holds.
func (b *Base) FreeGraphicsMemory() {
	if b.backgroundFill != nil {
		b.backgroundFill.Deallocate()
		b.backgroundFill = nil
	}
}

// Media capabilities default to no-ops on the base.
func (b *Base) IsPlaying() bool   { return false }
func (b *Base) Current() float64  { return 0 }
func (b *Base) Duration() float64 { return 0 }
func (b *Base) Pause()            {}
func (b *Base) Resume()           {}
func (b *Base) Restart()          {}
func (b *Base) SetText(string)    {}
