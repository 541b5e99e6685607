// Package input turns raw keyboard and gamepad state into front-end
// actions, with hold-to-repeat acceleration on navigation.
package input

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a front-end command a device binding can fire.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionSelect
	ActionBack
	ActionNextPlaylist
	ActionPrevPlaylist
	ActionPageUp
	ActionPageDown
	ActionLetterUp
	ActionLetterDown
	ActionFavorite
	ActionRandom
	ActionQuit
	actionCount
)

// Repeat pacing for held navigation.
const (
	repeatInitialDelay  = 350 * time.Millisecond
	repeatStartInterval = 150 * time.Millisecond
	repeatAcceleration  = 10 * time.Millisecond
	repeatMinInterval   = 40 * time.Millisecond
)

// Handler is one device binding: it refreshes its device state once
// per frame, reports held state, and decides when the bound action
// fires.
type Handler interface {
	// UpdateKeystate samples the device. Call once per frame before
	// Update.
	UpdateKeystate()
	// Update reports whether the action fires this frame.
	Update() bool
	// Pressed reports whether the binding is currently held.
	Pressed() bool
	// Reset drops held state and repeat tracking.
	Reset()
}

// repeatState paces a held binding: an immediate fire, a pause, then
// accelerating repeats down to a floor interval.
type repeatState struct {
	held      bool
	startTime time.Time
	lastFire  time.Time
	interval  time.Duration

	now func() time.Time
}

func (r *repeatState) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *repeatState) update(pressed bool) bool {
	if !pressed {
		r.reset()
		return false
	}
	now := r.clock()
	if !r.held {
		r.held = true
		r.startTime = now
		r.lastFire = now
		r.interval = repeatStartInterval
		return true
	}
	if now.Sub(r.startTime) >= repeatInitialDelay && now.Sub(r.lastFire) >= r.interval {
		r.lastFire = now
		r.interval -= repeatAcceleration
		if r.interval < repeatMinInterval {
			r.interval = repeatMinInterval
		}
		return true
	}
	return false
}

func (r *repeatState) reset() {
	r.held = false
	r.interval = repeatStartInterval
}

// KeyHandler binds keyboard keys to an action. With repeat enabled a
// held key refires with acceleration; otherwise only the initial edge
// fires.
type KeyHandler struct {
	keys   []ebiten.Key
	repeat repeatState

	repeatEnabled bool
	pressed       bool
	justPressed   bool
}

// NewKeyHandler returns an edge-triggered key binding.
func NewKeyHandler(keys ...ebiten.Key) *KeyHandler {
	return &KeyHandler{keys: keys}
}

// NewRepeatKeyHandler returns a key binding that refires while held.
func NewRepeatKeyHandler(keys ...ebiten.Key) *KeyHandler {
	return &KeyHandler{keys: keys, repeatEnabled: true}
}

func (h *KeyHandler) UpdateKeystate() {
	h.pressed = false
	h.justPressed = false
	for _, k := range h.keys {
		if ebiten.IsKeyPressed(k) {
			h.pressed = true
		}
		if inpututil.IsKeyJustPressed(k) {
			h.justPressed = true
		}
	}
}

func (h *KeyHandler) Update() bool {
	if h.repeatEnabled {
		return h.repeat.update(h.pressed)
	}
	return h.justPressed
}

func (h *KeyHandler) Pressed() bool { return h.pressed }

func (h *KeyHandler) Reset() {
	h.pressed = false
	h.justPressed = false
	h.repeat.reset()
}

// axisThreshold is the stick deflection treated as a press.
const axisThreshold = 0.5

// GamepadHandler binds standard gamepad buttons, and optionally one
// stick axis direction, to an action on the first connected pad.
type GamepadHandler struct {
	buttons []ebiten.StandardGamepadButton
	axis    ebiten.StandardGamepadAxis
	axisDir float64
	hasAxis bool

	repeat repeatState

	repeatEnabled bool
	pressed       bool
	justPressed   bool
}

// NewGamepadHandler returns an edge-triggered button binding.
func NewGamepadHandler(buttons ...ebiten.StandardGamepadButton) *GamepadHandler {
	return &GamepadHandler{buttons: buttons}
}

// NewRepeatGamepadHandler returns a button binding that refires while
// held.
func NewRepeatGamepadHandler(buttons ...ebiten.StandardGamepadButton) *GamepadHandler {
	return &GamepadHandler{buttons: buttons, repeatEnabled: true}
}

// WithAxis adds a stick direction (dir -1 or +1) to the binding.
func (h *GamepadHandler) WithAxis(axis ebiten.StandardGamepadAxis, dir float64) *GamepadHandler {
	h.axis = axis
	h.axisDir = dir
	h.hasAxis = true
	return h
}

func (h *GamepadHandler) UpdateKeystate() {
	wasPressed := h.pressed
	h.pressed = false
	h.justPressed = false

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return
	}
	id := ids[0]
	for _, b := range h.buttons {
		if ebiten.IsStandardGamepadButtonPressed(id, b) {
			h.pressed = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
			h.justPressed = true
		}
	}
	if h.hasAxis {
		v := ebiten.StandardGamepadAxisValue(id, h.axis)
		if v*h.axisDir > axisThreshold {
			h.pressed = true
			if !wasPressed {
				h.justPressed = true
			}
		}
	}
}

func (h *GamepadHandler) Update() bool {
	if h.repeatEnabled {
		return h.repeat.update(h.pressed)
	}
	return h.justPressed
}

func (h *GamepadHandler) Pressed() bool { return h.pressed }

func (h *GamepadHandler) Reset() {
	h.pressed = false
	h.justPressed = false
	h.repeat.reset()
}

// Manager owns the action bindings and polls them once per frame.
type Manager struct {
	handlers map[Action][]Handler
}

// NewManager returns a manager with the default keyboard and gamepad
// bindings.
func NewManager() *Manager {
	m := &Manager{handlers: make(map[Action][]Handler)}

	m.Bind(ActionUp, NewRepeatKeyHandler(ebiten.KeyArrowUp))
	m.Bind(ActionUp, NewRepeatGamepadHandler(ebiten.StandardGamepadButtonLeftTop).
		WithAxis(ebiten.StandardGamepadAxisLeftStickVertical, -1))
	m.Bind(ActionDown, NewRepeatKeyHandler(ebiten.KeyArrowDown))
	m.Bind(ActionDown, NewRepeatGamepadHandler(ebiten.StandardGamepadButtonLeftBottom).
		WithAxis(ebiten.StandardGamepadAxisLeftStickVertical, 1))
	m.Bind(ActionLeft, NewRepeatKeyHandler(ebiten.KeyArrowLeft))
	m.Bind(ActionLeft, NewRepeatGamepadHandler(ebiten.StandardGamepadButtonLeftLeft).
		WithAxis(ebiten.StandardGamepadAxisLeftStickHorizontal, -1))
	m.Bind(ActionRight, NewRepeatKeyHandler(ebiten.KeyArrowRight))
	m.Bind(ActionRight, NewRepeatGamepadHandler(ebiten.StandardGamepadButtonLeftRight).
		WithAxis(ebiten.StandardGamepadAxisLeftStickHorizontal, 1))

	m.Bind(ActionSelect, NewKeyHandler(ebiten.KeyEnter))
	m.Bind(ActionSelect, NewGamepadHandler(ebiten.StandardGamepadButtonRightBottom))
	m.Bind(ActionBack, NewKeyHandler(ebiten.KeyBackspace))
	m.Bind(ActionBack, NewGamepadHandler(ebiten.StandardGamepadButtonRightRight))

	m.Bind(ActionNextPlaylist, NewKeyHandler(ebiten.KeyBracketRight))
	m.Bind(ActionNextPlaylist, NewGamepadHandler(ebiten.StandardGamepadButtonFrontTopRight))
	m.Bind(ActionPrevPlaylist, NewKeyHandler(ebiten.KeyBracketLeft))
	m.Bind(ActionPrevPlaylist, NewGamepadHandler(ebiten.StandardGamepadButtonFrontTopLeft))

	m.Bind(ActionPageUp, NewRepeatKeyHandler(ebiten.KeyPageUp))
	m.Bind(ActionPageDown, NewRepeatKeyHandler(ebiten.KeyPageDown))
	m.Bind(ActionLetterUp, NewRepeatKeyHandler(ebiten.KeyHome))
	m.Bind(ActionLetterDown, NewRepeatKeyHandler(ebiten.KeyEnd))

	m.Bind(ActionFavorite, NewKeyHandler(ebiten.KeyF))
	m.Bind(ActionFavorite, NewGamepadHandler(ebiten.StandardGamepadButtonRightTop))
	m.Bind(ActionRandom, NewKeyHandler(ebiten.KeyR))
	m.Bind(ActionQuit, NewKeyHandler(ebiten.KeyEscape))

	return m
}

// Bind adds a handler to an action.
func (m *Manager) Bind(a Action, h Handler) {
	m.handlers[a] = append(m.handlers[a], h)
}

// UpdateKeystate samples every binding. Call once per frame.
func (m *Manager) UpdateKeystate() {
	for _, hs := range m.handlers {
		for _, h := range hs {
			h.UpdateKeystate()
		}
	}
}

// Fired reports whether any binding fires the action this frame.
func (m *Manager) Fired(a Action) bool {
	fired := false
	for _, h := range m.handlers[a] {
		if h.Update() {
			fired = true
		}
	}
	return fired
}

// Pressed reports whether any binding for the action is held.
func (m *Manager) Pressed(a Action) bool {
	for _, h := range m.handlers[a] {
		if h.Pressed() {
			return true
		}
	}
	return false
}

// AnyPressed reports whether any binding at all is held. The launch
// supervisor polls this to let the operator kill a child process.
func (m *Manager) AnyPressed() bool {
	for _, hs := range m.handlers {
		for _, h := range hs {
			if h.Pressed() {
				return true
			}
		}
	}
	return false
}

// Reset drops all held state, used when focus returns from a child
// process.
func (m *Manager) Reset() {
	for _, hs := range m.handlers {
		for _, h := range hs {
			h.Reset()
		}
	}
}
