package animate

// MenuIndexHigh offsets the menu depth used to address the active
// menu's animations. Depth d of the active menu is stored under
// MenuIndexHigh+d, inactive menus under d directly.
const MenuIndexHigh = 16

// Events maps event names ("enter", "exit", "idle", "menuScroll", ...)
// and a menu index to animations. Index -1 is the wildcard used when a
// specific index has no entry.
type Events struct {
	events map[string]map[int]*Animation
}

// NewEvents returns an empty event table.
func NewEvents() *Events {
	return &Events{events: make(map[string]map[int]*Animation)}
}

// Get resolves the animation for an event at a menu index. A missing
// index falls back to the wildcard entry, which is materialized empty
// on first access so callers always receive a playable animation.
func (e *Events) Get(event string, index int) *Animation {
	m, ok := e.events[event]
	if !ok {
		m = make(map[int]*Animation)
		e.events[event] = m
	}
	if _, ok := m[-1]; !ok {
		m[-1] = NewAnimation()
	}
	if _, ok := m[index]; !ok {
		index = -1
	}
	return m[index]
}

// GetAny resolves the wildcard animation for an event.
func (e *Events) GetAny(event string) *Animation {
	return e.Get(event, -1)
}

// Set installs an animation for an event at a menu index, destroying
// any animation it replaces.
func (e *Events) Set(pool *Pool, event string, index int, a *Animation) {
	m, ok := e.events[event]
	if !ok {
		m = make(map[int]*Animation)
		e.events[event] = m
	}
	if old, ok := m[index]; ok && old != nil {
		old.Destroy(pool)
	}
	m[index] = a
}

// Clear destroys every animation and empties the table.
func (e *Events) Clear(pool *Pool) {
	for _, m := range e.events {
		for _, a := range m {
			if a != nil {
				a.Destroy(pool)
			}
		}
	}
	e.events = make(map[string]map[int]*Animation)
}
