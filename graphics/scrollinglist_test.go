package graphics

import (
	"testing"

	"github.com/CoinOPS-Official/retrofe/collection"
	"github.com/CoinOPS-Official/retrofe/graphics/animate"
)

func testItems(names ...string) []*collection.Item {
	items := make([]*collection.Item, len(names))
	for i, name := range names {
		items[i] = &collection.Item{Name: name, Title: name, FullTitle: name}
	}
	return items
}

func testPoints(n int) ([]*ViewInfo, []*animate.Events) {
	views := make([]*ViewInfo, n)
	events := make([]*animate.Events, n)
	for i := range views {
		v := NewViewInfo()
		v.X = float64(i) * 100
		views[i] = &v
		events[i] = animate.NewEvents()
	}
	return views, events
}

func newTestList(t *testing.T, opts ListOptions) *ScrollingList {
	t.Helper()
	locator := &MediaLocator{BaseDir: t.TempDir(), LayoutName: "default"}
	opts.TextFallback = true
	base := NewBase(nil, animate.NewPool())
	return NewScrollingList(base, opts, locator, nil, nil)
}

func slotText(t *testing.T, l *ScrollingList, i int) string {
	t.Helper()
	c := l.SlotComponent(i)
	if c == nil {
		t.Fatalf("slot %d is empty", i)
	}
	text, ok := c.(*TextComponent)
	if !ok {
		t.Fatalf("slot %d holds %T, want *TextComponent", i, c)
	}
	return text.Text()
}

func TestSetItemsAlignsSelectedSlot(t *testing.T) {
	l := newTestList(t, ListOptions{})
	l.SetSelectedOffset(2)
	l.SetItems(testItems("item0", "item1", "item2", "item3", "item4",
		"item5", "item6", "item7", "item8", "item9"))
	views, events := testPoints(5)
	l.SetPoints(views, events)

	if got := l.SelectedItem().Name; got != "item0" {
		t.Errorf("selected = %q, want item0", got)
	}
	// Slot i shows the item i positions into the window.
	for i, want := range []string{"item8", "item9", "item0", "item1", "item2"} {
		if got := slotText(t, l, i); got != want {
			t.Errorf("slot %d = %q, want %q", i, got, want)
		}
	}
}

func TestScrollForwardRebuildsExitingSlot(t *testing.T) {
	l := newTestList(t, ListOptions{})
	l.SetSelectedOffset(2)
	l.SetItems(testItems("item0", "item1", "item2", "item3", "item4",
		"item5", "item6", "item7", "item8", "item9"))
	views, events := testPoints(5)
	l.SetPoints(views, events)

	l.Scroll(true)

	if got := l.SelectedItem().Name; got != "item1" {
		t.Errorf("selected after forward scroll = %q, want item1", got)
	}
	for i, want := range []string{"item9", "item0", "item1", "item2", "item3"} {
		if got := slotText(t, l, i); got != want {
			t.Errorf("slot %d = %q, want %q", i, got, want)
		}
	}
}

func TestScrollRoundTripRestoresWindow(t *testing.T) {
	l := newTestList(t, ListOptions{})
	l.SetSelectedOffset(2)
	l.SetItems(testItems("item0", "item1", "item2", "item3", "item4",
		"item5", "item6", "item7", "item8", "item9"))
	views, events := testPoints(5)
	l.SetPoints(views, events)

	l.Scroll(true)
	l.Scroll(false)

	if got := l.SelectedItem().Name; got != "item0" {
		t.Errorf("selected after round trip = %q, want item0", got)
	}
	for i, want := range []string{"item8", "item9", "item0", "item1", "item2"} {
		if got := slotText(t, l, i); got != want {
			t.Errorf("slot %d = %q, want %q", i, got, want)
		}
	}
}

func TestPageJumpsMoveOneRing(t *testing.T) {
	l := newTestList(t, ListOptions{})
	l.SetItems(testItems("item0", "item1", "item2", "item3", "item4",
		"item5", "item6", "item7", "item8", "item9"))
	views, events := testPoints(3)
	l.SetPoints(views, events)

	l.PageDown()
	if got := l.SelectedItem().Name; got != "item3" {
		t.Errorf("selected after page down = %q, want item3", got)
	}
	l.PageUp()
	if got := l.SelectedItem().Name; got != "item0" {
		t.Errorf("selected after page up = %q, want item0", got)
	}
}

func TestLetterJumps(t *testing.T) {
	names := []string{"Alpha", "Alto", "Beta", "Bravo", "Charlie"}

	l := newTestList(t, ListOptions{})
	l.SetItems(testItems(names...))

	l.LetterUp()
	if got := l.SelectedItem().Name; got != "Beta" {
		t.Errorf("letter up from Alpha = %q, want Beta", got)
	}

	l.LetterDown()
	if got := l.SelectedItem().Name; got != "Alpha" {
		t.Errorf("letter down from Beta = %q, want Alpha", got)
	}
}

func TestLetterDownSubToCurrent(t *testing.T) {
	names := []string{"Alpha", "Alto", "Beta", "Bravo", "Charlie"}

	// With the option set, a backward jump from the middle of a letter
	// group stops at the group's start.
	l := newTestList(t, ListOptions{PrevLetterSubToCurrent: true})
	l.SetItems(testItems(names...))
	l.SetSelectedIndex(3) // Bravo
	l.LetterDown()
	if got := l.SelectedItem().Name; got != "Beta" {
		t.Errorf("letter down from Bravo = %q, want Beta", got)
	}

	// Without it, the jump crosses into the previous group.
	l2 := newTestList(t, ListOptions{})
	l2.SetItems(testItems(names...))
	l2.SetSelectedIndex(3)
	l2.LetterDown()
	if got := l2.SelectedItem().Name; got != "Alpha" {
		t.Errorf("letter down from Bravo = %q, want Alpha", got)
	}
}

func TestMetaJumps(t *testing.T) {
	items := testItems("a", "b", "c", "d")
	items[0].Manufacturer = "Capcom"
	items[1].Manufacturer = "Capcom"
	items[2].Manufacturer = "Sega"
	items[3].Manufacturer = "Sega"

	l := newTestList(t, ListOptions{})
	l.SetItems(items)

	l.MetaUp("manufacturer")
	if got := l.SelectedItem().Name; got != "c" {
		t.Errorf("meta up = %q, want c", got)
	}
	l.MetaDown("manufacturer")
	if got := l.SelectedItem().Name; got != "a" {
		t.Errorf("meta down = %q, want a", got)
	}
}

func TestSelectItemByName(t *testing.T) {
	l := newTestList(t, ListOptions{})
	l.SetItems(testItems("one", "two", "three"))

	l.SelectItemByName("three")
	if got := l.SelectedItem().Name; got != "three" {
		t.Errorf("selected = %q, want three", got)
	}
	l.SelectItemByName("missing")
	if got := l.SelectedItem().Name; got != "three" {
		t.Errorf("selected after missing lookup = %q, want three", got)
	}
}

func TestScrollPeriodAcceleration(t *testing.T) {
	l := newTestList(t, ListOptions{})
	l.SetStartScrollTime(0.5)
	l.SetMinScrollTime(0.1)
	l.SetScrollAcceleration(0.3)

	if l.IsFastScrolling() {
		t.Error("fast scrolling before any acceleration")
	}
	l.UpdateScrollPeriod()
	l.UpdateScrollPeriod()
	if !l.IsFastScrolling() {
		t.Error("period should be clamped at the minimum")
	}
	l.ResetScrollPeriod()
	if l.IsFastScrolling() {
		t.Error("reset should restore the resting period")
	}
}

func TestScrollEmitsLinearTransition(t *testing.T) {
	l := newTestList(t, ListOptions{})
	l.SetStartScrollTime(0.5)
	l.SetMinScrollTime(0.1)
	l.SetItems(testItems("item0", "item1", "item2", "item3"))
	views, events := testPoints(3)
	l.SetPoints(views, events)

	l.Scroll(true)

	// Slot 1 sat at X=100 and tweens toward slot 0's X=0.
	c := l.SlotComponent(0)
	a := c.(*TextComponent).Tweens().GetAny("menuScroll")
	if a.Len() != 1 {
		t.Fatalf("menuScroll animation has %d sets, want 1", a.Len())
	}
	tw := a.TweenSet(0).ByProperty(animate.PropertyX)
	if tw == nil {
		t.Fatal("no X tween emitted")
	}
	if tw.Start != 100 || tw.End != 0 {
		t.Errorf("X tween %v -> %v, want 100 -> 0", tw.Start, tw.End)
	}
	if tw.Duration != 0.5 {
		t.Errorf("X tween duration = %v, want the scroll period", tw.Duration)
	}
}

func TestScrollSkipsUnchangedProperties(t *testing.T) {
	l := newTestList(t, ListOptions{})
	l.SetStartScrollTime(0.5)
	l.SetItems(testItems("item0", "item1", "item2"))

	views := make([]*ViewInfo, 2)
	events := make([]*animate.Events, 2)
	for i := range views {
		v := NewViewInfo()
		views[i] = &v
		events[i] = animate.NewEvents()
	}
	l.SetPoints(views, events)

	l.Scroll(true)

	a := l.SlotComponent(0).(*TextComponent).Tweens().GetAny("menuScroll")
	if a.Len() != 1 {
		t.Fatalf("menuScroll animation has %d sets, want 1", a.Len())
	}
	if n := a.TweenSet(0).Len(); n != 0 {
		t.Errorf("identical anchors emitted %d tweens, want 0", n)
	}
}
