package layout

import (
	"log"
	"strconv"
	"strings"

	"github.com/CoinOPS-Official/retrofe/graphics/animate"
)

// eventNames maps layout element names to the event names components
// are triggered with.
var eventNames = map[string]string{
	"onEnter":               "enter",
	"onExit":                "exit",
	"onIdle":                "idle",
	"onMenuIdle":            "menuIdle",
	"onMenuScroll":          "menuScroll",
	"onPlaylistScroll":      "playlistScroll",
	"onHighlightEnter":      "highlightEnter",
	"onHighlightExit":       "highlightExit",
	"onMenuEnter":           "menuEnter",
	"onMenuExit":            "menuExit",
	"onGameEnter":           "gameEnter",
	"onGameExit":            "gameExit",
	"onPlaylistEnter":       "playlistEnter",
	"onPlaylistExit":        "playlistExit",
	"onPlaylistNextEnter":   "playlistNextEnter",
	"onPlaylistNextExit":    "playlistNextExit",
	"onPlaylistPrevEnter":   "playlistPrevEnter",
	"onPlaylistPrevExit":    "playlistPrevExit",
	"onMenuJumpEnter":       "menuJumpEnter",
	"onMenuJumpExit":        "menuJumpExit",
	"onAttractEnter":        "attractEnter",
	"onAttract":             "attract",
	"onAttractExit":         "attractExit",
	"onJukeboxJump":         "jukeboxJump",
	"onGameInfoEnter":       "gameInfoEnter",
	"onGameInfoExit":        "gameInfoExit",
	"onCollectionInfoEnter": "collectionInfoEnter",
	"onCollectionInfoExit":  "collectionInfoExit",
	"onBuildInfoEnter":      "buildInfoEnter",
	"onBuildInfoExit":       "buildInfoExit",
}

// menuIndices expands a menuIndex attribute into the indices the
// animation is installed under. Supported forms: absent (wildcard
// -1), a plain depth, "iN" for the active-menu bucket at depth N,
// "!N" for every depth but N, "<N" and ">N" for half-open ranges.
func menuIndices(spec string) []int {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return []int{-1}
	}
	parseRest := func(rest string) (int, bool) {
		n, err := strconv.Atoi(rest)
		if err != nil {
			log.Printf("layout: bad menuIndex %q ignored", spec)
			return 0, false
		}
		return n, true
	}
	switch {
	case spec[0] == 'i':
		if len(spec) == 1 {
			return []int{animate.MenuIndexHigh}
		}
		n, ok := parseRest(spec[1:])
		if !ok {
			return nil
		}
		return []int{animate.MenuIndexHigh + n}
	case spec[0] == '!':
		n, ok := parseRest(spec[1:])
		if !ok {
			return nil
		}
		var out []int
		for i := 0; i < animate.MenuIndexHigh-1; i++ {
			if i != n {
				out = append(out, i)
			}
		}
		return out
	case spec[0] == '<':
		n, ok := parseRest(spec[1:])
		if !ok {
			return nil
		}
		var out []int
		for i := 0; i < n; i++ {
			out = append(out, i)
		}
		return out
	case spec[0] == '>':
		n, ok := parseRest(spec[1:])
		if !ok {
			return nil
		}
		var out []int
		for i := n + 1; i < animate.MenuIndexHigh-1; i++ {
			out = append(out, i)
		}
		return out
	default:
		n, ok := parseRest(spec)
		if !ok {
			return nil
		}
		return []int{n}
	}
}

// geometry resolves layout coordinate keywords against the layout
// dimensions.
type geometry struct {
	width  float64
	height float64
}

// horizontalProperty reports whether keyword and percent values for a
// property resolve against the layout width rather than the height.
func horizontalProperty(p animate.Property) bool {
	switch p {
	case animate.PropertyX, animate.PropertyXOffset, animate.PropertyXOrigin,
		animate.PropertyWidth, animate.PropertyMaxWidth,
		animate.PropertyContainerX, animate.PropertyContainerWidth:
		return true
	}
	return false
}

// resolve turns an attribute value into a coordinate. Keywords map to
// layout edges, "N%" to a fraction of the layout dimension, anything
// else parses as a number.
func (g geometry) resolve(value string, horizontal bool) (float64, bool) {
	dim := g.height
	if horizontal {
		dim = g.width
	}
	switch strings.ToLower(value) {
	case "":
		return 0, false
	case "left", "top":
		return 0, true
	case "center":
		return dim / 2, true
	case "right", "bottom", "stretch":
		return dim, true
	}
	if strings.HasSuffix(value, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			log.Printf("layout: bad percent value %q", value)
			return 0, false
		}
		return dim * pct / 100, true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("layout: bad numeric value %q", value)
		return 0, false
	}
	return f, true
}

// buildEvents assembles an animation table from the on* children of a
// layout element. Unknown element names are logged and skipped.
func buildEvents(pool *animate.Pool, nodes []eventNode, g geometry) *animate.Events {
	ev := animate.NewEvents()
	for _, n := range nodes {
		name, ok := eventNames[n.XMLName.Local]
		if !ok {
			log.Printf("layout: unknown element <%s> ignored", n.XMLName.Local)
			continue
		}
		for _, idx := range menuIndices(n.MenuIndex) {
			ev.Set(pool, name, idx, buildAnimation(pool, n.Sets, g))
		}
	}
	return ev
}

// buildAnimation turns <set> steps into an animation. A set without a
// parsable duration is skipped; an animate without a known property or
// a usable "to" value is skipped. A missing "from" leaves the start
// undefined so playback picks up the property's current value.
func buildAnimation(pool *animate.Pool, sets []setNode, g geometry) *animate.Animation {
	a := animate.NewAnimation()
	for _, s := range sets {
		duration, err := strconv.ParseFloat(s.Duration, 64)
		if err != nil {
			log.Printf("layout: animation set missing duration, skipped")
			continue
		}
		ts := animate.NewTweenSet()
		for _, an := range s.Animates {
			prop, ok := animate.ParseProperty(an.Type)
			if !ok {
				log.Printf("layout: unknown animate property %q skipped", an.Type)
				continue
			}
			horizontal := horizontalProperty(prop)
			to, toOK := g.resolve(an.To, horizontal)
			if !toOK && prop != animate.PropertyNop && prop != animate.PropertyRestart {
				log.Printf("layout: animate %q missing to value, skipped", an.Type)
				continue
			}
			tw := pool.Acquire(prop, animate.ParseAlgorithm(an.Algorithm), 0, to, duration)
			if an.From != nil {
				from, _ := g.resolve(*an.From, horizontal)
				tw.Start = from
			} else {
				tw.StartDefined = false
			}
			tw.PlaylistFilter = an.Playlist
			ts.Push(pool, tw)
		}
		a.Push(ts)
	}
	return a
}
