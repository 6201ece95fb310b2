// Package catalog describes every palette emotion for pickers and listings.
package catalog

import (
	"sort"

	"github.com/youruser/bubblesticker/internal/emotion"
	"github.com/youruser/bubblesticker/internal/palette"
)

// Entry is one listed emotion with its derived colors as "#RRGGBB".
type Entry struct {
	Emotion    string `json:"emotion"`
	Category   string `json:"category"`
	Priority   int    `json:"priority"` // -1 when the emotion is not in the priority table
	Color      string `json:"color"`
	Lighter    string `json:"lighter"`
	Darker     string `json:"darker"`
	Foreground string `json:"foreground"`
}

// Build lists every palette emotion in palette order (ascending by name).
func Build(p *palette.Palette, t *emotion.PriorityTable) []Entry {
	labels := p.AvailableEmotions()
	out := make([]Entry, 0, len(labels))
	for _, l := range labels {
		out = append(out, Describe(p, t, l))
	}
	return out
}

// Describe builds the entry for a single label.
func Describe(p *palette.Palette, t *emotion.PriorityTable, l emotion.Label) Entry {
	stops := p.GradientStops(string(l))
	cat, _ := t.Lookup(l)
	rank, ok := t.Rank(l)
	if !ok {
		rank = -1
	}
	return Entry{
		Emotion:    string(l),
		Category:   cat.String(),
		Priority:   rank,
		Color:      stops.Base.Hex(),
		Lighter:    stops.Lighter.Hex(),
		Darker:     stops.Darker.Hex(),
		Foreground: palette.ContrastColorFor(stops.Base).Hex(),
	}
}

// SortByPriority orders entries by priority, unranked ones last by name.
func SortByPriority(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.Priority < 0 && b.Priority < 0:
			return a.Emotion < b.Emotion
		case a.Priority < 0:
			return false
		case b.Priority < 0:
			return true
		default:
			return a.Priority < b.Priority
		}
	})
}
