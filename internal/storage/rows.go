package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/youruser/bubblesticker/internal/emotion"
	"github.com/youruser/bubblesticker/internal/palette"
)

// toRows normalizes names and keeps only entries with valid channels. A later
// entry for the same emotion replaces an earlier one.
func toRows(entries []palette.OverrideEntry, now time.Time) ([]paletteColor, error) {
	var errs []error
	index := map[string]int{}
	var rows []paletteColor
	for _, e := range entries {
		label, ok := emotion.ParseLabel(e.Emotion)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: empty emotion name", palette.ErrMalformedOverride))
			continue
		}
		if _, err := e.Color(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label, err))
			continue
		}
		row := paletteColor{Emotion: string(label), Red: *e.Red, Green: *e.Green, Blue: *e.Blue, UpdatedAt: now}
		if i, seen := index[row.Emotion]; seen {
			rows[i] = row
			continue
		}
		index[row.Emotion] = len(rows)
		rows = append(rows, row)
	}
	return rows, errors.Join(errs...)
}
