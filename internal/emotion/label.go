// Package emotion resolves raw classifier output into a single primary emotion.
package emotion

import "strings"

// Label is a normalized emotion identifier: lower-cased and trimmed.
type Label string

// Neutral is returned whenever there is nothing to resolve.
const Neutral Label = "neutral"

// Normalize lower-cases and trims s. The result may be empty.
func Normalize(s string) Label {
	return Label(strings.ToLower(strings.TrimSpace(s)))
}

// ParseLabel normalizes s and reports whether it is a usable (non-empty) label.
func ParseLabel(s string) (Label, bool) {
	l := Normalize(s)
	return l, l != ""
}

func (l Label) String() string { return string(l) }

// LabelSet is the ordered output of splitting a raw classifier string.
// Duplicates are kept.
type LabelSet []Label

// Separator joins multiple labels in raw classifier output.
const Separator = ","

// Split breaks raw on commas, normalizes each token and drops empty ones.
func Split(raw string) LabelSet {
	parts := strings.Split(raw, Separator)
	out := make(LabelSet, 0, len(parts))
	for _, p := range parts {
		if l, ok := ParseLabel(p); ok {
			out = append(out, l)
		}
	}
	return out
}

// Contains reports whether l is in the set.
func (s LabelSet) Contains(l Label) bool {
	for _, v := range s {
		if v == l {
			return true
		}
	}
	return false
}

// Join renders the set back to the comma-joined form.
func (s LabelSet) Join() string {
	parts := make([]string, len(s))
	for i, l := range s {
		parts[i] = string(l)
	}
	return strings.Join(parts, Separator)
}
