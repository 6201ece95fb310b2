package emotion

import "fmt"

// Category groups emotions for display and ordering.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryPositive
	CategoryNegative
	CategoryAmbiguous
)

// String returns the lower-case category name.
func (c Category) String() string {
	names := []string{"unknown", "positive", "negative", "ambiguous"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// Entry is one row of a PriorityTable.
type Entry struct {
	Label    Label
	Category Category
}

// PriorityTable is an immutable precedence list used to pick one label out of many.
// Earlier entries win.
type PriorityTable struct {
	entries []Entry
	index   map[Label]int
}

// NewPriorityTable validates entries (non-empty, normalized, unique) and builds a table.
func NewPriorityTable(entries ...Entry) (*PriorityTable, error) {
	t := &PriorityTable{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[Label]int, len(entries)),
	}
	for i, e := range entries {
		l, ok := ParseLabel(string(e.Label))
		if !ok {
			return nil, fmt.Errorf("priority entry %d: empty label", i)
		}
		if l != e.Label {
			return nil, fmt.Errorf("priority entry %d: label %q is not normalized", i, e.Label)
		}
		if _, dup := t.index[l]; dup {
			return nil, fmt.Errorf("priority entry %d: duplicate label %q", i, l)
		}
		t.index[l] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// MustPriorityTable is NewPriorityTable for package-level tables; it panics on invalid input.
func MustPriorityTable(entries ...Entry) *PriorityTable {
	t, err := NewPriorityTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the primary emotion in raw, a comma-joined label list.
//
// An empty list yields Neutral. Otherwise the highest-priority label present wins;
// if none of the labels are in the table the first one is returned as-is.
func (t *PriorityTable) Resolve(raw string) Label {
	return t.ResolveSet(Split(raw))
}

// ResolveSet is Resolve for an already split label set.
func (t *PriorityTable) ResolveSet(set LabelSet) Label {
	if len(set) == 0 {
		return Neutral
	}
	best := -1
	for _, l := range set {
		if i, ok := t.index[l]; ok && (best < 0 || i < best) {
			best = i
		}
	}
	if best >= 0 {
		return t.entries[best].Label
	}
	return set[0]
}

// Lookup reports the category of l and whether l is a table entry.
// A label that is present but unknown comes back as (CategoryUnknown, false).
func (t *PriorityTable) Lookup(l Label) (Category, bool) {
	i, ok := t.index[l]
	if !ok {
		return CategoryUnknown, false
	}
	return t.entries[i].Category, true
}

// Rank returns the zero-based position of l, where 0 wins over every other label.
func (t *PriorityTable) Rank(l Label) (int, bool) {
	i, ok := t.index[l]
	return i, ok
}

// Labels returns the table labels in priority order.
func (t *PriorityTable) Labels() []Label {
	out := make([]Label, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Label
	}
	return out
}

// Len returns the number of entries.
func (t *PriorityTable) Len() int { return len(t.entries) }

// DefaultPriority orders positive emotions before negative ones before neutral or
// ambiguous ones. love precedes joy so an explicit "love" is never masked by the
// more generic "joy".
var DefaultPriority = MustPriorityTable(
	Entry{"love", CategoryPositive},
	Entry{"joy", CategoryPositive},
	Entry{"excitement", CategoryPositive},
	Entry{"amusement", CategoryPositive},
	Entry{"gratitude", CategoryPositive},
	Entry{"pride", CategoryPositive},
	Entry{"optimism", CategoryPositive},
	Entry{"admiration", CategoryPositive},
	Entry{"approval", CategoryPositive},
	Entry{"caring", CategoryPositive},
	Entry{"relief", CategoryPositive},
	Entry{"desire", CategoryPositive},

	Entry{"anger", CategoryNegative},
	Entry{"sadness", CategoryNegative},
	Entry{"fear", CategoryNegative},
	Entry{"disgust", CategoryNegative},
	Entry{"disappointment", CategoryNegative},
	Entry{"annoyance", CategoryNegative},
	Entry{"embarrassment", CategoryNegative},
	Entry{"nervousness", CategoryNegative},
	Entry{"remorse", CategoryNegative},
	Entry{"grief", CategoryNegative},
	Entry{"disapproval", CategoryNegative},

	Entry{"surprise", CategoryAmbiguous},
	Entry{"curiosity", CategoryAmbiguous},
	Entry{"confusion", CategoryAmbiguous},
	Entry{"realization", CategoryAmbiguous},
	Entry{"neutral", CategoryAmbiguous},
)

// ResolvePrimary resolves raw against DefaultPriority.
func ResolvePrimary(raw string) Label {
	return DefaultPriority.Resolve(raw)
}
