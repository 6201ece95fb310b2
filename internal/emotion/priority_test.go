package emotion

import "testing"

func TestResolvePrimary(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Label
	}{
		{"empty", "", Neutral},
		{"only separators", " , ,, ", Neutral},
		{"single known", "joy", "joy"},
		{"single unknown passthrough", "zzz-unknown", "zzz-unknown"},
		{"positive beats negative", "annoyance,joy", "joy"},
		{"order does not matter", "joy,annoyance", "joy"},
		{"love beats joy", "love,joy", "love"},
		{"negative beats ambiguous", "neutral, sadness", "sadness"},
		{"whitespace and case", "  Gratitude ,APPROVAL ", "gratitude"},
		{"first unknown kept", "blorp,zap", "blorp"},
		{"known among unknown", "blorp,fear,zap", "fear"},
		{"duplicates", "anger,anger", "anger"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePrimary(tt.raw); got != tt.want {
				t.Errorf("ResolvePrimary(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveHighestPriorityRegardlessOfOrder(t *testing.T) {
	labels := DefaultPriority.Labels()
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			hi, lo := labels[i], labels[j]
			if got := ResolvePrimary(string(lo) + "," + string(hi)); got != hi {
				t.Fatalf("ResolvePrimary(%s,%s) = %s, want %s", lo, hi, got, hi)
			}
		}
	}
}

func TestSplit(t *testing.T) {
	got := Split(" Joy,, love ,joy")
	want := LabelSet{"joy", "love", "joy"}
	if len(got) != len(want) {
		t.Fatalf("Split len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Split[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got.Join() != "joy,love,joy" {
		t.Errorf("Join = %q", got.Join())
	}
}

func TestNewPriorityTableRejectsInvalid(t *testing.T) {
	cases := map[string][]Entry{
		"empty label":    {{"", CategoryPositive}},
		"not normalized": {{"Joy", CategoryPositive}},
		"duplicate":      {{"joy", CategoryPositive}, {"joy", CategoryNegative}},
	}
	for name, entries := range cases {
		if _, err := NewPriorityTable(entries...); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLookup(t *testing.T) {
	if c, ok := DefaultPriority.Lookup("grief"); !ok || c != CategoryNegative {
		t.Errorf("Lookup(grief) = %v, %v", c, ok)
	}
	if c, ok := DefaultPriority.Lookup("zzz"); ok || c != CategoryUnknown {
		t.Errorf("Lookup(zzz) = %v, %v", c, ok)
	}
	if DefaultPriority.Len() != 28 {
		t.Errorf("DefaultPriority.Len() = %d, want 28", DefaultPriority.Len())
	}
}

func TestCategoryString(t *testing.T) {
	if CategoryAmbiguous.String() != "ambiguous" || Category(42).String() != "unknown" {
		t.Error("unexpected category names")
	}
}
