package palette

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/youruser/bubblesticker/internal/emotion"
	"github.com/youruser/bubblesticker/internal/logging"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestDefaultTableCoversPriority(t *testing.T) {
	p := New()
	for _, l := range emotion.DefaultPriority.Labels() {
		if _, ok := p.Lookup(l); !ok {
			t.Errorf("default palette has no color for %q", l)
		}
	}
	if p.Len() < 28 {
		t.Errorf("Len = %d, want at least 28", p.Len())
	}
}

func TestColorForIsTotal(t *testing.T) {
	p := New()
	neutral, _ := p.Lookup(emotion.Neutral)
	for _, in := range []string{"", "   ", "zzz-unknown", "日本語", "\x00\xff", "NEUTRAL"} {
		if got := p.ColorFor(in); got != neutral {
			t.Errorf("ColorFor(%q) = %v, want neutral %v", in, got, neutral)
		}
	}
}

func TestColorForNormalizes(t *testing.T) {
	p := New()
	love, _ := p.Lookup("love")
	if got := p.ColorFor("  LoVe "); got != love {
		t.Errorf("ColorFor normalized = %v, want %v", got, love)
	}
}

func TestColorForIdempotent(t *testing.T) {
	p := New()
	for _, name := range []string{"joy", "unknown", ""} {
		first := p.ColorFor(name)
		for i := 0; i < 5; i++ {
			if got := p.ColorFor(name); got != first {
				t.Fatalf("ColorFor(%q) drifted: %v then %v", name, first, got)
			}
		}
	}
}

func TestColorForWithoutNeutral(t *testing.T) {
	p := &Palette{colors: map[emotion.Label]Color{}, logger: logging.Nop()}
	if got := p.ColorFor("joy"); got != NeutralGray {
		t.Errorf("ColorFor on empty palette = %v, want NeutralGray", got)
	}
}

func TestGradientStops(t *testing.T) {
	p := New()
	for _, name := range []string{"joy", "love", "anger", "fear", "neutral", "missing"} {
		s := p.GradientStops(name)
		if s.Base != p.ColorFor(name) {
			t.Errorf("%s: base %v != ColorFor %v", name, s.Base, p.ColorFor(name))
		}
		bh, bs, bv := s.Base.HSB()
		lh, ls, lv := s.Lighter.HSB()
		dh, ds, dv := s.Darker.HSB()
		if lv < bv-eps {
			t.Errorf("%s: lighter brightness %v < base %v", name, lv, bv)
		}
		if dv > bv+eps {
			t.Errorf("%s: darker brightness %v > base %v", name, dv, bv)
		}
		if bs > 0 && (!approx(lh, bh) || !approx(dh, bh)) {
			t.Errorf("%s: hue changed: base %v lighter %v darker %v", name, bh, lh, dh)
		}
		if !approx(ls, bs) || !approx(ds, bs) {
			t.Errorf("%s: saturation changed: base %v lighter %v darker %v", name, bs, ls, ds)
		}
	}
}

func TestWithBrightnessClamps(t *testing.T) {
	c := RGB(1, 1, 1).WithBrightness(1.5)
	if c.R > 1 || c.G > 1 || c.B > 1 {
		t.Errorf("WithBrightness exceeded range: %v", c)
	}
	c = RGB(0.2, 0.4, 0.6).WithBrightness(-1)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("negative factor should clamp to black, got %v", c)
	}
}

func TestHSBRoundTrip(t *testing.T) {
	for _, c := range []Color{systemYellow, systemPink, systemBlue, systemGray3, RGB(0, 0, 0), RGB(1, 0, 0.5)} {
		h, s, v := c.HSB()
		back := HSB(h, s, v, c.A)
		if !approx(back.R, c.R) || !approx(back.G, c.G) || !approx(back.B, c.B) {
			t.Errorf("HSB round trip %v -> %v", c, back)
		}
	}
}

func TestContrastColorFor(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want Color
	}{
		{"white bg", RGB(1, 1, 1), Black},
		{"black bg", RGB(0, 0, 0), White},
		{"yellow bg", systemYellow, Black},
		{"blue bg", systemBlue, White},
		{"mid gray tie", RGB(0.5, 0.5, 0.5), Black},
		{"just below", RGB(0.49, 0.49, 0.49), White},
		{"a hair below the tie", RGB(0.4999999995, 0.4999999995, 0.4999999995), White},
		{"just above", RGB(0.51, 0.51, 0.51), Black},
		{"out of range", Color{R: 4, G: -2, B: math.NaN(), A: 1}, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastColorFor(tt.in); got != tt.want {
				t.Errorf("ContrastColorFor(%v) = %v, want %v (luminance %v)", tt.in, got, tt.want, Luminance(tt.in))
			}
		})
	}
}

func TestAvailableEmotionsSorted(t *testing.T) {
	got := New(WithOverrides(NewOverride("Zest", 1, 2, 3))).AvailableEmotions()
	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }) {
		t.Fatalf("AvailableEmotions not sorted: %v", got)
	}
	found := false
	for _, l := range got {
		if l == "zest" {
			found = true
		}
	}
	if !found {
		t.Errorf("override key zest missing from %v", got)
	}
}

func TestOverridesMerge(t *testing.T) {
	bad := 300.0
	p := New(WithOverrides(
		NewOverride(" JOY ", 10, 20, 30),
		OverrideEntry{Emotion: "anger", Red: &bad, Green: &bad, Blue: &bad},
		OverrideEntry{Emotion: "fear"},
		NewOverride("", 1, 1, 1),
	))
	if got := p.ColorFor("joy").Hex(); got != "#0A141E" {
		t.Errorf("joy override = %s, want #0A141E", got)
	}
	if got := p.ColorFor("anger"); got != systemRed {
		t.Errorf("invalid anger override applied: %v", got)
	}
	if got := p.ColorFor("fear"); got != systemGray {
		t.Errorf("channel-less fear override applied: %v", got)
	}
}

func TestOverrideEntryColor(t *testing.T) {
	if _, err := (OverrideEntry{Emotion: "x"}).Color(); !errors.Is(err, ErrMalformedOverride) {
		t.Errorf("missing channels err = %v, want ErrMalformedOverride", err)
	}
	nan := math.NaN()
	if _, err := (OverrideEntry{Emotion: "x", Red: &nan, Green: &nan, Blue: &nan}).Color(); !errors.Is(err, ErrMalformedOverride) {
		t.Errorf("NaN err = %v, want ErrMalformedOverride", err)
	}
	c, err := NewOverride("x", 255, 0, 255).Color()
	if err != nil {
		t.Fatal(err)
	}
	if c.Hex() != "#FF00FF" {
		t.Errorf("Hex = %s", c.Hex())
	}
}

func TestParseHex(t *testing.T) {
	for in, want := range map[string]string{"#FFD700": "#FFD700", "ffd700": "#FFD700", "#abc": "#AABBCC"} {
		c, err := ParseHex(in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", in, err)
		}
		if c.Hex() != want {
			t.Errorf("ParseHex(%q).Hex() = %s, want %s", in, c.Hex(), want)
		}
	}
	for _, in := range []string{"", "#12", "#GGGGGG", "#1234567"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) should fail", in)
		}
	}
}

func TestParseOverrideJSONChannels(t *testing.T) {
	data := []byte(`{"Joy": {"red": 1, "green": 2, "blue": 3}, "anger": {"red": 5}, "odd": 7}`)
	entries, err := ParseOverrideJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 || entries[0].Emotion != "Joy" || entries[1].Emotion != "anger" || entries[2].Emotion != "odd" {
		t.Fatalf("unexpected entries %+v", entries)
	}
	p := New(WithOverrides(entries...))
	if p.ColorFor("joy").Hex() != "#010203" {
		t.Errorf("joy = %s", p.ColorFor("joy").Hex())
	}
	if p.ColorFor("anger") != systemRed {
		t.Errorf("partial anger entry should be skipped")
	}
}

func TestParseOverrideJSONExportWrapper(t *testing.T) {
	data := []byte(`{"emotion_colors": {"joy": "#FFD700", "neutral": "#C0C0C0", "bad": "#zz"}, "total_emotions": 3}`)
	entries, err := ParseOverrideJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	p := New(WithOverrides(entries...))
	if got := p.ColorFor("joy").Hex(); got != "#FFD700" {
		t.Errorf("joy = %s", got)
	}
	if got := p.ColorFor("missing").Hex(); got != "#C0C0C0" {
		t.Errorf("fallback should use overridden neutral, got %s", got)
	}
	if _, ok := p.Lookup("bad"); ok {
		t.Errorf("malformed hex entry inserted")
	}
}

func TestParseOverrideJSONInvalid(t *testing.T) {
	if _, err := ParseOverrideJSON([]byte(`[1,2`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseOverrideCSV(t *testing.T) {
	in := "Emotion, Red, Green, Blue, Hex\njoy,1,2,3,\nlove,,,,#FF0000\nfear,abc,1,1,\n"
	entries, err := ParseOverrideCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries", len(entries))
	}
	p := New(WithOverrides(entries...))
	if p.ColorFor("joy").Hex() != "#010203" {
		t.Errorf("joy = %s", p.ColorFor("joy").Hex())
	}
	if p.ColorFor("love").Hex() != "#FF0000" {
		t.Errorf("love = %s", p.ColorFor("love").Hex())
	}
	if p.ColorFor("fear") != systemGray {
		t.Errorf("fear with bad channel should be skipped")
	}
}

func TestParseOverrideCSVNoEmotionColumn(t *testing.T) {
	if _, err := ParseOverrideCSV(strings.NewReader("name,red\nx,1\n")); err == nil {
		t.Error("expected error without emotion column")
	}
}

func TestLoadOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colors.json")
	if err := os.WriteFile(path, []byte(`{"joy":{"red":0,"green":0,"blue":255}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	entries, err := LoadOverrideFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Emotion != "joy" {
		t.Fatalf("entries = %+v", entries)
	}
	if _, err := LoadOverrideFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseOverridesSniff(t *testing.T) {
	entries, err := ParseOverrides("remote", []byte(` {"joy":"#000000"}`))
	if err != nil || len(entries) != 1 {
		t.Fatalf("sniff json: %v %+v", err, entries)
	}
	entries, err = ParseOverrides("remote", []byte("emotion,hex\njoy,#000000\n"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("sniff csv: %v %+v", err, entries)
	}
}
