package catalog

import (
	"strings"
	"testing"

	"github.com/youruser/bubblesticker/internal/emotion"
	"github.com/youruser/bubblesticker/internal/palette"
)

func TestExportText(t *testing.T) {
	got := ExportText([]Entry{{Emotion: "joy", Color: "#FFD700"}, {Emotion: "love", Color: "#FF69B4"}})
	if got != "joy #FFD700\nlove #FF69B4" {
		t.Errorf("ExportText = %q", got)
	}
	if ExportText(nil) != "" {
		t.Error("empty export should be empty")
	}
}

func TestExportJSONLoadsAsOverrides(t *testing.T) {
	src := palette.New()
	data, err := ExportJSON(Build(src, emotion.DefaultPriority))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"emotion_colors"`) {
		t.Fatalf("missing wrapper: %s", data)
	}
	entries, err := palette.ParseOverrides("export.json", data)
	if err != nil {
		t.Fatal(err)
	}
	dst := palette.New(palette.WithOverrides(entries...))
	for _, l := range src.AvailableEmotions() {
		if src.ColorFor(string(l)).Hex() != dst.ColorFor(string(l)).Hex() {
			t.Errorf("%s: %s != %s", l, src.ColorFor(string(l)).Hex(), dst.ColorFor(string(l)).Hex())
		}
	}
}
