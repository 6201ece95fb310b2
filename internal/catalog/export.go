package catalog

import (
	"encoding/json"
	"strings"
)

// ExportText renders one "emotion #RRGGBB" line per entry, in entry order.
func ExportText(entries []Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Emotion+" "+e.Color)
	}
	return strings.Join(lines, "\n")
}

type mappingFile struct {
	EmotionColors map[string]string `json:"emotion_colors"`
	Total         int               `json:"total_emotions"`
}

// ExportJSON writes the {"emotion_colors": {...}, "total_emotions": n} document
// that palette override files accept.
func ExportJSON(entries []Entry) ([]byte, error) {
	m := mappingFile{EmotionColors: make(map[string]string, len(entries)), Total: len(entries)}
	for _, e := range entries {
		m.EmotionColors[e.Emotion] = e.Color
	}
	return json.MarshalIndent(m, "", "  ")
}
