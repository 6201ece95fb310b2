package bubble

import (
	"math"
	"strings"

	"github.com/gogpu/gg/text"
)

// Text layout constants, in drawing units.
const (
	TextInsetX       = 20.0
	TextInsetY       = 18.0
	FontSize         = 16.0
	LineHeightFactor = 1.12
)

// placedLine is one wrapped line with its baseline origin.
type placedLine struct {
	Text     string
	X        float64
	Baseline float64
}

// layoutText wraps s to box.W, left aligns it and centers the block vertically in
// box. Lines that do not fit in box.H are dropped.
func layoutText(s string, face text.Face, box Rect) []placedLine {
	if strings.TrimSpace(s) == "" || box.Empty() {
		return nil
	}

	m := face.Metrics()
	lineHeight := m.LineHeight() * LineHeightFactor
	if lineHeight <= 0 {
		return nil
	}
	maxLines := int(math.Floor(box.H/lineHeight + 1e-9))
	if maxLines < 1 {
		maxLines = 1
	}

	var lines []string
	for _, w := range text.WrapText(s, face, box.W, text.WrapWordChar) {
		lines = append(lines, strings.TrimRight(w.Text, " \t"))
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	blockHeight := float64(len(lines)) * lineHeight
	top := box.Y + (box.H-blockHeight)/2
	// glyph box centered inside each line slot
	lead := (lineHeight - (m.Ascent + m.Descent)) / 2

	out := make([]placedLine, 0, len(lines))
	for i, l := range lines {
		out = append(out, placedLine{
			Text:     l,
			X:        box.X,
			Baseline: top + float64(i)*lineHeight + lead + m.Ascent,
		})
	}
	return out
}
