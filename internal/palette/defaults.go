package palette

import "github.com/youruser/bubblesticker/internal/emotion"

// System colors the default table is built from (light appearance).
var (
	systemYellow = RGB255(255, 204, 0)
	systemOrange = RGB255(255, 149, 0)
	systemPink   = RGB255(255, 45, 85)
	systemBlue   = RGB255(0, 122, 255)
	systemGreen  = RGB255(52, 199, 89)
	systemRed    = RGB255(255, 59, 48)
	systemPurple = RGB255(175, 82, 222)
	systemTeal   = RGB255(48, 176, 199)
	systemCyan   = RGB255(50, 173, 230)
	systemBrown  = RGB255(162, 132, 94)
	systemGray   = RGB255(142, 142, 147)
	systemGray2  = RGB255(174, 174, 178)
	systemGray3  = RGB255(199, 199, 204)
	systemGray4  = RGB255(209, 209, 214)
)

// NeutralGray is the last-resort color when even "neutral" is missing.
var NeutralGray = systemGray3

func defaultColors() map[emotion.Label]Color {
	return map[emotion.Label]Color{
		// positive
		"joy":        systemYellow,
		"excitement": systemOrange,
		"love":       systemPink,
		"optimism":   systemBlue,
		"amusement":  systemYellow,
		"approval":   systemGreen,
		"caring":     systemPink,
		"desire":     systemRed,
		"gratitude":  systemGreen,
		"pride":      systemPurple,
		"relief":     systemTeal,
		"admiration": systemBlue,

		// negative
		"anger":          systemRed,
		"sadness":        systemBlue,
		"fear":           systemGray,
		"disgust":        systemBrown,
		"disappointment": systemGray2,
		"disapproval":    systemRed,
		"embarrassment":  systemPink,
		"grief":          systemGray,
		"nervousness":    systemOrange,
		"remorse":        systemGray,
		"annoyance":      systemOrange,

		// neutral and ambiguous
		"neutral":     systemGray3,
		"curiosity":   systemCyan,
		"confusion":   systemYellow,
		"realization": systemTeal,
		"surprise":    systemYellow,
		"others":      systemGray4,
	}
}
