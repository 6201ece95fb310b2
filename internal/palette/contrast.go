package palette

// Foreground colors returned by ContrastColorFor.
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

// Luminance weights in thousandths. Comparing the weighted sum against 500
// keeps a mid gray of exactly 0.5 on the black side without rounding slack.
const (
	weightR = 299
	weightG = 587
	weightB = 114

	// thresholdMilli is inclusive: luminance of exactly 0.5 selects black.
	thresholdMilli = 500
)

func weightedMilli(c Color) float64 {
	return weightR*clamp01(c.R) + weightG*clamp01(c.G) + weightB*clamp01(c.B)
}

// Luminance returns the perceptual luminance of c (alpha ignored), in [0, 1].
func Luminance(c Color) float64 {
	return weightedMilli(c) / 1000
}

// ContrastColorFor picks black text when luminance is at least 0.5 and white
// text below it.
func ContrastColorFor(base Color) Color {
	if weightedMilli(base) >= thresholdMilli {
		return Black
	}
	return White
}
