package picker

// contrastThreshold is the relative luminance at which black and white text
// have equal WCAG contrast against a background: sqrt(1.05*0.05) - 0.05.
const contrastThreshold = 0.179

// Luminance returns the WCAG 2.x relative luminance of c in [0, 1], computed
// from linearized sRGB channels. Alpha is ignored.
func Luminance(c Color) float64 {
	r, g, b := toColorful(c).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between a and b, from 1
// (identical luminance) to 21 (black on white).
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Contrast returns the text color, Black or White, that reads best on a
// background of c. Backgrounds brighter than the crossover luminance get
// black text, darker ones white.
func Contrast(c Color) Color {
	if Luminance(c) > contrastThreshold {
		return Black
	}
	return White
}
