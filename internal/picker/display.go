package picker

import (
	"fmt"
	"math"
)

// Display is the complete picker read-out for one click, ready to be bound
// to labels and text boxes.
//
// A Display with Sampled == false is the cleared state: labels are set but
// every value is empty.
type Display struct {
	Sampled bool `json:"sampled"`

	// Location is the sampled pixel as "X, Y".
	Location string `json:"location"`

	// Swatch is the sample as "#RRGGBBAA", for painting the preview panel.
	Swatch string `json:"swatch"`

	RGBLabel string `json:"rgb_label"` // "RGB:" or "RGBA:"
	RGB      string `json:"rgb"`
	HEXLabel string `json:"hex_label"` // "HEX:" or "HEXA:"
	HEX      string `json:"hex"`       // with leading '#'
	CMYK     string `json:"cmyk"`
	HSLLabel string `json:"hsl_label"` // "HSL:" or "HSLA:"
	HSL      string `json:"hsl"`

	// Foreground is the contrast text color for the swatch, "#RRGGBB".
	Foreground string `json:"foreground"`

	// ContrastRatio is the WCAG ratio between Foreground and the sample,
	// rounded to two decimals.
	ContrastRatio float64 `json:"contrast_ratio"`
}

// Blank returns the cleared read-out shown when nothing was sampled.
func Blank(opts Options) Display {
	rgb, hex, hsl := labels(opts)
	return Display{
		RGBLabel: rgb,
		HEXLabel: hex,
		HSLLabel: hsl,
	}
}

// Render builds the read-out for color c sampled at (x, y).
func Render(c Color, x, y int, opts Options) Display {
	d := Blank(opts)
	fg := Contrast(c)

	d.Sampled = true
	d.Location = fmt.Sprintf("%d, %d", x, y)
	d.Swatch = "#" + FormatHex(c, true)
	d.RGB = FormatRGB(c, opts.RGBA)
	d.HEX = "#" + FormatHex(c, opts.HEXA)
	d.CMYK = FormatCMYK(c)
	d.HSL = FormatHSL(c, opts.HSLA)
	d.Foreground = "#" + FormatHex(fg, false)
	d.ContrastRatio = math.Round(ContrastRatio(fg, c)*100) / 100
	return d
}

func labels(opts Options) (rgb, hex, hsl string) {
	rgb, hex, hsl = "RGB:", "HEX:", "HSL:"
	if opts.RGBA {
		rgb = "RGBA:"
	}
	if opts.HEXA {
		hex = "HEXA:"
	}
	if opts.HSLA {
		hsl = "HSLA:"
	}
	return rgb, hex, hsl
}
