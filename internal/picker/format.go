package picker

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Options are the display preferences of the picker. They are owned by the
// host configuration and only ever read here.
type Options struct {
	RGBA bool `json:"rgba" toml:"rgba"` // Append alpha to the RGB read-out
	HEXA bool `json:"hexa" toml:"hexa"` // Append alpha to the HEX read-out
	HSLA bool `json:"hsla" toml:"hsla"` // Append alpha to the HSL read-out
}

// CMYK is a subtractive color with integer percentage components.
type CMYK struct {
	C int `json:"c"` // Cyan (0-100)
	M int `json:"m"` // Magenta (0-100)
	Y int `json:"y"` // Yellow (0-100)
	K int `json:"k"` // Key/black (0-100)
}

// String formats the components as "C%, M%, Y%, K%".
func (c CMYK) String() string {
	return fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", c.C, c.M, c.Y, c.K)
}

// HSL is a color in hue/saturation/lightness space.
type HSL struct {
	H int   `json:"h"` // Hue in degrees (0-359)
	S int   `json:"s"` // Saturation percent (0-100)
	L int   `json:"l"` // Lightness percent (0-100)
	A uint8 `json:"a"` // Alpha channel byte (0-255)
}

// Format renders the color as "H, S%, L%", or "H, S%, L%, A" when
// includeAlpha is set. A is the raw channel byte, not a 0-1 fraction.
func (h HSL) Format(includeAlpha bool) string {
	if includeAlpha {
		return fmt.Sprintf("%d, %d%%, %d%%, %d", h.H, h.S, h.L, h.A)
	}
	return fmt.Sprintf("%d, %d%%, %d%%", h.H, h.S, h.L)
}

// FormatRGB renders "R, G, B" or, with includeAlpha, "R, G, B, A" where A is
// alpha/255 rounded to three decimals ("1.000" for opaque, "0.000" for
// fully transparent).
func FormatRGB(c Color, includeAlpha bool) string {
	if includeAlpha {
		a := math.Round(float64(c.A)/255*1000) / 1000
		return fmt.Sprintf("%d, %d, %d, %.3f", c.R, c.G, c.B, a)
	}
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// FormatHex renders the channels as uppercase hex digits: RRGGBB, or
// RRGGBBAA with includeAlpha. No '#' prefix is added.
func FormatHex(c Color, includeAlpha bool) string {
	if includeAlpha {
		return fmt.Sprintf("%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a hex color in any of the forms RGB, RGBA, RRGGBB or
// RRGGBBAA, with or without a leading '#'. Case is ignored. Forms without
// alpha yield an opaque color.
//
// ParseHex is the inverse of FormatHex:
//
//	c2, _ := ParseHex(FormatHex(c, true)) // c2 == c
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3, 4:
		// Short form: each digit is doubled, "F80" == "FF8800".
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: want 3, 4, 6 or 8 digits", s)
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return Opaque(uint8(val>>16), uint8(val>>8), uint8(val)), nil
	}
	return Color{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
}

// ToCMYK converts c to CMYK using the standard subtractive formula:
//
//	K = 1 - max(R', G', B')
//	C = (1 - R' - K) / (1 - K)   (likewise M from G', Y from B')
//
// where R', G', B' are the channels scaled to 0-1. Pure black has no
// defined chroma and maps to (0, 0, 0, 100). Alpha is ignored.
func ToCMYK(c Color) CMYK {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return CMYK{K: 100}
	}

	return CMYK{
		C: percent((1 - r - k) / (1 - k)),
		M: percent((1 - g - k) / (1 - k)),
		Y: percent((1 - b - k) / (1 - k)),
		K: percent(k),
	}
}

// FormatCMYK renders ToCMYK(c) as "C%, M%, Y%, K%".
func FormatCMYK(c Color) string {
	return ToCMYK(c).String()
}

// ToHSL converts c to HSL. Hue, saturation and lightness are rounded to the
// nearest integer; a hue that rounds up to 360 wraps to 0. Grays have hue
// and saturation 0. Alpha is carried through unchanged.
func ToHSL(c Color) HSL {
	h, s, l := toColorful(c).Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	hue := int(math.Round(h)) % 360
	return HSL{
		H: hue,
		S: percent(s),
		L: percent(l),
		A: c.A,
	}
}

// FormatHSL renders ToHSL(c); see HSL.Format for the alpha convention.
func FormatHSL(c Color, includeAlpha bool) string {
	return ToHSL(c).Format(includeAlpha)
}

// toColorful maps c onto go-colorful's float RGB, ignoring alpha.
func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// percent converts a 0-1 fraction to a rounded 0-100 percentage.
func percent(f float64) int {
	p := int(math.Round(f * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
