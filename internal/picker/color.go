package picker

import (
	"image"
	"image/color"
)

// Color is one sampled pixel with non-premultiplied 8-bit channels.
//
// A Color is a plain value. It never refers back to the image it came from,
// so replacing or mutating that image after sampling cannot change it.
type Color struct {
	R uint8 `json:"r"` // Red (0-255)
	G uint8 `json:"g"` // Green (0-255)
	B uint8 `json:"b"` // Blue (0-255)
	A uint8 `json:"a"` // Alpha (0 = transparent, 255 = opaque)
}

// Common colors.
var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// Opaque returns the color (r, g, b) with full alpha.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromColor converts any color.Color into a Color, undoing alpha
// premultiplication.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// SampleAt returns the color of the pixel at (x, y).
//
// Parameters:
//   - img: The image under the cursor. May be nil when nothing is loaded.
//   - x: Horizontal offset from the left edge of img.Bounds().
//   - y: Vertical offset from the top edge of img.Bounds().
//
// Returns:
//   - Color: A copy of the pixel value.
//   - bool: false when there is nothing to sample: img is nil, img is empty,
//     or (x, y) lies outside [0, width) x [0, height).
//
// SampleAt never panics on bad coordinates; the false result is the
// "not sampled" state and should be rendered with Blank.
func SampleAt(img image.Image, x, y int) (Color, bool) {
	if img == nil {
		return Color{}, false
	}
	b := img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return Color{}, false
	}
	return FromColor(img.At(b.Min.X+x, b.Min.Y+y)), true
}
