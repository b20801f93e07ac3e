package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/colorpick-mcp/internal/picker"
)

// Loupe limits.
const (
	MaxLoupeRadius = 64
	MaxLoupeZoom   = 32
)

// LoupeResult is a magnified view of the pixels around the cursor.
type LoupeResult struct {
	// Sampled is false when the centre lies outside the image; in that case
	// no image is returned.
	Sampled bool `json:"sampled"`

	X      int `json:"x"`      // Centre X (image-space)
	Y      int `json:"y"`      // Centre Y (image-space)
	Radius int `json:"radius"` // Pixels shown on each side of the centre
	Zoom   int `json:"zoom"`   // Output pixels per source pixel

	// Center is the centre pixel as "#RRGGBBAA".
	Center string `json:"center,omitempty"`

	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
}

// Loupe renders the (2*radius+1)-pixel square around (x, y) magnified zoom
// times with nearest-neighbor scaling, and outlines the centre pixel in its
// contrast color.
//
// Parameters:
//   - img: Source image. Coordinates are offsets from its bounds origin.
//   - x, y: Centre of the loupe.
//   - radius: Pixels shown on each side of the centre, 1 to MaxLoupeRadius.
//   - zoom: Output pixels per source pixel, 1 to MaxLoupeZoom.
//
// Returns:
//   - *LoupeResult: The magnified view as base64 PNG, (2*radius+1)*zoom
//     pixels square. Parts of the window outside the image are transparent.
//   - error: Non-nil if radius or zoom is out of range, or encoding fails.
//
// # Outline
//
// The outline runs along the inner edge of the magnified centre cell, so the
// neighboring pixels are shown unchanged. At zoom below 3 the cell is too
// small to hold an outline and none is drawn.
//
// # Errors
//
// A centre outside the image is not an error: the result has
// Sampled == false and carries no image.
func Loupe(img image.Image, x, y, radius, zoom int) (*LoupeResult, error) {
	if radius < 1 || radius > MaxLoupeRadius {
		return nil, fmt.Errorf("loupe radius %d outside 1-%d", radius, MaxLoupeRadius)
	}
	if zoom < 1 || zoom > MaxLoupeZoom {
		return nil, fmt.Errorf("loupe zoom %d outside 1-%d", zoom, MaxLoupeZoom)
	}

	result := &LoupeResult{X: x, Y: y, Radius: radius, Zoom: zoom}

	center, ok := picker.SampleAt(img, x, y)
	if !ok {
		return result, nil
	}

	bounds := img.Bounds()
	side := 2*radius + 1
	window := image.Rect(
		bounds.Min.X+x-radius, bounds.Min.Y+y-radius,
		bounds.Min.X+x+radius+1, bounds.Min.Y+y+radius+1,
	)
	visible := window.Intersect(bounds)

	// Crop copies the pixels out, so the source can change afterwards.
	canvas := imaging.New(side, side, color.NRGBA{})
	part := imaging.Crop(img, visible)
	canvas = imaging.Paste(canvas, part, visible.Min.Sub(window.Min))

	magnified := imaging.Resize(canvas, side*zoom, side*zoom, imaging.NearestNeighbor)
	outlinePixel(magnified, radius*zoom, zoom, picker.Contrast(center))

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, magnified); err != nil {
		return nil, fmt.Errorf("failed to encode loupe image: %w", err)
	}

	result.Sampled = true
	result.Center = "#" + picker.FormatHex(center, true)
	result.Width = magnified.Bounds().Dx()
	result.Height = magnified.Bounds().Dy()
	result.ImageBase64 = base64.StdEncoding.EncodeToString(buf.Bytes())
	result.MimeType = "image/png"
	return result, nil
}

// minOutlineZoom is the smallest zoom at which the centre cell is large
// enough to carry an outline and still show its own color.
const minOutlineZoom = 3

// outlinePixel draws a one-pixel square along the inner edge of the
// size x size cell whose top-left corner is (origin, origin). Neighboring
// cells are never touched. Cells smaller than minOutlineZoom are left as is.
func outlinePixel(img *image.NRGBA, origin, size int, c picker.Color) {
	if size < minOutlineZoom {
		return
	}
	nc := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
	lo, hi := origin, origin+size-1
	for i := lo; i <= hi; i++ {
		img.SetNRGBA(i, lo, nc)
		img.SetNRGBA(i, hi, nc)
		img.SetNRGBA(lo, i, nc)
		img.SetNRGBA(hi, i, nc)
	}
}
