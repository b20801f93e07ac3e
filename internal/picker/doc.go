// Package picker implements the color picker read-out: sampling the pixel
// under an image-space cursor and rendering it for display.
//
// Everything here is a pure function of its arguments. Display preferences
// arrive as an explicit Options value and the package keeps no state between
// calls, so the same sample always renders the same strings.
//
// # Sampling
//
// SampleAt copies one pixel out of an image.Image as a non-premultiplied
// Color. Coordinates are offsets from the image's bounds origin and are valid
// in [0, width) x [0, height). Anything else, including a nil or empty image,
// is reported through the boolean result rather than an error: a cursor
// leaving the image is an expected condition and the caller renders Blank.
//
// # Formats
//
//   - RGB:  "R, G, B" or "R, G, B, A" with A normalized to 0.000-1.000
//   - HEX:  "RRGGBB" or "RRGGBBAA", uppercase, no leading '#'
//   - CMYK: "C%, M%, Y%, K%" with integer percentages
//   - HSL:  "H, S%, L%" or "H, S%, L%, A" with A on the 0-255 scale
//
// The two alpha scales differ. The HSLA read-out shows the raw channel byte
// while the RGBA read-out shows the normalized fraction.
//
// # Contrast
//
// Contrast picks black or white text for a swatch using WCAG relative
// luminance. Luminance and ContrastRatio are exported for callers that want
// the numbers themselves.
package picker
