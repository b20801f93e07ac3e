// Package imaging provides image access for the color picker: decoding and
// caching image files, and the magnified loupe view around the cursor.
//
// # Coordinate System
//
// Pixel coordinates are 0-based offsets from the top-left of the image's
// bounds: X increases rightward, Y increases downward, and a point is inside
// the image when 0 <= X < width and 0 <= Y < height.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Images handed out by the cache are
// shared and must be treated as read-only. Loupe copies the pixels it needs
// before drawing, so it never writes into a cached image.
//
// # Formats
//
// PNG, JPEG and GIF are decoded by the standard library; BMP, TIFF and WebP
// by golang.org/x/image.
package imaging
