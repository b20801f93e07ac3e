// Package server implements the MCP (Model Context Protocol) server for the
// color picker.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load (or reload) an image and get metadata
//   - color_pick: Read out the pixel at (x, y)
//   - color_pick_multi: Read out several labeled pixels
//   - color_convert: Read out a hex color without an image
//   - color_loupe: Magnified view around a pixel
//   - color_picker_settings: Effective display options and loupe defaults
//
// The pick tools accept optional rgba, hexa and hsla flags that override the
// configured display options for that call only.
//
// # Error Handling
//
// A pick outside the image is not an error. The tool succeeds with a blank
// read-out (sampled=false) that clients render as cleared fields.
// Genuine failures are JSON-RPC errors:
//   - -32700: request line is not JSON
//   - -32601: unknown method
//   - -32602: malformed tools/call params
//   - -32000: tool execution failure (unreadable image, bad hex, bad loupe size)
package server
