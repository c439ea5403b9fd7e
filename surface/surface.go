// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
)

// Common errors returned by surfaces.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrDataTooSmall is returned when caller-owned pixels are shorter than
	// width*height*4 bytes.
	ErrDataTooSmall = errors.New("surface: data buffer too small")

	// ErrSurfaceClosed is returned when a closed surface is used.
	ErrSurfaceClosed = errors.New("surface: surface is closed")
)

// BytesPerPixel is the size of one pixel in every supported format.
const BytesPerPixel = 4

// Format describes the byte layout of a surface's pixel storage.
type Format uint8

const (
	// FormatUnknown is a layout this package cannot interpret.
	FormatUnknown Format = iota

	// FormatRGBA8 stores four saturating 8-bit channels per pixel,
	// R at offset 0 and A at offset 3.
	FormatRGBA8

	// FormatBGRA8 stores B at offset 0 and A at offset 3.
	// Common on Windows and some GPU swapchains.
	FormatBGRA8
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return "unknown"
	}
}

// Raster is the minimal view of a raster surface: dimensions plus a mutable
// byte slice of Width()*Height()*4 bytes in R, G, B, A order.
//
// Pix must return the same backing array on every call so that callers can
// alias it.
type Raster interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Pix returns the pixel storage. Writes are visible to the surface owner.
	Pix() []byte
}

// Surface is a raster surface owned by a host backend.
type Surface interface {
	Raster

	// Format reports the byte layout of Pix.
	Format() Format

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// Snapshot returns a copy of the current contents.
	// Returns nil after Close.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// ResizableSurface is an optional interface for surfaces that support resizing.
// Resizing discards the existing contents.
type ResizableSurface interface {
	Surface

	// Resize changes the surface dimensions.
	Resize(width, height int) error
}

// Encoder is an optional interface for surfaces that can snapshot their
// pixels into a data URI.
type Encoder interface {
	// DataURL encodes the current contents as a "data:" URI.
	// An empty or unsupported mime type selects PNG.
	DataURL(mimeType string) (string, error)
}

// Options configures surface creation through the registry.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// BackgroundColor is the initial fill. Default: transparent.
	BackgroundColor color.Color
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:  width,
		Height: height,
	}
}

// SameStorage reports whether a and b share the first byte of their backing
// arrays and have the same length. It is how callers recognize that two
// rasters are the exact same pixel memory.
func SameStorage(a, b []byte) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	return &a[0] == &b[0]
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	r, g, b, a := c.RGBA()
	//nolint:gosec // G115: safe - r>>8 is always in [0, 255]
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// fill writes c into every pixel of pix.
func fill(pix []byte, c color.Color) {
	rgba := toRGBA(c)
	for i := 0; i+3 < len(pix); i += BytesPerPixel {
		pix[i+0] = rgba.R
		pix[i+1] = rgba.G
		pix[i+2] = rgba.B
		pix[i+3] = rgba.A
	}
}
