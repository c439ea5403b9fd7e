// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageSurface is a CPU-based surface backed by an *image.RGBA.
//
// This is the default surface for software rendering and the one the
// registry falls back to on headless hosts.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// Pixel writes through Pix land in img directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()

	return &ImageSurface{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		img:    img,
	}
}

// Width returns the surface width, or 0 for a nil surface.
func (s *ImageSurface) Width() int {
	if s == nil {
		return 0
	}
	return s.width
}

// Height returns the surface height, or 0 for a nil surface.
func (s *ImageSurface) Height() int {
	if s == nil {
		return 0
	}
	return s.height
}

// Pix returns the underlying image's pixel slice.
// This is a direct reference, not a copy. Returns nil after Close and for
// a nil surface.
func (s *ImageSurface) Pix() []byte {
	if s == nil || s.closed {
		return nil
	}
	return s.img.Pix
}

// Format returns FormatRGBA8.
func (s *ImageSurface) Format() Format {
	return FormatRGBA8
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{toRGBA(c)}, image.Point{}, draw.Src)
}

// Resize replaces the backing image. Existing contents are discarded.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if width == s.width && height == s.height {
		s.Clear(color.Transparent)
		return nil
	}
	s.width = width
	s.height = height
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(result, result.Bounds(), s.img, s.img.Bounds().Min, draw.Src)
	return result
}

// DataURL encodes the surface contents as a data URI.
func (s *ImageSurface) DataURL(mimeType string) (string, error) {
	if s.closed {
		return "", ErrSurfaceClosed
	}
	return EncodeDataURL(s.img, mimeType)
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	return nil
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}
