//go:build ebiten

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface is a surface whose pixels are presented through an
// *ebiten.Image.
//
// Pix is a CPU staging slice; Image uploads it with WritePixels before
// returning the ebiten image, so writes through Pix become visible on the
// next draw without a separate flush call by the pixel writer.
type EbitenSurface struct {
	width  int
	height int
	pix    []byte
	img    *ebiten.Image
	closed bool
}

// NewEbitenSurface creates an ebiten-backed surface.
// Non-positive dimensions are clamped to 1.
func NewEbitenSurface(width, height int) *EbitenSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &EbitenSurface{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*BytesPerPixel),
		img:    ebiten.NewImage(width, height),
	}
}

// Width returns the surface width, or 0 for a nil surface.
func (s *EbitenSurface) Width() int {
	if s == nil {
		return 0
	}
	return s.width
}

// Height returns the surface height, or 0 for a nil surface.
func (s *EbitenSurface) Height() int {
	if s == nil {
		return 0
	}
	return s.height
}

// Pix returns the staging bytes.
func (s *EbitenSurface) Pix() []byte {
	if s == nil || s.closed {
		return nil
	}
	return s.pix
}

// Format returns FormatRGBA8.
func (s *EbitenSurface) Format() Format { return FormatRGBA8 }

// Clear fills the staging bytes with c.
func (s *EbitenSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	fill(s.pix, c)
}

// Resize reallocates the staging bytes and the ebiten image.
func (s *EbitenSurface) Resize(width, height int) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	s.img.Deallocate()
	s.width = width
	s.height = height
	s.pix = make([]byte, width*height*BytesPerPixel)
	s.img = ebiten.NewImage(width, height)
	return nil
}

// Image uploads the staging bytes and returns the ebiten image for drawing.
func (s *EbitenSurface) Image() *ebiten.Image {
	if s.closed {
		return nil
	}
	s.img.WritePixels(s.pix)
	return s.img
}

// Snapshot returns a copy of the staging bytes.
func (s *EbitenSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// DataURL encodes the staging bytes as a data URI.
func (s *EbitenSurface) DataURL(mimeType string) (string, error) {
	if s.closed {
		return "", ErrSurfaceClosed
	}
	return EncodeDataURL(s.Snapshot(), mimeType)
}

// Close deallocates the ebiten image.
func (s *EbitenSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img.Deallocate()
	s.img = nil
	s.pix = nil
	return nil
}

func init() {
	Register("ebiten", 50, func(opts Options) (Surface, error) {
		return NewEbitenSurface(opts.Width, opts.Height), nil
	}, nil)
}
