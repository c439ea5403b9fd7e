// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
)

// RawSurface is a surface over caller-owned RGBA bytes.
//
// The caller must keep the bytes alive for the lifetime of the surface.
type RawSurface struct {
	width  int
	height int
	pix    []byte
	closed bool
}

// FromRaw creates a surface that aliases pix without copying.
// pix must hold at least width*height*4 bytes; extra bytes are ignored.
func FromRaw(width, height int, pix []byte) (*RawSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	required := width * height * BytesPerPixel
	if len(pix) < required {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(pix), required)
	}
	return &RawSurface{
		width:  width,
		height: height,
		pix:    pix[:required:required],
	}, nil
}

// Width returns the surface width, or 0 for a nil surface.
func (s *RawSurface) Width() int {
	if s == nil {
		return 0
	}
	return s.width
}

// Height returns the surface height, or 0 for a nil surface.
func (s *RawSurface) Height() int {
	if s == nil {
		return 0
	}
	return s.height
}

// Pix returns the aliased bytes.
func (s *RawSurface) Pix() []byte {
	if s == nil || s.closed {
		return nil
	}
	return s.pix
}

// Format returns FormatRGBA8.
func (s *RawSurface) Format() Format { return FormatRGBA8 }

// Clear fills the surface with c.
func (s *RawSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	fill(s.pix, c)
}

// Snapshot returns a copy of the current contents.
func (s *RawSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// DataURL encodes the current contents as a data URI.
func (s *RawSurface) DataURL(mimeType string) (string, error) {
	if s.closed {
		return "", ErrSurfaceClosed
	}
	return EncodeDataURL(s.Snapshot(), mimeType)
}

// Close detaches the surface from the caller's bytes.
// The bytes themselves are left untouched.
func (s *RawSurface) Close() error {
	s.closed = true
	s.pix = nil
	return nil
}
