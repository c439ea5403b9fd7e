package imagebuffer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/imagebuffer/surface"
)

// Image is a static snapshot of a buffer, held as a data URI.
type Image struct {
	src      string
	mimeType string
	width    int
	height   int
}

// Src returns the "data:" URI.
func (img *Image) Src() string { return img.src }

// MIMEType returns the encoded format.
func (img *Image) MIMEType() string { return img.mimeType }

// Width returns the width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the height in pixels.
func (img *Image) Height() int { return img.height }

// Bytes returns the encoded file contents.
func (img *Image) Bytes() ([]byte, error) {
	_, data, err := surface.ParseDataURL(img.src)
	return data, err
}

// Decode decodes the snapshot back into pixels.
func (img *Image) Decode() (image.Image, error) {
	return surface.DecodeDataURL(img.src)
}

// CreateImage snapshots the buffer into an Image encoded as mimeType
// ("image/png", "image/bmp" or "image/tiff"; anything else selects PNG).
//
// If s is nil a surface is taken from the best available host backend and
// closed afterwards. Otherwise s is resized to the buffer when it implements
// surface.ResizableSurface, cleared, and receives the pixels through Apply,
// unless the buffer is direct over s already. This is an expensive
// operation.
//
// Returns ErrUnsupportedConversion if the surface cannot encode itself.
func (b *Buffer) CreateImage(s surface.Surface, mimeType string) (*Image, error) {
	if s == nil {
		created, err := surface.NewSurface(b.width, b.height)
		if err != nil {
			Logger().Warn("imagebuffer: no surface for image snapshot", "err", err)
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedConversion, err)
		}
		defer func() { _ = created.Close() }()
		s = created
	}

	enc, ok := s.(surface.Encoder)
	if !ok {
		return nil, fmt.Errorf("%w: %T cannot encode images", ErrUnsupportedConversion, s)
	}

	if !b.direct || !surface.SameStorage(b.pix, s.Pix()) {
		if err := b.prepare(s); err != nil {
			return nil, err
		}
		if err := b.Apply(s); err != nil {
			return nil, err
		}
	}

	uri, err := enc.DataURL(mimeType)
	if err != nil {
		return nil, err
	}
	return &Image{
		src:      uri,
		mimeType: surface.NormalizeMIMEType(mimeType),
		width:    b.width,
		height:   b.height,
	}, nil
}

// prepare sizes and clears s for a fresh copy of the buffer.
func (b *Buffer) prepare(s surface.Surface) error {
	if s.Width() != b.width || s.Height() != b.height {
		rs, ok := s.(surface.ResizableSurface)
		if !ok {
			return fmt.Errorf("%w: surface is %dx%d, buffer is %dx%d",
				ErrIncompatibleTarget, s.Width(), s.Height(), b.width, b.height)
		}
		if err := rs.Resize(b.width, b.height); err != nil {
			return fmt.Errorf("%w: %w", ErrIncompatibleTarget, err)
		}
	}
	s.Clear(color.Transparent)
	return nil
}
