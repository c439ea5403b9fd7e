package imagebuffer

import "errors"

// Errors returned by buffer operations. Detailed errors wrap these; test
// with errors.Is.
var (
	// ErrInvalidDimensions is returned when a buffer is constructed with a
	// non-positive width or height, or over a raster whose storage does not
	// hold width*height*4 bytes. Construction is aborted.
	ErrInvalidDimensions = errors.New("imagebuffer: invalid dimensions")

	// ErrUnsupportedConversion is returned by CreateImage when the surface
	// cannot snapshot its pixels into an image.
	ErrUnsupportedConversion = errors.New("imagebuffer: image conversion not supported")

	// ErrIncompatibleTarget is returned when a copy target is neither a
	// Buffer nor a raster surface, or holds a different number of pixels.
	// The target is left unmodified.
	ErrIncompatibleTarget = errors.New("imagebuffer: incompatible target")
)
