package imagebuffer

import (
	"fmt"

	"github.com/gogpu/imagebuffer/surface"
)

// Mode identifies the pixel code path a Buffer is bound to.
type Mode uint8

const (
	// ModeBytes writes four bytes per pixel.
	ModeBytes Mode = iota

	// ModePacked32 writes one packed 32-bit word per pixel.
	ModePacked32
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModePacked32 {
		return "packed32"
	}
	return "bytes"
}

// Buffer is a width*height RGBA pixel buffer.
//
// The byte view always holds R, G, B, A at offsets 0-3 of each pixel. When
// the buffer is bound to ModePacked32, a word view aliases the same memory
// with one uint32 per pixel and writes go through it.
//
// A Buffer either owns its storage or, in direct mode, aliases the pixel
// slice of an external raster surface so that writes are visible to the
// surface owner without calling Apply.
//
// Index arguments are not range-checked beyond Go's slice bounds checks:
// an index outside [0, Len()) panics.
//
// Buffer is NOT safe for concurrent use.
type Buffer struct {
	width  int
	height int
	direct bool
	raster surface.Raster

	pix   []byte
	words []uint32

	caps     Capabilities
	ops      pixelOps
	parallel bool
}

// New creates a buffer that owns width*height*4 bytes of zeroed storage.
func New(width, height int, opts ...Option) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Buffer{
		width:    width,
		height:   height,
		pix:      newStorage(width * height),
		parallel: o.parallel,
	}
	b.bind(o.caps)
	return b, nil
}

// NewDirect creates a buffer in direct mode over r's pixel storage.
// Width and height are taken from r. No pixel memory is allocated.
//
// Surfaces whose Format is not RGBA8 are rejected with ErrIncompatibleTarget.
func NewDirect(r surface.Raster, opts ...Option) (*Buffer, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil raster", ErrInvalidDimensions)
	}
	width, height := r.Width(), r.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if f, ok := r.(interface{ Format() surface.Format }); ok && f.Format() != surface.FormatRGBA8 {
		return nil, fmt.Errorf("%w: raster format %v", ErrIncompatibleTarget, f.Format())
	}
	pix := r.Pix()
	if want := width * height * NumComponents; len(pix) != want {
		return nil, fmt.Errorf("%w: raster has %d bytes, want %d", ErrInvalidDimensions, len(pix), want)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Buffer{
		width:    width,
		height:   height,
		direct:   true,
		raster:   r,
		pix:      pix,
		parallel: o.parallel,
	}
	b.bind(o.caps)
	return b, nil
}

// bind selects the pixel code path once for the buffer's lifetime.
func (b *Buffer) bind(caps Capabilities) {
	b.caps = caps
	b.ops = byteOps{pix: b.pix}

	log := Logger()
	if caps.Supports32Bit {
		host := HostEndianness()
		words, aligned := wordView(b.pix)
		switch {
		case caps.Endianness != host:
			log.Warn("imagebuffer: endianness does not match host, using bytes",
				"requested", caps.Endianness, "host", host)
		case !aligned:
			log.Warn("imagebuffer: raster storage not word aligned, using bytes",
				"width", b.width, "height", b.height)
		case host == LittleEndian:
			b.words = words
			b.ops = littleWordOps{words: words}
		default:
			b.words = words
			b.ops = bigWordOps{words: words}
		}
	}

	log.Debug("imagebuffer: buffer created",
		"width", b.width, "height", b.height, "direct", b.direct, "mode", b.ops.mode())
}

// Width returns the width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Buffer) Height() int { return b.height }

// Len returns the number of pixels.
func (b *Buffer) Len() int { return b.width * b.height }

// Direct reports whether the buffer aliases an external raster.
func (b *Buffer) Direct() bool { return b.direct }

// Raster returns the aliased raster in direct mode, or nil.
func (b *Buffer) Raster() surface.Raster { return b.raster }

// Mode returns the bound pixel code path.
func (b *Buffer) Mode() Mode { return b.ops.mode() }

// Capabilities returns the capabilities the buffer was created with.
func (b *Buffer) Capabilities() Capabilities { return b.caps }

// Bytes returns the byte view: Len()*4 bytes, R, G, B, A per pixel.
// This is a direct reference, not a copy.
func (b *Buffer) Bytes() []byte { return b.pix }

// Words returns the packed word view, or nil in ModeBytes.
// It aliases the same memory as Bytes.
func (b *Buffer) Words() []uint32 { return b.words }

// SetPixel sets the pixel at linear index i.
func (b *Buffer) SetPixel(i int, r, g, bl, a uint8) {
	b.ops.set(i, r, g, bl, a)
}

// GetPixel returns the pixel at linear index i. If out is non-nil it
// receives the components, so one Color can be reused across calls.
func (b *Buffer) GetPixel(i int, out *Color) Color {
	var c Color
	if out == nil {
		out = &c
	}
	b.ops.get(i, out)
	return *out
}

// SetColorAt sets the pixel at (x, y), counted from the top left.
func (b *Buffer) SetColorAt(x, y int, r, g, bl, a uint8) {
	b.ops.set(x+y*b.width, r, g, bl, a)
}

// GetColorAt returns the pixel at (x, y), counted from the top left.
func (b *Buffer) GetColorAt(x, y int, out *Color) Color {
	return b.GetPixel(x+y*b.width, out)
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c Color) {
	for i := range b.Len() {
		b.ops.set(i, c.R, c.G, c.B, c.A)
	}
}
