// Package imagebuffer provides a fast, byte-order aware RGBA pixel buffer.
//
// # Overview
//
// A Buffer holds width*height pixels of four 8-bit channels in R, G, B, A
// memory order, the same layout as image.RGBA. Pixels are addressed by a
// linear index i = x + y*width, row-major from the top-left corner.
//
// When the host supports it, every pixel is also viewable as one native
// 32-bit word and reads and writes go through that word. Otherwise the
// buffer falls back to per-byte access. The code path is bound once at
// construction; callers never branch on it.
//
// # Quick Start
//
//	import "github.com/gogpu/imagebuffer"
//
//	buf, err := imagebuffer.New(256, 256)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	buf.SetColorAt(10, 20, 255, 0, 0, 255)
//	c := buf.GetColorAt(10, 20, nil)
//
//	// Snapshot to a PNG data URI
//	img, err := buf.CreateImage(nil, "image/png")
//
// # Packed Colors
//
// PackRGBA and UnpackRGBA convert between channels and a 32-bit word in host
// memory order. The same channels produce different words on little- and
// big-endian hosts, so packed words must never be persisted or sent across
// machines. ToRGBA and FromRGBA use the portable 0xRRGGBBAA layout instead.
//
// # Direct Mode
//
// NewDirect wraps the storage of an existing surface.Raster. Writes are
// visible in the raster immediately, and Apply to that raster is a no-op.
//
// # Capabilities
//
// Host capabilities (byte order, clamped raster support, 32-bit path) are
// detected once at package initialization. See DefaultCapabilities and
// WithCapabilities.
//
// # Concurrency
//
// A Buffer is not safe for concurrent mutation. Capabilities and the
// package logger may be read from any goroutine.
package imagebuffer

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
