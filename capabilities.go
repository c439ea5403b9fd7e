package imagebuffer

import (
	"unsafe"

	"github.com/gogpu/imagebuffer/surface"
)

// Capabilities is the immutable result of probing the host.
//
// The process-wide value is computed once at package initialization and is
// returned by DefaultCapabilities. Buffers take a copy at construction and
// bind their pixel code path from it for their entire lifetime; pass
// WithCapabilities to inject a different value, e.g. in tests.
type Capabilities struct {
	// Endianness is the host byte order, possibly EndianUnknown.
	Endianness Endianness

	// ClampedRaster reports that the best host raster surface declares
	// FormatRGBA8, has four bytes per pixel, and has storage that can be
	// viewed as 32-bit words. Saturation is not tested at run time: Go byte
	// arithmetic wraps, and values stay in range only because components
	// are uint8. No surface backend at all reports false.
	ClampedRaster bool

	// Supports32Bit selects the packed 32-bit pixel path. It is true only
	// when Endianness is known and ClampedRaster holds.
	Supports32Bit bool
}

var defaultCaps = DetectCapabilities()

// DefaultCapabilities returns the capabilities detected at initialization.
func DefaultCapabilities() Capabilities {
	return defaultCaps
}

// Supports32Bit reports whether buffers use packed 32-bit pixels by default.
func Supports32Bit() bool {
	return defaultCaps.Supports32Bit
}

// FallbackCapabilities returns the default capabilities with the packed
// 32-bit path disabled.
func FallbackCapabilities() Capabilities {
	c := defaultCaps
	c.Supports32Bit = false
	return c
}

// DetectCapabilities probes the host. It does not consult or change the
// process-wide value.
func DetectCapabilities() Capabilities {
	e := HostEndianness()
	clamped := probeRaster()
	return Capabilities{
		Endianness:    e,
		ClampedRaster: clamped,
		Supports32Bit: e.Known() && clamped,
	}
}

// probeRaster creates a 1x1 surface from the best available host backend and
// inspects its storage. Hosts without any backend report false.
func probeRaster() bool {
	s, err := surface.NewSurface(1, 1)
	if err != nil {
		return false
	}
	defer func() { _ = s.Close() }()

	// The format declaration stands in for saturation; uint8 components
	// cannot leave [0, 255].
	pix := s.Pix()
	return s.Format() == surface.FormatRGBA8 && len(pix) == NumComponents && wordAligned(pix)
}

func wordAligned(pix []byte) bool {
	if len(pix) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&pix[0]))%unsafe.Alignof(uint32(0)) == 0
}

// wordView returns a []uint32 aliasing pix, one word per pixel.
func wordView(pix []byte) ([]uint32, bool) {
	if len(pix)%NumComponents != 0 || !wordAligned(pix) {
		return nil, false
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&pix[0])), len(pix)/NumComponents), true
}

// newStorage allocates word-aligned pixel storage for n pixels.
func newStorage(n int) []byte {
	words := make([]uint32, n)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), n*NumComponents)
}
