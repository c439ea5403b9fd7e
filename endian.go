package imagebuffer

import "github.com/gogpu/imagebuffer/internal/endian"

// Endianness is the tri-state host byte order.
//
// EndianUnknown is kept distinct from the two known orders: a host whose
// byte order could not be determined never gets packed 32-bit pixels.
type Endianness uint8

const (
	// EndianUnknown means byte order detection failed.
	EndianUnknown Endianness = iota

	// LittleEndian hosts store R at the low byte of a packed word.
	LittleEndian

	// BigEndian hosts store R at the high byte of a packed word.
	BigEndian
)

func fromOrder(o endian.Order) Endianness {
	switch o {
	case endian.Little:
		return LittleEndian
	case endian.Big:
		return BigEndian
	default:
		return EndianUnknown
	}
}

// HostEndianness returns the byte order detected at package initialization.
func HostEndianness() Endianness {
	return fromOrder(endian.Native())
}

// String returns a human-readable name.
func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return "unknown"
	}
}

// Known reports whether e is LittleEndian or BigEndian.
func (e Endianness) Known() bool {
	return e == LittleEndian || e == BigEndian
}

// Pack packs the components into the word that, stored natively on a host
// with byte order e, lays out bytes R, G, B, A in memory.
//
// Little-endian: 0xAABBGGRR. Big-endian and unknown: 0xRRGGBBAA.
func (e Endianness) Pack(r, g, b, a uint8) uint32 {
	if e == LittleEndian {
		return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
	}
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// Unpack is the inverse of Pack. If out is non-nil it receives the
// components and is also returned by value.
func (e Endianness) Unpack(word uint32, out *Color) Color {
	var c Color
	if e == LittleEndian {
		c = Color{
			R: uint8(word),
			G: uint8(word >> 8),
			B: uint8(word >> 16),
			A: uint8(word >> 24),
		}
	} else {
		c = Color{
			R: uint8(word >> 24),
			G: uint8(word >> 16),
			B: uint8(word >> 8),
			A: uint8(word),
		}
	}
	if out != nil {
		*out = c
	}
	return c
}
