package imagebuffer

import "image/color"

// NumComponents is the number of bytes per pixel: R, G, B and A.
const NumComponents = 4

// Color is one pixel as four straight (non-premultiplied) 8-bit components.
//
// A Color can be reused as the out argument of GetPixel, GetColorAt,
// UnpackRGBA and FromRGBA.
type Color struct {
	R, G, B, A uint8
}

// NewColor returns a Color with the given components.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color. The components are treated as
// non-premultiplied, like color.NRGBA.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// PackRGBA packs the components into a word in host byte order, so that
// storing the word in a packed pixel yields bytes R, G, B, A in memory.
// See Endianness.Pack for the layouts.
//
// The result depends on the host. For a portable hex value use ToRGBA.
func PackRGBA(r, g, b, a uint8) uint32 {
	return defaultCaps.Endianness.Pack(r, g, b, a)
}

// UnpackRGBA is the inverse of PackRGBA on this host.
// If out is non-nil it receives the components.
func UnpackRGBA(word uint32, out *Color) Color {
	return defaultCaps.Endianness.Unpack(word, out)
}

// ToRGBA returns the components as 0xRRGGBBAA regardless of host byte order.
func ToRGBA(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// FromRGBA splits a 0xRRGGBBAA value into components regardless of host
// byte order. If out is non-nil it receives the components.
func FromRGBA(rgba uint32, out *Color) Color {
	c := Color{
		R: uint8(rgba >> 24),
		G: uint8(rgba >> 16),
		B: uint8(rgba >> 8),
		A: uint8(rgba),
	}
	if out != nil {
		*out = c
	}
	return c
}

// Hex returns the color as 0xRRGGBBAA.
func (c Color) Hex() uint32 {
	return ToRGBA(c.R, c.G, c.B, c.A)
}
