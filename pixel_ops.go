package imagebuffer

// pixelOps is the per-buffer pixel strategy. One implementation is chosen in
// bind, so the per-pixel calls never test capabilities.
type pixelOps interface {
	set(i int, r, g, b, a uint8)
	get(i int, out *Color)
	mode() Mode
}

// littleWordOps packs pixels as 0xAABBGGRR on a little-endian host.
type littleWordOps struct {
	words []uint32
}

func (o littleWordOps) set(i int, r, g, b, a uint8) {
	o.words[i] = uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

func (o littleWordOps) get(i int, out *Color) {
	w := o.words[i]
	out.R = uint8(w)
	out.G = uint8(w >> 8)
	out.B = uint8(w >> 16)
	out.A = uint8(w >> 24)
}

func (littleWordOps) mode() Mode { return ModePacked32 }

// bigWordOps packs pixels as 0xRRGGBBAA on a big-endian host.
type bigWordOps struct {
	words []uint32
}

func (o bigWordOps) set(i int, r, g, b, a uint8) {
	o.words[i] = uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

func (o bigWordOps) get(i int, out *Color) {
	w := o.words[i]
	out.R = uint8(w >> 24)
	out.G = uint8(w >> 16)
	out.B = uint8(w >> 8)
	out.A = uint8(w)
}

func (bigWordOps) mode() Mode { return ModePacked32 }

// byteOps writes four consecutive bytes per pixel.
type byteOps struct {
	pix []byte
}

func (o byteOps) set(i int, r, g, b, a uint8) {
	p := o.pix[i*NumComponents : i*NumComponents+NumComponents : i*NumComponents+NumComponents]
	p[0] = r
	p[1] = g
	p[2] = b
	p[3] = a
}

func (o byteOps) get(i int, out *Color) { readBytes(o.pix, i, out) }

func (byteOps) mode() Mode { return ModeBytes }

func readBytes(pix []byte, i int, out *Color) {
	p := pix[i*NumComponents : i*NumComponents+NumComponents : i*NumComponents+NumComponents]
	out.R = p[0]
	out.G = p[1]
	out.B = p[2]
	out.A = p[3]
}
