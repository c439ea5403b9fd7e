package imagebuffer

import (
	"fmt"
	"sync"

	"github.com/gogpu/imagebuffer/internal/parallel"
	"github.com/gogpu/imagebuffer/surface"
)

// parallelGrain is the smallest pixel span handed to a worker.
const parallelGrain = 1 << 14

var workers = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// forSpans runs fn over [0, n) in pixel spans, on the shared pool when
// split is set and n is large enough to divide.
func forSpans(split bool, n int, fn func(lo, hi int)) {
	if !split || n < 2*parallelGrain {
		fn(0, n)
		return
	}
	workers().For(n, parallelGrain, fn)
}

// Apply copies the buffer's pixels into target, which must be a *Buffer or
// a surface.Raster holding the same number of pixels.
//
// In direct mode, applying to the raster the buffer was created over (or to
// anything sharing that exact storage) is a no-op: the pixels are already
// there.
//
// On failure the target is not modified and the error wraps
// ErrIncompatibleTarget.
func (b *Buffer) Apply(target any) error {
	var (
		dst      []byte
		dstWords []uint32
	)
	switch t := target.(type) {
	case *Buffer:
		if t == nil {
			return fmt.Errorf("%w: nil buffer", ErrIncompatibleTarget)
		}
		dst, dstWords = t.pix, t.words
	case surface.Raster:
		dst = t.Pix()
		if dst == nil {
			return fmt.Errorf("%w: raster has no pixel storage", ErrIncompatibleTarget)
		}
	default:
		return fmt.Errorf("%w: %T is not a buffer or raster", ErrIncompatibleTarget, target)
	}

	if b.direct && surface.SameStorage(b.pix, dst) {
		return nil
	}
	if len(dst) != len(b.pix) {
		return fmt.Errorf("%w: target has %d pixels, buffer has %d",
			ErrIncompatibleTarget, len(dst)/NumComponents, b.Len())
	}

	if b.words != nil {
		if dstWords == nil {
			dstWords, _ = wordView(dst)
		}
		if dstWords != nil {
			copy(dstWords, b.words)
			Logger().Debug("imagebuffer: applied", "pixels", b.Len(), "mode", ModePacked32)
			return nil
		}
	}

	copy(dst, b.pix)
	Logger().Debug("imagebuffer: applied", "pixels", b.Len(), "mode", ModeBytes)
	return nil
}

// Multiply writes in's pixels multiplied by the color (r, g, b, a) into out.
// Each channel becomes c*k/255, truncated. in and out must hold the same
// number of pixels and may be the same buffer. If out was created with
// WithParallel, large inputs are processed in spans on a worker pool.
func Multiply(in, out *Buffer, r, g, b, a uint8) error {
	if in == nil || out == nil {
		return fmt.Errorf("%w: nil buffer", ErrIncompatibleTarget)
	}
	if in.Len() != out.Len() {
		return fmt.Errorf("%w: input has %d pixels, output has %d",
			ErrIncompatibleTarget, in.Len(), out.Len())
	}

	k := Color{r, g, b, a}
	if in.words != nil && out.words != nil {
		e := HostEndianness()
		forSpans(out.parallel, in.Len(), func(lo, hi int) {
			multiplyWords(out.words[lo:hi], in.words[lo:hi], e, k)
		})
		return nil
	}
	forSpans(out.parallel, in.Len(), func(lo, hi int) {
		multiplyBytes(out.pix[lo*NumComponents:hi*NumComponents], in.pix[lo*NumComponents:hi*NumComponents], k)
	})
	return nil
}

func multiplyWords(dst, src []uint32, e Endianness, k Color) {
	var c Color
	for i, w := range src {
		e.Unpack(w, &c)
		dst[i] = e.Pack(scale(c.R, k.R), scale(c.G, k.G), scale(c.B, k.B), scale(c.A, k.A))
	}
}

func multiplyBytes(dst, src []byte, k Color) {
	for i := 0; i+3 < len(src); i += NumComponents {
		dst[i+0] = scale(src[i+0], k.R)
		dst[i+1] = scale(src[i+1], k.G)
		dst[i+2] = scale(src[i+2], k.B)
		dst[i+3] = scale(src[i+3], k.A)
	}
}

func scale(c, k uint8) uint8 {
	//nolint:gosec // G115: c*k/255 is always in [0, 255]
	return uint8(uint16(c) * uint16(k) / 255)
}
