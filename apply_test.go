package imagebuffer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/imagebuffer/surface"
)

func checkerboard(t testing.TB, w, h int, opt Option) *Buffer {
	t.Helper()
	b := mustNew(t, w, h, opt)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				b.SetColorAt(x, y, 255, 0, 0, 255)
			} else {
				b.SetColorAt(x, y, 0, 255, 0, 255)
			}
		}
	}
	return b
}

func TestApplyBuffer(t *testing.T) {
	for srcMode, srcOpt := range modes(t) {
		for dstMode, dstOpt := range modes(t) {
			t.Run(srcMode.String()+"->"+dstMode.String(), func(t *testing.T) {
				a := checkerboard(t, 32, 32, srcOpt)
				b := mustNew(t, 32, 32, dstOpt)

				if err := a.Apply(b); err != nil {
					t.Fatalf("Apply failed: %v", err)
				}
				var ca, cb Color
				for i := range a.Len() {
					a.GetPixel(i, &ca)
					b.GetPixel(i, &cb)
					if ca != cb {
						t.Fatalf("pixel %d: target %v, want %v", i, cb, ca)
					}
				}
			})
		}
	}
}

func TestApplyRaster(t *testing.T) {
	for mode, opt := range modes(t) {
		t.Run(mode.String(), func(t *testing.T) {
			a := checkerboard(t, 8, 4, opt)
			s := surface.NewImageSurface(8, 4)

			if err := a.Apply(s); err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if !bytes.Equal(s.Pix(), a.Bytes()) {
				t.Error("surface pixels differ from buffer")
			}
			if got := s.Image().RGBAAt(1, 0); got.G != 255 || got.R != 0 {
				t.Errorf("pixel (1,0) = %v, want green", got)
			}
		})
	}
}

// TestApplySameCountDifferentShape copies by pixel count, not by shape.
func TestApplySameCountDifferentShape(t *testing.T) {
	a := checkerboard(t, 4, 4, WithCapabilities(FallbackCapabilities()))
	b := mustNew(t, 2, 8)
	if err := a.Apply(b); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("bytes differ")
	}
}

func TestApplyDirectNoOp(t *testing.T) {
	for mode, opt := range modes(t) {
		t.Run(mode.String(), func(t *testing.T) {
			s := surface.NewImageSurface(3, 3)
			b, err := NewDirect(s, opt)
			if err != nil {
				t.Fatal(err)
			}
			b.SetPixel(4, 1, 2, 3, 4)
			before := append([]byte(nil), s.Pix()...)

			if err := b.Apply(s); err != nil {
				t.Fatalf("Apply to own surface failed: %v", err)
			}
			if !bytes.Equal(before, s.Pix()) {
				t.Error("Apply to own surface changed pixels")
			}
		})
	}
}

// TestApplyFromDirect copies a direct buffer into an unrelated surface.
func TestApplyFromDirect(t *testing.T) {
	src := surface.NewImageSurface(2, 2)
	b, err := NewDirect(src)
	if err != nil {
		t.Fatal(err)
	}
	b.SetPixel(3, 50, 60, 70, 80)

	dst := surface.NewImageSurface(2, 2)
	if err := b.Apply(dst); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !bytes.Equal(src.Pix(), dst.Pix()) {
		t.Error("destination differs from source surface")
	}
}

func TestApplySizeMismatch(t *testing.T) {
	for mode, opt := range modes(t) {
		t.Run(mode.String(), func(t *testing.T) {
			a := checkerboard(t, 4, 4, opt)
			small := mustNew(t, 3, 4)
			small.Clear(NewColor(7, 7, 7, 7))
			before := append([]byte(nil), small.Bytes()...)

			if err := a.Apply(small); !errors.Is(err, ErrIncompatibleTarget) {
				t.Fatalf("Apply = %v, want ErrIncompatibleTarget", err)
			}
			if !bytes.Equal(before, small.Bytes()) {
				t.Error("target modified by failed Apply")
			}

			s := surface.NewImageSurface(5, 5)
			if err := a.Apply(s); !errors.Is(err, ErrIncompatibleTarget) {
				t.Errorf("Apply(5x5 surface) = %v, want ErrIncompatibleTarget", err)
			}
		})
	}
}

func TestApplyInvalidTargets(t *testing.T) {
	a := mustNew(t, 2, 2)
	closed := surface.NewImageSurface(2, 2)
	_ = closed.Close()

	targets := map[string]any{
		"nil":           nil,
		"nil buffer":    (*Buffer)(nil),
		"byte slice":    make([]byte, 16),
		"string":        "pixels",
		"closed raster": closed,
		"nil surface":   (*surface.ImageSurface)(nil),
		"nil raw":       (*surface.RawSurface)(nil),
	}
	for name, target := range targets {
		if err := a.Apply(target); !errors.Is(err, ErrIncompatibleTarget) {
			t.Errorf("%s: Apply = %v, want ErrIncompatibleTarget", name, err)
		}
	}
}

func TestMultiply(t *testing.T) {
	for mode, opt := range modes(t) {
		t.Run(mode.String(), func(t *testing.T) {
			in := mustNew(t, 2, 1, opt)
			out := mustNew(t, 2, 1, opt)
			in.SetPixel(0, 255, 128, 10, 255)
			in.SetPixel(1, 100, 200, 0, 51)

			if err := Multiply(in, out, 255, 128, 0, 255); err != nil {
				t.Fatalf("Multiply failed: %v", err)
			}

			tests := []struct {
				i    int
				want Color
			}{
				{0, Color{255, 64, 0, 255}},
				{1, Color{100, 100, 0, 51}},
			}
			for _, tt := range tests {
				if got := out.GetPixel(tt.i, nil); got != tt.want {
					t.Errorf("pixel %d = %v, want %v", tt.i, got, tt.want)
				}
			}
			if got := in.GetPixel(0, nil); got != (Color{255, 128, 10, 255}) {
				t.Errorf("input modified: %v", got)
			}
		})
	}
}

func TestMultiplyPathEquivalence(t *testing.T) {
	packedIn := checkerboard(t, 6, 6, WithCapabilities(packedCaps(t)))
	bytesIn := checkerboard(t, 6, 6, WithCapabilities(FallbackCapabilities()))
	packedIn.SetPixel(7, 33, 66, 99, 132)
	bytesIn.SetPixel(7, 33, 66, 99, 132)

	// In place on both paths.
	if err := Multiply(packedIn, packedIn, 200, 100, 50, 25); err != nil {
		t.Fatal(err)
	}
	if err := Multiply(bytesIn, bytesIn, 200, 100, 50, 25); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(packedIn.Bytes(), bytesIn.Bytes()) {
		t.Error("Multiply results differ between code paths")
	}
}

// TestMultiplyParallel crosses the span threshold and checks every pixel
// against the scalar formula.
func TestMultiplyParallel(t *testing.T) {
	for mode, opt := range modes(t) {
		t.Run(mode.String(), func(t *testing.T) {
			in := mustNew(t, 256, 256, opt)
			for i := range in.Len() {
				in.SetPixel(i, uint8(i), uint8(i>>8), uint8(i*7), uint8(255-i%256))
			}
			out := mustNew(t, 256, 256, opt, WithParallel(true))
			if err := Multiply(in, out, 200, 100, 50, 25); err != nil {
				t.Fatal(err)
			}

			var c, got Color
			for i := range in.Len() {
				in.GetPixel(i, &c)
				out.GetPixel(i, &got)
				want := Color{scale(c.R, 200), scale(c.G, 100), scale(c.B, 50), scale(c.A, 25)}
				if got != want {
					t.Fatalf("pixel %d = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestMultiplyErrors(t *testing.T) {
	a := mustNew(t, 2, 2)
	b := mustNew(t, 3, 2)
	if err := Multiply(a, b, 1, 1, 1, 1); !errors.Is(err, ErrIncompatibleTarget) {
		t.Errorf("size mismatch: %v", err)
	}
	if err := Multiply(nil, b, 1, 1, 1, 1); !errors.Is(err, ErrIncompatibleTarget) {
		t.Errorf("nil input: %v", err)
	}
}

func BenchmarkApply(b *testing.B) {
	for mode, opt := range modes(b) {
		b.Run(mode.String(), func(b *testing.B) {
			src := mustNew(b, 512, 512, opt)
			dst := mustNew(b, 512, 512, opt)
			b.SetBytes(int64(len(src.Bytes())))
			b.ReportAllocs()
			for b.Loop() {
				_ = src.Apply(dst)
			}
		})
	}
}
