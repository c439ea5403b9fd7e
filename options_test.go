package imagebuffer

import (
	"testing"

	"github.com/gogpu/imagebuffer/surface"
)

// TestNewDefaultOptions tests that New uses the detected capabilities by default.
func TestNewDefaultOptions(t *testing.T) {
	b := mustNew(t, 4, 4)

	if b.Capabilities() != DefaultCapabilities() {
		t.Errorf("Capabilities() = %+v, want %+v", b.Capabilities(), DefaultCapabilities())
	}
	if b.parallel {
		t.Error("parallel enabled by default")
	}
	if want := DefaultCapabilities().Supports32Bit; (b.Mode() == ModePacked32) != want {
		t.Errorf("Mode() = %v, Supports32Bit = %v", b.Mode(), want)
	}
}

// TestOptionsApplyInOrder tests that later options override earlier ones.
func TestOptionsApplyInOrder(t *testing.T) {
	b := mustNew(t, 2, 2,
		WithCapabilities(packedCaps(t)),
		WithParallel(true),
		WithCapabilities(FallbackCapabilities()),
	)
	if b.Mode() != ModeBytes {
		t.Errorf("Mode() = %v, want bytes", b.Mode())
	}
	if !b.parallel {
		t.Error("WithParallel(true) lost")
	}
}

func TestNewDirectOptions(t *testing.T) {
	s := surface.NewImageSurface(2, 2)
	b, err := NewDirect(s, WithCapabilities(FallbackCapabilities()), WithParallel(true))
	if err != nil {
		t.Fatal(err)
	}
	if b.Mode() != ModeBytes || !b.parallel {
		t.Errorf("Mode() = %v, parallel = %v", b.Mode(), b.parallel)
	}
}
