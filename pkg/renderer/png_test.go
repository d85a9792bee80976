package renderer

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/roydaw/go-raytracer/pkg/core"
)

func TestWritePNG_RoundTrip(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Pixels[0] = core.NewVec3(1, 0, 0)

	var buf bytes.Buffer
	if err := WritePNG(&buf, fb); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 3 {
		t.Errorf("Expected 4x3 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	r, _, _, _ := img.At(0, 0).RGBA()
	if r != 0xFFFF {
		t.Errorf("Expected saturated red at (0,0), got %v", r)
	}
}
