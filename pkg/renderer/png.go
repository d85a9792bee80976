package renderer

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image converts the framebuffer to an image.RGBA
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j).Clamp(0, 1)
			img.Set(i, j, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG emits the framebuffer as a PNG image
func WritePNG(w io.Writer, fb *Framebuffer) error {
	return png.Encode(w, fb.Image())
}
