package renderer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/roydaw/go-raytracer/pkg/core"
)

// WritePPM emits the framebuffer as a plain-text P3 pixel map: header,
// dimensions, max channel value, then one "R G B" line per pixel,
// rows top-to-bottom and columns left-to-right.
func WritePPM(w io.Writer, fb *Framebuffer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			r, g, b := core.RGB(fb.At(i, j))
			fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		}
	}

	return bw.Flush()
}
