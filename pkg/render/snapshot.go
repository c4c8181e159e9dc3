package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// Scaled returns the frame enlarged by an integer factor using
// nearest-neighbor sampling, which keeps pixel edges crisp.
// Factors below 2 return the unscaled image.
func (fb *Framebuffer) Scaled(factor int) *image.RGBA {
	src := fb.ToImage()
	if factor < 2 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, fb.Width*factor, fb.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG saves the framebuffer as a PNG file, enlarged by factor.
func (fb *Framebuffer) SavePNG(path string, factor int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, fb.Scaled(factor)); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
