package classifier

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/pilahsampah/waste-classifier/internal/model"
)

// Tensor resizes img to size×size and flattens it into a batch of one
// RGB image with values in [0,1], ordered by layout.
func Tensor(img image.Image, size int, layout model.Layout) []float32 {
	resized := resize.Resize(uint(size), uint(size), img, resize.Bicubic)

	bounds := resized.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	plane := width * height

	data := make([]float32, 3*plane)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := resized.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			rgb := [3]float32{
				float32(r>>8) / 255.0,
				float32(g>>8) / 255.0,
				float32(b>>8) / 255.0,
			}

			pixel := y*width + x
			for c, v := range rgb {
				if layout == model.LayoutNCHW {
					data[c*plane+pixel] = v
				} else {
					data[pixel*3+c] = v
				}
			}
		}
	}

	return data
}
