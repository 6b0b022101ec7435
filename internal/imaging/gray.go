// Package imaging converts images to grayscale for previewing the display
// mode without touching the live display.
package imaging

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ToGray renders img into an 8-bit grayscale image using the standard
// luminance conversion of the Gray color model.
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

// Scale resizes img by factor using bilinear interpolation.
// A factor of 1.0 returns img unchanged.
func Scale(img image.Image, factor float64) (image.Image, error) {
	if factor <= 0 || factor > 1.0 {
		return nil, fmt.Errorf("scale factor must be in (0, 1.0], got %v", factor)
	}
	if factor == 1.0 {
		return img, nil
	}

	bounds := img.Bounds()
	w := int(float64(bounds.Dx()) * factor)
	h := int(float64(bounds.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst, nil
}
