// Package icon renders the app badge: a rounded-rectangle blue field
// carrying a white bar-and-two-dots "in" glyph, generated
// programmatically with no external deps. All geometry derives from
// the target size by integer division, so renderings are deterministic
// and hard-edged at every size.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Badge and glyph colors.
var (
	Blue  = color.RGBA{R: 0x0A, G: 0x66, B: 0xC2, A: 0xFF} // #0A66C2
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Draw renders the icon at size×size pixels on a fully transparent
// background. The badge corner radius is size/6 and the glyph sits
// inset size/8 from every edge; the bar spans the middle third of the
// inner box and each dot's diameter is a quarter of it. size must be
// at least 1. Sizes below 8 floor parts of the glyph to zero and those
// shapes paint nothing.
func Draw(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	radius := size / 6
	padding := size / 8
	inner := size - 2*padding
	circle := inner / 4

	// Badge field over the full canvas.
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if inRoundedRect(x, y, size, radius) {
				img.SetRGBA(x, y, Blue)
			}
		}
	}

	// Bar across the middle third of the inner box.
	bar := image.Rect(padding, padding+inner/3, padding+inner, padding+inner*2/3)
	draw.Draw(img, bar, &image.Uniform{White}, image.Point{}, draw.Src)

	// Dots at the top inner corners.
	fillCircle(img, padding, padding, circle, White)
	fillCircle(img, padding+inner-circle, padding, circle, White)

	return img
}

// WriteFile renders the icon at the given size and writes it to path
// as a PNG, overwriting any existing file. The parent directory must
// already exist.
func WriteFile(path string, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("icon: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, Draw(size)); err != nil {
		return fmt.Errorf("icon: encode %s: %w", path, err)
	}
	return nil
}

// inRoundedRect reports whether pixel (x, y) lies inside a size×size
// rectangle whose corners are rounded with the given radius. Pixels in
// a corner square must fall within the quarter circle anchored at that
// corner's inner center.
func inRoundedRect(x, y, size, r int) bool {
	var cx, cy int
	switch {
	case x < r && y < r:
		cx, cy = r, r
	case x >= size-r && y < r:
		cx, cy = size-r-1, r
	case x < r && y >= size-r:
		cx, cy = r, size-r-1
	case x >= size-r && y >= size-r:
		cx, cy = size-r-1, size-r-1
	default:
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// fillCircle paints a filled circle of diameter d whose bounding box
// has its top-left corner at (x0, y0). Pixel centers are tested
// against the true circle so small dots stay symmetric.
func fillCircle(img *image.RGBA, x0, y0, d int, c color.RGBA) {
	r := float64(d) / 2
	cx := float64(x0) + r
	cy := float64(y0) + r
	for y := y0; y < y0+d; y++ {
		for x := x0; x < x0+d; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
