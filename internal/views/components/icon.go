package components

import (
	"image"
	"image/color"
	"image/draw"
)

const IconSize = 180

// PCIcon draws the tower and monitor logo shown on the welcome screen
func PCIcon(size int) image.Image {
	if size < 16 {
		size = 16
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	frame := color.RGBA{R: 45, G: 52, B: 64, A: 255}
	screen := color.RGBA{R: 80, G: 170, B: 230, A: 255}
	tower := color.RGBA{R: 70, G: 78, B: 92, A: 255}
	light := color.RGBA{R: 120, G: 220, B: 120, A: 255}

	unit := size / 16

	// monitor
	fill(img, image.Rect(unit, 2*unit, 11*unit, 10*unit), frame)
	fill(img, image.Rect(2*unit, 3*unit, 10*unit, 9*unit), screen)
	fill(img, image.Rect(5*unit, 10*unit, 7*unit, 12*unit), frame)
	fill(img, image.Rect(3*unit, 12*unit, 9*unit, 13*unit), frame)

	// tower
	fill(img, image.Rect(12*unit, 3*unit, 15*unit, 14*unit), tower)
	fill(img, image.Rect(13*unit, 4*unit, 14*unit, 5*unit), light)
	for y := 6 * unit; y < 9*unit; y += unit {
		fill(img, image.Rect(12*unit+1, y, 15*unit-1, y+1), frame)
	}

	return img
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}
