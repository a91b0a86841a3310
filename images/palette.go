package images

import (
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"
	"github.com/nvr-ai/go-labels/models"
	"github.com/pkg/errors"
)

// RenderPalette renders colors as a strip of cell x cell squares, one per
// class id from left to right.
func RenderPalette(colors models.ColorTable, cell int) image.Image {
	if len(colors) == 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	if cell < 1 {
		cell = 1
	}

	strip := image.NewRGBA(image.Rect(0, 0, len(colors), 1))
	for i, c := range colors {
		strip.SetRGBA(i, 0, c.RGBA())
	}
	if cell == 1 {
		return strip
	}
	return resize.Resize(uint(len(colors)*cell), uint(cell), strip, resize.NearestNeighbor)
}

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create palette file")
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return f.Close()
}
