package models

import (
	"fmt"
	"image/color"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// Color is an RGB display color for a class.
type Color struct {
	R, G, B uint8
}

// RGBA returns c as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorTable holds one color per class id.
type ColorTable []Color

// NewColorTable draws n colors, each channel uniform in [0, 255) truncated to
// a byte. A nil seed seeds the source from the wall clock.
//
// Arguments:
//   - n: Number of classes.
//   - seed: Optional seed for reproducible colors.
//
// Returns:
//   - A table of n colors.
//
// @example
// seed := int64(7)
// colors := NewColorTable(VOCClasses.Len(), &seed)
func NewColorTable(n int, seed *int64) ColorTable {
	s := uint64(time.Now().UnixNano())
	if seed != nil {
		s = uint64(*seed)
	}
	dist := distuv.Uniform{Min: 0, Max: 255, Src: rand.NewSource(s)}

	table := make(ColorTable, n)
	for i := range table {
		table[i] = Color{
			R: uint8(dist.Rand()),
			G: uint8(dist.Rand()),
			B: uint8(dist.Rand()),
		}
	}
	return table
}

// At returns the color for class id idx, or false when idx is out of range.
func (t ColorTable) At(idx int) (Color, bool) {
	if idx < 0 || idx >= len(t) {
		return Color{}, false
	}
	return t[idx], true
}

// Tensor returns the table as an (n, 3) uint8 tensor in R, G, B channel order.
// An empty table returns nil.
func (t ColorTable) Tensor() *tensor.Dense {
	if len(t) == 0 {
		return nil
	}
	backing := make([]uint8, 0, len(t)*3)
	for _, c := range t {
		backing = append(backing, c.R, c.G, c.B)
	}
	return tensor.New(tensor.WithShape(len(t), 3), tensor.WithBacking(backing))
}
