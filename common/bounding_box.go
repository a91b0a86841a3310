// Package common - Detection types shared by the label and rendering packages.
package common

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/nvr-ai/go-labels/models"
)

// BoundingBox represents a bounding box with its label, confidence, and coordinates.
type BoundingBox struct {
	Label          string
	Confidence     float32
	X1, Y1, X2, Y2 float32
}

func (b *BoundingBox) String() string {
	return fmt.Sprintf("Object %s (confidence %f): (%f, %f), (%f, %f)",
		b.Label, b.Confidence, b.X1, b.Y1, b.X2, b.Y2)
}

// ToRect converts the bounding box to an image.Rectangle.
//
// Fractional pixels are truncated, so this is for drawing, not for geometry.
//
// @example
// box := BoundingBox{X1: 100.5, Y1: 100.5, X2: 200.5, Y2: 300.5}
// rect := box.ToRect() // (100,100)-(200,300)
func (b *BoundingBox) ToRect() image.Rectangle {
	return image.Rect(int(b.X1), int(b.Y1), int(b.X2), int(b.Y2)).Canon()
}

// Area returns the area of the box. Inverted boxes have zero area.
func (b *BoundingBox) Area() float32 {
	return math32.Max(0, b.X2-b.X1) * math32.Max(0, b.Y2-b.Y1)
}

// Intersection calculates the intersection area between two bounding boxes.
//
// Arguments:
// - other: The other bounding box to calculate intersection with.
//
// Returns:
// - The overlapping area, or 0 when the boxes are disjoint.
//
// @example
// box1 := BoundingBox{X1: 0, Y1: 0, X2: 100, Y2: 100}
// box2 := BoundingBox{X1: 50, Y1: 50, X2: 150, Y2: 150}
// area := box1.Intersection(&box2) // Returns 2500.0 (50x50 overlap)
func (b *BoundingBox) Intersection(other *BoundingBox) float32 {
	w := math32.Min(b.X2, other.X2) - math32.Max(b.X1, other.X1)
	h := math32.Min(b.Y2, other.Y2) - math32.Max(b.Y1, other.Y1)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Union calculates the union area between two bounding boxes.
//
// @example
// box1 := BoundingBox{X1: 0, Y1: 0, X2: 100, Y2: 100}
// box2 := BoundingBox{X1: 50, Y1: 50, X2: 150, Y2: 150}
// area := box1.Union(&box2) // Returns 17500.0
func (b *BoundingBox) Union(other *BoundingBox) float32 {
	return b.Area() + other.Area() - b.Intersection(other)
}

// IoU calculates the Intersection over Union between two bounding boxes.
// Two empty boxes have an IoU of 0.
//
// @example
// box1 := BoundingBox{X1: 0, Y1: 0, X2: 100, Y2: 100}
// box2 := BoundingBox{X1: 50, Y1: 50, X2: 150, Y2: 150}
// iou := box1.IoU(&box2) // Returns ~0.143 (2500/17500)
func (b *BoundingBox) IoU(other *BoundingBox) float32 {
	union := b.Union(other)
	if union <= 0 {
		return 0
	}
	return b.Intersection(other) / union
}

// ToVOC returns a copy of the box relabelled with the VOC name of its COCO
// label. It returns false when the label has no VOC counterpart.
func (b BoundingBox) ToVOC() (BoundingBox, bool) {
	label, ok := models.COCOLabelToVOCLabel(b.Label)
	if !ok {
		return BoundingBox{}, false
	}
	b.Label = label
	return b, true
}

// FilterVOC keeps the boxes whose labels map onto VOC classes and relabels
// them with the VOC names. Order is preserved.
func FilterVOC(boxes []BoundingBox) []BoundingBox {
	out := make([]BoundingBox, 0, len(boxes))
	for _, box := range boxes {
		if voc, ok := box.ToVOC(); ok {
			out = append(out, voc)
		}
	}
	return out
}
