// Package images - Rendering of labelled detections and class color legends.
package images

import (
	"fmt"
	"image"

	"github.com/nvr-ai/go-labels/common"
	"github.com/nvr-ai/go-labels/models"
	"gocv.io/x/gocv"
)

// DrawBoxes draws every box that has a VOC counterpart onto img, outlined and
// captioned in its VOC class color. Boxes without a VOC counterpart are
// skipped.
//
// Arguments:
//   - img: The BGR frame to draw on.
//   - boxes: Detections labelled with COCO or VOC names.
//   - reg: Registry supplying the class colors.
//   - thickness: Line thickness in pixels.
//
// Returns:
//   - The number of boxes drawn.
func DrawBoxes(img *gocv.Mat, boxes []common.BoundingBox, reg *models.Registry, thickness int) int {
	drawn := 0
	for _, box := range common.FilterVOC(boxes) {
		c, ok := reg.VOCLabelColor(box.Label)
		if !ok {
			continue
		}
		rect := box.ToRect()
		gocv.Rectangle(img, rect, c.RGBA(), thickness)

		caption := fmt.Sprintf("%s %.2f", box.Label, box.Confidence)
		gocv.PutText(img, caption, image.Pt(rect.Min.X, rect.Min.Y-4), gocv.FontHersheyPlain, 0.8, c.RGBA(), 1)
		drawn++
	}
	return drawn
}
