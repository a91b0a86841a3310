package models

// cocoToVOC maps COCO names to the VOC name for the same concept where the
// two datasets spell it differently. No value is also a key.
var cocoToVOC = map[string]string{
	"airplane":     "aeroplane",
	"motorcycle":   "motorbike",
	"dining table": "diningtable",
	"potted plant": "pottedplant",
	"couch":        "sofa",
	"tv":           "tvmonitor",
}

// ConvertCOCOToVOC returns the VOC spelling of a COCO label when the two
// datasets name the class differently, and label unchanged otherwise.
//
// The result is not guaranteed to be a VOC label; use COCOLabelToVOCLabel for that.
func ConvertCOCOToVOC(label string) string {
	if voc, ok := cocoToVOC[label]; ok {
		return voc
	}
	return label
}

// COCOLabelToVOCLabel returns the VOC label corresponding to a COCO label.
//
// Arguments:
//   - label: A COCO class label.
//
// Returns:
//   - The VOC label, after alias conversion.
//   - false if the class has no VOC counterpart.
//
// @example
// voc, ok := COCOLabelToVOCLabel("motorcycle") // "motorbike", true
// _, ok = COCOLabelToVOCLabel("elephant")      // "", false
func COCOLabelToVOCLabel(label string) (string, bool) {
	label = ConvertCOCOToVOC(label)
	if !VOCClasses.Contains(label) {
		return "", false
	}
	return label, true
}

// IsVOCLabel reports whether label is exactly a VOC class name. No alias
// conversion is applied.
func IsVOCLabel(label string) bool {
	return VOCClasses.Contains(label)
}

// VOCLabelColor returns the color of a VOC label from the default registry.
func VOCLabelColor(label string) (Color, bool) {
	return Default().VOCLabelColor(label)
}
