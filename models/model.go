// Package models - Definitions for detection label taxonomies and class sets.
package models

// ModelFamily identifies the dataset a set of class labels comes from.
type ModelFamily string

const (
	// ModelFamilyCOCO is the COCO label set (91 ids, "unlabeled" at 0).
	ModelFamilyCOCO ModelFamily = "coco"
	// ModelFamilyVOC is the Pascal VOC label set (20 classes, no background).
	ModelFamilyVOC ModelFamily = "voc"
)

// String returns the family identifier.
func (f ModelFamily) String() string {
	return string(f)
}

// ParseModelFamily returns the family named by s and whether it is known.
func ParseModelFamily(s string) (ModelFamily, bool) {
	switch ModelFamily(s) {
	case ModelFamilyCOCO:
		return ModelFamilyCOCO, true
	case ModelFamilyVOC:
		return ModelFamilyVOC, true
	default:
		return "", false
	}
}
