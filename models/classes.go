package models

import "github.com/pkg/errors"

// OutputClass represents one detection label.
type OutputClass struct {
	// The integer index of the class within its family.
	Index int
	// The human-readable label.
	Name string
}

// OutputClassSet ties a model family to its full, ordered list of labels.
// A set is immutable once built; read it through its accessors.
type OutputClassSet struct {
	// Class set identifier.
	family ModelFamily
	// classes in id order; classes[i].Index == i.
	classes []OutputClass
	// nameToIdx for fast lookup by name
	nameToIdx map[string]int
}

// NewOutputClassSet builds a class set whose ids are the positions of names.
// If a name repeats, the later position wins in name lookups.
func NewOutputClassSet(family ModelFamily, names ...string) *OutputClassSet {
	set := &OutputClassSet{
		family:  family,
		classes: make([]OutputClass, len(names)),
	}
	for i, name := range names {
		set.classes[i] = OutputClass{Index: i, Name: name}
	}
	set.buildNameIndexMap()
	return set
}

// buildNameIndexMap builds the name->index map. Only called during construction.
func (s *OutputClassSet) buildNameIndexMap() {
	s.nameToIdx = make(map[string]int, len(s.classes))
	for _, c := range s.classes {
		s.nameToIdx[c.Name] = c.Index
	}
}

// Family returns the set identifier.
func (s *OutputClassSet) Family() ModelFamily {
	return s.family
}

// Class returns the class with id idx, or false when idx is out of range.
func (s *OutputClassSet) Class(idx int) (OutputClass, bool) {
	if idx < 0 || idx >= len(s.classes) {
		return OutputClass{}, false
	}
	return s.classes[idx], true
}

// Classes returns the classes in id order. The returned slice is a copy.
func (s *OutputClassSet) Classes() []OutputClass {
	return append([]OutputClass(nil), s.classes...)
}

// Len returns the number of classes in the set.
func (s *OutputClassSet) Len() int {
	return len(s.classes)
}

// Contains reports whether name is exactly one of the set's labels.
func (s *OutputClassSet) Contains(name string) bool {
	_, ok := s.nameToIdx[name]
	return ok
}

// Index returns the id of name, or false when the name is not in the set.
func (s *OutputClassSet) Index(name string) (int, bool) {
	idx, ok := s.nameToIdx[name]
	return idx, ok
}

// Names returns the labels in id order. The returned slice is a copy.
func (s *OutputClassSet) Names() []string {
	names := make([]string, len(s.classes))
	for i, c := range s.classes {
		names[i] = c.Name
	}
	return names
}

// NameSet returns the labels as a set. The returned map is a copy.
func (s *OutputClassSet) NameSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.classes))
	for _, c := range s.classes {
		set[c.Name] = struct{}{}
	}
	return set
}

// IDMap returns the name->id mapping. The returned map is a copy.
func (s *OutputClassSet) IDMap() map[string]int {
	ids := make(map[string]int, len(s.nameToIdx))
	for name, idx := range s.nameToIdx {
		ids[name] = idx
	}
	return ids
}

// ClassManager holds all registered class sets.
type ClassManager struct {
	sets map[ModelFamily]*OutputClassSet
}

// NewClassManager initializes and registers the given sets.
func NewClassManager(allSets ...*OutputClassSet) *ClassManager {
	mgr := &ClassManager{sets: make(map[ModelFamily]*OutputClassSet)}
	for _, set := range allSets {
		mgr.sets[set.family] = set
	}
	return mgr
}

// Set returns the class set registered for family.
func (m *ClassManager) Set(family ModelFamily) (*OutputClassSet, bool) {
	set, ok := m.sets[family]
	return set, ok
}

// GetName returns the class name for a given family and index.
func (m *ClassManager) GetName(family ModelFamily, idx int) (string, error) {
	set, ok := m.sets[family]
	if !ok {
		return "", errors.Errorf("family %q not registered", family)
	}
	cls, ok := set.Class(idx)
	if !ok {
		return "", errors.Errorf("index %d out of range for family %q", idx, family)
	}
	return cls.Name, nil
}

// GetIndex returns the class index for a given family and name.
func (m *ClassManager) GetIndex(family ModelFamily, name string) (int, error) {
	set, ok := m.sets[family]
	if !ok {
		return -1, errors.Errorf("family %q not registered", family)
	}
	idx, ok := set.nameToIdx[name]
	if !ok {
		return -1, errors.Errorf("name %q not found in family %q", name, family)
	}
	return idx, nil
}

// MapClass maps an index from one family to another, returning the target OutputClass.
//
// Mapping from COCO to VOC goes through ConvertCOCOToVOC, so COCO "couch"
// lands on VOC "sofa".
//
// Arguments:
//   - fromFamily: The family idx belongs to.
//   - idx: The class index in fromFamily.
//   - toFamily: The family to map into.
//
// Returns:
//   - The matching class of toFamily.
//   - An error if either family is unknown, idx is out of range, or the class
//     has no counterpart in toFamily.
//
// @example
// mgr := NewClassManager(VOCClasses, COCOClasses)
// cls, _ := mgr.MapClass(ModelFamilyCOCO, 5, ModelFamilyVOC) // {0 aeroplane}
func (m *ClassManager) MapClass(fromFamily ModelFamily, idx int, toFamily ModelFamily) (OutputClass, error) {
	name, err := m.GetName(fromFamily, idx)
	if err != nil {
		return OutputClass{}, err
	}
	if fromFamily == ModelFamilyCOCO && toFamily == ModelFamilyVOC {
		name = ConvertCOCOToVOC(name)
	}
	toIdx, err := m.GetIndex(toFamily, name)
	if err != nil {
		return OutputClass{}, errors.Wrapf(err, "mapping %s[%d]", fromFamily, idx)
	}
	return OutputClass{Index: toIdx, Name: name}, nil
}

// VOCClasses are the 20 Pascal VOC classes. There is no background
// entry; "aeroplane" is id 0.
var VOCClasses = NewOutputClassSet(ModelFamilyVOC,
	"aeroplane",
	"bicycle",
	"bird",
	"boat",
	"bottle",
	"bus",
	"car",
	"cat",
	"chair",
	"cow",
	"diningtable",
	"dog",
	"horse",
	"motorbike",
	"person",
	"pottedplant",
	"sheep",
	"sofa",
	"train",
	"tvmonitor",
)

// COCOClasses are the 91 COCO category ids with "unlabeled" at 0.
// Ids that only appear in the paper (street sign, hat, shoe, ...) are kept so
// that positions line up with the official category ids.
var COCOClasses = NewOutputClassSet(ModelFamilyCOCO,
	"unlabeled",
	"person",
	"bicycle",
	"car",
	"motorcycle",
	"airplane",
	"bus",
	"train",
	"truck",
	"boat",
	"traffic light",
	"fire hydrant",
	"street sign",
	"stop sign",
	"parking meter",
	"bench",
	"bird",
	"cat",
	"dog",
	"horse",
	"sheep",
	"cow",
	"elephant",
	"bear",
	"zebra",
	"giraffe",
	"hat",
	"backpack",
	"umbrella",
	"shoe",
	"eye glasses",
	"handbag",
	"tie",
	"suitcase",
	"frisbee",
	"skis",
	"snowboard",
	"sports ball",
	"kite",
	"baseball bat",
	"baseball glove",
	"skateboard",
	"surfboard",
	"tennis racket",
	"bottle",
	"plate",
	"wine glass",
	"cup",
	"fork",
	"knife",
	"spoon",
	"bowl",
	"banana",
	"apple",
	"sandwich",
	"orange",
	"broccoli",
	"carrot",
	"hot dog",
	"pizza",
	"donut",
	"cake",
	"chair",
	"couch",
	"potted plant",
	"bed",
	"mirror",
	"dining table",
	"window",
	"desk",
	"toilet",
	"door",
	"tv",
	"laptop",
	"mouse",
	"remote",
	"keyboard",
	"cell phone",
	"microwave",
	"oven",
	"toaster",
	"sink",
	"refrigerator",
	"blender",
	"book",
	"clock",
	"vase",
	"scissors",
	"teddy bear",
	"hair drier",
	"toothbrush",
)

// AllClassSets collects every OutputClassSet in one place.
var AllClassSets = []*OutputClassSet{
	COCOClasses,
	VOCClasses,
}

// LookupName returns the class name for a given family and index.
// If the family is unknown or the index is out of range, it returns an empty string.
func LookupName(family ModelFamily, idx int) string {
	for _, set := range AllClassSets {
		if set.family == family {
			cls, _ := set.Class(idx)
			return cls.Name
		}
	}
	return ""
}
