package models

import (
	"sync"
	"time"
)

// Config controls how a Registry generates its color tables.
type Config struct {
	// Seeded makes color generation reproducible using Seed.
	Seeded bool
	// Seed for the color source. Ignored unless Seeded is set.
	Seed int64
}

// DefaultConfig returns a configuration with clock-seeded colors.
func DefaultConfig() Config {
	return Config{}
}

// Registry pairs the static VOC and COCO class sets with per-class colors.
// It is read-only after construction and safe for concurrent use.
type Registry struct {
	*ClassManager

	vocColors  ColorTable
	cocoColors ColorTable
}

// cocoSeedOffset separates the COCO color stream from the VOC one, so the
// COCO colors for a seed do not depend on the size of the VOC table.
const cocoSeedOffset = 1

// NewRegistry builds a registry and its color tables.
//
// Each table is drawn from its own source. A seeded config reproduces both;
// an unseeded one seeds both from the wall clock.
func NewRegistry(cfg Config) *Registry {
	seed := cfg.Seed
	if !cfg.Seeded {
		seed = time.Now().UnixNano()
	}
	cocoSeed := seed + cocoSeedOffset

	return &Registry{
		ClassManager: NewClassManager(VOCClasses, COCOClasses),
		vocColors:    NewColorTable(VOCClasses.Len(), &seed),
		cocoColors:   NewColorTable(COCOClasses.Len(), &cocoSeed),
	}
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, building it on first use with
// DefaultConfig. Its colors are stable for the life of the process only.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(DefaultConfig())
	})
	return defaultRegistry
}

// VOCColors returns the VOC color table indexed by VOC class id.
func (r *Registry) VOCColors() ColorTable {
	return append(ColorTable(nil), r.vocColors...)
}

// COCOColors returns the COCO color table indexed by COCO class id.
func (r *Registry) COCOColors() ColorTable {
	return append(ColorTable(nil), r.cocoColors...)
}

// VOCLabelColor returns the color of a VOC label, or false if label is not a
// VOC class name.
func (r *Registry) VOCLabelColor(label string) (Color, bool) {
	idx, ok := VOCClasses.Index(label)
	if !ok {
		return Color{}, false
	}
	return r.vocColors.At(idx)
}

// COCOLabelColor returns the color of a COCO label, or false if label is not
// a COCO class name.
func (r *Registry) COCOLabelColor(label string) (Color, bool) {
	idx, ok := COCOClasses.Index(label)
	if !ok {
		return Color{}, false
	}
	return r.cocoColors.At(idx)
}
