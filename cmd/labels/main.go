package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nvr-ai/go-labels/images"
	"github.com/nvr-ai/go-labels/models"
)

const (
	// DefaultCellSize is the edge length of one palette square in pixels.
	DefaultCellSize = 32
)

// Options holds the parsed command line.
type Options struct {
	Family  models.ModelFamily
	Convert string
	Palette string
	Cell    int
	Seed    int64
	Seeded  bool
	Tensor  bool
}

func main() {
	var (
		taxonomy string
		opts     Options
	)
	flag.StringVar(&taxonomy, "taxonomy", "voc", "Label set to print: voc or coco")
	flag.StringVar(&opts.Convert, "convert", "", "COCO label to translate into VOC")
	flag.StringVar(&opts.Palette, "palette", "", "Write the class colors as a PNG strip to this path")
	flag.IntVar(&opts.Cell, "cell", DefaultCellSize, "Palette square size in pixels")
	flag.BoolVar(&opts.Tensor, "tensor", false, "Print the color table as an (n, 3) uint8 tensor")
	flag.Int64Var(&opts.Seed, "seed", 0, "Seed for class colors (random when unset)")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.Seeded = true
		}
	})

	family, ok := models.ParseModelFamily(taxonomy)
	if !ok {
		log.Fatalf("unknown taxonomy %q", taxonomy)
	}
	opts.Family = family

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(opts Options, w io.Writer) error {
	reg := models.NewRegistry(models.Config{Seeded: opts.Seeded, Seed: opts.Seed})

	if opts.Convert != "" {
		voc, ok := models.COCOLabelToVOCLabel(opts.Convert)
		if !ok {
			fmt.Fprintf(w, "%s -> (no VOC label)\n", opts.Convert)
			return nil
		}
		fmt.Fprintf(w, "%s -> %s\n", opts.Convert, voc)
		return nil
	}

	set, ok := reg.Set(opts.Family)
	if !ok {
		return fmt.Errorf("family %q not registered", opts.Family)
	}
	colors := reg.VOCColors()
	if opts.Family == models.ModelFamilyCOCO {
		colors = reg.COCOColors()
	}

	for _, cls := range set.Classes() {
		fmt.Fprintf(w, "%3d  %s  %s\n", cls.Index, colors[cls.Index], cls.Name)
	}

	if opts.Tensor {
		dense := colors.Tensor()
		fmt.Fprintf(w, "shape: %v\n%v\n", dense.Shape(), dense)
	}

	if opts.Palette != "" {
		if err := images.SavePNG(opts.Palette, images.RenderPalette(colors, opts.Cell)); err != nil {
			return err
		}
		log.Printf("wrote %d-class palette to %s", len(colors), opts.Palette)
	}
	return nil
}
