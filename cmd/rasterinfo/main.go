package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/GISLab-ELTE/spectral/raster"
	"github.com/GISLab-ELTE/spectral/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// bandReport is the per-band part of the JSON summary.
type bandReport struct {
	Index      int                `json:"index"`
	Resolution int                `json:"resolution"`
	Statistics *raster.Statistics `json:"statistics"`
}

// report is the JSON summary printed for each input file.
type report struct {
	ID      string       `json:"id"`
	Rows    int          `json:"rows"`
	Columns int          `json:"columns"`
	Bands   []bandReport `json:"bands"`
	Format  string       `json:"format"`
}

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("rasterinfo %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("rasterinfo - raster band statistics and previews")
			fmt.Println()
			fmt.Println("Usage: rasterinfo <image> [preview.png]")
			fmt.Println()
			fmt.Println("Imports a PNG, JPEG or GIF image as a multi-band raster and prints")
			fmt.Println("a JSON summary with per-band statistics. When a preview path is")
			fmt.Println("given, a downscaled grayscale overview of the first band is written")
			fmt.Println("there.")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  RASTERINFO_BANDS=1|3|4     Import band count (default 3)")
			fmt.Println("  RASTERINFO_PREVIEW_SIZE=N  Preview edge length in pixels (default 512)")
			return
		}
	}

	// Configure logging to stderr (stdout is for the JSON summary)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) < 2 {
		log.Fatal("usage: rasterinfo <image> [preview.png] (see --help)")
	}
	path := os.Args[1]

	bands := 3
	if s := os.Getenv("RASTERINFO_BANDS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			log.Fatalf("invalid RASTERINFO_BANDS %q: %v", s, err)
		}
		bands = n
	}

	cache := render.NewCache()
	r, err := cache.Load(path, bands)
	if err != nil {
		log.Fatalf("failed to import %s: %v", path, err)
	}

	summary, err := summarize(r)
	if err != nil {
		log.Fatalf("failed to analyze %s: %v", path, err)
	}
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode summary: %v", err)
	}
	fmt.Println(string(out))

	if len(os.Args) > 2 {
		if err := writePreview(r, os.Args[2]); err != nil {
			log.Fatalf("failed to write preview: %v", err)
		}
		log.Printf("preview written to %s", os.Args[2])
	}
}

func summarize(r *raster.Raster) (*report, error) {
	d := r.Dimensions()
	rep := &report{
		ID:      r.ID(),
		Rows:    d.Rows(),
		Columns: d.Columns(),
		Format:  r.Format().String(),
	}
	for _, b := range r.Bands() {
		stats, err := b.Statistics()
		if err != nil {
			return nil, err
		}
		rep.Bands = append(rep.Bands, bandReport{
			Index:      b.Index(),
			Resolution: b.Resolution(),
			Statistics: stats,
		})
	}
	return rep, nil
}

func writePreview(r *raster.Raster, path string) error {
	size := 512
	if s := os.Getenv("RASTERINFO_PREVIEW_SIZE"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid RASTERINFO_PREVIEW_SIZE %q: %w", s, err)
		}
		size = n
	}

	band, err := r.Band(0)
	if err != nil {
		return err
	}
	res, err := render.Overview(band, size)
	if err != nil {
		return err
	}
	data, err := res.Decode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
