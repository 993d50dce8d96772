// Command optitrace loads an optical bench from a scene file, traces
// every ray to termination, and prints summary statistics the way the
// teacher's raytracer.exe prints render stats.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/QPG-MIT/optiverse-sub001/pkg/bench"
	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	"github.com/QPG-MIT/optiverse-sub001/pkg/element"
	"github.com/QPG-MIT/optiverse-sub001/pkg/propagate"
	"github.com/QPG-MIT/optiverse-sub001/pkg/scenefile"
	"github.com/QPG-MIT/optiverse-sub001/pkg/source"
)

// Config holds all the configuration for one trace run.
type Config struct {
	ScenePath string
	DumpJSON  string
	Parallel  bool
	Help      bool
}

// DefaultLogger implements core.Logger by writing to stdout.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	logger := core.Logger(&DefaultLogger{})

	elements, sources, err := loadScene(config.ScenePath, logger)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Tracing %d element(s), %d source(s)...\n", len(elements), len(sources))
	startTime := time.Now()

	trace := propagate.TraceRays
	if config.Parallel {
		trace = propagate.TraceRaysParallel
	}

	paths, err := trace(elements, sources, propagate.DefaultTraceConfig())
	if err != nil {
		fmt.Printf("Error tracing rays: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(startTime)
	printSummary(paths, elapsed)

	if config.DumpJSON != "" {
		if err := dumpPaths(paths, config.DumpJSON); err != nil {
			fmt.Printf("Error writing %s: %v\n", config.DumpJSON, err)
			os.Exit(1)
		}
		logger.Printf("Wrote %s\n", config.DumpJSON)
	}
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.ScenePath, "scene", "", "Scene file path (.json or .yaml); a named bench fixture (mirror, lens, beamsplitter, pbs, curved-mirror, doublet) is also accepted")
	flag.StringVar(&config.DumpJSON, "dump-json", "", "Write the full traced RayPath set to this JSON file")
	flag.BoolVar(&config.Parallel, "parallel", false, "Trace sources concurrently (output is identical to sequential tracing)")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("optitrace")
	fmt.Println("Usage: optitrace -scene path.json [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Named bench fixtures (pass as -scene):")
	fmt.Println("  mirror        - Scenario A: flat mirror reflecting straight back")
	fmt.Println("  lens          - Scenario B: thin lens focusing three parallel rays")
	fmt.Println("  beamsplitter  - Scenario C: 50/50 non-polarizing beamsplitter")
	fmt.Println("  pbs           - Scenario D: polarizing beamsplitter")
	fmt.Println("  curved-mirror - Scenario E: concave curved mirror")
	fmt.Println("  doublet       - Scenario F: achromatic doublet lens")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  optitrace -scene lens")
	fmt.Println("  optitrace -scene scenes/bench.json -dump-json out/paths.json")
}

// loadScene resolves scenePath to a set of elements and sources, either a
// named bench fixture or a JSON/YAML file on disk.
func loadScene(scenePath string, logger core.Logger) ([]element.OpticalElement, []source.Source, error) {
	if elements, sources, ok := namedBench(scenePath); ok {
		logger.Printf("Using bench fixture %q...\n", scenePath)
		return elements, sources, nil
	}

	switch strings.ToLower(filepath.Ext(scenePath)) {
	case ".yaml", ".yml":
		return scenefile.LoadYAML(scenePath)
	case ".json":
		return scenefile.LoadJSON(scenePath)
	default:
		return nil, nil, fmt.Errorf("unrecognized scene %q: expected a .json/.yaml file or a named bench fixture (see -help)", scenePath)
	}
}

func namedBench(name string) ([]element.OpticalElement, []source.Source, bool) {
	switch name {
	case "mirror":
		e, s := bench.Mirror()
		return e, s, true
	case "lens":
		e, s := bench.Lens()
		return e, s, true
	case "beamsplitter":
		e, s := bench.Beamsplitter()
		return e, s, true
	case "pbs":
		e, s := bench.PBS()
		return e, s, true
	case "curved-mirror":
		e, s := bench.CurvedMirror()
		return e, s, true
	case "doublet":
		e, s := bench.AchromaticDoublet()
		return e, s, true
	default:
		return nil, nil, false
	}
}

// printSummary prints ray count, total path length, and mean terminal
// intensity, mirroring the teacher's samples-per-pixel render summary.
func printSummary(paths []core.RayPath, elapsed time.Duration) {
	fmt.Printf("Trace completed in %v\n", elapsed)
	fmt.Printf("Ray paths: %d\n", len(paths))

	if len(paths) == 0 {
		return
	}

	var totalLength, totalIntensity float64
	for _, p := range paths {
		for i := 1; i < len(p.Points); i++ {
			totalLength += p.Points[i].Sub(p.Points[i-1]).Length()
		}
		totalIntensity += float64(p.RGBA[3]) / 255.0
	}
	fmt.Printf("Total path length: %.3f mm\n", totalLength)
	fmt.Printf("Mean terminal intensity: %.4f\n", totalIntensity/float64(len(paths)))
}

func dumpPaths(paths []core.RayPath, path string) error {
	docs := scenefile.FromRayPaths(paths)
	data, err := scenefile.EncodeRayPathsJSON(docs)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
