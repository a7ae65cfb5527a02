// Command uvwrap runs the LSCM UV-unwrapping pipeline over a single
// Wavefront OBJ mesh: load, unwrap, write the result, report quality
// metrics on stderr.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lvlath-labs/uvwrap/config"
	"github.com/lvlath-labs/uvwrap/objio"
	"github.com/lvlath-labs/uvwrap/pipeline"
)

// options holds the parsed command-line arguments.
type options struct {
	inPath     string
	outPath    string
	configPath string
	parallel   int
	verbose    bool
}

// parseOptions parses args against a fresh FlagSet so it can be
// exercised from tests without touching the process-global flag.CommandLine.
func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("uvwrap", flag.ContinueOnError)
	var o options
	fs.StringVar(&o.inPath, "in", "", "input OBJ mesh path (required)")
	fs.StringVar(&o.outPath, "out", "", "output OBJ mesh path (required)")
	fs.StringVar(&o.configPath, "config", "", "optional YAML config path")
	fs.IntVar(&o.parallel, "parallel", 1, "number of islands to solve concurrently")
	fs.BoolVar(&o.verbose, "v", false, "log structural warnings and progress")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.inPath == "" || o.outPath == "" {
		return options{}, fmt.Errorf("both -in and -out are required")
	}
	return o, nil
}

func main() {
	o, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "uvwrap: %v\n", err)
		os.Exit(2)
	}
	logger := log.New(os.Stderr, "", log.LstdFlags)
	if err := run(o, logger); err != nil {
		fmt.Fprintf(os.Stderr, "uvwrap: %v\n", err)
		os.Exit(1)
	}
}

// run loads the mesh and config named by o, unwraps it, writes the
// result, and logs the quality report through logger.
func run(o options, logger *log.Logger) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	m, err := objio.Load(o.inPath)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}

	opts := []pipeline.Option{pipeline.WithParallelIslands(o.parallel)}
	if o.verbose {
		opts = append(opts, pipeline.WithLogger(logger))
	}

	res, err := pipeline.Unwrap(m, cfg, opts...)
	if err != nil {
		return fmt.Errorf("unwrap: %w", err)
	}

	if err := objio.Save(o.outPath, res.Mesh); err != nil {
		return fmt.Errorf("save mesh: %w", err)
	}

	logger.Printf("islands=%d failed=%d avg_stretch=%.4f max_stretch=%.4f coverage=%.4f angle_distortion=%.4f",
		res.Islands.K, res.FailedIslands, res.Metrics.AvgStretch, res.Metrics.MaxStretch,
		res.Metrics.Coverage, res.Metrics.AngleDistortion)
	return nil
}
