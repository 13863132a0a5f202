// Command edge-detect computes Sobel or Prewitt edge maps for one or more
// image files and writes them as PNG files into an output directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/golang/glog"
	"github.com/ironsheep/edge-tools-mcp/internal/edge"
	"github.com/ironsheep/edge-tools-mcp/internal/imaging"
	"golang.org/x/sync/errgroup"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var errUsage = errors.New("usage")

type config struct {
	inputs   []string
	operator edge.Operator
	options  edge.Options
	outDir   string
	workers  int
	version  bool
}

func main() {
	// Progress is logged through glog; keep it on the terminal.
	_ = flag.Set("logtostderr", "true")
	defer glog.Flush()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(fs *flag.FlagSet, w io.Writer) func() {
	return func() {
		fmt.Fprintf(w, "Usage: edge-detect [flags] <image_path>... <operator>\n")
		fmt.Fprintf(w, "Operators: Sobel, Prewitt (case-insensitive)\n")
		fmt.Fprintf(w, "Example: edge-detect sample_images/cameraman.jpg Sobel\n\n")
		fmt.Fprintf(w, "Flags:\n")
		fs.PrintDefaults()
	}
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	var boundary string

	fs := flag.NewFlagSet("edge-detect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs, stderr)
	fs.StringVar(&cfg.outDir, "out", "output", "directory the edge maps are written to")
	fs.StringVar(&boundary, "boundary", "replicate", "border handling: replicate or zero")
	fs.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of images processed concurrently")
	fs.BoolVar(&cfg.version, "version", false, "print version information and exit")

	// glog registers -v, -vmodule and friends on the default FlagSet.
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		if fs.Lookup(f.Name) == nil && !strings.HasPrefix(f.Name, "test.") {
			fs.Var(f.Value, f.Name, f.Usage)
		}
	})

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.version {
		return cfg, nil
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return nil, errUsage
	}
	cfg.inputs = rest[:len(rest)-1]

	op, err := edge.ParseOperator(rest[len(rest)-1])
	if err != nil {
		return nil, err
	}
	cfg.operator = op

	cfg.options.Boundary, err = edge.ParseBoundary(boundary)
	if err != nil {
		return nil, err
	}

	if cfg.workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.workers)
	}
	if cfg.outDir == "" {
		return nil, errors.New("output directory must not be empty")
	}

	seen := make(map[string]string, len(cfg.inputs))
	for _, in := range cfg.inputs {
		out := cfg.outputPath(in)
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("%s and %s would both be written to %s", prev, in, out)
		}
		seen[out] = in
	}
	return cfg, nil
}

// outputPath keeps the historical result_<operator>_edges.png name for a
// single input and prefixes each file's base name otherwise.
func (c *config) outputPath(input string) string {
	name := c.operator.String()
	if len(c.inputs) == 1 {
		return filepath.Join(c.outDir, "result_"+name+"_edges.png")
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(c.outDir, base+"_"+name+"_edges.png")
}

// detectFile runs decode, edge detection and encode for one image.
func detectFile(input, output string, op edge.Operator, opts edge.Options) error {
	img, err := imaging.Decode(input)
	if err != nil {
		return err
	}
	glog.Infof("Image loaded successfully: %s %s", input, img)

	edges, err := edge.DetectOperator(img, op, opts)
	if err != nil {
		return fmt.Errorf("failed to detect edges in %s: %w", input, err)
	}

	if err := imaging.Save(output, edges); err != nil {
		return err
	}
	glog.Infof("Result saved to: %s", output)
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 1
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.version {
		fmt.Fprintf(stdout, "edge-detect %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	}

	if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
		fmt.Fprintf(stderr, "Error: failed to create output directory: %v\n", err)
		return 1
	}

	glog.Infof("Applying %s edge detection to %d image(s) with %d worker(s)",
		cfg.operator, len(cfg.inputs), cfg.workers)

	outputs := make([]string, len(cfg.inputs))
	errs := make([]error, len(cfg.inputs))

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i, in := range cfg.inputs {
		i, in := i, in
		outputs[i] = cfg.outputPath(in)
		g.Go(func() error {
			errs[i] = detectFile(in, outputs[i], cfg.operator, cfg.options)
			return errs[i]
		})
	}
	failed := g.Wait() != nil

	for i := range cfg.inputs {
		if errs[i] != nil {
			fmt.Fprintf(stderr, "Error: %v\n", errs[i])
			continue
		}
		fmt.Fprintf(stdout, "Result saved to: %s\n", outputs[i])
	}
	if failed {
		return 1
	}
	return 0
}
