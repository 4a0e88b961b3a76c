// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"golang.org/x/text/cases"

	"meshborder/internal/mesh"
	"meshborder/internal/output"
	"meshborder/internal/preview"
	"meshborder/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	// Input
	Source      string
	InputFormat string
	Script      string

	// Output
	Destination string
	Format      string

	// Preview
	Preview      string
	PreviewSize  int
	PreviewPlane string

	// Run
	Threads int
	Strict  bool
	Quiet   bool
	Verbose bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: extract the open boundary loop of triangle meshes

Version: %s

Usage of %s:
  %s [flags] [mesh-file]
  %s [flags] --script build.xml

`, name, version.Version, name, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.Source, "in", "", "source mesh file, .obj or .stl, optionally .gz ('-' = stdin) [*]")
	fs.StringVar(&opt.InputFormat, "input-format", "", "source format: obj | stl (default: from extension)")
	fs.StringVar(&opt.Script, "script", "", "XML build script with Type=\"border\" tasks [*]")

	// Output
	fs.StringVar(&opt.Destination, "out", "-", "destination file ('-' = stdout) [-]")
	fs.StringVar(&opt.Format, "format", output.FormatXML, "output format: xml | json | text [xml]")

	// Preview
	fs.StringVar(&opt.Preview, "preview", "", "also render outlines to this PNG file")
	fs.IntVar(&opt.PreviewSize, "preview-size", preview.DefaultOptions.Size, "preview canvas size in pixels [512]")
	fs.StringVar(&opt.PreviewPlane, "preview-plane", preview.PlaneXY, "preview projection plane: xy | xz | yz [xy]")

	// Run
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.BoolVar(&opt.Strict, "strict", false, "exit 4 when any mesh part fails [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log per-part details [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := splitArgs(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch {
	case len(posArgs) > 1:
		return opt, fmt.Errorf("expected at most one mesh file, got %d", len(posArgs))
	case len(posArgs) == 1 && opt.Source != "":
		return opt, errors.New("mesh file given both positionally and with --in")
	case len(posArgs) == 1:
		opt.Source = posArgs[0]
	}

	fold := cases.Fold()
	opt.Format = fold.String(opt.Format)
	opt.InputFormat = fold.String(opt.InputFormat)
	opt.PreviewPlane = fold.String(opt.PreviewPlane)

	// Validation
	switch {
	case opt.Source != "" && opt.Script != "":
		return opt, errors.New("--in conflicts with --script")
	case opt.Source == "" && opt.Script == "":
		return opt, errors.New("provide --in or --script")
	}
	if opt.Script != "" && opt.Preview != "" {
		return opt, errors.New("--preview applies to --in; set PreviewFile on script tasks instead")
	}
	if opt.Source == "-" && opt.InputFormat == "" {
		return opt, errors.New("--input-format is required when reading stdin")
	}
	if opt.InputFormat != "" && opt.InputFormat != mesh.FormatOBJ && opt.InputFormat != mesh.FormatSTL {
		return opt, fmt.Errorf("invalid --input-format %q", opt.InputFormat)
	}
	if !ValidFormat(opt.Format) {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	if !preview.ValidPlane(opt.PreviewPlane) {
		return opt, fmt.Errorf("invalid --preview-plane %q", opt.PreviewPlane)
	}
	if opt.PreviewSize < 64 {
		return opt, errors.New("--preview-size must be ≥ 64")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Quiet && opt.Verbose {
		return opt, errors.New("--quiet conflicts with --verbose")
	}
	return opt, nil
}

// ValidFormat reports whether f is a known output format (already folded).
func ValidFormat(f string) bool {
	return f == output.FormatXML || f == output.FormatJSON || f == output.FormatText
}
