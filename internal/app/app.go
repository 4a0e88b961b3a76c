// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"meshborder/internal/appcore"
	"meshborder/internal/buildlog"
	"meshborder/internal/buildscript"
	"meshborder/internal/cli"
	"meshborder/internal/version"
	"meshborder/internal/writers"
)

// usage prints help to stdout and maps flush failures to exit codes.
func usage(fs *flag.FlagSet, stdout, stderr io.Writer, code int) int {
	outw := bufio.NewWriter(stdout)
	fs.SetOutput(outw)
	fs.Usage()
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return appcore.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitWrite
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("meshborder")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		return usage(fs, stdout, stderr, appcore.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(fs, stdout, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usage(fs, stdout, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		if _, err := fmt.Fprintf(stdout, "meshborder version %s\n", version.Version); writers.IsBrokenPipe(err) {
			return appcore.ExitOK
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return appcore.ExitWrite
		}
		return appcore.ExitOK
	}

	buildlog.SetLogger(buildlog.New(stderr, opts.Quiet, opts.Verbose))
	log := buildlog.Logger()

	var tasks []buildscript.Task
	if opts.Script != "" {
		tasks, err = buildscript.LoadFile(opts.Script)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return appcore.ExitUsage
		}
	} else {
		tasks = []buildscript.Task{{
			Name:            "border",
			Type:            buildscript.TypeBorder,
			SourceFile:      opts.Source,
			DestinationFile: opts.Destination,
			InputFormat:     opts.InputFormat,
			PreviewFile:     opts.Preview,
		}}
	}

	coreOpts := appcore.Options{
		Threads:       opts.Threads,
		Strict:        opts.Strict,
		DefaultFormat: opts.Format,
		PreviewSize:   opts.PreviewSize,
		PreviewPlane:  opts.PreviewPlane,
	}

	code := appcore.ExitOK
	for _, t := range tasks {
		if !t.IsBorder() {
			log.Warn("skipping task of unsupported type", "task", t.Name, "type", t.Type)
			continue
		}
		c := appcore.Run(parent, stdout, stderr, coreOpts, t)
		if c == appcore.ExitCanceled {
			return c
		}
		// keep building the remaining tasks; report the worst outcome
		if c > code {
			code = c
		}
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
