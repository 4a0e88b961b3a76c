// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"meshborder/internal/buildlog"
	"meshborder/internal/buildscript"
	"meshborder/internal/mesh"
	"meshborder/internal/output"
	"meshborder/internal/pipeline"
	"meshborder/internal/preview"
	"meshborder/internal/writers"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitUsage      = 2 // bad flags, unreadable or malformed input
	ExitWrite      = 3 // output could not be written
	ExitPartFailed = 4 // some mesh part failed and Strict is set
	ExitCanceled   = 130
)

// Options are the settings shared by every task of a run.
type Options struct {
	Threads       int
	Strict        bool
	DefaultFormat string
	PreviewSize   int
	PreviewPlane  string
}

// Run executes one border task: import, extract every part, write the
// document and the optional preview. Errors go to stderr; per-part
// problems are logged as warnings and only affect the exit code under Strict.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, t buildscript.Task) int {
	log := buildlog.Logger().With("task", t.Name, "source", t.SourceFile)

	format := t.OutputFormat
	if format == "" {
		format = o.DefaultFormat
	}
	if !writers.Has(format) {
		fmt.Fprintf(stderr, "error: %s: unknown output format %q\n", t.Name, format)
		return ExitUsage
	}

	model, err := mesh.Load(t.SourceFile, t.InputFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	log.Debug("mesh imported", "parts", len(model.Parts), "faces", model.FaceCount())

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	doc := output.Document{Source: t.SourceFile}
	failed := 0
	perr := pipeline.ForEachResult(ctx, pipeline.Config{Threads: thr}, model.Parts, nil, func(r pipeline.Result) error {
		switch {
		case r.Err != nil:
			failed++
			log.Warn("mesh part skipped", "part", r.Part, "err", r.Err)
		case r.Data == nil:
			log.Debug("no open boundary", "part", r.Part)
		default:
			st := r.Data.Stats
			if st.Unreached() > 0 {
				log.Debug("boundary edges outside the seed loop left out",
					"part", r.Part, "found", st.BoundaryEdges, "reported", st.ReachedEdges)
			}
			if st.DegenerateFaces > 0 {
				log.Debug("degenerate faces ignored", "part", r.Part, "count", st.DegenerateFaces)
			}
			doc.Borders = append(doc.Borders, r.Data)
		}
		return nil
	})
	if perr != nil {
		return ExitCanceled
	}

	if code := writeDocument(t.DestinationFile, format, doc, stdout, stderr); code != ExitOK {
		return code
	}
	if t.PreviewFile != "" {
		popt := preview.DefaultOptions
		popt.Size = o.PreviewSize
		popt.Plane = o.PreviewPlane
		if err := writeFile(t.PreviewFile, func(w io.Writer) error {
			return preview.Render(w, doc.Borders, popt)
		}); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitWrite
		}
	}

	log.Info("border build done", "format", format, "sections", len(doc.Borders), "parts", len(model.Parts), "failed", failed)
	if failed > 0 && o.Strict {
		return ExitPartFailed
	}
	return ExitOK
}

func writeDocument(dst, format string, doc output.Document, stdout, stderr io.Writer) int {
	if dst == "-" {
		outw := bufio.NewWriter(stdout)
		err := writers.Write(format, outw, doc)
		if err == nil {
			err = outw.Flush()
		}
		if writers.IsBrokenPipe(err) {
			return ExitOK
		} else if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitWrite
		}
		return ExitOK
	}
	if err := writeFile(dst, func(w io.Writer) error { return writers.Write(format, w, doc) }); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return ExitOK
}

// writeFile creates missing parent directories, then path, and streams
// through a buffer. A failed write removes the partial file.
func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fh)
	err = write(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
