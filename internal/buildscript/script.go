// Package buildscript reads batch build scripts in the layout the legacy
// asset builder used: one element per task, settings as attributes.
//
//	<Build>
//	    <Outline Type="border" SourceFile="ship.obj" DestinationFile="out/ship.xml" OutputFormat="xml"/>
//	    <Skin Type="texture" SourceFile="ship.png" DestinationFile="out/ship.tex"/>
//	</Build>
//
// Only border tasks are runnable here; other types are returned so the
// caller can report them.
package buildscript

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// TypeBorder is the task type this tool executes.
const TypeBorder = "border"

// Task is one build entry.
type Task struct {
	Name            string // element name, used in log lines
	Type            string // case-folded
	SourceFile      string
	DestinationFile string
	OutputFormat    string // case-folded; empty means the caller's default
	InputFormat     string // case-folded; empty means infer from extension
	PreviewFile     string
}

// IsBorder reports whether the task is a border build.
func (t Task) IsBorder() bool { return t.Type == TypeBorder }

type scriptXML struct {
	XMLName xml.Name
	Items   []itemXML `xml:",any"`
}

type itemXML struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
}

func (it itemXML) attr(name string) string {
	for _, a := range it.Attrs {
		if a.Name.Local == name {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

// Load parses a script. Border tasks must name both files.
func Load(r io.Reader) ([]Task, error) {
	var doc scriptXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("build script: %w", err)
	}
	fold := cases.Fold()

	var tasks []Task
	var errs []error
	for i, it := range doc.Items {
		t := Task{
			Name:            it.XMLName.Local,
			Type:            fold.String(it.attr("Type")),
			SourceFile:      it.attr("SourceFile"),
			DestinationFile: it.attr("DestinationFile"),
			OutputFormat:    fold.String(it.attr("OutputFormat")),
			InputFormat:     fold.String(it.attr("InputFormat")),
			PreviewFile:     it.attr("PreviewFile"),
		}
		if t.IsBorder() {
			if t.SourceFile == "" {
				errs = append(errs, fmt.Errorf("task %d (%s): missing SourceFile", i, t.Name))
			}
			if t.DestinationFile == "" {
				errs = append(errs, fmt.Errorf("task %d (%s): missing DestinationFile", i, t.Name))
			}
		}
		tasks = append(tasks, t)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return tasks, nil
}

// LoadFile parses the script at path and resolves relative file names
// against the script's directory.
func LoadFile(path string) ([]Task, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	tasks, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range tasks {
		tasks[i].SourceFile = resolve(dir, tasks[i].SourceFile)
		tasks[i].DestinationFile = resolve(dir, tasks[i].DestinationFile)
		tasks[i].PreviewFile = resolve(dir, tasks[i].PreviewFile)
	}
	return tasks, nil
}

func resolve(dir, p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
