// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs batch conversion of UMLet diagrams to Mermaid
// Markdown: it finds .uxf files in a directory, converts each one, and
// writes a sibling .md file.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/uxf-mermaid/pkg/types"
)

const (
	// DefaultInputDir is where diagrams live when no directory is given.
	DefaultInputDir = "_files/uml"
	// DefaultPattern matches UMLet diagram files.
	DefaultPattern = "*.uxf"

	markdownExt = ".md"
)

// Document is the result of converting one diagram.
type Document struct {
	Markdown string
	Mode     types.DiagramMode
	Elements int
	Edges    int
}

// Converter transforms a diagram file into a Markdown document.
type Converter interface {
	// Convert reads the diagram at path and returns the rendered document.
	Convert(path string) (Document, error)
}

// FileResult records the outcome for one input file.
type FileResult struct {
	Source string                 `json:"source" yaml:"source"`
	Output string                 `json:"output,omitempty" yaml:"output,omitempty"`
	Status types.ConversionStatus `json:"status" yaml:"status"`
	Mode   types.DiagramMode      `json:"mode,omitempty" yaml:"mode,omitempty"`
	Edges  int                    `json:"edges" yaml:"edges"`
	Error  string                 `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int          `json:"converted" yaml:"converted"`
	Skipped   int          `json:"skipped" yaml:"skipped"`
	Failed    int          `json:"failed" yaml:"failed"`
	Files     []FileResult `json:"files" yaml:"files"`
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

func (r *BatchResult) add(f FileResult) {
	switch f.Status {
	case types.ConversionDone:
		r.Converted++
	case types.ConversionNone:
		r.Skipped++
	case types.ConversionFailed:
		r.Failed++
	}
	r.Files = append(r.Files, f)
}

// Runner converts files with a Converter according to a ConversionConfig.
// Dry runs print documents to out instead of writing them.
type Runner struct {
	conv   Converter
	cfg    types.ConversionConfig
	logger *log.Logger
	out    io.Writer
}

// NewRunner returns a Runner. A nil logger discards log output.
func NewRunner(c Converter, cfg types.ConversionConfig, logger *log.Logger, out io.Writer) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if out == nil {
		out = io.Discard
	}
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	return &Runner{conv: c, cfg: cfg, logger: logger, out: out}
}

// OutputPath returns the Markdown sibling of a diagram path.
func OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + markdownExt
}

// Discover lists the regular files in dir whose names match pattern, sorted
// by name. Subdirectories are not searched.
func Discover(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading diagram directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("matching pattern %q: %w", pattern, err)
		}
		if ok {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ConvertFile converts a single diagram and writes its Markdown sibling,
// overwriting any existing file unless SkipExisting is set.
func (r *Runner) ConvertFile(path string) (FileResult, error) {
	res := FileResult{Source: path, Output: OutputPath(path)}
	name := filepath.Base(path)

	if r.cfg.SkipExisting && !r.cfg.DryRun {
		if _, err := os.Stat(res.Output); err == nil {
			r.logger.Info("skipped", "file", name, "reason", "output exists")
			res.Status = types.ConversionNone
			return res, nil
		}
	}

	doc, err := r.conv.Convert(path)
	if err != nil {
		return r.fail(res, err)
	}
	res.Mode = doc.Mode
	res.Edges = doc.Edges
	r.logger.Debug("rendered", "file", name, "mode", doc.Mode, "elements", doc.Elements, "edges", doc.Edges)

	content := doc.Markdown
	if r.cfg.Frontmatter {
		content, err = addFrontmatter(name, doc, content)
		if err != nil {
			return r.fail(res, err)
		}
	}

	if r.cfg.DryRun {
		fmt.Fprintf(r.out, "<!-- %s -->\n%s", res.Output, content)
	} else if err := os.WriteFile(res.Output, []byte(content), 0o644); err != nil {
		return r.fail(res, fmt.Errorf("writing %s: %w", res.Output, err))
	}

	r.logger.Info("converted", "file", name, "mode", doc.Mode)
	res.Status = types.ConversionDone
	return res, nil
}

func (r *Runner) fail(res FileResult, err error) (FileResult, error) {
	r.logger.Error("failed", "file", filepath.Base(res.Source), "err", err)
	res.Status = types.ConversionFailed
	res.Error = err.Error()
	return res, err
}

// ConvertPaths converts each path in order. The first failure stops the
// batch and is returned unless KeepGoing is set, in which case failures are
// only counted.
func (r *Runner) ConvertPaths(paths []string) (BatchResult, error) {
	var result BatchResult
	for _, p := range paths {
		f, err := r.ConvertFile(p)
		result.add(f)
		if err != nil && !r.cfg.KeepGoing {
			return result, err
		}
	}
	r.logger.Info("batch summary",
		"converted", result.Converted,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"total", result.Total())
	return result, nil
}

// ConvertDir converts every diagram in dir matching the configured pattern.
func (r *Runner) ConvertDir(dir string) (BatchResult, error) {
	paths, err := Discover(dir, r.cfg.Pattern)
	if err != nil {
		return BatchResult{}, err
	}
	if len(paths) == 0 {
		r.logger.Warn("no diagrams found", "dir", dir, "pattern", r.cfg.Pattern)
	}
	return r.ConvertPaths(paths)
}

// frontmatter is the YAML header written above a converted diagram.
type frontmatter struct {
	Source      string            `yaml:"source"`
	Diagram     types.DiagramMode `yaml:"diagram"`
	ConvertedAt string            `yaml:"converted_at"`
}

// addFrontmatter prepends YAML front matter to the converted Markdown.
func addFrontmatter(source string, doc Document, body string) (string, error) {
	fm := frontmatter{
		Source:      source,
		Diagram:     doc.Mode,
		ConvertedAt: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := yaml.Marshal(&fm)
	if err != nil {
		return "", fmt.Errorf("marshaling front matter: %w", err)
	}
	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}
