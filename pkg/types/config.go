// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DiagramMode identifies which Mermaid document a diagram is rendered as.
type DiagramMode string

const (
	ModeSequence DiagramMode = "sequence"
	ModeClass    DiagramMode = "class"
)

// ConversionStatus indicates the outcome of converting one .uxf file.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// ConversionConfig holds settings for a batch conversion run.
type ConversionConfig struct {
	// InputDir is the directory scanned for diagrams (default "_files/uml").
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// Pattern is the glob matched against file names in InputDir (default "*.uxf").
	Pattern string `json:"pattern" yaml:"pattern"`

	// SkipExisting leaves an existing .md sibling untouched instead of
	// overwriting it.
	SkipExisting bool `json:"skip_existing" yaml:"skip_existing"`

	// Frontmatter prepends a YAML front matter block naming the source diagram.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`

	// KeepGoing continues the batch after a failed file. When false the
	// first failure aborts the run.
	KeepGoing bool `json:"keep_going" yaml:"keep_going"`

	// RequireClassLabels drops unlabeled connectors in class diagrams.
	RequireClassLabels bool `json:"require_class_labels" yaml:"require_class_labels"`

	// DryRun renders documents to the log writer without touching the disk.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}
