// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/uxf-mermaid/internal/mermaid"
	"github.com/pdiddy/uxf-mermaid/internal/uxf"
	"github.com/pdiddy/uxf-mermaid/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.uxf>",
	Short: "Show the parsed elements and resolved edges of a diagram",
	Long: `Inspect parses one diagram and prints its elements, the diagram mode that
would be rendered, and the edges its relations resolve to. Relations missing
from the edge list were dropped: no geometry, an unresolved end, both ends on
the same box, or (class diagrams) no label.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "yaml", "output format: yaml or json")
	inspectCmd.Flags().Bool("require-class-labels", true, "drop unlabeled relations in class diagrams")

	rootCmd.AddCommand(inspectCmd)
}

// inspection is the printed view of a parsed diagram.
type inspection struct {
	File     string            `json:"file" yaml:"file"`
	Mode     types.DiagramMode `json:"mode" yaml:"mode"`
	Elements []types.Element   `json:"elements" yaml:"elements"`
	Edges    []types.Edge      `json:"edges" yaml:"edges"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	requireLabels, _ := cmd.Flags().GetBool("require-class-labels")

	elems, err := uxf.ParseFile(args[0])
	if err != nil {
		return err
	}
	d, mode := mermaid.Build(elems, mermaid.Options{RequireClassLabels: requireLabels})

	return writeInspection(cmd.OutOrStdout(), format, inspection{
		File:     args[0],
		Mode:     mode,
		Elements: elems,
		Edges:    d.Edges(),
	})
}

func writeInspection(w io.Writer, format string, in inspection) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&in); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(in)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}
