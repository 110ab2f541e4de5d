// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"github.com/pdiddy/uxf-mermaid/internal/mermaid"
	"github.com/pdiddy/uxf-mermaid/internal/uxf"
)

// MermaidConverter converts .uxf diagrams into Markdown documents holding a
// fenced Mermaid block.
type MermaidConverter struct {
	opts mermaid.Options
}

// NewMermaidConverter creates a converter using the given render options.
func NewMermaidConverter(opts mermaid.Options) *MermaidConverter {
	return &MermaidConverter{opts: opts}
}

// Convert parses the diagram at path and renders it. Malformed XML is
// returned as an error; everything else renders, possibly with fewer
// edges than the diagram draws.
func (m *MermaidConverter) Convert(path string) (Document, error) {
	elems, err := uxf.ParseFile(path)
	if err != nil {
		return Document{}, err
	}

	d, mode := mermaid.Build(elems, m.opts)
	return Document{
		Markdown: mermaid.Fence(d.Render()),
		Mode:     mode,
		Elements: len(elems),
		Edges:    len(d.Edges()),
	}, nil
}
