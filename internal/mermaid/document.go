// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mermaid renders parsed UMLet diagrams as Mermaid markup. A
// diagram holding any class box becomes a classDiagram; anything else is
// read as a sequence of lifelines and messages.
package mermaid

import (
	"github.com/pdiddy/uxf-mermaid/pkg/types"
)

const indent = "    "

// Options tunes rendering.
type Options struct {
	// RequireClassLabels leaves unlabeled relations out of class diagrams.
	RequireClassLabels bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{RequireClassLabels: true}
}

// DetectMode reports ModeClass when any element is a class box.
func DetectMode(elems []types.Element) types.DiagramMode {
	for _, e := range elems {
		if e.Kind == types.KindClass {
			return types.ModeClass
		}
	}
	return types.ModeSequence
}

// Diagram is a resolved diagram ready to render.
type Diagram interface {
	// Render returns the Mermaid body, without the code fence.
	Render() string
	// Edges returns the resolved connectors in document order.
	Edges() []types.Edge
}

// Build picks the diagram mode and resolves elems into a Diagram.
func Build(elems []types.Element, opts Options) (Diagram, types.DiagramMode) {
	mode := DetectMode(elems)
	if mode == types.ModeClass {
		return BuildClassDiagram(elems, opts.RequireClassLabels), mode
	}
	return BuildSequence(elems), mode
}

// Render picks the diagram mode and returns the Mermaid body, without the
// code fence.
func Render(elems []types.Element, opts Options) (string, types.DiagramMode) {
	d, mode := Build(elems, opts)
	return d.Render(), mode
}

// Fence wraps a Mermaid body in a Markdown code block.
func Fence(body string) string {
	return "```mermaid\n" + body + "\n```\n"
}

// Document renders elems as a complete Markdown document.
func Document(elems []types.Element, opts Options) (string, types.DiagramMode) {
	body, mode := Render(elems, opts)
	return Fence(body), mode
}
