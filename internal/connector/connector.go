// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package connector turns relation elements into edges between anchors.
package connector

import (
	"strconv"
	"strings"

	"github.com/pdiddy/uxf-mermaid/internal/geometry"
	"github.com/pdiddy/uxf-mermaid/pkg/types"
)

// minTokens is the number of coordinate tokens needed for a two-point line.
const minTokens = 4

// Options controls how relations are resolved.
type Options struct {
	// UseBoxes enables box containment before the nearest-center fallback.
	UseBoxes bool
	// RequireLabel drops relations whose text has no second line.
	RequireLabel bool
}

// Polyline decodes a relation's extras into absolute points. Tokens are
// "x;y;x;y;..." offsets from the element's box origin. Fewer than four
// tokens yields no points; a malformed or unpaired token ends the list.
func Polyline(e types.Element) []types.Point {
	var tokens []string
	for _, tok := range strings.Split(e.Extras, ";") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) < minTokens {
		return nil
	}

	pts := make([]types.Point, 0, len(tokens)/2)
	for i := 0; i+1 < len(tokens); i += 2 {
		x, err := strconv.ParseFloat(strings.TrimSpace(tokens[i]), 64)
		if err != nil {
			break
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(tokens[i+1]), 64)
		if err != nil {
			break
		}
		pts = append(pts, types.Point{X: e.Box.X + x, Y: e.Box.Y + y})
	}
	return pts
}

// Lines splits text into lines, dropping empty ones.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Extract resolves one relation into an edge. The line is drawn from the
// receiver (first point) to the sender (last point). ok is false when the
// relation has no usable geometry, an endpoint is unresolved, both ends hit
// the same anchor, or a required label is missing.
func Extract(e types.Element, anchors *geometry.Anchors, opts Options) (types.Edge, bool) {
	lines := Lines(e.Text)
	if len(lines) < 2 && opts.RequireLabel {
		return types.Edge{}, false
	}
	var label string
	if len(lines) > 1 {
		label = strings.TrimSpace(lines[1])
	}

	pts := Polyline(e)
	if len(pts) < 2 {
		return types.Edge{}, false
	}
	head, tail := pts[0], pts[len(pts)-1]

	sender, ok := anchors.Resolve(tail, opts.UseBoxes)
	if !ok {
		return types.Edge{}, false
	}
	receiver, ok := anchors.Resolve(head, opts.UseBoxes)
	if !ok || sender == "" || receiver == "" || sender == receiver {
		return types.Edge{}, false
	}
	return types.Edge{Sender: sender, Receiver: receiver, Label: label}, true
}

// ExtractAll resolves every relation element in document order, skipping
// the ones Extract rejects.
func ExtractAll(elems []types.Element, anchors *geometry.Anchors, opts Options) []types.Edge {
	var edges []types.Edge
	for _, e := range elems {
		if e.Kind != types.KindRelation {
			continue
		}
		if edge, ok := Extract(e, anchors, opts); ok {
			edges = append(edges, edge)
		}
	}
	return edges
}
