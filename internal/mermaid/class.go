// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mermaid

import (
	"fmt"
	"strings"

	"github.com/pdiddy/uxf-mermaid/internal/connector"
	"github.com/pdiddy/uxf-mermaid/internal/geometry"
	"github.com/pdiddy/uxf-mermaid/pkg/types"
)

const (
	// classDivider separates a class header from its members.
	classDivider = "--"
	// unnamedClass names a class box that has no header lines.
	unnamedClass = "Unnamed"
)

// ParseClass splits class box text into a ClassEntry. Header lines are
// everything before the first "--"; the last of them is the class name.
// Blank lines and further dividers are dropped.
func ParseClass(text string) types.ClassEntry {
	var header, body []string
	inBody := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		stripped := strings.TrimSpace(line)
		switch {
		case stripped == "":
		case stripped == classDivider:
			inBody = true
		case inBody:
			body = append(body, line)
		default:
			header = append(header, line)
		}
	}

	if len(header) == 0 {
		return types.ClassEntry{Name: unnamedClass, Body: body}
	}
	entry := types.ClassEntry{
		Name: NormalizeName(header[len(header)-1]),
		Body: body,
	}
	for _, meta := range header[:len(header)-1] {
		entry.Metadata = append(entry.Metadata, NormalizeName(meta))
	}
	return entry
}

// Members returns the lines rendered inside a class block: metadata as
// Mermaid comments, then the body verbatim.
func Members(c types.ClassEntry) []string {
	out := make([]string, 0, len(c.Metadata)+len(c.Body))
	for _, meta := range c.Metadata {
		out = append(out, "%% "+meta)
	}
	return append(out, c.Body...)
}

// ClassDiagram is an entity-relationship diagram: every class box in
// document order and the labeled associations between them.
type ClassDiagram struct {
	Classes   []types.ClassEntry
	Relations []types.Edge
}

// ClassAnchors builds the anchor set for class boxes. Names repeat in the
// order first seen, but a later box with the same name replaces the
// earlier one's geometry.
func ClassAnchors(elems []types.Element) ([]types.ClassEntry, *geometry.Anchors) {
	var classes []types.ClassEntry
	anchors := geometry.NewAnchors()
	for _, e := range elems {
		if e.Kind != types.KindClass {
			continue
		}
		entry := ParseClass(e.Text)
		classes = append(classes, entry)
		box := e.Box
		anchors.Set(geometry.Anchor{Name: entry.Name, CenterX: box.CenterX(), Box: &box})
	}
	return classes, anchors
}

// BuildClassDiagram resolves a diagram with class boxes into a
// ClassDiagram. When requireLabels is set, relations without a label line
// are left out.
func BuildClassDiagram(elems []types.Element, requireLabels bool) ClassDiagram {
	classes, anchors := ClassAnchors(elems)
	opts := connector.Options{UseBoxes: true, RequireLabel: requireLabels}
	return ClassDiagram{
		Classes:   classes,
		Relations: connector.ExtractAll(elems, anchors, opts),
	}
}

// Edges returns the associations.
func (d ClassDiagram) Edges() []types.Edge { return d.Relations }

// Render writes the classDiagram body, without the code fence.
func (d ClassDiagram) Render() string {
	var b strings.Builder
	b.WriteString("classDiagram")
	for _, c := range d.Classes {
		fmt.Fprintf(&b, "\n%sclass %s[\"%s\"] {", indent, ClassID(c.Name), c.Name)
		for _, m := range Members(c) {
			fmt.Fprintf(&b, "\n%s%s%s", indent, indent, m)
		}
		fmt.Fprintf(&b, "\n%s}", indent)
	}
	for _, r := range d.Relations {
		fmt.Fprintf(&b, "\n%s%s -- %s: %s", indent, ClassID(r.Sender), ClassID(r.Receiver), r.Label)
	}
	return b.String()
}
