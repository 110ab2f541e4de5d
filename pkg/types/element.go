// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the diagram converter.
package types

// ElementKind identifies the role of a diagram element, taken from the
// <id> field of a .uxf element.
type ElementKind string

const (
	// KindGeneric is an untyped box: a sequence participant or a note.
	KindGeneric ElementKind = "UMLGeneric"
	// KindClass is a class box with a header, a "--" divider and members.
	KindClass ElementKind = "UMLClass"
	// KindRelation is a connector between two elements.
	KindRelation ElementKind = "Relation"
)

// Point is a position in diagram coordinates. The origin is top-left and
// Y grows downward.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Box is an axis-aligned bounding box in diagram coordinates.
type Box struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 {
	return b.X + b.W/2.0
}

// Contains reports whether p lies inside the box grown by margin on every
// side. Edges are inclusive.
func (b Box) Contains(p Point, margin float64) bool {
	return b.X-margin <= p.X && p.X <= b.X+b.W+margin &&
		b.Y-margin <= p.Y && p.Y <= b.Y+b.H+margin
}

// Element is one parsed visual unit of a diagram, in document order.
type Element struct {
	// Kind is the element's role (generic box, class box, relation, or
	// anything else, which is carried but unused).
	Kind ElementKind `json:"kind" yaml:"kind"`

	// Text is the entity-decoded panel text with surrounding newlines removed.
	Text string `json:"text" yaml:"text"`

	// Box is the element's bounding box.
	Box Box `json:"box" yaml:"box"`

	// Extras is the raw additional_attributes string: semicolon separated
	// coordinates relative to Box's origin. Only relations carry it.
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// Edge is a connector resolved to two distinct anchors.
type Edge struct {
	Sender   string `json:"sender" yaml:"sender"`
	Receiver string `json:"receiver" yaml:"receiver"`
	Label    string `json:"label" yaml:"label"`
}

// ClassEntry is a class box split into its name and member list.
type ClassEntry struct {
	// Name is the last header line before the "--" divider, normalized.
	Name string `json:"name" yaml:"name"`

	// Metadata holds the header lines preceding Name (stereotypes, notes).
	Metadata []string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Body holds the lines after the divider, verbatim.
	Body []string `json:"body,omitempty" yaml:"body,omitempty"`
}
