// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geometry decides which named anchor a point in a diagram belongs
// to. Anchors are sequence lifelines (compared by horizontal center) or
// class boxes (tested by containment, falling back to the center rule).
package geometry

import (
	"sort"

	"github.com/pdiddy/uxf-mermaid/pkg/types"
)

// Margin is how far outside a box a point may lie and still count as
// touching it.
const Margin = 5.0

// Anchor is a named position connectors can attach to.
type Anchor struct {
	Name    string
	CenterX float64
	// Box is nil for point anchors.
	Box *types.Box
}

// Anchors is an insertion-ordered set of anchors keyed by name. Setting an
// existing name replaces its value but keeps its original position, so
// iteration order is the order in which names were first seen.
type Anchors struct {
	order  []string
	byName map[string]Anchor
}

// NewAnchors returns an empty anchor set.
func NewAnchors() *Anchors {
	return &Anchors{byName: make(map[string]Anchor)}
}

// Set adds or replaces the anchor named a.Name.
func (s *Anchors) Set(a Anchor) {
	if _, ok := s.byName[a.Name]; !ok {
		s.order = append(s.order, a.Name)
	}
	s.byName[a.Name] = a
}

// Get returns the anchor with the given name.
func (s *Anchors) Get(name string) (Anchor, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Len returns the number of distinct names.
func (s *Anchors) Len() int {
	return len(s.order)
}

// All returns the anchors in insertion order.
func (s *Anchors) All() []Anchor {
	out := make([]Anchor, len(s.order))
	for i, name := range s.order {
		out[i] = s.byName[name]
	}
	return out
}

// SortedByCenter returns the anchors ordered left to right. Anchors with
// equal centers keep their insertion order.
func (s *Anchors) SortedByCenter() []Anchor {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CenterX < out[j].CenterX
	})
	return out
}

// Resolve returns the name of the anchor that p belongs to. When useBoxes
// is set, the first anchor (in insertion order) whose box, grown by Margin,
// contains p wins. Otherwise, or when no box matches, the anchor whose
// center is horizontally closest to p is returned, ties going to the
// earlier anchor. ok is false only when the set is empty.
func (s *Anchors) Resolve(p types.Point, useBoxes bool) (name string, ok bool) {
	if useBoxes {
		for _, n := range s.order {
			if b := s.byName[n].Box; b != nil && b.Contains(p, Margin) {
				return n, true
			}
		}
	}

	best := -1.0
	for _, n := range s.order {
		d := s.byName[n].CenterX - p.X
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
			name = n
			ok = true
		}
	}
	return name, ok
}
