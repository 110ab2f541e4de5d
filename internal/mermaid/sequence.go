// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mermaid

import (
	"fmt"
	"strings"

	"github.com/pdiddy/uxf-mermaid/internal/connector"
	"github.com/pdiddy/uxf-mermaid/internal/geometry"
	"github.com/pdiddy/uxf-mermaid/pkg/types"
)

// Participants collects the generic boxes that act as lifelines. Boxes
// whose normalized text is empty or contains "=" are notes, not
// participants. When a name repeats, the topmost box gives its position.
func Participants(elems []types.Element) *geometry.Anchors {
	anchors := geometry.NewAnchors()
	tops := make(map[string]float64)
	for _, e := range elems {
		if e.Kind != types.KindGeneric {
			continue
		}
		name := NormalizeName(e.Text)
		if name == "" || strings.Contains(name, "=") {
			continue
		}
		if top, seen := tops[name]; seen && e.Box.Y >= top {
			continue
		}
		tops[name] = e.Box.Y
		anchors.Set(geometry.Anchor{Name: name, CenterX: e.Box.CenterX()})
	}
	return anchors
}

// Sequence is a message-flow diagram: lifelines ordered left to right and
// the messages between them in document order.
type Sequence struct {
	Participants []geometry.Anchor
	Messages     []types.Edge
}

// BuildSequence resolves a diagram without class boxes into a Sequence.
func BuildSequence(elems []types.Element) Sequence {
	anchors := Participants(elems)
	return Sequence{
		Participants: anchors.SortedByCenter(),
		Messages:     connector.ExtractAll(elems, anchors, connector.Options{}),
	}
}

// Edges returns the messages.
func (s Sequence) Edges() []types.Edge { return s.Messages }

// Render writes the sequenceDiagram body, without the code fence.
func (s Sequence) Render() string {
	var b strings.Builder
	b.WriteString("sequenceDiagram")
	for _, p := range s.Participants {
		fmt.Fprintf(&b, "\n%sparticipant %s as %s", indent, ParticipantID(p.Name), p.Name)
	}
	for _, m := range s.Messages {
		// UMLet uses "\" for forced line breaks, which Mermaid messages lack.
		label := strings.ReplaceAll(m.Label, `\`, " ")
		fmt.Fprintf(&b, "\n%s%s->>%s: %s", indent, ParticipantID(m.Sender), ParticipantID(m.Receiver), label)
	}
	return b.String()
}
