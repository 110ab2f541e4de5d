// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package uxf reads UMLet .uxf diagram files into a flat list of elements.
// The reader is permissive: absent or malformed fields default to empty
// text or zero coordinates, and only unparseable XML is an error.
package uxf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/pdiddy/uxf-mermaid/pkg/types"
)

// elementXML is one <element> node of a .uxf document.
type elementXML struct {
	ID              *string         `xml:"id"`
	PanelAttributes *string         `xml:"panel_attributes"`
	Additional      *string         `xml:"additional_attributes"`
	Coordinates     *coordinatesXML `xml:"coordinates"`
}

// coordinatesXML keeps the raw text of each field so malformed numbers can
// fall back to zero instead of failing the decode.
type coordinatesXML struct {
	X *string `xml:"x"`
	Y *string `xml:"y"`
	W *string `xml:"w"`
	H *string `xml:"h"`
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]types.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening diagram %s: %w", path, err)
	}
	defer f.Close()

	elems, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing diagram %s: %w", path, err)
	}
	return elems, nil
}

// Parse reads a .uxf document and returns every <element> node, at any
// depth, in document order. Elements without a <coordinates> node are
// skipped since they cannot take part in geometry resolution.
func Parse(r io.Reader) ([]types.Element, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		elems []types.Element
		depth int
		root  bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			root = true
			if t.Name.Local != "element" {
				depth++
				continue
			}
			var raw elementXML
			if err := dec.DecodeElement(&raw, &t); err != nil {
				return nil, fmt.Errorf("decoding element: %w", err)
			}
			if raw.Coordinates == nil {
				continue
			}
			elems = append(elems, toElement(raw))
		case xml.EndElement:
			depth--
		}
	}

	if !root {
		return nil, fmt.Errorf("decoding XML: no root element")
	}
	if depth != 0 {
		return nil, fmt.Errorf("decoding XML: unexpected end of document")
	}
	return elems, nil
}

func toElement(raw elementXML) types.Element {
	c := raw.Coordinates
	return types.Element{
		Kind: types.ElementKind(textOf(raw.ID)),
		Text: strings.Trim(html.UnescapeString(textOf(raw.PanelAttributes)), "\n"),
		Box: types.Box{
			X: number(c.X),
			Y: number(c.Y),
			W: number(c.W),
			H: number(c.H),
		},
		Extras: html.UnescapeString(textOf(raw.Additional)),
	}
}

func textOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// number converts a coordinate field, treating a missing or malformed
// value as zero.
func number(s *string) float64 {
	if s == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return 0
	}
	return v
}
