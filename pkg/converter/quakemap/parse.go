// Package quakemap parses id-Software-style .map brush geometry.
//
// The parser is deliberately tolerant: any line it does not understand
// is dropped and scanning continues. Malformed input degrades the
// result (fewer planes or brushes), it never fails the parse.
package quakemap

import (
	"strconv"
	"strings"

	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/pkg/converter"
)

// lineOutcome classifies what the scanner did with one input line.
type lineOutcome int

const (
	lineSkipped lineOutcome = iota
	lineOpenedEntity
	lineOpenedBrush
	lineClosedBrush
	lineClosedEntity
	lineMatchedPlane
)

// scanner holds the two pieces of parser state: whether the cursor is
// inside a top-level entity block, and the planes accumulated for the
// brush currently being read.
type scanner struct {
	inEntityBlock bool
	planes        []converter.Plane
	brushes       []converter.Brush
}

// Parse extracts brush geometry from raw .map text. Brushes appear in
// file order; plane order within a brush is preserved.
func Parse(text string) []converter.Brush {
	s := &scanner{}
	for _, line := range strings.Split(text, "\n") {
		s.scanLine(strings.TrimSpace(line))
	}
	return s.finish()
}

func (s *scanner) scanLine(line string) lineOutcome {
	if line == "" || strings.HasPrefix(line, "//") {
		return lineSkipped
	}

	switch line {
	case "{":
		// Only one nesting level below "inside an entity" is tracked:
		// a brace outside an entity opens the entity, a brace inside
		// it opens a brush.
		s.planes = nil
		if !s.inEntityBlock {
			s.inEntityBlock = true
			return lineOpenedEntity
		}
		return lineOpenedBrush
	case "}":
		// A closing brace ends a brush when planes accumulated,
		// otherwise it ends the surrounding entity. Key/value entities
		// never populate the accumulator, so the two cases cannot be
		// confused for this grammar.
		if len(s.planes) > 0 {
			s.brushes = append(s.brushes, converter.Brush{Planes: s.planes})
			s.planes = nil
			return lineClosedBrush
		}
		if s.inEntityBlock {
			s.inEntityBlock = false
			return lineClosedEntity
		}
		return lineSkipped
	}

	if !s.inEntityBlock {
		return lineSkipped
	}

	plane, ok := parsePlane(line)
	if !ok {
		// Entity properties and UV/lightmap continuation data end up here.
		return lineSkipped
	}
	s.planes = append(s.planes, plane)
	return lineMatchedPlane
}

// finish flushes a brush left open by a truncated file.
func (s *scanner) finish() []converter.Brush {
	if len(s.planes) > 0 {
		s.brushes = append(s.brushes, converter.Brush{Planes: s.planes})
		s.planes = nil
	}
	return s.brushes
}

// parsePlane matches a three-point plane record:
//
//	( x1 y1 z1 ) ( x2 y2 z2 ) ( x3 y3 z3 ) TEXTURE [ ux uy uz ox ] [ vx vy vz oy ] rot sx sy
//
// Only the three point triples and the texture token are consumed; the
// trailing UV axis, rotation and scale tokens are ignored. The texture
// name is lowercased.
func parsePlane(line string) (converter.Plane, bool) {
	var plane converter.Plane

	rest := line
	for i := range plane.Points {
		point, tail, ok := parsePointTriple(rest)
		if !ok {
			return converter.Plane{}, false
		}
		plane.Points[i] = point
		rest = tail
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return converter.Plane{}, false
	}
	plane.Texture = strings.ToLower(fields[0])

	return plane, true
}

// parsePointTriple consumes one "( x y z )" group from the front of s
// and returns the remainder of the line.
func parsePointTriple(s string) (converter.Point, string, bool) {
	s = strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(s, "(") {
		return converter.Point{}, "", false
	}

	end := strings.IndexByte(s, ')')
	if end < 0 {
		return converter.Point{}, "", false
	}

	fields := strings.Fields(s[1:end])
	if len(fields) != 3 {
		return converter.Point{}, "", false
	}

	var coords [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return converter.Point{}, "", false
		}
		coords[i] = value
	}

	return converter.Point{X: coords[0], Y: coords[1], Z: coords[2]}, s[end+1:], true
}
