// Package piece defines the catalog of falling-block shapes.
// Shapes are immutable values; rotation produces a new shape.
// This package is UI-agnostic and deterministic.
package piece

import (
	"github.com/vovakirdan/gridfall/internal/core"
)

// Shape is a set of cell offsets relative to an anchor point, plus a
// color tag. Offset order carries no meaning: two shapes are equal iff
// their offset sets and colors match.
type Shape struct {
	cells []core.Coord
	color core.Color
}

// New creates a shape from the given offsets and color. The offsets
// are copied so the shape cannot be mutated through the argument.
func New(color core.Color, cells ...core.Coord) Shape {
	cp := make([]core.Coord, len(cells))
	copy(cp, cells)
	return Shape{cells: cp, color: color}
}

// Cells returns a copy of the shape's relative offsets.
func (s Shape) Cells() []core.Coord {
	cp := make([]core.Coord, len(s.cells))
	copy(cp, s.cells)
	return cp
}

// Color returns the shape's color tag.
func (s Shape) Color() core.Color {
	return s.color
}

// Size returns the number of cells in the shape.
func (s Shape) Size() int {
	return len(s.cells)
}

// Rotated returns the shape rotated 90 degrees clockwise about its
// anchor: every offset (dx, dy) maps to (dy, -dx).
func (s Shape) Rotated() Shape {
	cells := make([]core.Coord, len(s.cells))
	for i, c := range s.cells {
		cells[i] = core.C(c.Y, -c.X)
	}
	return Shape{cells: cells, color: s.color}
}

// Equal reports whether two shapes have the same offset set and color.
func (s Shape) Equal(other Shape) bool {
	return s.color == other.color && core.SameCellSet(s.cells, other.cells)
}
