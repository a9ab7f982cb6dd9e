// Package board implements the falling-block board engine: a
// persistent value model of locked pieces plus one active piece, with
// pure transition operations. Every transition returns a new Board and
// never mutates its receiver, so callers may keep any number of prior
// snapshots and inspect them safely. Transitions do not check bounds
// or collisions themselves; the driver validates each result with
// IsValid and decides whether to accept it, reject it, or treat it as
// a landing. This package is UI-agnostic and deterministic.
package board

import (
	"github.com/vovakirdan/gridfall/internal/core"
	"github.com/vovakirdan/gridfall/internal/piece"
)

// Default board dimensions, in cells. Rows grow upward from the floor
// at row 0. The active piece may sit above row Height (spawn space
// over the visible top); locked cells may not.
const (
	DefaultWidth  = 15
	DefaultHeight = 40
)

// Locked is a piece that has been fixed into the board. Its cells are
// absolute board coordinates.
type Locked struct {
	cells []core.Coord
	color core.Color
}

// NewLocked creates a locked piece from absolute cells and a color.
// The cells are copied.
func NewLocked(color core.Color, cells ...core.Coord) Locked {
	cp := make([]core.Coord, len(cells))
	copy(cp, cells)
	return Locked{cells: cp, color: color}
}

// Cells returns a copy of the piece's absolute cells.
func (l Locked) Cells() []core.Coord {
	cp := make([]core.Coord, len(l.cells))
	copy(cp, l.cells)
	return cp
}

// Color returns the piece's color tag.
func (l Locked) Color() core.Color {
	return l.color
}

// Contains reports whether the piece covers the given cell.
func (l Locked) Contains(c core.Coord) bool {
	return core.ContainsCell(l.cells, c)
}

// Equal reports whether two locked pieces cover the same cell set with
// the same color.
func (l Locked) Equal(other Locked) bool {
	return l.color == other.color && core.SameCellSet(l.cells, other.cells)
}

// Active is the currently falling piece: a shape anchored at a board
// position. The shape's offsets are relative to (X, Y).
type Active struct {
	X     int
	Y     int
	Shape piece.Shape
}

// NewActive anchors a shape at the given board position.
func NewActive(x, y int, shape piece.Shape) Active {
	return Active{X: x, Y: y, Shape: shape}
}

// Cells returns the absolute board cells occupied by the piece.
func (a Active) Cells() []core.Coord {
	cells := a.Shape.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(a.X, a.Y)
	}
	return cells
}

// Equal reports whether two active pieces have the same anchor and
// equal shapes.
func (a Active) Equal(other Active) bool {
	return a.X == other.X && a.Y == other.Y && a.Shape.Equal(other.Shape)
}

// Board aggregates the locked pieces and the optional active piece of
// one playing field. Boards are immutable values: construct one with
// New and derive new states through the transition methods.
type Board struct {
	width  int
	height int
	locked []Locked
	active *Active
}

// New constructs a board with the given dimensions, locked pieces and
// active piece. Pass a nil active when no piece is falling, e.g. right
// after a lock and before the next spawn. Arguments are copied; the
// caller keeps no aliases into the board.
func New(width, height int, locked []Locked, active *Active) Board {
	lp := make([]Locked, len(locked))
	copy(lp, locked)
	b := Board{width: width, height: height, locked: lp}
	if active != nil {
		a := *active
		b.active = &a
	}
	return b
}

// NewStandard constructs an empty board with the reference sizing and
// the given active piece.
func NewStandard(active *Active) Board {
	return New(DefaultWidth, DefaultHeight, nil, active)
}

// Width returns the number of columns.
func (b Board) Width() int {
	return b.width
}

// Height returns the number of visible rows.
func (b Board) Height() int {
	return b.height
}

// HasActive reports whether a piece is currently falling.
func (b Board) HasActive() bool {
	return b.active != nil
}

// ActivePiece returns the falling piece, if any.
func (b Board) ActivePiece() (Active, bool) {
	if b.active == nil {
		return Active{}, false
	}
	return *b.active, true
}

// LockedPieces returns a copy of the locked-piece sequence. Order is
// irrelevant to gameplay but stable across transitions.
func (b Board) LockedPieces() []Locked {
	cp := make([]Locked, len(b.locked))
	copy(cp, b.locked)
	return cp
}

// Equal reports whether two boards are structurally equal: same
// dimensions, equal active pieces (both absent counts as equal), and
// the same locked pieces in the same sequence order. Every transition
// keeps the locked order stable, so positional comparison is exact.
func (b Board) Equal(other Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	if (b.active == nil) != (other.active == nil) {
		return false
	}
	if b.active != nil && !b.active.Equal(*other.active) {
		return false
	}
	if len(b.locked) != len(other.locked) {
		return false
	}
	for i := range b.locked {
		if !b.locked[i].Equal(other.locked[i]) {
			return false
		}
	}
	return true
}
