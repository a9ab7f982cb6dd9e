package board

import "github.com/vovakirdan/gridfall/internal/core"

// anyContains reports whether any piece in locked covers the cell.
func anyContains(locked []Locked, c core.Coord) bool {
	for _, lp := range locked {
		if lp.Contains(c) {
			return true
		}
	}
	return false
}

// IsOccupied reports whether the given cell is covered by a locked
// piece. The active piece never counts as occupied.
func (b Board) IsOccupied(c core.Coord) bool {
	return anyContains(b.locked, c)
}

// IsValid reports whether the board satisfies the placement
// invariants:
//
//   - every active cell has its column inside [0, width), sits on or
//     above the floor, and does not overlap a locked cell;
//   - every locked cell has its column inside [0, width), its row
//     inside [0, height], and does not overlap an active cell.
//
// The active piece is not bounded above: rows past height are legal
// spawn space for it. A board with no active piece is checked with an
// empty active cell set.
func (b Board) IsValid() bool {
	var activeCells []core.Coord
	if b.active != nil {
		activeCells = b.active.Cells()
	}
	for _, c := range activeCells {
		if c.X < 0 || c.X >= b.width || c.Y < 0 || b.IsOccupied(c) {
			return false
		}
	}
	for _, lp := range b.locked {
		for _, c := range lp.cells {
			if c.X < 0 || c.X >= b.width || c.Y < 0 || c.Y > b.height || core.ContainsCell(activeCells, c) {
				return false
			}
		}
	}
	return true
}
