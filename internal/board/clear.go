package board

import "github.com/vovakirdan/gridfall/internal/core"

// ClearFullRows removes every fully occupied row and compacts the
// cells above each removed row down by one. The scan walks rows from
// the floor up to height and re-checks the same row after a clear,
// since compaction shifts the rows above into it; runs of consecutive
// full rows therefore all clear. The active piece is untouched.
//
// Each clear strictly reduces the number of locked cells at or above
// the current row and the row index is bounded by height, so the loop
// terminates.
func (b Board) ClearFullRows() Board {
	locked := b.locked
	for r := 0; r < b.height; {
		if !rowFull(locked, b.width, r) {
			r++
			continue
		}
		locked = dropAbove(removeRow(locked, r), r)
	}
	return Board{width: b.width, height: b.height, locked: locked, active: b.active}
}

// rowFull reports whether every column of row r is covered by a
// locked cell.
func rowFull(locked []Locked, width, r int) bool {
	for x := 0; x < width; x++ {
		if !anyContains(locked, core.C(x, r)) {
			return false
		}
	}
	return true
}

// removeRow filters the cells at row r out of every locked piece,
// dropping pieces that end up empty. Piece order is preserved.
func removeRow(locked []Locked, r int) []Locked {
	out := make([]Locked, 0, len(locked))
	for _, lp := range locked {
		cells := make([]core.Coord, 0, len(lp.cells))
		for _, c := range lp.cells {
			if c.Y != r {
				cells = append(cells, c)
			}
		}
		if len(cells) == 0 {
			continue
		}
		out = append(out, Locked{cells: cells, color: lp.color})
	}
	return out
}

// dropAbove shifts every locked cell strictly above row r down one
// row.
func dropAbove(locked []Locked, r int) []Locked {
	out := make([]Locked, len(locked))
	for i, lp := range locked {
		cells := make([]core.Coord, len(lp.cells))
		for j, c := range lp.cells {
			if c.Y > r {
				c.Y--
			}
			cells[j] = c
		}
		out[i] = Locked{cells: cells, color: lp.color}
	}
	return out
}
