package board

import (
	"strings"

	"github.com/vovakirdan/gridfall/internal/core"
)

// PieceSnapshot describes one piece as plain value data: its absolute
// board cells and color tag.
type PieceSnapshot struct {
	Cells []core.Coord
	Color core.Color
}

// Snapshot captures the complete board state for renderers, replay and
// determinism tests. All fields are copies; mutating a snapshot never
// affects the board it came from.
type Snapshot struct {
	Width  int
	Height int
	Locked []PieceSnapshot
	Active *PieceSnapshot // nil when no piece is falling
}

// Snapshot returns the current board state as plain value data.
func (b Board) Snapshot() Snapshot {
	snap := Snapshot{
		Width:  b.width,
		Height: b.height,
		Locked: make([]PieceSnapshot, len(b.locked)),
	}
	for i, lp := range b.locked {
		snap.Locked[i] = PieceSnapshot{Cells: lp.Cells(), Color: lp.color}
	}
	if b.active != nil {
		snap.Active = &PieceSnapshot{
			Cells: b.active.Cells(),
			Color: b.active.Shape.Color(),
		}
	}
	return snap
}

// DebugString renders the visible grid as ASCII, top row first:
// locked cells as '#', active cells as '*', empty cells as '.'.
// Active cells above the visible top are omitted.
func (b Board) DebugString() string {
	var activeCells []core.Coord
	if b.active != nil {
		activeCells = b.active.Cells()
	}
	var sb strings.Builder
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			c := core.C(x, y)
			switch {
			case b.IsOccupied(c):
				sb.WriteByte('#')
			case core.ContainsCell(activeCells, c):
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
