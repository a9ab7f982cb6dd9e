package board

import "fmt"

// Direction selects which way Move shifts the active piece.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// withActive returns a copy of the board holding the given active
// piece. The locked slice is shared: it is never mutated, so all
// derived boards can alias it safely.
func (b Board) withActive(a Active) Board {
	return Board{width: b.width, height: b.height, locked: b.locked, active: &a}
}

// Drop returns a board with the active piece moved down one row,
// toward the floor. The result may be invalid; a drop that fails
// IsValid is how the driver detects a landing.
func (b Board) Drop() (Board, error) {
	if b.active == nil {
		return Board{}, ErrNoActivePiece
	}
	return b.withActive(Active{X: b.active.X, Y: b.active.Y - 1, Shape: b.active.Shape}), nil
}

// Move returns a board with the active piece shifted one column left
// or right. Any other direction is a contract violation, never a
// silent no-op.
func (b Board) Move(dir Direction) (Board, error) {
	if b.active == nil {
		return Board{}, ErrNoActivePiece
	}
	switch dir {
	case Left:
		return b.withActive(Active{X: b.active.X - 1, Y: b.active.Y, Shape: b.active.Shape}), nil
	case Right:
		return b.withActive(Active{X: b.active.X + 1, Y: b.active.Y, Shape: b.active.Shape}), nil
	default:
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
}

// Rotate returns a board with the active shape rotated 90 degrees
// clockwise about its anchor. The anchor and color are unchanged and
// no bounds are checked; the caller validates the result.
func (b Board) Rotate() (Board, error) {
	if b.active == nil {
		return Board{}, ErrNoActivePiece
	}
	return b.withActive(Active{X: b.active.X, Y: b.active.Y, Shape: b.active.Shape.Rotated()}), nil
}

// ToLocked materializes the active piece at its absolute board
// coordinates without modifying the board.
func (b Board) ToLocked() (Locked, error) {
	if b.active == nil {
		return Locked{}, ErrNoActivePiece
	}
	return Locked{cells: b.active.Cells(), color: b.active.Shape.Color()}, nil
}

// Lock appends the materialized active piece to the locked sequence
// and returns a board with no active piece. The driver is expected to
// run ClearFullRows afterward and then spawn the next piece.
func (b Board) Lock() (Board, error) {
	lp, err := b.ToLocked()
	if err != nil {
		return Board{}, err
	}
	locked := make([]Locked, len(b.locked)+1)
	copy(locked, b.locked)
	locked[len(b.locked)] = lp
	return Board{width: b.width, height: b.height, locked: locked}, nil
}
