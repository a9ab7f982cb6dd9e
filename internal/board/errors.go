package board

import "errors"

// Sentinel errors returned by transitions. Both signal a broken driver
// contract, not a recoverable gameplay state; an invalid resulting
// board is never an error (see IsValid).
var (
	// ErrNoActivePiece is returned by transitions that require a
	// falling piece when the board has none.
	ErrNoActivePiece = errors.New("board: no active piece")

	// ErrInvalidDirection is returned by Move for a direction other
	// than Left or Right.
	ErrInvalidDirection = errors.New("board: invalid move direction")
)
