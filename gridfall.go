// Package gridfall is the public surface of the falling-block board
// engine: a pure, immutable value model of a rectangular playing field
// with locked pieces and one falling piece.
//
// The engine contains no input handling, rendering, timing or scoring.
// A driver owns the game loop: it applies a transition, checks the new
// board with IsValid, and either accepts it, discards it, or treats a
// failed drop as a landing (Lock, then ClearFullRows, then spawn the
// next piece with RandomShape). Boards are never mutated, so drivers
// may keep and inspect any number of prior states.
package gridfall

import (
	"math/rand"

	"github.com/vovakirdan/gridfall/internal/board"
	"github.com/vovakirdan/gridfall/internal/config"
	"github.com/vovakirdan/gridfall/internal/core"
	"github.com/vovakirdan/gridfall/internal/piece"
)

// Core value types.
type (
	// Coord is a cell position: X grows rightward, Y grows upward,
	// row 0 is the floor.
	Coord = core.Coord
	// Color is an opaque piece tag for renderers.
	Color = core.Color
	// Shape is a catalog piece: relative cell offsets plus a color.
	Shape = piece.Shape
	// Board is the aggregate playing-field state.
	Board = board.Board
	// Active is the currently falling piece.
	Active = board.Active
	// Locked is a piece fixed into the board.
	Locked = board.Locked
	// Direction selects which way Move shifts the falling piece.
	Direction = board.Direction
	// Snapshot is a board state exported as plain value data.
	Snapshot = board.Snapshot
	// Config carries the engine construction parameters.
	Config = config.Config
)

// Move directions.
const (
	Left  = board.Left
	Right = board.Right
)

// Reference board sizing.
const (
	DefaultWidth  = board.DefaultWidth
	DefaultHeight = board.DefaultHeight
)

// Transition contract errors.
var (
	ErrNoActivePiece    = board.ErrNoActivePiece
	ErrInvalidDirection = board.ErrInvalidDirection
)

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return core.C(x, y)
}

// NewShape creates a shape from relative offsets and a color.
func NewShape(color Color, cells ...Coord) Shape {
	return piece.New(color, cells...)
}

// NewActive anchors a shape at a board position.
func NewActive(x, y int, shape Shape) Active {
	return board.NewActive(x, y, shape)
}

// NewLocked creates a locked piece from absolute cells and a color.
func NewLocked(color Color, cells ...Coord) Locked {
	return board.NewLocked(color, cells...)
}

// NewBoard constructs a board with the given dimensions, locked pieces
// and falling piece. Pass a nil active when no piece is falling.
func NewBoard(width, height int, locked []Locked, active *Active) Board {
	return board.New(width, height, locked, active)
}

// NewStandardBoard constructs an empty board with the reference sizing
// and the given falling piece.
func NewStandardBoard(active *Active) Board {
	return board.NewStandard(active)
}

// Shapes returns the fixed eight-piece catalog.
func Shapes() []Shape {
	return piece.Shapes()
}

// RandomShape selects a catalog shape uniformly at random using the
// injected generator.
func RandomShape(rng *rand.Rand) Shape {
	return piece.Random(rng)
}

// DefaultConfig returns the reference engine configuration.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig loads the engine configuration from customPath, the user
// or local config directories, or the embedded default.
func LoadConfig(customPath string) (Config, error) {
	return config.Load(customPath)
}
