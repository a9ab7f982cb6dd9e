// Package config provides YAML-based configuration loading for the
// gridfall engine.
package config

import (
	"fmt"

	"github.com/vovakirdan/gridfall/internal/board"
)

// Config contains the engine construction parameters.
type Config struct {
	Board BoardParams `yaml:"board"`
}

// BoardParams sets the playing-field dimensions.
type BoardParams struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the reference board sizing.
func Default() Config {
	return Config{
		Board: BoardParams{
			Width:  board.DefaultWidth,
			Height: board.DefaultHeight,
		},
	}
}

// Validate checks that the parameters describe a usable field.
func (c Config) Validate() error {
	if c.Board.Width <= 0 {
		return fmt.Errorf("board width must be positive, got %d", c.Board.Width)
	}
	if c.Board.Height <= 0 {
		return fmt.Errorf("board height must be positive, got %d", c.Board.Height)
	}
	return nil
}

// NewBoard constructs an empty board sized per the configuration, with
// the given active piece.
func (c Config) NewBoard(active *board.Active) board.Board {
	return board.New(c.Board.Width, c.Board.Height, nil, active)
}
