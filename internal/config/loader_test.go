package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridfall/internal/board"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, board.DefaultWidth, cfg.Board.Width)
	assert.Equal(t, board.DefaultHeight, cfg.Board.Height)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"reference sizing", Config{Board: BoardParams{Width: 15, Height: 40}}, false},
		{"small field", Config{Board: BoardParams{Width: 1, Height: 1}}, false},
		{"zero width", Config{Board: BoardParams{Width: 0, Height: 40}}, true},
		{"negative height", Config{Board: BoardParams{Width: 15, Height: -1}}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 10\n  height: 22\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 22, cfg.Board.Height)
}

func TestLoadCustomPathErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unparsable file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gridfall.yaml")
		require.NoError(t, os.WriteFile(path, []byte("board: [broken"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gridfall.yaml")
		require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 0\n  height: 40\n"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestNewBoard(t *testing.T) {
	cfg := Config{Board: BoardParams{Width: 8, Height: 12}}

	b := cfg.NewBoard(nil)
	assert.Equal(t, 8, b.Width())
	assert.Equal(t, 12, b.Height())
	assert.False(t, b.HasActive())
	assert.True(t, b.IsValid())
}
