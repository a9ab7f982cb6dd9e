package piece

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/gridfall/internal/core"
)

func TestCatalogContents(t *testing.T) {
	shapes := Shapes()
	if len(shapes) != Count {
		t.Fatalf("expected %d catalog shapes, got %d", Count, len(shapes))
	}

	for i, s := range shapes {
		if s.Size() != 4 && s.Size() != 5 {
			t.Errorf("shape %d: unexpected size %d", i, s.Size())
		}
		if s.Color() == "" {
			t.Errorf("shape %d: empty color tag", i)
		}
	}

	// Exactly one five-cell piece, the C.
	fiveCell := 0
	for _, s := range shapes {
		if s.Size() == 5 {
			fiveCell++
			if s.Color() != core.ColorBrown {
				t.Errorf("five-cell piece has color %q, want %q", s.Color(), core.ColorBrown)
			}
		}
	}
	if fiveCell != 1 {
		t.Errorf("expected 1 five-cell piece, got %d", fiveCell)
	}

	// Colors are distinct, so a renderer can tell pieces apart.
	seen := make(map[core.Color]bool)
	for i, s := range shapes {
		if seen[s.Color()] {
			t.Errorf("shape %d: duplicate color %q", i, s.Color())
		}
		seen[s.Color()] = true
	}
}

func TestRandomDeterminism(t *testing.T) {
	// Two generators with the same seed must yield the same sequence.
	r1 := rand.New(rand.NewSource(12345))
	r2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 50; i++ {
		s1 := Random(r1)
		s2 := Random(r2)
		if !s1.Equal(s2) {
			t.Fatalf("draw %d: seeded generators diverged", i)
		}
	}
}

func TestRandomCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[core.Color]int)

	for i := 0; i < 1000; i++ {
		seen[Random(rng).Color()]++
	}

	if len(seen) != Count {
		t.Fatalf("expected all %d shapes to appear over 1000 draws, got %d", Count, len(seen))
	}
	for color, n := range seen {
		if n < 50 {
			t.Errorf("shape %q drawn only %d times in 1000; selection looks skewed", color, n)
		}
	}
}
