package piece

import (
	"math/rand"

	"github.com/vovakirdan/gridfall/internal/core"
)

// Count is the number of shapes in the catalog.
const Count = 8

// catalog is the fixed shape library. Offsets and colors reproduce the
// classic eight-piece set exactly so renderers keep visual parity:
// seven four-cell pieces plus the five-cell C.
var catalog = [Count]Shape{
	New(core.ColorBlue, core.C(0, 2), core.C(0, 1), core.C(0, 0), core.C(1, 0)),                // J
	New(core.ColorRed, core.C(1, 2), core.C(1, 1), core.C(1, 0), core.C(0, 0)),                 // L
	New(core.ColorOrange, core.C(0, 3), core.C(0, 2), core.C(0, 1), core.C(0, 0)),              // I
	New(core.ColorPink, core.C(-1, 1), core.C(0, 1), core.C(1, 1), core.C(0, 0)),               // T
	New(core.ColorGreen, core.C(-1, 0), core.C(0, 0), core.C(1, 0), core.C(1, 1)),              // S
	New(core.ColorPurple, core.C(-1, 1), core.C(0, 1), core.C(0, 0), core.C(1, 0)),             // Z
	New(core.ColorYellow, core.C(0, 1), core.C(1, 1), core.C(0, 0), core.C(1, 0)),              // O
	New(core.ColorBrown, core.C(1, 2), core.C(0, 2), core.C(0, 1), core.C(0, 0), core.C(1, 0)), // C
}

// Shapes returns the full catalog.
func Shapes() []Shape {
	out := make([]Shape, Count)
	copy(out, catalog[:])
	return out
}

// Random selects a catalog shape uniformly at random. The generator is
// injected so callers control seeding and determinism; there is no
// package-level RNG state.
func Random(rng *rand.Rand) Shape {
	return catalog[rng.Intn(Count)]
}
