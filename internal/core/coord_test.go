package core

import "testing"

func TestCoordAdd(t *testing.T) {
	testCases := []struct {
		name     string
		start    Coord
		dx, dy   int
		expected Coord
	}{
		{"origin", C(0, 0), 3, 4, C(3, 4)},
		{"negative offset", C(5, 5), -2, -7, C(3, -2)},
		{"zero offset", C(2, 9), 0, 0, C(2, 9)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.start.Add(tc.dx, tc.dy)
			if !got.Equal(tc.expected) {
				t.Errorf("%v.Add(%d, %d) = %v, want %v", tc.start, tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}

func TestCoordString(t *testing.T) {
	if got := C(7, -1).String(); got != "(7,-1)" {
		t.Errorf("String() = %q, want %q", got, "(7,-1)")
	}
}

func TestContainsCell(t *testing.T) {
	cells := []Coord{C(0, 0), C(1, 2), C(-1, 3)}

	if !ContainsCell(cells, C(1, 2)) {
		t.Error("expected (1,2) to be found")
	}
	if ContainsCell(cells, C(2, 1)) {
		t.Error("did not expect (2,1) to be found")
	}
	if ContainsCell(nil, C(0, 0)) {
		t.Error("empty set should contain nothing")
	}
}

func TestSameCellSet(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     []Coord
		expected bool
	}{
		{"identical", []Coord{C(0, 0), C(1, 0)}, []Coord{C(0, 0), C(1, 0)}, true},
		{"reordered", []Coord{C(0, 0), C(1, 0)}, []Coord{C(1, 0), C(0, 0)}, true},
		{"different cell", []Coord{C(0, 0), C(1, 0)}, []Coord{C(0, 0), C(0, 1)}, false},
		{"different length", []Coord{C(0, 0)}, []Coord{C(0, 0), C(1, 0)}, false},
		{"both empty", nil, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameCellSet(tc.a, tc.b); got != tc.expected {
				t.Errorf("SameCellSet(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}
