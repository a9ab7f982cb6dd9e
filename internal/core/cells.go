package core

// ContainsCell reports whether c appears in cells.
func ContainsCell(cells []Coord, c Coord) bool {
	for _, cc := range cells {
		if cc == c {
			return true
		}
	}
	return false
}

// SameCellSet reports whether a and b cover the same cells, ignoring
// order. Cells within each slice are assumed distinct, which holds for
// every catalog shape and everything derived from one.
func SameCellSet(a, b []Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for _, c := range a {
		if !ContainsCell(b, c) {
			return false
		}
	}
	return true
}
