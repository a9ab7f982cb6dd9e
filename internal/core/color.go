package core

// Color is an opaque tag identifying how a piece should be drawn.
// The engine never interprets it; renderers map tags to styles.
// Hex tags are kept verbatim for parity with the classic palette.
type Color string

// Catalog colors.
const (
	ColorBlue   Color = "blue"
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorPink   Color = "#E50D72"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorYellow Color = "yellow"
	ColorBrown  Color = "#634011"
)
