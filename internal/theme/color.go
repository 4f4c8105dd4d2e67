package theme

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type colorKind uint8

const (
	kindReset colorKind = iota
	kindANSI
	kindRGB
)

// Color is a terminal color: an RGB triple, one of the basic ANSI colors, or
// Reset. The zero value is Reset.
type Color struct {
	kind    colorKind
	name    string
	ansi    uint8
	r, g, b uint8
}

// Reset leaves the cell at the terminal's default color.
var Reset = Color{}

// Basic ANSI colors. The terminal palette decides what they look like.
var (
	Black      = ansiColor("Black", 0)
	Red        = ansiColor("Red", 1)
	Green      = ansiColor("Green", 2)
	Yellow     = ansiColor("Yellow", 3)
	Blue       = ansiColor("Blue", 4)
	Gray       = ansiColor("Gray", 7)
	LightGreen = ansiColor("LightGreen", 10)
	LightBlue  = ansiColor("LightBlue", 12)
)

func ansiColor(name string, code uint8) Color {
	return Color{kind: kindANSI, name: name, ansi: code}
}

// RGB builds a true-color value.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// IsReset reports whether c is the terminal default sentinel.
func (c Color) IsReset() bool {
	return c.kind == kindReset
}

// RGB returns the channels of a true-color value. ok is false for ANSI colors and Reset.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	if c.kind != kindRGB {
		return 0, 0, 0, false
	}
	return c.r, c.g, c.b, true
}

// ANSI returns the palette index of a basic color. ok is false otherwise.
func (c Color) ANSI() (code uint8, ok bool) {
	if c.kind != kindANSI {
		return 0, false
	}
	return c.ansi, true
}

// Hex returns "#rrggbb" for true-color values and "" otherwise.
func (c Color) Hex() string {
	if c.kind != kindRGB {
		return ""
	}
	return colorful.Color{
		R: float64(c.r) / 255,
		G: float64(c.g) / 255,
		B: float64(c.b) / 255,
	}.Hex()
}

func (c Color) String() string {
	switch c.kind {
	case kindANSI:
		return c.name
	case kindRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	default:
		return "Reset"
	}
}

// Lipgloss converts c for use in lipgloss styles.
func (c Color) Lipgloss() lipgloss.TerminalColor {
	switch c.kind {
	case kindANSI:
		return lipgloss.Color(strconv.Itoa(int(c.ansi)))
	case kindRGB:
		return lipgloss.Color(c.Hex())
	default:
		return lipgloss.NoColor{}
	}
}
