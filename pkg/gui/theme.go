package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var ErrThemeNotFound = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the board
type Theme struct {
	Name        string      `json:"name"`
	SquareDark  tcell.Color `json:"squareDark"`
	SquareLight tcell.Color `json:"squareLight"`
	White       tcell.Color `json:"white"`
	Black       tcell.Color `json:"black"`
	Rank        tcell.Color `json:"rank"`
	File        tcell.Color `json:"file"`
}

// ThemeHex is the config file form of a Theme
type ThemeHex struct {
	Name        string `json:"name"`
	SquareDark  string `json:"squareDark"`
	SquareLight string `json:"squareLight"`
	White       string `json:"white"`
	Black       string `json:"black"`
	Rank        string `json:"rank"`
	File        string `json:"file"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument. Built-in themes are
// used when the slice has no match.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrThemeNotFound, want)
}

// ThemeClassic is the default theme, the brown board of most chess sites
var ThemeClassic = Theme{
	"classic",                   // Name
	tcell.NewHexColor(0xb58863), // SquareDark
	tcell.NewHexColor(0xf0d9b5), // SquareLight
	tcell.Color232,              // White
	tcell.Color232,              // Black
	tcell.Color247,              // Rank
	tcell.Color247,              // File
}

// ThemeBasic sticks to the xterm 256 palette
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg
var ThemeBasic = Theme{
	"basic",        // Name
	tcell.Color188, // SquareDark
	tcell.Color230, // SquareLight
	tcell.Color232, // White
	tcell.Color232, // Black
	tcell.Color247, // Rank
	tcell.Color247, // File
}

// Themes are the built-in themes, the first one is the default
var Themes = []Theme{ThemeClassic, ThemeBasic}
