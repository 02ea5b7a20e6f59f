package gui

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/icon"
)

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// newColor converts tcell colors to a fatih/color 24-bit style.
// Unset colors are left to the terminal.
func newColor(fg, bg tcell.Color) *color.Color {
	c := color.New()
	if r, g, b := fg.RGB(); r >= 0 {
		c.AddRGB(int(r), int(g), int(b))
	}
	if r, g, b := bg.RGB(); r >= 0 {
		c.AddBgRGB(int(r), int(g), int(b))
	}
	return c
}

// WriteANSI writes the grid as lines of text. With colored set the squares
// are painted with the theme, otherwise empty squares show as dots.
func WriteANSI(w io.Writer, g board.Grid, t Theme, coords, colored bool) error {
	bw := bufio.NewWriter(w)
	paint := func(fg, bg tcell.Color, text string) {
		c := newColor(fg, bg)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		c.Fprint(bw, text)
	}

	pad := rankWidth(g.Size)
	for row, cells := range g.Rows {
		if coords {
			label := board.RankLabel(row, g.Size)
			paint(t.Rank, tcell.ColorDefault, label+spaces(pad-len(label)))
		}
		for _, cell := range cells {
			bg := squareBg(cell.Shade, t)
			switch {
			case !cell.Empty():
				fg := t.Black
				if cell.Piece.Color == board.White {
					fg = t.White
				}
				paint(fg, bg, string(icon.For(*cell.Piece).Glyph)+" ")
			case colored:
				paint(tcell.ColorDefault, bg, "  ")
			default:
				paint(tcell.ColorDefault, tcell.ColorDefault, ". ")
			}
		}
		bw.WriteByte('\n')
	}

	if coords {
		line := spaces(pad)
		for col := 0; col < g.Size; col++ {
			label := board.FileLabel(col)
			line += label + spaces(squareWidth-len(label))
		}
		paint(t.File, tcell.ColorDefault, line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
