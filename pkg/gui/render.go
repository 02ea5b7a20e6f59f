// Package gui draws a rendered board on a terminal screen, as colored text
// or as an SVG document.
package gui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/icon"
)

// squareWidth is the number of terminal columns per square.
// Two columns make a square look square.
const squareWidth = 2

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// stylePiece applies the theme's style to a piece based upon its color
func stylePiece(c board.Color, sqBg tcell.Color, t Theme) tcell.Style {
	pieceStyle := tcell.StyleDefault.Background(sqBg)

	if c == board.White {
		return pieceStyle.Foreground(t.White)
	}
	return pieceStyle.Foreground(t.Black)
}

// squareBg returns the theme's color corresponding to the square
func squareBg(shade board.Shade, t Theme) tcell.Color {
	if shade == board.Dark {
		return t.SquareDark
	}
	return t.SquareLight
}

// drawSquare draws a board square and its piece if there is one
func drawSquare(s tcell.Screen, x, y int, cell board.Cell, t Theme) {
	sqBg := squareBg(cell.Shade, t)
	bgStyle := tcell.StyleDefault.Background(sqBg)

	if cell.Empty() {
		s.SetContent(x, y, ' ', nil, bgStyle)
		s.SetContent(x+1, y, ' ', nil, bgStyle)
		return
	}

	glyph := icon.For(*cell.Piece).Glyph
	// Fill with the piece and then pad the rest with blank
	drawRune(s, x, y, stylePiece(cell.Piece.Color, sqBg, t), glyph)
	s.SetContent(x+1, y, ' ', nil, bgStyle)
}

// rankWidth is the room taken by rank labels, including a space
func rankWidth(size int) int {
	return len(strconv.Itoa(size)) + 1
}

// BoardSize returns the number of columns and rows DrawBoard uses
func BoardSize(g board.Grid, coords bool) (int, int) {
	w, h := g.Size*squareWidth, g.Size
	if coords {
		w += rankWidth(g.Size)
		h++
	}
	return w, h
}

// DrawBoard draws the grid with its top left corner at (x, y). Rank and file
// labels are drawn around the squares when coords is set.
func DrawBoard(s tcell.Screen, x, y int, g board.Grid, t Theme, coords bool) {
	rankStyle := tcell.StyleDefault.Foreground(t.Rank)
	left := x
	if coords {
		left += rankWidth(g.Size)
	}

	for row, cells := range g.Rows {
		if coords {
			drawText(s, x, y+row, rankStyle, board.RankLabel(row, g.Size))
		}
		col := left
		for _, cell := range cells {
			drawSquare(s, col, y+row, cell, t)
			col += squareWidth
		}
	}

	if !coords {
		return
	}
	// Display the files under the squares
	fileStyle := tcell.StyleDefault.Foreground(t.File)
	for col := 0; col < g.Size; col++ {
		drawText(s, left+col*squareWidth, y+g.Size, fileStyle, board.FileLabel(col))
	}
}
