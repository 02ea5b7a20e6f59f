package gui

import (
	"fmt"
	"io"
	"text/template"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/icon"
)

// DefaultSquareSize is the side of one square in SVG user units
const DefaultSquareSize = 56

// iconSize is the viewBox side of the piece assets
const iconSize = 45

var svgTemplate = template.Must(template.New("board").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Side}}" height="{{.Side}}" viewBox="0 0 {{.Side}} {{.Side}}">
{{- range .Squares}}
<rect x="{{.X}}" y="{{.Y}}" width="{{$.Square}}" height="{{$.Square}}" fill="{{.Fill}}"/>
{{- if .Icon}}
<g transform="translate({{.X}} {{.Y}}) scale({{$.Scale}})">{{.Icon}}</g>
{{- end}}
{{- end}}
</svg>
`))

type svgSquare struct {
	X, Y int
	Fill string
	Icon string
}

type svgBoard struct {
	Side    int
	Square  int
	Scale   string
	Squares []svgSquare
}

// svgFill picks the fill of a square, falling back to the classic colors
// when the theme leaves it to the terminal
func svgFill(c, fallback tcell.Color) string {
	if c.Hex() < 0 {
		c = fallback
	}
	return fmtHex(c.Hex())
}

// WriteSVG writes the grid as a standalone SVG document with the piece icons
// nested in their squares. A non-positive squareSize uses DefaultSquareSize.
func WriteSVG(w io.Writer, g board.Grid, t Theme, squareSize int) error {
	if squareSize <= 0 {
		squareSize = DefaultSquareSize
	}
	dark := svgFill(t.SquareDark, ThemeClassic.SquareDark)
	light := svgFill(t.SquareLight, ThemeClassic.SquareLight)

	doc := svgBoard{
		Side:    g.Size * squareSize,
		Square:  squareSize,
		Scale:   fmt.Sprintf("%.4g", float64(squareSize)/iconSize),
		Squares: make([]svgSquare, 0, g.Cells()),
	}
	for _, cells := range g.Rows {
		for _, cell := range cells {
			sq := svgSquare{X: cell.Col * squareSize, Y: cell.Row * squareSize, Fill: light}
			if cell.Shade == board.Dark {
				sq.Fill = dark
			}
			if !cell.Empty() {
				sq.Icon = string(icon.For(*cell.Piece).Inline())
			}
			doc.Squares = append(doc.Squares, sq)
		}
	}
	return svgTemplate.Execute(w, doc)
}
