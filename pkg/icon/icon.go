// Package icon resolves a piece kind and color to its vector icon.
package icon

import (
	"bytes"
	"embed"
	"fmt"
	"unicode/utf8"

	"github.com/qnkhuat/chessboard/pkg/board"
)

//go:embed assets/*.svg
var assets embed.FS

// Icon is the renderable form of one kind/color pair
type Icon struct {
	Kind  board.PieceKind
	Color board.Color
	Name  string // asset stem, e.g. king_black
	Glyph rune   // unicode chess symbol for text renderers
	SVG   []byte
}

// Inline returns the SVG without its XML declaration so it can be nested in
// another document
func (i Icon) Inline() []byte {
	b := i.SVG
	if bytes.HasPrefix(b, []byte("<?xml")) {
		if end := bytes.Index(b, []byte("?>")); end >= 0 {
			b = b[end+2:]
		}
	}
	return bytes.TrimSpace(b)
}

// table is indexed by [color][kind] and is complete after init
var table [2][6]Icon

var byName = make(map[string]Icon, 12)

func init() {
	for _, c := range board.Colors {
		for _, k := range board.PieceKinds {
			name := Name(k, c)
			svg, err := assets.ReadFile("assets/" + name + ".svg")
			if err != nil {
				panic(fmt.Sprintf("icon: missing asset for %s %s: %v", c, k, err))
			}
			glyph, _ := utf8.DecodeRuneInString(board.ChessPiece(k, c).String())
			ic := Icon{Kind: k, Color: c, Name: name, Glyph: glyph, SVG: svg}
			table[c][k] = ic
			byName[name] = ic
		}
	}
}

// Name is the asset stem for a kind/color pair
func Name(k board.PieceKind, c board.Color) string {
	return k.String() + "_" + c.String()
}

// Resolve returns the icon registered for the pair. Every valid pair has
// exactly one icon.
func Resolve(k board.PieceKind, c board.Color) Icon {
	return table[c][k]
}

// For resolves the icon of a placed piece
func For(p board.PlacedPiece) Icon {
	return Resolve(p.Kind, p.Color)
}

func ByName(name string) (Icon, bool) {
	ic, ok := byName[name]
	return ic, ok
}

// All lists the twelve icons, kind-major
func All() []Icon {
	list := make([]Icon, 0, len(board.PieceKinds)*len(board.Colors))
	for _, k := range board.PieceKinds {
		for _, c := range board.Colors {
			list = append(list, table[c][k])
		}
	}
	return list
}
