package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

var ErrUnknownPiece = errors.New("board: unknown piece")

type PieceKind int

const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// PieceKinds lists every kind in the order icons are laid out
var PieceKinds = []PieceKind{King, Queen, Rook, Bishop, Knight, Pawn}

func (k PieceKind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "unknown"
	}
}

func (k PieceKind) valid() bool {
	return k >= King && k <= Pawn
}

func (k PieceKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownPiece, int(k))
	}
	return []byte(k.String()), nil
}

func (k *PieceKind) UnmarshalText(b []byte) error {
	v, err := ParsePieceKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func ParsePieceKind(s string) (PieceKind, error) {
	for _, k := range PieceKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: kind %q", ErrUnknownPiece, s)
}

type Color int

const (
	White Color = iota
	Black
)

// Colors lists both sides, white first
var Colors = []Color{White, Black}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

func (c Color) valid() bool {
	return c == White || c == Black
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: color %d", ErrUnknownPiece, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: color %q", ErrUnknownPiece, s)
}

// Coord is a zero-indexed (row, column) pair. Row 0 is the top of the board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// PlacedPiece is a piece standing on a fixed coordinate
type PlacedPiece struct {
	Kind  PieceKind `json:"kind"`
	Color Color     `json:"color"`
	Coord
}

func (p PlacedPiece) String() string {
	return fmt.Sprintf("%s %s %s", p.Color, p.Kind, p.Coord)
}

// ChessPiece returns the notnil/chess equivalent of the piece
func (p PlacedPiece) ChessPiece() chess.Piece {
	return ChessPiece(p.Kind, p.Color)
}

var chessPieces = [2][6]chess.Piece{
	{chess.WhiteKing, chess.WhiteQueen, chess.WhiteRook, chess.WhiteBishop, chess.WhiteKnight, chess.WhitePawn},
	{chess.BlackKing, chess.BlackQueen, chess.BlackRook, chess.BlackBishop, chess.BlackKnight, chess.BlackPawn},
}

// ChessPiece maps a kind and color onto notnil/chess.
// Invalid input yields chess.NoPiece.
func ChessPiece(k PieceKind, c Color) chess.Piece {
	if !k.valid() || !c.valid() {
		return chess.NoPiece
	}
	return chessPieces[c][k]
}

// fromChess is the inverse of ChessPiece
func fromChess(p chess.Piece) (PieceKind, Color, bool) {
	for c := range chessPieces {
		for k, cp := range chessPieces[c] {
			if cp == p {
				return PieceKind(k), Color(c), true
			}
		}
	}
	return 0, 0, false
}
