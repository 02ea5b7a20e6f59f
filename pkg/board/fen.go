package board

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notnil/chess"
)

const numOfSquaresInRow = 8

// getSquare converts board coordinates to a notnil/chess square.
// Row 0 is rank 8 and column 0 is file a.
func getSquare(c Coord) chess.Square {
	rank := numOfSquaresInRow - 1 - c.Row
	return chess.Square(rank*numOfSquaresInRow + c.Col)
}

func squareToCoord(sq chess.Square) Coord {
	return Coord{
		Row: numOfSquaresInRow - 1 - int(sq.Rank()),
		Col: int(sq.File()),
	}
}

// PlacementFromFEN reads the piece placement field of a FEN record. The rest
// of the record (turn, castling, ...) is optional and ignored.
// Pieces come back in row-major order.
func PlacementFromFEN(fen string) (Placement, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return Placement{}, fmt.Errorf("board: empty fen")
	}
	var b chess.Board
	if err := b.UnmarshalText([]byte(fields[0])); err != nil {
		return Placement{}, fmt.Errorf("board: parse fen %q: %w", fen, err)
	}

	pieces := make([]PlacedPiece, 0)
	for sq, p := range b.SquareMap() {
		kind, color, ok := fromChess(p)
		if !ok {
			continue
		}
		pieces = append(pieces, PlacedPiece{Kind: kind, Color: color, Coord: squareToCoord(sq)})
	}
	sort.Slice(pieces, func(i, j int) bool {
		if pieces[i].Row != pieces[j].Row {
			return pieces[i].Row < pieces[j].Row
		}
		return pieces[i].Col < pieces[j].Col
	})
	return NewPlacement(pieces...)
}

// FEN returns the piece placement field of a FEN record.
// Only placements that fit on a standard board can be encoded.
func (pl Placement) FEN() (string, error) {
	if err := pl.Validate(numOfSquaresInRow); err != nil {
		return "", err
	}
	m := make(map[chess.Square]chess.Piece, len(pl.pieces))
	for _, p := range pl.pieces {
		sq := getSquare(p.Coord)
		if _, ok := m[sq]; ok {
			continue
		}
		m[sq] = p.ChessPiece()
	}
	return chess.NewBoard(m).String(), nil
}
