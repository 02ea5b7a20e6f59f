package board

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateCoord = errors.New("board: duplicate coordinate")
	ErrOutOfRange     = errors.New("board: coordinate out of range")
)

// Placement is the fixed list of pieces standing on the board.
// It is never mutated after construction.
type Placement struct {
	pieces []PlacedPiece
}

// DefaultPlacement puts a black king in the top left corner and a white king
// in the bottom right corner
func DefaultPlacement() Placement {
	return Placement{pieces: []PlacedPiece{
		{Kind: King, Color: Black, Coord: Coord{0, 0}},
		{Kind: King, Color: White, Coord: Coord{7, 7}},
	}}
}

// NewPlacement validates pieces and returns them as a Placement. Coordinates
// must be non-negative and unique. The upper bound depends on the board size
// and is checked by Validate.
func NewPlacement(pieces ...PlacedPiece) (Placement, error) {
	seen := make(map[Coord]PlacedPiece, len(pieces))
	for _, p := range pieces {
		if !p.Kind.valid() || !p.Color.valid() {
			return Placement{}, fmt.Errorf("%w: %s", ErrUnknownPiece, p)
		}
		if p.Row < 0 || p.Col < 0 {
			return Placement{}, fmt.Errorf("%w: %s", ErrOutOfRange, p)
		}
		if prev, ok := seen[p.Coord]; ok {
			return Placement{}, fmt.Errorf("%w: %s and %s", ErrDuplicateCoord, prev, p)
		}
		seen[p.Coord] = p
	}

	list := make([]PlacedPiece, len(pieces))
	copy(list, pieces)
	return Placement{pieces: list}, nil
}

// MustPlacement is like NewPlacement but panics on invalid input.
// It is meant for package level tables.
func MustPlacement(pieces ...PlacedPiece) Placement {
	p, err := NewPlacement(pieces...)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate checks every piece fits on a size×size board
func (pl Placement) Validate(size int) error {
	for _, p := range pl.pieces {
		if p.Row >= size || p.Col >= size {
			return fmt.Errorf("%w: %s on a %dx%d board", ErrOutOfRange, p, size, size)
		}
	}
	return nil
}

// At returns the piece standing on c. The first match wins.
func (pl Placement) At(c Coord) (PlacedPiece, bool) {
	for _, p := range pl.pieces {
		if p.Coord == c {
			return p, true
		}
	}
	return PlacedPiece{}, false
}

// Pieces returns a copy of the placed pieces
func (pl Placement) Pieces() []PlacedPiece {
	list := make([]PlacedPiece, len(pl.pieces))
	copy(list, pl.pieces)
	return list
}

func (pl Placement) Len() int {
	return len(pl.pieces)
}
