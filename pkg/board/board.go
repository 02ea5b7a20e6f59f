package board

import "strconv"

const DefaultSize = 8

type Shade int

const (
	Light Shade = iota
	Dark
)

func (s Shade) String() string {
	if s == Dark {
		return "dark"
	}
	return "light"
}

func (s Shade) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ShadeAt follows the checkerboard parity: dark iff row+col is odd
func ShadeAt(row, col int) Shade {
	if (row+col)%2 != 0 {
		return Dark
	}
	return Light
}

// Cell is a single rendered square
type Cell struct {
	Coord
	Shade Shade        `json:"shade"`
	Piece *PlacedPiece `json:"piece,omitempty"`
}

func (c Cell) Empty() bool {
	return c.Piece == nil
}

// Grid is the rendered board, row-major
type Grid struct {
	Size int      `json:"size"`
	Rows [][]Cell `json:"rows"`
}

func (g Grid) Cell(row, col int) Cell {
	return g.Rows[row][col]
}

// Cells returns the number of squares in the grid
func (g Grid) Cells() int {
	n := 0
	for _, row := range g.Rows {
		n += len(row)
	}
	return n
}

// Square renders the cell at (row, col)
func Square(row, col int, pl Placement) Cell {
	cell := Cell{
		Coord: Coord{Row: row, Col: col},
		Shade: ShadeAt(row, col),
	}
	if p, ok := pl.At(cell.Coord); ok {
		cell.Piece = &p
	}
	return cell
}

// Render builds a size×size grid. Pieces placed outside of the grid never
// show up. A non-positive size falls back to DefaultSize.
func Render(size int, pl Placement) Grid {
	if size <= 0 {
		size = DefaultSize
	}
	g := Grid{Size: size, Rows: make([][]Cell, size)}
	for row := 0; row < size; row++ {
		cols := make([]Cell, size)
		for col := 0; col < size; col++ {
			cols[col] = Square(row, col, pl)
		}
		g.Rows[row] = cols
	}
	return g
}

// RankLabel is the rank printed next to a row; the bottom row is 1
func RankLabel(row, size int) string {
	return strconv.Itoa(size - row)
}

// FileLabel is the file printed under a column; the left column is "a"
func FileLabel(col int) string {
	if col < 26 {
		return string(rune('a' + col))
	}
	return FileLabel(col/26-1) + FileLabel(col%26)
}
