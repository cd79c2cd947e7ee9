package knights

import (
	"fmt"
	"strings"
)

// Cell is the marker stored in a board square. Any value other than
// the constants below is the glyph of the piece standing there.
type Cell rune

const (
	OffBoard Cell = 0
	Free     Cell = ' '
	Vacated  Cell = '#'
)

func (c Cell) IsFree() bool     { return c == Free }
func (c Cell) IsVacated() bool  { return c == Vacated }
func (c Cell) IsOccupied() bool { return c != Free && c != Vacated && c != OffBoard }

type Board struct {
	height, width int
	border        rune
	cells         []Cell
}

// NewBoard returns a height x width board with every cell Free.
// Minimum sizes are enforced by Game.SizeBoard, not here.
func NewBoard(height, width int, border rune) *Board {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("illegal board size: %dx%d", height, width))
	}
	b := &Board{
		height: height,
		width:  width,
		border: border,
		cells:  make([]Cell, height*width),
	}
	for i := range b.cells {
		b.cells[i] = Free
	}
	return b
}

func (b *Board) Height() int  { return b.height }
func (b *Board) Width() int   { return b.width }
func (b *Board) Border() rune { return b.border }

func (b *Board) InBounds(c Coord) bool {
	return c.Y >= 0 && c.Y < b.height && c.X >= 0 && c.X < b.width
}

// At returns the cell at c, or OffBoard if c is invalid or outside
// the board.
func (b *Board) At(c Coord) Cell {
	if !c.Valid || !b.InBounds(c) {
		return OffBoard
	}
	return b.cells[c.Y*b.width+c.X]
}

// Set overwrites the cell at c. It reports false and leaves the board
// untouched if c is invalid or off the board, or if cell is OffBoard.
func (b *Board) Set(c Coord, cell Cell) bool {
	if !c.Valid || !b.InBounds(c) || cell == OffBoard {
		return false
	}
	b.cells[c.Y*b.width+c.X] = cell
	return true
}

func (b *Board) Clone() *Board {
	out := *b
	out.cells = make([]Cell, len(b.cells))
	copy(out.cells, b.cells)
	return &out
}

// Render draws the board with column indices on top, a frame of the
// border glyph, and row indices on the right.
func (b *Board) Render() string {
	var out strings.Builder
	border := string(b.border)

	out.WriteString("   ")
	for x := 0; x < b.width; x++ {
		fmt.Fprintf(&out, "%-2d ", x)
	}
	out.WriteString("\n")

	edge := "   " + strings.Repeat(border+"  ", b.width) + "\n"
	out.WriteString(edge)
	for y := 0; y < b.height; y++ {
		out.WriteString(border + " ")
		for x := 0; x < b.width; x++ {
			fmt.Fprintf(&out, "|%c|", rune(b.cells[y*b.width+x]))
		}
		fmt.Fprintf(&out, " %s %d\n", border, y)
	}
	out.WriteString(edge)
	return out.String()
}
