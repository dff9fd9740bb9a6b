package core

import "strings"

// NumCells is the fixed board size. The board is a 3x3 grid stored
// row-major, so cell index = row*3 + col.
const NumCells = 9

// CenterCell is the middle of the grid.
const CenterCell = 4

// CornerCells and EdgeCells partition the non-center cells by position.
var (
	CornerCells = [4]int{0, 2, 6, 8}
	EdgeCells   = [4]int{1, 3, 5, 7}
)

// WinningLines are the 8 index triples that decide a game: 3 rows,
// 3 columns, 2 diagonals.
var WinningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Board holds the 9 cells of a match. It is mutated only through Apply;
// the Match owns the board for the lifetime of the game and everything
// else reads it.
type Board struct {
	Cells [NumCells]Mark
}

// NewBoard returns a board with all cells Empty.
func NewBoard() *Board {
	return &Board{}
}

// InBounds reports whether cell is a valid index.
func (b *Board) InBounds(cell int) bool {
	return cell >= 0 && cell < NumCells
}

// IsLegal reports whether a mark may be placed on cell: in range and
// currently Empty. Never mutates.
func (b *Board) IsLegal(cell int) bool {
	return b.InBounds(cell) && b.Cells[cell] == Empty
}

// Apply places mark on cell. Callers are expected to have validated the
// move already; Apply still refuses illegal placements so an invariant
// violation surfaces instead of corrupting the board.
func (b *Board) Apply(cell int, mark Mark) error {
	if !b.InBounds(cell) {
		return ErrCellOutOfRange
	}
	if b.Cells[cell] != Empty {
		return ErrCellOccupied
	}
	if !mark.IsPlayer() {
		return ErrInvalidMark
	}
	b.Cells[cell] = mark
	return nil
}

// IsFull reports whether no Empty cell remains.
func (b *Board) IsFull() bool {
	for _, c := range b.Cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no cell has been played yet.
func (b *Board) IsEmpty() bool {
	for _, c := range b.Cells {
		if c != Empty {
			return false
		}
	}
	return true
}

// MarkCount returns the number of non-Empty cells.
func (b *Board) MarkCount() int {
	n := 0
	for _, c := range b.Cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Winner evaluates the 8 winning lines and returns the mark completing
// one, or Empty if no line is complete. At most one mark can hold a
// completed line in a legally played game.
func (b *Board) Winner() Mark {
	for _, line := range WinningLines {
		m := b.Cells[line[0]]
		if m != Empty && b.Cells[line[1]] == m && b.Cells[line[2]] == m {
			return m
		}
	}
	return Empty
}

// Snapshot returns a copy of the cells for read-only consumers such as
// display subscribers.
func (b *Board) Snapshot() [NumCells]Mark {
	return b.Cells
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// String renders the grid for logs and console display.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(b.Cells[row*3+col].String())
			if col < 2 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
