package core

import "fmt"

// Move is one seat's intended placement: a cell index paired with the
// mark to place. Seats produce moves; only the Match applies them.
type Move struct {
	Cell int
	Mark Mark
}

// Validate checks the move against the board. Checks run in a fixed
// order: bounds, then occupancy, then mark validity.
func (m Move) Validate(b *Board) error {
	if !b.InBounds(m.Cell) {
		return ErrCellOutOfRange
	}
	if b.Cells[m.Cell] != Empty {
		return ErrCellOccupied
	}
	if !m.Mark.IsPlayer() {
		return ErrInvalidMark
	}
	return nil
}

func (m Move) String() string {
	return fmt.Sprintf("%s@%d", m.Mark, m.Cell)
}
