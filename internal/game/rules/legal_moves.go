package rules

import "github.com/kpmorrow/tictactoe/internal/game/core"

// LegalMoveCalculator computes which cells may still be played.
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator.
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// LegalCells returns the playable cell indices in ascending order.
func (lmc *LegalMoveCalculator) LegalCells(b *core.Board) []int {
	cells := make([]int, 0, core.NumCells)
	for cell := 0; cell < core.NumCells; cell++ {
		if b.IsLegal(cell) {
			cells = append(cells, cell)
		}
	}
	return cells
}

// LegalMoveMask returns a 9-element boolean mask where true marks a
// playable cell. Index i corresponds to cell i.
func (lmc *LegalMoveCalculator) LegalMoveMask(b *core.Board, mark core.Mark) []bool {
	mask := make([]bool, core.NumCells)
	for cell := 0; cell < core.NumCells; cell++ {
		move := core.Move{Cell: cell, Mark: mark}
		if err := move.Validate(b); err == nil {
			mask[cell] = true
		}
	}
	return mask
}
