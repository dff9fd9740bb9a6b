package strategy

import "github.com/kpmorrow/tictactoe/internal/game/core"

// FirstOpen plays the lowest-indexed open cell. Fully deterministic.
type FirstOpen struct{}

// NewFirstOpen creates a new first-open strategy.
func NewFirstOpen() *FirstOpen {
	return &FirstOpen{}
}

func (s *FirstOpen) Name() string { return NameFirstOpen }

// ChooseMove scans cells 0..8 in ascending order and returns the first
// legal one.
func (s *FirstOpen) ChooseMove(b *core.Board) (int, error) {
	for cell := 0; cell < core.NumCells; cell++ {
		if b.IsLegal(cell) {
			return cell, nil
		}
	}
	return -1, core.ErrNoLegalMove
}
