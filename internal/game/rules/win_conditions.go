package rules

import (
	"github.com/rs/zerolog"

	"github.com/kpmorrow/tictactoe/internal/game/core"
)

// WinChecker handles end-of-game detection and winner determination.
type WinChecker struct {
	logger zerolog.Logger
}

// NewWinChecker creates a new win checker.
func NewWinChecker(logger zerolog.Logger) *WinChecker {
	return &WinChecker{
		logger: logger.With().Str("component", "WinChecker").Logger(),
	}
}

// CheckGameOver determines whether the game is over.
// Returns (isGameOver, winner); winner is core.Empty for a draw or an
// ongoing game.
func (wc *WinChecker) CheckGameOver(b *core.Board) (bool, core.Mark) {
	if winner := b.Winner(); winner != core.Empty {
		wc.logger.Info().Stringer("winner", winner).Msg("Winner determined")
		return true, winner
	}

	if b.IsFull() {
		wc.logger.Info().Msg("Board full with no winner, game is drawn")
		return true, core.Empty
	}

	wc.logger.Debug().Int("marks_placed", b.MarkCount()).Msg("Game over check complete, game ongoing")
	return false, core.Empty
}
