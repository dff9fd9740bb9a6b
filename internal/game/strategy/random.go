package strategy

import (
	"math/rand"
	"time"

	"github.com/kpmorrow/tictactoe/internal/game/core"
	"github.com/kpmorrow/tictactoe/internal/game/rules"
)

// Random plays a uniformly random legal cell.
type Random struct {
	rng   *rand.Rand
	legal *rules.LegalMoveCalculator
}

// NewRandom creates a new uniform-random strategy. rng may be nil for a
// clock-seeded source; tests inject a fixed seed.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Random{
		rng:   rng,
		legal: rules.NewLegalMoveCalculator(),
	}
}

func (s *Random) Name() string { return NameRandom }

// ChooseMove picks uniformly among the currently legal cells.
func (s *Random) ChooseMove(b *core.Board) (int, error) {
	cells := s.legal.LegalCells(b)
	if len(cells) == 0 {
		return -1, core.ErrNoLegalMove
	}
	return cells[s.rng.Intn(len(cells))], nil
}
