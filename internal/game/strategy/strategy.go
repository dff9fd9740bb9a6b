// Package strategy provides the automated move-selection implementations
// a seat can be driven by. Strategies are intentionally non-optimal;
// there is no search here, only fixed policies over the 9 cells.
package strategy

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/kpmorrow/tictactoe/internal/game/core"
)

// Strategy chooses the next cell to play. Implementations must return a
// legal cell whenever one exists, core.ErrNoLegalMove otherwise, and
// must never mutate the board.
type Strategy interface {
	// Name identifies the strategy for logging and configuration.
	Name() string

	// ChooseMove returns the chosen cell index, or -1 with
	// core.ErrNoLegalMove when the board has no playable cell.
	ChooseMove(b *core.Board) (int, error)
}

// Strategy names accepted by New and used in config/CLI flags.
const (
	NameFirstOpen = "first-open"
	NameRandom    = "random"
	NameWeighted  = "weighted"
)

// ErrUnknownStrategy is returned by New for an unrecognized name.
var ErrUnknownStrategy = errors.New("unknown strategy")

// New constructs a strategy by name. rng may be nil, in which case the
// randomized strategies seed themselves from the clock.
func New(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case NameFirstOpen:
		return NewFirstOpen(), nil
	case NameRandom:
		return NewRandom(rng), nil
	case NameWeighted:
		return NewWeightedPriority(rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Names returns the accepted strategy names.
func Names() []string {
	return []string{NameFirstOpen, NameRandom, NameWeighted}
}
