// Package seat binds a mark to a move source: an automated strategy or
// an external human input collaborator.
package seat

import (
	"fmt"

	"github.com/kpmorrow/tictactoe/internal/game/core"
	"github.com/kpmorrow/tictactoe/internal/game/strategy"
)

// Source produces the next cell for a seat. Sources read the board but
// never mutate it.
type Source interface {
	// NextCell returns the cell to play, or core.ErrNoLegalMove when
	// the board has no open cell.
	NextCell(b *core.Board) (int, error)
}

// Input is the external collaborator behind a human seat (console
// prompt, mouse handler, ...). Implementations are responsible for
// re-prompting on invalid input and must only return legal cells.
type Input interface {
	RequestMove(b *core.Board) (int, error)
}

// Seat pairs a mark with its move source. A seat returns intended moves
// for the Match to apply; it never touches the board itself.
type Seat struct {
	mark   core.Mark
	source Source
	label  string
}

// NewStrategySeat creates a seat driven by an automated strategy.
func NewStrategySeat(mark core.Mark, s strategy.Strategy) *Seat {
	return &Seat{
		mark:   mark,
		source: strategySource{s},
		label:  s.Name(),
	}
}

// NewHumanSeat creates a seat driven by an external input collaborator.
func NewHumanSeat(mark core.Mark, in Input) *Seat {
	return &Seat{
		mark:   mark,
		source: inputSource{in},
		label:  "human",
	}
}

// Mark returns the mark this seat places.
func (s *Seat) Mark() core.Mark {
	return s.mark
}

// Label describes the seat's move source for logs and display.
func (s *Seat) Label() string {
	return s.label
}

// TakeTurn produces this seat's intended move for the current board.
func (s *Seat) TakeTurn(b *core.Board) (core.Move, error) {
	cell, err := s.source.NextCell(b)
	if err != nil {
		return core.Move{}, fmt.Errorf("seat %s: %w", s.mark, err)
	}
	return core.Move{Cell: cell, Mark: s.mark}, nil
}

type strategySource struct {
	strategy strategy.Strategy
}

func (src strategySource) NextCell(b *core.Board) (int, error) {
	return src.strategy.ChooseMove(b)
}

type inputSource struct {
	input Input
}

func (src inputSource) NextCell(b *core.Board) (int, error) {
	return src.input.RequestMove(b)
}
