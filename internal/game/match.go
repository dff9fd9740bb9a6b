// Package game orchestrates a single tic-tac-toe match: it owns the
// board, sequences the two seats, applies their moves and detects the
// end of the game.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kpmorrow/tictactoe/internal/game/core"
	"github.com/kpmorrow/tictactoe/internal/game/events"
	"github.com/kpmorrow/tictactoe/internal/game/rules"
	"github.com/kpmorrow/tictactoe/internal/game/seat"
	"github.com/kpmorrow/tictactoe/internal/game/states"
)

// Config configures a new match.
type Config struct {
	// ID identifies the match in logs and events. Generated when empty.
	ID string

	// Seats are the two participants in play order. Their marks must
	// differ.
	Seats [2]*seat.Seat

	// Board is optional; when set it must be all-empty. A fresh board
	// is created when nil.
	Board *core.Board

	// EventBus is optional; when set, match events are published to it.
	EventBus events.Publisher

	Logger zerolog.Logger
}

// Match is the state machine of one game. It is the sole owner and
// mutator of its board; seats and strategies only read it.
type Match struct {
	id       string
	board    *core.Board
	seats    [2]*seat.Seat
	turn     int // index into seats of the seat to move
	moves    int
	phase    states.MatchPhase
	winner   core.Mark
	winCheck *rules.WinChecker
	bus      events.Publisher
	logger   zerolog.Logger
	started  time.Time
}

// NewMatch validates the setup and creates a match in PhaseOngoing with
// the first seat to move.
func NewMatch(cfg Config) (*Match, error) {
	if cfg.Seats[0] == nil || cfg.Seats[1] == nil {
		return nil, fmt.Errorf("match setup: both seats are required")
	}
	for i, s := range cfg.Seats {
		if !s.Mark().IsPlayer() {
			return nil, fmt.Errorf("match setup: seat %d: %w", i, core.ErrInvalidMark)
		}
	}
	if cfg.Seats[0].Mark() == cfg.Seats[1].Mark() {
		return nil, fmt.Errorf("match setup: %w", core.ErrDuplicateMarks)
	}

	board := cfg.Board
	if board == nil {
		board = core.NewBoard()
	} else if !board.IsEmpty() {
		return nil, fmt.Errorf("match setup: %w", core.ErrBoardNotEmpty)
	}

	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}

	m := &Match{
		id:       id,
		board:    board,
		seats:    cfg.Seats,
		phase:    states.PhaseOngoing,
		winCheck: rules.NewWinChecker(cfg.Logger),
		bus:      cfg.EventBus,
		logger:   cfg.Logger.With().Str("match_id", id).Logger(),
		started:  time.Now(),
	}

	m.logger.Info().
		Stringer("first", m.seats[0].Mark()).
		Str("first_seat", m.seats[0].Label()).
		Stringer("second", m.seats[1].Mark()).
		Str("second_seat", m.seats[1].Label()).
		Msg("Match created")

	m.publish(events.NewMatchStartedEvent(
		m.id,
		m.seats[0].Mark(), m.seats[1].Mark(),
		m.seats[0].Label(), m.seats[1].Label(),
	))

	return m, nil
}

// Step plays one turn: the active seat produces a move, the move is
// validated and applied, and the phase advances if the game ended. An
// illegal move from a seat aborts the turn without touching the board.
func (m *Match) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.phase.CanReceiveMoves() {
		return core.ErrMatchOver
	}

	active := m.seats[m.turn]
	turnNumber := m.moves + 1
	turnLogger := m.logger.With().Int("turn", turnNumber).Stringer("mark", active.Mark()).Logger()

	m.publish(events.NewTurnStartedEvent(m.id, turnNumber, active.Mark()))

	move, err := active.TakeTurn(m.board)
	if err != nil {
		turnLogger.Error().Err(err).Msg("Seat failed to produce a move")
		return fmt.Errorf("turn %d: %w", turnNumber, err)
	}

	if err := move.Validate(m.board); err != nil {
		turnLogger.Error().Err(err).Stringer("move", move).Msg("Seat returned an illegal move")
		m.publish(events.NewMoveRejectedEvent(m.id, turnNumber, move, err.Error()))
		return fmt.Errorf("turn %d: %w: %s: %v", turnNumber, core.ErrIllegalMove, move, err)
	}

	if err := m.board.Apply(move.Cell, move.Mark); err != nil {
		// Unreachable after Validate, but never mask a board invariant.
		return fmt.Errorf("turn %d: apply %s: %w", turnNumber, move, err)
	}
	m.moves++

	turnLogger.Debug().Stringer("move", move).Msg("Move applied")
	m.publish(events.NewMovePlayedEvent(m.id, turnNumber, move, m.board.Snapshot()))

	over, winner := m.winCheck.CheckGameOver(m.board)
	switch {
	case over && winner != core.Empty:
		m.phase = states.PhaseWon
		m.winner = winner
		m.publish(events.NewMatchWonEvent(m.id, winner, m.moves, m.board.Snapshot(), time.Since(m.started)))
	case over:
		m.phase = states.PhaseDrawn
		m.publish(events.NewMatchDrawnEvent(m.id, m.moves, m.board.Snapshot(), time.Since(m.started)))
	default:
		m.turn = 1 - m.turn
	}

	return nil
}

// Run plays turns until the match reaches a terminal phase. A legal
// game always terminates within 9 moves.
func (m *Match) Run(ctx context.Context) (states.MatchPhase, error) {
	for m.phase.CanReceiveMoves() {
		if err := m.Step(ctx); err != nil {
			return m.phase, err
		}
	}
	return m.phase, nil
}

// ID returns the match identifier.
func (m *Match) ID() string {
	return m.id
}

// Phase returns the current match phase.
func (m *Match) Phase() states.MatchPhase {
	return m.phase
}

// IsOver reports whether the match reached a terminal phase.
func (m *Match) IsOver() bool {
	return m.phase.IsTerminal()
}

// Winner returns the winning mark, or core.Empty for an ongoing or
// drawn match.
func (m *Match) Winner() core.Mark {
	return m.winner
}

// MoveCount returns the number of moves applied so far.
func (m *Match) MoveCount() int {
	return m.moves
}

// CurrentMark returns the mark of the seat to move next.
func (m *Match) CurrentMark() core.Mark {
	return m.seats[m.turn].Mark()
}

// Board returns a copy of the board for display and inspection. The
// live board never leaves the match.
func (m *Match) Board() *core.Board {
	return m.board.Clone()
}

// Snapshot returns a copy of the cells.
func (m *Match) Snapshot() [core.NumCells]core.Mark {
	return m.board.Snapshot()
}

func (m *Match) publish(e events.Event) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
