package events

import (
	"time"

	"github.com/kpmorrow/tictactoe/internal/game/core"
)

// Event type constants
const (
	TypeMatchStarted = "match.started"
	TypeTurnStarted  = "turn.started"
	TypeMovePlayed   = "move.played"
	TypeMoveRejected = "move.rejected"
	TypeMatchWon     = "match.won"
	TypeMatchDrawn   = "match.drawn"
)

// MatchStartedEvent is published when a new match begins.
type MatchStartedEvent struct {
	BaseEvent
	MarkFirst  core.Mark
	MarkSecond core.Mark
	SeatFirst  string
	SeatSecond string
}

// NewMatchStartedEvent creates a new MatchStartedEvent.
func NewMatchStartedEvent(matchID string, first, second core.Mark, firstLabel, secondLabel string) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMatchStarted,
			Time:      time.Now(),
			Match:     matchID,
		},
		MarkFirst:  first,
		MarkSecond: second,
		SeatFirst:  firstLabel,
		SeatSecond: secondLabel,
	}
}

// TurnStartedEvent is published when a seat is asked for its move.
type TurnStartedEvent struct {
	BaseEvent
	TurnNumber int
	Mark       core.Mark
}

// NewTurnStartedEvent creates a new TurnStartedEvent.
func NewTurnStartedEvent(matchID string, turn int, mark core.Mark) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTurnStarted,
			Time:      time.Now(),
			Match:     matchID,
		},
		TurnNumber: turn,
		Mark:       mark,
	}
}

// MovePlayedEvent is published after a move is applied to the board.
// Board is a read-only snapshot taken after the move.
type MovePlayedEvent struct {
	BaseEvent
	TurnNumber int
	Move       core.Move
	Board      [core.NumCells]core.Mark
}

// NewMovePlayedEvent creates a new MovePlayedEvent.
func NewMovePlayedEvent(matchID string, turn int, move core.Move, board [core.NumCells]core.Mark) *MovePlayedEvent {
	return &MovePlayedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMovePlayed,
			Time:      time.Now(),
			Match:     matchID,
		},
		TurnNumber: turn,
		Move:       move,
		Board:      board,
	}
}

// MoveRejectedEvent is published when a seat returned a move that
// failed validation. The board is never mutated by a rejected move.
type MoveRejectedEvent struct {
	BaseEvent
	TurnNumber int
	Move       core.Move
	Reason     string
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent.
func NewMoveRejectedEvent(matchID string, turn int, move core.Move, reason string) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMoveRejected,
			Time:      time.Now(),
			Match:     matchID,
		},
		TurnNumber: turn,
		Move:       move,
		Reason:     reason,
	}
}

// MatchWonEvent is published when a seat completes a winning line.
type MatchWonEvent struct {
	BaseEvent
	Winner     core.Mark
	TotalMoves int
	Board      [core.NumCells]core.Mark
	Duration   time.Duration
}

// NewMatchWonEvent creates a new MatchWonEvent.
func NewMatchWonEvent(matchID string, winner core.Mark, moves int, board [core.NumCells]core.Mark, duration time.Duration) *MatchWonEvent {
	return &MatchWonEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMatchWon,
			Time:      time.Now(),
			Match:     matchID,
		},
		Winner:     winner,
		TotalMoves: moves,
		Board:      board,
		Duration:   duration,
	}
}

// MatchDrawnEvent is published when the board fills with no winner.
type MatchDrawnEvent struct {
	BaseEvent
	TotalMoves int
	Board      [core.NumCells]core.Mark
	Duration   time.Duration
}

// NewMatchDrawnEvent creates a new MatchDrawnEvent.
func NewMatchDrawnEvent(matchID string, moves int, board [core.NumCells]core.Mark, duration time.Duration) *MatchDrawnEvent {
	return &MatchDrawnEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMatchDrawn,
			Time:      time.Now(),
			Match:     matchID,
		},
		TotalMoves: moves,
		Board:      board,
		Duration:   duration,
	}
}
