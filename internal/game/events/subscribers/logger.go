package subscribers

import (
	"github.com/rs/zerolog"

	"github.com/kpmorrow/tictactoe/internal/game/events"
)

// LoggerSubscriber logs match events to structured logs.
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
}

// NewLoggerSubscriber creates a new logger subscriber.
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier.
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all).
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// InterestedIn returns true if the subscriber wants to receive this event type.
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it.
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("match_id", event.MatchID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.logLevel)

	switch e := event.(type) {
	case *events.MatchStartedEvent:
		logEvent = logEvent.
			Stringer("first_mark", e.MarkFirst).
			Str("first_seat", e.SeatFirst).
			Stringer("second_mark", e.MarkSecond).
			Str("second_seat", e.SeatSecond)
	case *events.TurnStartedEvent:
		logEvent = logEvent.
			Int("turn", e.TurnNumber).
			Stringer("mark", e.Mark)
	case *events.MovePlayedEvent:
		logEvent = logEvent.
			Int("turn", e.TurnNumber).
			Stringer("move", e.Move)
	case *events.MoveRejectedEvent:
		logEvent = logEvent.
			Int("turn", e.TurnNumber).
			Stringer("move", e.Move).
			Str("reason", e.Reason)
	case *events.MatchWonEvent:
		logEvent = logEvent.
			Stringer("winner", e.Winner).
			Int("total_moves", e.TotalMoves).
			Dur("duration", e.Duration)
	case *events.MatchDrawnEvent:
		logEvent = logEvent.
			Int("total_moves", e.TotalMoves).
			Dur("duration", e.Duration)
	}

	logEvent.Msg("Match event")
}
