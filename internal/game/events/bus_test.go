package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpmorrow/tictactoe/internal/game/core"
)

// recordingSubscriber captures every event it receives.
type recordingSubscriber struct {
	id       string
	types    map[string]bool
	received []Event
}

func (s *recordingSubscriber) ID() string { return s.id }

func (s *recordingSubscriber) HandleEvent(e Event) {
	s.received = append(s.received, e)
}

func (s *recordingSubscriber) InterestedIn(eventType string) bool {
	if s.types == nil {
		return true
	}
	return s.types[eventType]
}

func TestEventBus_SubscribeAndPublish(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "recorder"}
	bus.Subscribe(sub)

	require.Equal(t, 1, bus.GetSubscriberCount())

	event := NewMatchStartedEvent("match-1", core.MarkX, core.MarkO, "first-open", "random")
	bus.Publish(event)

	require.Len(t, sub.received, 1)
	assert.Equal(t, TypeMatchStarted, sub.received[0].Type())
	assert.Equal(t, "match-1", sub.received[0].MatchID())
}

func TestEventBus_InterestFilter(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{
		id:    "wins-only",
		types: map[string]bool{TypeMatchWon: true},
	}
	bus.Subscribe(sub)

	bus.Publish(NewTurnStartedEvent("match-1", 1, core.MarkX))
	bus.Publish(NewMatchWonEvent("match-1", core.MarkX, 5, [core.NumCells]core.Mark{}, 0))

	require.Len(t, sub.received, 1)
	assert.Equal(t, TypeMatchWon, sub.received[0].Type())
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "recorder"}
	bus.Subscribe(sub)
	bus.Unsubscribe("recorder")

	assert.Equal(t, 0, bus.GetSubscriberCount())

	bus.Publish(NewTurnStartedEvent("match-1", 1, core.MarkX))
	assert.Empty(t, sub.received)
}

func TestEventBus_SubscribeFunc(t *testing.T) {
	bus := NewEventBus()

	var got []Event
	bus.SubscribeFunc(TypeMovePlayed, func(e Event) {
		got = append(got, e)
	})

	require.Equal(t, 1, bus.GetFuncHandlerCount(TypeMovePlayed))

	move := core.Move{Cell: 4, Mark: core.MarkX}
	bus.Publish(NewMovePlayedEvent("match-1", 1, move, [core.NumCells]core.Mark{4: core.MarkX}))
	bus.Publish(NewTurnStartedEvent("match-1", 2, core.MarkO))

	require.Len(t, got, 1)
	played, ok := got[0].(*MovePlayedEvent)
	require.True(t, ok)
	assert.Equal(t, move, played.Move)
	assert.Equal(t, core.MarkX, played.Board[4])
}

func TestEventBus_PanickingSubscriberIsIsolated(t *testing.T) {
	bus := NewEventBus()

	bus.SubscribeFunc(TypeTurnStarted, func(Event) {
		panic("boom")
	})

	var delivered bool
	bus.SubscribeFunc(TypeTurnStarted, func(Event) {
		delivered = true
	})

	assert.NotPanics(t, func() {
		bus.Publish(NewTurnStartedEvent("match-1", 1, core.MarkX))
	})
	assert.True(t, delivered, "later handlers still run after a panic")
}
