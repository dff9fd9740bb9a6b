package subscribers_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpmorrow/tictactoe/internal/game/core"
	"github.com/kpmorrow/tictactoe/internal/game/events"
	"github.com/kpmorrow/tictactoe/internal/game/events/subscribers"
)

func TestDisplaySubscriber_Interest(t *testing.T) {
	ds := subscribers.NewDisplaySubscriber("display", &bytes.Buffer{})

	assert.Equal(t, "display", ds.ID())
	assert.True(t, ds.InterestedIn(events.TypeMovePlayed))
	assert.True(t, ds.InterestedIn(events.TypeMatchWon))
	assert.True(t, ds.InterestedIn(events.TypeMatchDrawn))
	assert.False(t, ds.InterestedIn(events.TypeTurnStarted))
	assert.False(t, ds.InterestedIn(events.TypeMatchStarted))
}

func TestDisplaySubscriber_RendersMove(t *testing.T) {
	var buf bytes.Buffer
	ds := subscribers.NewDisplaySubscriber("display", &buf)

	board := [core.NumCells]core.Mark{0: core.MarkX, 1: core.MarkX, 4: core.MarkO, 6: core.MarkO}
	ds.HandleEvent(events.NewMovePlayedEvent("match-1", 4, core.Move{Cell: 1, Mark: core.MarkX}, board))

	out := buf.String()
	assert.Contains(t, out, "Move 4: X@1")
	assert.Contains(t, out, "X X .\n. O .\nO . .\n")
}

func TestDisplaySubscriber_RendersOutcome(t *testing.T) {
	var buf bytes.Buffer
	ds := subscribers.NewDisplaySubscriber("display", &buf)

	ds.HandleEvent(events.NewMatchWonEvent("match-1", core.MarkX, 5, [core.NumCells]core.Mark{}, 0))
	assert.Contains(t, buf.String(), "X wins in 5 moves")

	buf.Reset()
	ds.HandleEvent(events.NewMatchDrawnEvent("match-1", 9, [core.NumCells]core.Mark{}, 0))
	assert.Contains(t, buf.String(), "Draw after 9 moves")
}
