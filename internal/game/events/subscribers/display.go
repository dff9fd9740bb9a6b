package subscribers

import (
	"fmt"
	"io"
	"strings"

	"github.com/kpmorrow/tictactoe/internal/game/core"
	"github.com/kpmorrow/tictactoe/internal/game/events"
)

// DisplaySubscriber renders board snapshots to a writer after every
// move and at game end. It is the presentation collaborator; the match
// itself never writes to the terminal.
type DisplaySubscriber struct {
	id  string
	out io.Writer
}

// NewDisplaySubscriber creates a display subscriber writing to out.
func NewDisplaySubscriber(id string, out io.Writer) *DisplaySubscriber {
	return &DisplaySubscriber{id: id, out: out}
}

// ID returns the subscriber's unique identifier.
func (ds *DisplaySubscriber) ID() string {
	return ds.id
}

// InterestedIn returns true for events that change what the user sees.
func (ds *DisplaySubscriber) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeMovePlayed, events.TypeMatchWon, events.TypeMatchDrawn:
		return true
	default:
		return false
	}
}

// HandleEvent renders the event to the writer.
func (ds *DisplaySubscriber) HandleEvent(event events.Event) {
	switch e := event.(type) {
	case *events.MovePlayedEvent:
		fmt.Fprintf(ds.out, "Move %d: %s\n%s\n", e.TurnNumber, e.Move, renderCells(e.Board))
	case *events.MatchWonEvent:
		fmt.Fprintf(ds.out, "%s wins in %d moves\n%s\n", e.Winner, e.TotalMoves, renderCells(e.Board))
	case *events.MatchDrawnEvent:
		fmt.Fprintf(ds.out, "Draw after %d moves\n%s\n", e.TotalMoves, renderCells(e.Board))
	}
}

func renderCells(cells [core.NumCells]core.Mark) string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(cells[row*3+col].String())
			if col < 2 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
