package testutil

import (
	"testing"

	"github.com/kpmorrow/tictactoe/internal/game/core"
)

// BoardFromPattern builds a board from a 9-character string where 'X',
// 'O' and '.' map to MarkX, MarkO and Empty. Cell 0 is the first
// character, e.g. "XX..O.O.." puts X on cells 0 and 1.
func BoardFromPattern(t *testing.T, pattern string) *core.Board {
	t.Helper()
	if len(pattern) != core.NumCells {
		t.Fatalf("pattern must be %d characters, got %d", core.NumCells, len(pattern))
	}

	b := core.NewBoard()
	for i, ch := range pattern {
		switch ch {
		case 'X':
			b.Cells[i] = core.MarkX
		case 'O':
			b.Cells[i] = core.MarkO
		case '.':
			// stays Empty
		default:
			t.Fatalf("bad pattern char %q at %d", ch, i)
		}
	}
	return b
}

// DrawnBoard returns a full board with no three-in-a-row.
func DrawnBoard(t *testing.T) *core.Board {
	t.Helper()
	return BoardFromPattern(t, "XXOOOXXXO")
}
