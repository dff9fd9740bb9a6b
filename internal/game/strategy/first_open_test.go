package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpmorrow/tictactoe/internal/game/core"
	"github.com/kpmorrow/tictactoe/internal/testutil"
)

func TestFirstOpen_ChooseMove(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{"empty board picks cell 0", ".........", 0},
		{"skips occupied prefix", "XO.......", 2},
		{"only last cell open", "XXOOOXXX.", 8},
		{"gap in the middle", "XO.OX....", 2},
	}

	s := NewFirstOpen()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardFromPattern(t, tt.pattern)
			cell, err := s.ChooseMove(board)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cell)
		})
	}
}

func TestFirstOpen_NoLegalMove(t *testing.T) {
	s := NewFirstOpen()
	cell, err := s.ChooseMove(testutil.DrawnBoard(t))

	assert.ErrorIs(t, err, core.ErrNoLegalMove)
	assert.Equal(t, -1, cell)
}

func TestFirstOpen_Deterministic(t *testing.T) {
	s := NewFirstOpen()
	board := testutil.BoardFromPattern(t, "XX..O.O..")

	first, err := s.ChooseMove(board)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		cell, err := s.ChooseMove(board)
		require.NoError(t, err)
		assert.Equal(t, first, cell, "same board must yield same cell")
	}
}
