package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove_Validate(t *testing.T) {
	board := boardFromPattern(t, "X...O....")

	tests := []struct {
		name    string
		move    Move
		wantErr error
	}{
		{"legal move", Move{Cell: 1, Mark: MarkO}, nil},
		{"occupied cell", Move{Cell: 0, Mark: MarkO}, ErrCellOccupied},
		{"negative cell", Move{Cell: -1, Mark: MarkX}, ErrCellOutOfRange},
		{"cell past end", Move{Cell: 9, Mark: MarkX}, ErrCellOutOfRange},
		{"empty mark", Move{Cell: 1, Mark: Empty}, ErrInvalidMark},
		// Bounds are checked before occupancy, so an out-of-range move
		// with a bad mark still reports the range error first.
		{"out of range wins over mark", Move{Cell: 42, Mark: Empty}, ErrCellOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.move.Validate(board)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "X@4", Move{Cell: 4, Mark: MarkX}.String())
	assert.Equal(t, "O@0", Move{Cell: 0, Mark: MarkO}.String())
}

func TestMark_Other(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Other())
	assert.Equal(t, MarkX, MarkO.Other())
	assert.Equal(t, Empty, Empty.Other())
}

func TestMark_String(t *testing.T) {
	assert.Equal(t, "X", MarkX.String())
	assert.Equal(t, "O", MarkO.String())
	assert.Equal(t, ".", Empty.String())
}
