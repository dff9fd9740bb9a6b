package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpmorrow/tictactoe/internal/testutil"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		wantType interface{}
	}{
		{NameFirstOpen, &FirstOpen{}},
		{NameRandom, &Random{}},
		{NameWeighted, &WeightedPriority{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.name, testutil.NewTestRNG(1))

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, s)
			assert.Equal(t, tt.name, s.Name())
		})
	}
}

func TestNew_UnknownName(t *testing.T) {
	s, err := New("minimax", nil)

	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Nil(t, s)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{NameFirstOpen, NameRandom, NameWeighted}, Names())
}
