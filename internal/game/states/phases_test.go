package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPhase_String(t *testing.T) {
	tests := []struct {
		phase    MatchPhase
		expected string
	}{
		{PhaseOngoing, "Ongoing"},
		{PhaseWon, "Won"},
		{PhaseDrawn, "Drawn"},
		{MatchPhase(42), "Unknown(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestMatchPhase_IsTerminal(t *testing.T) {
	assert.False(t, PhaseOngoing.IsTerminal())
	assert.True(t, PhaseWon.IsTerminal())
	assert.True(t, PhaseDrawn.IsTerminal())
}

func TestMatchPhase_CanReceiveMoves(t *testing.T) {
	assert.True(t, PhaseOngoing.CanReceiveMoves())
	assert.False(t, PhaseWon.CanReceiveMoves())
	assert.False(t, PhaseDrawn.CanReceiveMoves())
}

func TestMatchPhase_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    MatchPhase
		to      MatchPhase
		allowed bool
	}{
		{"ongoing to won", PhaseOngoing, PhaseWon, true},
		{"ongoing to drawn", PhaseOngoing, PhaseDrawn, true},
		{"ongoing to ongoing", PhaseOngoing, PhaseOngoing, false},
		{"won is terminal", PhaseWon, PhaseOngoing, false},
		{"drawn is terminal", PhaseDrawn, PhaseWon, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParsePhase(t *testing.T) {
	for _, phase := range []MatchPhase{PhaseOngoing, PhaseWon, PhaseDrawn} {
		parsed, err := ParsePhase(phase.String())
		require.NoError(t, err)
		assert.Equal(t, phase, parsed)
	}

	_, err := ParsePhase("Paused")
	assert.Error(t, err)
}
