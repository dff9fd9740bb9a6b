package states

import "fmt"

// MatchPhase represents the current phase of a match.
type MatchPhase int

const (
	// PhaseOngoing - moves are being played.
	PhaseOngoing MatchPhase = iota

	// PhaseWon - a seat completed a winning line. Terminal.
	PhaseWon

	// PhaseDrawn - the board filled with no winner. Terminal.
	PhaseDrawn
)

// String returns the string representation of a MatchPhase.
func (p MatchPhase) String() string {
	switch p {
	case PhaseOngoing:
		return "Ongoing"
	case PhaseWon:
		return "Won"
	case PhaseDrawn:
		return "Drawn"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsTerminal returns true if the phase represents a terminal state.
// A match only ends in PhaseWon or PhaseDrawn; there is no resignation
// or timeout.
func (p MatchPhase) IsTerminal() bool {
	return p == PhaseWon || p == PhaseDrawn
}

// CanReceiveMoves returns true if the match accepts moves in this phase.
func (p MatchPhase) CanReceiveMoves() bool {
	return p == PhaseOngoing
}

// AllowedTransitions returns the valid phases this phase can transition to.
func (p MatchPhase) AllowedTransitions() []MatchPhase {
	switch p {
	case PhaseOngoing:
		return []MatchPhase{PhaseWon, PhaseDrawn}
	default:
		return []MatchPhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target
// phase is allowed.
func (p MatchPhase) CanTransitionTo(target MatchPhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a MatchPhase.
func ParsePhase(s string) (MatchPhase, error) {
	switch s {
	case "Ongoing":
		return PhaseOngoing, nil
	case "Won":
		return PhaseWon, nil
	case "Drawn":
		return PhaseDrawn, nil
	default:
		return PhaseOngoing, fmt.Errorf("unknown phase: %s", s)
	}
}
