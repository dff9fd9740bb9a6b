package strategy

import (
	"math/rand"
	"time"

	"github.com/kpmorrow/tictactoe/internal/game/core"
)

// WeightedPriority plays by positional preference: center first, then
// the four corners in random order, then the four edges in random
// order. The preference sequence is held in a working queue that is
// consumed front-to-back across calls and reseeded (with fresh corner
// and edge permutations) whenever it runs out. The queue belongs to
// this instance alone; a strategy must not be shared between seats.
type WeightedPriority struct {
	rng   *rand.Rand
	queue []int
}

// NewWeightedPriority creates a new weighted-priority strategy with a
// freshly seeded queue. rng may be nil for a clock-seeded source.
func NewWeightedPriority(rng *rand.Rand) *WeightedPriority {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &WeightedPriority{
		rng:   rng,
		queue: make([]int, 0, core.NumCells),
	}
	s.reseed()
	return s
}

func (s *WeightedPriority) Name() string { return NameWeighted }

// reseed rebuilds the working queue: center, then a fresh random
// permutation of the corners, then a fresh random permutation of the
// edges. The two permutations are drawn independently; tiers never
// interleave.
func (s *WeightedPriority) reseed() {
	corners := core.CornerCells
	edges := core.EdgeCells
	s.rng.Shuffle(len(corners), func(i, j int) {
		corners[i], corners[j] = corners[j], corners[i]
	})
	s.rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	s.queue = s.queue[:0]
	s.queue = append(s.queue, core.CenterCell)
	s.queue = append(s.queue, corners[:]...)
	s.queue = append(s.queue, edges[:]...)
}

// ChooseMove pops cells off the front of the queue, discarding ones no
// longer legal, until it finds a playable cell. An exhausted queue is
// reseeded and consumed again; since a reseeded queue covers all 9
// cells, this terminates whenever any legal cell exists.
func (s *WeightedPriority) ChooseMove(b *core.Board) (int, error) {
	if b.IsFull() {
		return -1, core.ErrNoLegalMove
	}

	for {
		for len(s.queue) > 0 {
			cell := s.queue[0]
			s.queue = s.queue[1:]
			if b.IsLegal(cell) {
				return cell, nil
			}
		}
		s.reseed()
	}
}

// queueLen reports the remaining queue length for white-box tests.
func (s *WeightedPriority) queueLen() int {
	return len(s.queue)
}
