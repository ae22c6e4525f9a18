package agent

import (
	"sync"

	"connectn/experiments/metrics"
	"connectn/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	name string
	mu   sync.Mutex
	rng  *rand.Rand
}

// NewRandomAgent returns a baseline agent playing a uniformly random free
// column. Agents with the same seed play the same sequence of choices.
func NewRandomAgent(name string, seed uint64) Agent {
	return &randomAgent{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) Name() string { return a.name }

func (a *randomAgent) FindMove(b *game.Board) (int, metrics.SearchMetric) {
	free := b.FreeColumns()
	if len(free) == 0 {
		panic("no free columns to choose from")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return free[a.rng.Intn(len(free))], metrics.SearchMetric{}
}
