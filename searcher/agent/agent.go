package agent

import (
	"fmt"

	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/searcher"

	"github.com/rs/zerolog/log"
)

type Agent interface {
	Name() string
	// FindMove returns a free column to play on b and performance metrics (if collected) from the search
	FindMove(b *game.Board) (int, metrics.SearchMetric)
}

type alphaBetaAgent struct {
	name   string
	engine *searcher.Negamax
}

// NewAlphaBetaAgent returns an agent that plays the column chosen by a negamax
// search of maxDepth plies. Search metrics are always collected.
func NewAlphaBetaAgent(name string, maxDepth int, options ...searcher.Option) Agent {
	options = append(options, searcher.WithDepth(maxDepth), searcher.WithMetrics())
	return &alphaBetaAgent{
		name:   name,
		engine: searcher.NewNegamax(options...),
	}
}

func (a *alphaBetaAgent) Name() string { return a.name }

func (a *alphaBetaAgent) FindMove(b *game.Board) (int, metrics.SearchMetric) {
	result := a.engine.Search(b)
	if !b.IsFree(result.Column) {
		panic(fmt.Sprintf("agent %s chose column %d, which is not free on\n%s", a.name, result.Column, b))
	}

	m := result.Metric
	log.Debug().
		Str("agent", a.name).
		Int("column", result.Column).
		Float64("value", result.Value).
		Int("nodes", m.Nodes).
		Int("cutoffs", m.Cutoffs).
		Dur("duration", m.Duration).
		Float64("nodes_per_second", m.NodesPerSecond()).
		Msg("move chosen")

	return result.Column, m
}
