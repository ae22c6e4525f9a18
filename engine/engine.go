package engine

import (
	"connectn/experiments/metrics"
	"connectn/game"

	"github.com/pkg/errors"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

type Engine interface {
	// Run plays a game till there's a winner or the board is full
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
