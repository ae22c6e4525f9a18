package engine

import (
	"time"

	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	board   *game.Board
	agents  [2]agent.Agent // agents[0] plays PlayerOne
	outcome game.Outcome
}

// NewLocalEngine returns an engine playing agents against each other from
// board, which may already hold tokens. The engine owns board from then on.
func NewLocalEngine(board *game.Board, agents [2]agent.Agent) *LocalEngine {
	if board == nil {
		panic("engine needs a board")
	}
	if agents[0] == nil || agents[1] == nil {
		panic("engine needs two agents")
	}
	return &LocalEngine{
		board:   board,
		agents:  agents,
		outcome: board.Outcome(),
	}
}

// Board returns a copy of the current board.
func (e *LocalEngine) Board() *game.Board {
	return e.board.Copy()
}

func (e *LocalEngine) Outcome() game.Outcome {
	return e.outcome
}

// Play drops the current player's token into col.
func (e *LocalEngine) Play(col int) error {
	if e.outcome.IsTerminal() {
		return errors.Wrapf(ErrGameOver, "%s, column %d rejected", e.outcome, col)
	}
	if !e.board.IsFree(col) {
		return errors.Wrapf(ErrIllegalMove, "column %d is full or outside a board of width %d", col, e.board.Width())
	}

	e.board.Drop(col)
	e.outcome = e.board.Outcome()
	return nil
}

// Run executes the entire game loop until the game is over.
func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.board.Player(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%s (%s) is starting", e.agent(e.board.Player()).Name(), e.board.Player())

	var moveMetrics []metrics.MoveMetric
	for step := 1; !e.outcome.IsTerminal(); step++ {
		player := e.board.Player()
		current := e.agent(player)

		col, searchMetric := current.FindMove(e.board.Copy())
		if err := e.Play(col); err != nil {
			log.Warn().Err(err).Str("agent", current.Name()).Int("column", col).Msg("agent forfeits")
			e.outcome = game.Win(player.Opponent())
			gameMetric.Forfeit = true
			break
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Column:       col,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %s played column %d\n%s", step, current.Name(), col, e.board)
	}

	gameMetric.Outcome = e.outcome
	if winner := e.outcome.Winner(); winner != game.Empty {
		gameMetric.Winner = e.agent(winner).Name()
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, e.outcome)
	return e.outcome, gameMetric, moveMetrics
}

func (e *LocalEngine) agent(p game.Player) agent.Agent {
	return e.agents[int(p)-1]
}
