package experiments

import (
	"connectn/engine"
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/meta"
	"connectn/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Experiment plays match ups between agents on boards of one shape and stores
// the records under ResultsDir.
type Experiment struct {
	Width      int
	Height     int
	WinLength  int
	NumGames   int // Per match up
	ResultsDir string
}

func Default() Experiment {
	return Experiment{
		Width:      meta.WIDTH,
		Height:     meta.HEIGHT,
		WinLength:  meta.WIN_LENGTH,
		NumGames:   meta.NUM_GAMES,
		ResultsDir: meta.RESULTS_DIR,
	}
}

// RunDepthExperiment pits line agents searching 2 to 6 plies against a depth 2 baseline.
func (x Experiment) RunDepthExperiment() (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Spec: "alphabeta:name=baseline,depth=2"}
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Spec: "alphabeta:name=depth2,depth=2"}, // Baseline equivalent
		{ID: 2, Spec: "alphabeta:name=depth3,depth=3"},
		{ID: 3, Spec: "alphabeta:name=depth4,depth=4"},
		{ID: 4, Spec: "alphabeta:name=depth5,depth=5"},
		{ID: 5, Spec: "alphabeta:name=depth6,depth=6"},
	}

	// Each matchup pairs the baseline agent against a deeper agent
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return x.RunMatchUps("depth", append(depthConfigs, baseline), matchUps)
}

// RunEvaluatorExperiment compares the line heuristic with a zero heuristic and a random player.
func (x Experiment) RunEvaluatorExperiment() (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Spec: "alphabeta:name=zero,depth=4,eval=zero"},
		{ID: 2, Spec: "alphabeta:name=line,depth=4,eval=line"},
		{ID: 3, Spec: "random:name=random,seed=1"},
	}
	matchUps := [][2]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[1], configs[2]},
		{configs[0], configs[2]},
	}

	return x.RunMatchUps("evaluator", configs, matchUps)
}

// RunThroughputExperiment measures nodes per second as root workers are added.
func (x Experiment) RunThroughputExperiment() (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Spec: "alphabeta:name=g1,depth=6,goroutines=1"},
		{ID: 2, Spec: "alphabeta:name=g2,depth=6,goroutines=2"},
		{ID: 3, Spec: "alphabeta:name=g4,depth=6,goroutines=4"},
		{ID: 4, Spec: "alphabeta:name=g8,depth=6,goroutines=8"},
	}
	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	return x.RunMatchUps("throughput", configs, matchUps)
}

// RunMatchUps plays NumGames games per match up, alternating which agent
// moves first, and writes the agent configs, game records and move records.
// It returns the directory holding the records.
func (x Experiment) RunMatchUps(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) (string, error) {
	if _, err := game.NewBoard(x.Width, x.Height, x.WinLength); err != nil {
		return "", err
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		var agents [2]agent.Agent
		for i, config := range matchUp {
			a, err := agent.Parse(config.Spec)
			if err != nil {
				return "", errors.WithMessagef(err, "match up %d", mi+1)
			}
			agents[i] = a
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < x.NumGames; i++ {
			// Alternate the starting agent
			seats, ids := agents, [2]int{matchUp[0].ID, matchUp[1].ID}
			if i%2 == 1 {
				seats[0], seats[1] = seats[1], seats[0]
				ids[0], ids[1] = ids[1], ids[0]
			}

			outcome, gameMetric, moveMetrics := x.runGame(seats)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     ids[0],
				Agent2:     ids[1],
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					Agent:      ids[int(mm.Player)-1],
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s", mi+1, len(matchUps), i+1, outcome)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(x.ResultsDir, name)
	if err != nil {
		return "", errors.WithMessage(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", errors.WithMessage(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", errors.WithMessage(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", errors.WithMessage(err, "failed to write move records")
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game on an empty board, seats[0] moving first
func (x Experiment) runGame(seats [2]agent.Agent) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	b, err := game.NewBoard(x.Width, x.Height, x.WinLength)
	if err != nil {
		panic(err) // Checked by RunMatchUps
	}
	return engine.NewLocalEngine(b, seats).Run()
}
