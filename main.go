package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"connectn/config"
	"connectn/engine"
	"connectn/experiments"
	"connectn/game"
	"connectn/searcher"
	"connectn/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: connectn <command> [flags]

commands:
  move        choose a column for a board given as a JSON grid (row 0 at the bottom)
  play        play one game between two agents and print the final board
  experiment  run a depth, evaluator or throughput experiment and store CSV records
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(cfg.LogLevel)

	switch os.Args[1] {
	case "move":
		err = runMove(cfg, os.Args[2:])
	case "play":
		err = runPlay(cfg, os.Args[2:])
	case "experiment":
		err = runExperiment(cfg, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", os.Args[1])
	}
}

func runMove(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("move", flag.ExitOnError)
	grid := fs.String("grid", "", "board as a JSON array of rows, 0 empty, 1 and 2 for the players")
	player := fs.Int("player", 1, "player to move (1 or 2)")
	winLength := fs.Int("win", cfg.WinLength, "number of tokens in a row needed to win")
	depth := fs.Int("depth", cfg.Depth, "maximum search depth, counting the root as 1")
	goroutines := fs.Int("goroutines", cfg.Goroutines, "root-parallel search workers")
	eval := fs.String("eval", cfg.Evaluator, fmt.Sprintf("heuristic evaluator %v", game.EvaluatorNames()))
	fs.Parse(args)

	var cells [][]int
	if err := json.Unmarshal([]byte(*grid), &cells); err != nil {
		return errors.Wrap(err, "failed to parse grid")
	}
	b, err := game.FromGrid(cells, *winLength, game.Player(*player))
	if err != nil {
		return err
	}
	if b.Outcome().IsTerminal() {
		return errors.Errorf("game is already over: %s", b.Outcome())
	}
	evaluator, err := game.EvaluatorByName(*eval)
	if err != nil {
		return err
	}
	if *depth < 1 || *goroutines < 1 {
		return errors.Errorf("depth and goroutines must be positive, got %d and %d", *depth, *goroutines)
	}

	a := agent.NewAlphaBetaAgent("cli", *depth, searcher.WithEvaluator(evaluator), searcher.WithGoroutines(*goroutines))
	col, m := a.FindMove(b)
	log.Info().Int("nodes", m.Nodes).Dur("duration", m.Duration).Msgf("%.0f nodes/s", m.NodesPerSecond())
	fmt.Println(col)
	return nil
}

func runPlay(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	spec1 := fs.String("agent1", fmt.Sprintf("alphabeta:name=agent1,depth=%d,eval=%s,goroutines=%d", cfg.Depth, cfg.Evaluator, cfg.Goroutines), "agent playing first")
	spec2 := fs.String("agent2", "random:name=agent2", "agent playing second")
	width := fs.Int("width", cfg.Width, "board width")
	height := fs.Int("height", cfg.Height, "board height")
	winLength := fs.Int("win", cfg.WinLength, "number of tokens in a row needed to win")
	fs.Parse(args)

	b, err := game.NewBoard(*width, *height, *winLength)
	if err != nil {
		return err
	}
	var agents [2]agent.Agent
	for i, spec := range []string{*spec1, *spec2} {
		if agents[i], err = agent.Parse(spec); err != nil {
			return err
		}
	}

	e := engine.NewLocalEngine(b, agents)
	outcome, gameMetric, _ := e.Run()

	fmt.Print(e.Board())
	if winner := gameMetric.Winner; winner != "" {
		fmt.Printf("%s (%s) after %d moves\n", outcome, winner, gameMetric.TotalMoves)
	} else {
		fmt.Printf("%s after %d moves\n", outcome, gameMetric.TotalMoves)
	}
	return nil
}

func runExperiment(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	name := fs.String("name", "depth", "experiment to run: depth, evaluator or throughput")
	games := fs.Int("games", cfg.NumGames, "games per match up")
	dir := fs.String("out", cfg.ResultsDir, "directory for experiment records")
	fs.Parse(args)

	x := experiments.Experiment{
		Width:      cfg.Width,
		Height:     cfg.Height,
		WinLength:  cfg.WinLength,
		NumGames:   *games,
		ResultsDir: *dir,
	}

	var out string
	var err error
	switch *name {
	case "depth":
		out, err = x.RunDepthExperiment()
	case "evaluator":
		out, err = x.RunEvaluatorExperiment()
	case "throughput":
		out, err = x.RunThroughputExperiment()
	default:
		return errors.Errorf("unknown experiment %q", *name)
	}
	if err != nil {
		return err
	}
	log.Info().Msgf("records stored in %s", out)
	return nil
}
