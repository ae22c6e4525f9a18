package agent

import (
	"sort"
	"strconv"
	"strings"

	"connectn/game"
	"connectn/meta"
	"connectn/searcher"

	"github.com/pkg/errors"
)

// Parse creates an agent from its configuration string: the agent kind followed
// by a colon and a comma-separated list of key=value parameters, for example
//
//	alphabeta:name=Group20,depth=6,eval=line,goroutines=4
//	exhaustive:depth=4
//	random:seed=7
//
// Missing parameters take their defaults from meta and the name defaults to the kind.
func Parse(config string) (Agent, error) {
	kind, rest, _ := strings.Cut(config, ":")
	params, err := splitParams(rest)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse agent %q", config)
	}

	name := popParam(params, "name", kind)
	var agent Agent
	switch kind {
	case "alphabeta", "exhaustive":
		agent, err = parseSearchAgent(kind, name, params)
	case "random":
		var seed int
		if seed, err = popInt(params, "seed", 0); err == nil {
			agent = NewRandomAgent(name, uint64(seed))
		}
	default:
		return nil, errors.Errorf("unknown agent kind %q", kind)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create agent %q", config)
	}

	if len(params) > 0 {
		unknown := make([]string, 0, len(params))
		for key := range params {
			unknown = append(unknown, key)
		}
		sort.Strings(unknown)
		return nil, errors.Errorf("unknown parameters %v for agent %q", unknown, config)
	}
	return agent, nil
}

func parseSearchAgent(kind, name string, params map[string]string) (Agent, error) {
	depth, err := popInt(params, "depth", meta.DEPTH)
	if err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, errors.Errorf("depth must be positive, got %d", depth)
	}
	goroutines, err := popInt(params, "goroutines", meta.GO_ROUTINES)
	if err != nil {
		return nil, err
	}
	if goroutines < 1 {
		return nil, errors.Errorf("goroutines must be positive, got %d", goroutines)
	}
	evaluator, err := game.EvaluatorByName(popParam(params, "eval", meta.EVALUATOR))
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{searcher.WithEvaluator(evaluator), searcher.WithGoroutines(goroutines)}
	if kind == "exhaustive" {
		options = append(options, searcher.WithoutPruning())
	}
	return NewAlphaBetaAgent(name, depth, options...), nil
}

func splitParams(config string) (map[string]string, error) {
	params := make(map[string]string)
	if config == "" {
		return params, nil
	}
	for _, part := range strings.Split(config, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("parameter %q is not of the form key=value", part)
		}
		params[key] = value
	}
	return params, nil
}

func popParam(params map[string]string, key, defaultValue string) string {
	value, ok := params[key]
	delete(params, key)
	if !ok || value == "" {
		return defaultValue
	}
	return value
}

func popInt(params map[string]string, key string, defaultValue int) (int, error) {
	value, ok := params[key]
	if !ok {
		return defaultValue, nil
	}
	delete(params, key)
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %s=%q to int", key, value)
	}
	return parsed, nil
}
