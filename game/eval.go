package game

import (
	"sort"

	"github.com/pkg/errors"
)

// Compass directions as (dRow, dCol) with row 0 at the bottom: N, NE, E, SE, S, SW, W, NW
var compass = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// LineEvaluator rewards tokens that sit on open, extensible lines. Each token
// looks winLength-1 cells out in all 8 directions: a direction blocked by the
// board edge or an opposing token counts 0, otherwise every own token on it
// counts 2 and every empty cell counts 1.
type LineEvaluator struct{}

func (LineEvaluator) Score(b *Board, player Player) int {
	return lineValue(b, player) - lineValue(b, player.Opponent())
}

func lineValue(b *Board, t Player) int {
	sum := 0
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.cells[b.index(row, col)] != t {
				continue
			}
			for _, dir := range compass {
				sum += countLine(b, row, col, dir[0], dir[1], t)
			}
		}
	}
	return sum
}

func countLine(b *Board, row, col, dRow, dCol int, t Player) int {
	sum := 0
	for i := 1; i < b.winLength; i++ {
		r, c := row+dRow*i, col+dCol*i
		if !b.InBounds(r, c) {
			return 0
		}
		switch b.cells[b.index(r, c)] {
		case t:
			sum += 2
		case Empty:
			sum++
		default:
			return 0
		}
	}
	return sum
}

// ZeroEvaluator scores every position 0, leaving only wins and losses to the search.
type ZeroEvaluator struct{}

func (ZeroEvaluator) Score(*Board, Player) int { return 0 }

// MaxLineScore bounds the magnitude of LineEvaluator on boards shaped like b:
// every cell holding a token that scores 2 per step in all 8 directions.
func MaxLineScore(b *Board) int {
	return b.width * b.height * len(compass) * 2 * (b.winLength - 1)
}

var evaluators = map[string]Evaluator{
	"line": LineEvaluator{},
	"zero": ZeroEvaluator{},
}

// EvaluatorByName returns a registered evaluator.
func EvaluatorByName(name string) (Evaluator, error) {
	e, ok := evaluators[name]
	if !ok {
		return nil, errors.Errorf("unknown evaluator %q (known: %v)", name, EvaluatorNames())
	}
	return e, nil
}

// EvaluatorNames lists the registered evaluators in sorted order.
func EvaluatorNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EvaluatorName returns the registered name of e, or "custom".
func EvaluatorName(e Evaluator) string {
	switch e.(type) {
	case LineEvaluator:
		return "line"
	case ZeroEvaluator:
		return "zero"
	default:
		return "custom"
	}
}
