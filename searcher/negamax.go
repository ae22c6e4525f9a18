package searcher

import (
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/meta"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

type Option func(n *Negamax)

// Negamax is a depth-limited alpha-beta negamax engine. It holds configuration
// only; every Search call owns its board copy and metrics, so one engine can
// serve repeated or concurrent searches.
type Negamax struct {
	depth      int
	goroutines int
	evaluator  game.Evaluator
	pruning    bool
	winScore   float64
	metrics    bool
	orderer    *Orderer
}

type Result struct {
	Value  float64
	Column int // -1 when the board is already terminal
	Metric metrics.SearchMetric
}

// WithDepth sets the maximum search depth, counting the root as depth 1.
func WithDepth(depth int) Option {
	return func(n *Negamax) {
		n.depth = depth
	}
}

// WithGoroutines searches the root moves on up to goroutines workers.
func WithGoroutines(goroutines int) Option {
	return func(n *Negamax) {
		n.goroutines = goroutines
	}
}

func WithEvaluator(evaluator game.Evaluator) Option {
	return func(n *Negamax) {
		if evaluator != nil {
			n.evaluator = evaluator
		}
	}
}

// WithoutPruning turns the search into a plain minimax over the full tree.
func WithoutPruning() Option {
	return func(n *Negamax) {
		n.pruning = false
	}
}

// WithWinScore fixes the undiscounted value of a win. By default it is scaled
// from the board so that any win outranks every heuristic score.
func WithWinScore(score float64) Option {
	return func(n *Negamax) {
		if score > 0 {
			n.winScore = score
		}
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = true
	}
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{ // Default values
		depth:      meta.DEPTH,
		goroutines: meta.GO_ROUTINES,
		evaluator:  game.LineEvaluator{},
		pruning:    true,
		orderer:    NewOrderer(),
	}
	for _, option := range options {
		option(n)
	}
	if n.depth < 1 {
		panic(fmt.Sprintf("search depth must be positive, got %d", n.depth))
	}
	if n.goroutines < 1 {
		panic(fmt.Sprintf("goroutines must be positive, got %d", n.goroutines))
	}
	return n
}

func (n *Negamax) Depth() int                { return n.depth }
func (n *Negamax) Evaluator() game.Evaluator { return n.evaluator }

// Search returns the value of b for the player to move and the column of the
// best first move. Ties go to the column visited first in center-out order.
func (n *Negamax) Search(b *game.Board) Result {
	collector := metrics.NewDummyCollector()
	if n.metrics {
		collector = metrics.NewCollector()
	}
	collector.Start(n.depth, n.goroutines, game.EvaluatorName(n.evaluator), n.pruning)

	s := &search{
		// The root is always expanded, so a depth of 1 still looks one move ahead
		maxDepth:  max(n.depth, 2),
		evaluator: n.evaluator,
		pruning:   n.pruning,
		winScore:  n.winScore,
		order:     n.orderer.Order(b.Width()),
		metrics:   collector,
	}
	if s.winScore == 0 {
		s.winScore = float64(game.MaxLineScore(b)+1) * float64(s.maxDepth)
	}

	var value float64
	var column int
	if n.goroutines > 1 {
		value, column = s.parallel(b, n.goroutines)
	} else {
		value, column = s.negamax(b.Copy(), math.Inf(-1), math.Inf(1), 1, b.Player())
	}

	return Result{Value: value, Column: column, Metric: collector.Complete()}
}

type search struct {
	maxDepth  int
	evaluator game.Evaluator
	pruning   bool
	winScore  float64
	order     []int
	metrics   metrics.Collector
}

// negamax scores b for player, who is to move at the given depth. The board is
// mutated with Drop/Undo and is restored before returning.
func (s *search) negamax(b *game.Board, alpha, beta float64, depth int, player game.Player) (float64, int) {
	s.metrics.AddNode()

	outcome := b.Outcome()
	opponent := player.Opponent()

	switch outcome.Winner() {
	case player:
		s.metrics.AddLeaf()
		return s.winScore / float64(depth), -1
	case opponent:
		s.metrics.AddLeaf()
		return -s.winScore / float64(depth), -1
	}
	// Max depth, or no free columns (draw)
	if depth >= s.maxDepth || b.Full() {
		s.metrics.AddLeaf()
		return float64(s.evaluator.Score(b, player)), -1
	}

	value := math.Inf(-1)
	action := -1
	for _, col := range s.order {
		if !b.IsFree(col) {
			continue
		}
		b.Drop(col)
		nv, _ := s.negamax(b, -beta, -alpha, depth+1, opponent)
		b.Undo(col)

		// Strictly greater keeps the earliest column on ties
		if -nv > value {
			value = -nv
			action = col
		}
		if !s.pruning {
			continue
		}

		alpha = max(alpha, value)
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return value, action
}

// parallel searches every root move with a full window on its own board copy.
// Exact child values make the merged result identical to the sequential search.
func (s *search) parallel(b *game.Board, goroutines int) (float64, int) {
	player := b.Player()
	if b.Outcome().IsTerminal() {
		return s.negamax(b.Copy(), math.Inf(-1), math.Inf(1), 1, player)
	}
	s.metrics.AddNode()

	columns := make([]int, 0, len(s.order))
	for _, col := range s.order {
		if b.IsFree(col) {
			columns = append(columns, col)
		}
	}

	values := make([]float64, len(columns))
	var g errgroup.Group
	g.SetLimit(goroutines)
	for i, col := range columns {
		i, col := i, col
		g.Go(func() error {
			child := b.Play(col)
			nv, _ := s.negamax(child, math.Inf(-1), math.Inf(1), 2, player.Opponent())
			values[i] = -nv
			return nil
		})
	}
	_ = g.Wait()

	value := math.Inf(-1)
	action := -1
	for i, col := range columns {
		if values[i] > value {
			value = values[i]
			action = col
		}
	}
	return value, action
}
