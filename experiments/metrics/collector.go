package metrics

import (
	"connectn/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Evaluator  string
	Pruning    bool
	Duration   time.Duration
	Nodes      int
	Leaves     int
	Cutoffs    int
}

// NodesPerSecond returns the search throughput, 0 when nothing was timed.
func (m SearchMetric) NodesPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Nodes) / m.Duration.Seconds()
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Column int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Outcome        game.Outcome
	Winner         string // Agent name, "" on a draw
	Forfeit        bool   // Game ended because an agent chose an illegal column
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type AgentConfig struct {
	ID   int
	Spec string // Agent spec string, see agent.Parse
}

// Collector gathers the metrics of exactly one search. Counters are atomic so
// root-parallel workers of that search can share it.
type Collector interface {
	Start(depth, goroutines int, evaluator string, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	evaluator  string
	pruning    bool
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int, evaluator string, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.evaluator = evaluator
	m.pruning = pruning
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Evaluator:  m.evaluator,
		Pruning:    m.pruning,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int, evaluator string, pruning bool) {}
func (m *dummyCollector) AddNode()                                                   {}
func (m *dummyCollector) AddLeaf()                                                   {}
func (m *dummyCollector) AddCutoff()                                                 {}
func (m *dummyCollector) Complete() SearchMetric                                     { return SearchMetric{} }
