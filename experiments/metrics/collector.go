package metrics

import (
	"kalah/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	Nodes     int // Positions expanded, root children included
	Leaves    int // Positions scored by the static evaluation
	Pruned    int // Candidate moves discarded as illegal
	BestScore int
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer on a draw or when the turn cap is hit
	ScoreDiff      int         // Player 1's store minus player 2's store
	Ended          bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddPruned()
	SetBestScore(score int)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	pruned    atomic.Int64
	bestScore atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.pruned.Store(0)
	m.bestScore.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddPruned() {
	m.pruned.Add(1)
}

func (m *collector) SetBestScore(score int) {
	m.bestScore.Store(int64(score))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		Pruned:    int(m.pruned.Load()),
		BestScore: int(m.bestScore.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddPruned()             {}
func (m *dummyCollector) SetBestScore(score int) {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
