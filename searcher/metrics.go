package searcher

import (
	"sync/atomic"
	"time"
)

type Metrics struct {
	StartTime          time.Time
	Duration           time.Duration
	MaxDepth           int
	Goroutines         int
	Pruning            bool
	Nodes              int64
	Evaluations        int64
	Cutoffs            int64
	ContractViolations int64
}

type MetricsCollector interface {
	Start(maxDepth, goroutines int, pruning bool)
	AddNode()
	AddEvaluation()
	AddCutoff()
	AddContractViolation()
	Complete() Metrics
}

type metricsCollector struct {
	startTime          time.Time
	maxDepth           int
	goroutines         int
	pruning            bool
	nodes              atomic.Int64
	evaluations        atomic.Int64
	cutoffs            atomic.Int64
	contractViolations atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(maxDepth, goroutines int, pruning bool) {
	m.startTime = time.Now()
	m.maxDepth = maxDepth
	m.goroutines = goroutines
	m.pruning = pruning
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) AddContractViolation() {
	m.contractViolations.Add(1)
}

func (m *metricsCollector) Complete() Metrics {
	return Metrics{
		StartTime:          m.startTime,
		Duration:           time.Since(m.startTime),
		MaxDepth:           m.maxDepth,
		Goroutines:         m.goroutines,
		Pruning:            m.pruning,
		Nodes:              m.nodes.Load(),
		Evaluations:        m.evaluations.Load(),
		Cutoffs:            m.cutoffs.Load(),
		ContractViolations: m.contractViolations.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(maxDepth, goroutines int, pruning bool) {}
func (m *noMetricsCollector) AddNode()                                    {}
func (m *noMetricsCollector) AddEvaluation()                              {}
func (m *noMetricsCollector) AddCutoff()                                  {}
func (m *noMetricsCollector) AddContractViolation()                       {}
func (m *noMetricsCollector) Complete() Metrics                           { return Metrics{} }
