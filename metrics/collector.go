package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarises one advisor estimation.
type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Episodes   int // resolved missions, summed over plans
	NoOps      int // episodes in which nothing deployed
}

type Collector interface {
	Start(goroutines int)
	AddEpisode()
	AddNoOp()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	episodes   atomic.Int32
	noOps      atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.noOps.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNoOp() {
	m.noOps.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Episodes:   int(m.episodes.Load()),
		NoOps:      int(m.noOps.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)   {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddNoOp()               {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
