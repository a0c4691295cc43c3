package monitor

import (
	"math"
	"time"
)

// EffortStats accumulates the per-operation effort and wall time of one
// benchmark phase.
type EffortStats struct {
	Ops      int
	Total    int
	Min      int
	Max      int
	Failures int
	Elapsed  time.Duration
}

func NewEffortStats() *EffortStats {
	return &EffortStats{Min: math.MaxInt}
}

func (es *EffortStats) Record(effort int) {
	es.Ops++
	es.Total += effort
	if effort < es.Min {
		es.Min = effort
	}
	if effort > es.Max {
		es.Max = effort
	}
}

// RecordFailure counts an operation that returned an error. Its effort is
// still recorded.
func (es *EffortStats) RecordFailure(effort int) {
	es.Failures++
	es.Record(effort)
}

// Time runs fn and adds its duration to Elapsed.
func (es *EffortStats) Time(fn func()) {
	start := time.Now()
	fn()
	es.Elapsed += time.Since(start)
}

func (es *EffortStats) MinEffort() int {
	if es.Ops == 0 {
		return 0
	}
	return es.Min
}

func (es *EffortStats) Avg() float64 {
	if es.Ops == 0 {
		return 0.0
	}
	return float64(es.Total) / float64(es.Ops)
}
