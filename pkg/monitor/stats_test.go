package monitor

import (
	"testing"
	"time"
)

func TestEffortStats(t *testing.T) {
	es := NewEffortStats()
	if es.MinEffort() != 0 || es.Avg() != 0 {
		t.Fatalf("empty stats: min=%d avg=%f", es.MinEffort(), es.Avg())
	}

	for _, e := range []int{4, 1, 7} {
		es.Record(e)
	}
	es.RecordFailure(8)

	if es.Ops != 4 || es.Failures != 1 {
		t.Errorf("ops=%d failures=%d", es.Ops, es.Failures)
	}
	if es.MinEffort() != 1 || es.Max != 8 || es.Total != 20 {
		t.Errorf("min=%d max=%d total=%d", es.MinEffort(), es.Max, es.Total)
	}
	if es.Avg() != 5.0 {
		t.Errorf("avg: got %f", es.Avg())
	}
}

func TestEffortStatsTime(t *testing.T) {
	es := NewEffortStats()
	es.Time(func() { time.Sleep(2 * time.Millisecond) })
	es.Time(func() {})
	if es.Elapsed < 2*time.Millisecond {
		t.Errorf("elapsed too small: %v", es.Elapsed)
	}
}
