package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestResultStoreRoundTrip(t *testing.T) {
	rs, err := OpenResultStore(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rs.Close()

	started := time.Unix(1700000000, 123)
	in := []SuiteResult{
		{Suite: "scan", Op: "find", Duration: 3 * time.Millisecond, Ops: 10, MinEffort: 1, MaxEffort: 10, AvgEffort: 5.5, TotalEffort: 55},
		{Suite: "sort", Method: "quick", Op: "sort", Duration: time.Millisecond, Ops: 1, MinEffort: 40, MaxEffort: 40, AvgEffort: 40, TotalEffort: 40, Fingerprint: 0xdeadbeefcafef00d},
	}
	id, err := rs.SaveRun(Run{StartedAt: started, RecordCount: 10, Seed: 7}, in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated run id")
	}

	run, out, err := rs.LoadRun(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !run.StartedAt.Equal(started) || run.RecordCount != 10 || run.Seed != 7 {
		t.Errorf("run mismatch: %+v", run)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d results, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("result %d: got %+v, want %+v", i, out[i], in[i])
		}
	}

	runs, err := rs.ListRuns()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != id {
		t.Errorf("list runs: got %+v", runs)
	}
}

func TestResultStoreMissingRun(t *testing.T) {
	rs, err := OpenResultStore(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rs.Close()

	if _, _, err := rs.LoadRun("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}

func TestResultStoreKeepsExplicitID(t *testing.T) {
	rs, err := OpenResultStore(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rs.Close()

	id, err := rs.SaveRun(Run{ID: "fixed", StartedAt: time.Now()}, nil)
	if err != nil || id != "fixed" {
		t.Fatalf("save: id=%q err=%v", id, err)
	}
	if _, err := rs.SaveRun(Run{ID: "fixed", StartedAt: time.Now()}, nil); err == nil {
		t.Fatal("expected duplicate run id to fail")
	}
}
