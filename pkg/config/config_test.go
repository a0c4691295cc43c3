package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"recordtable/pkg/core"
)

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/bench.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
	// Load with empty path uses default search (may use defaults if no config file)
	cfg, _ := Load("")
	if cfg.Workload.RecordCount != 10000 {
		t.Errorf("default record_count: got %d", cfg.Workload.RecordCount)
	}
	if cfg.Workload.KeyPrefix != "key_" {
		t.Errorf("default key_prefix: got %s", cfg.Workload.KeyPrefix)
	}
	if cfg.Bench.TreeDegree != 32 {
		t.Errorf("default tree_degree: got %d", cfg.Bench.TreeDegree)
	}
	methods, err := cfg.SortMethods()
	if err != nil {
		t.Fatalf("default sort methods: %v", err)
	}
	if len(methods) != 3 || methods[0] != core.SortInsertion || methods[2] != core.SortQuick {
		t.Errorf("default sort methods: got %v", methods)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	content := `
workload:
  record_count: 500
  key_prefix: "k"
  seed: 17
  marks: [5, 4]
bench:
  sort_methods: [quick]
  parallelism: 3
results:
  path: "results.db"
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workload.RecordCount != 500 || cfg.Workload.Seed != 17 {
		t.Errorf("workload: got %+v", cfg.Workload)
	}
	if len(cfg.Workload.Marks) != 2 || cfg.Workload.Marks[0] != 5 {
		t.Errorf("marks: got %v", cfg.Workload.Marks)
	}
	if len(cfg.Bench.SortMethods) != 1 || cfg.Bench.Parallelism != 3 {
		t.Errorf("bench: got %+v", cfg.Bench)
	}
	if cfg.Bench.TreeDegree != 32 {
		t.Errorf("tree_degree default not applied: got %d", cfg.Bench.TreeDegree)
	}
	if cfg.Results.Path != "results.db" || cfg.Log.Level != "debug" {
		t.Errorf("results/log: got %+v %+v", cfg.Results, cfg.Log)
	}
}

func TestLoadRejectsUnknownSortMethod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("bench:\n  sort_methods: [bubble]\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, core.ErrUnsupportedMethod) {
		t.Fatalf("expected ErrUnsupportedMethod, got %v", err)
	}
}
