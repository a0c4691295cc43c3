package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"recordtable/pkg/core"
)

type Config struct {
	Workload WorkloadConfig `yaml:"workload"`
	Bench    BenchConfig    `yaml:"bench"`
	Results  ResultsConfig  `yaml:"results"`
	Log      LogConfig      `yaml:"log"`
}

type WorkloadConfig struct {
	RecordCount int      `yaml:"record_count"` // table capacity and number of generated records
	KeyPrefix   string   `yaml:"key_prefix"`
	Seed        int64    `yaml:"seed"` // 0 = time based
	Marks       []uint16 `yaml:"marks"`
}

type BenchConfig struct {
	SortMethods []string `yaml:"sort_methods"`
	TreeDegree  int      `yaml:"tree_degree"`
	Parallelism int      `yaml:"parallelism"`
}

type ResultsConfig struct {
	Path string `yaml:"path"` // SQLite file, empty disables persistence
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Workload: WorkloadConfig{
			RecordCount: 10000,
			KeyPrefix:   "key_",
			Marks:       []uint16{1, 2, 3, 4, 5},
		},
		Bench: BenchConfig{
			SortMethods: []string{"insertion", "merge", "quick"},
			TreeDegree:  32,
			Parallelism: 1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range []string{"configs/bench.yaml", "bench.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, cfg.Validate()
			}
		}
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, cfg.Validate()
}

func applyDefaults(cfg *Config) {
	if cfg.Workload.RecordCount <= 0 {
		cfg.Workload.RecordCount = 10000
	}
	if len(cfg.Bench.SortMethods) == 0 {
		cfg.Bench.SortMethods = []string{"insertion", "merge", "quick"}
	}
	if cfg.Bench.TreeDegree < 2 {
		cfg.Bench.TreeDegree = 32
	}
	if cfg.Bench.Parallelism <= 0 {
		cfg.Bench.Parallelism = 1
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// SortMethods parses Bench.SortMethods.
func (c *Config) SortMethods() ([]core.SortMethod, error) {
	methods := make([]core.SortMethod, 0, len(c.Bench.SortMethods))
	for _, name := range c.Bench.SortMethods {
		m, err := core.ParseSortMethod(name)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}

func (c *Config) Validate() error {
	if _, err := c.SortMethods(); err != nil {
		return fmt.Errorf("bench.sort_methods: %w", err)
	}
	return nil
}
