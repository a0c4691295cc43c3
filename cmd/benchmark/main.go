package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"recordtable/pkg/bench"
	"recordtable/pkg/config"
	"recordtable/pkg/storage"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default: configs/bench.yaml or bench.yaml if present)")
	nRecords := flag.Int("n", 0, "Number of records (overrides workload.record_count)")
	seed := flag.Int64("seed", 0, "Shuffle seed (overrides workload.seed)")
	resultsPath := flag.String("results", "", "SQLite file to store the run in (overrides results.path)")
	parallel := flag.Int("parallel", 0, "Suites run concurrently (overrides bench.parallelism)")
	list := flag.Bool("list", false, "List stored runs and exit")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *nRecords > 0 {
		cfg.Workload.RecordCount = *nRecords
	}
	if *seed != 0 {
		cfg.Workload.Seed = *seed
	}
	if *resultsPath != "" {
		cfg.Results.Path = *resultsPath
	}
	if *parallel > 0 {
		cfg.Bench.Parallelism = *parallel
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := bench.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger, *list); err != nil {
		logger.Error("benchmark failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger, list bool) error {
	var rs *storage.ResultStore
	if cfg.Results.Path != "" {
		var err error
		if rs, err = storage.OpenResultStore(cfg.Results.Path); err != nil {
			return err
		}
		defer rs.Close()
	}

	if list {
		if rs == nil {
			return fmt.Errorf("-list needs a results store (-results or results.path)")
		}
		return listRuns(rs)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Record Table Benchmark (N=%d)\n", cfg.Workload.RecordCount)
	fmt.Println("---------------------------------------------------")

	rep, err := bench.NewRunner(cfg, logger).Run(ctx)
	if err != nil {
		return err
	}

	if rs != nil {
		id, err := rs.SaveRun(rep.Run, rep.Results)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		rep.Run.ID = id
		logger.Info("run stored", zap.String("run_id", id), zap.String("path", cfg.Results.Path))
	}

	rep.Print(os.Stdout)
	return nil
}

func listRuns(rs *storage.ResultStore) error {
	runs, err := rs.ListRuns()
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  N=%d seed=%d\n", r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.RecordCount, r.Seed)
	}
	return nil
}
