package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"recordtable/pkg/common"
	"recordtable/pkg/config"
	"recordtable/pkg/core"
	"recordtable/pkg/core/memory"
	"recordtable/pkg/monitor"
	"recordtable/pkg/storage"
	"recordtable/pkg/workload"
)

const (
	SuiteScan = "scan"
	SuiteSort = "sort"
	SuiteTree = "tree"

	OpInsert = "insert"
	OpFind   = "find"
	OpDelete = "delete"
	OpSort   = "sort"
)

var ErrSortMismatch = errors.New("sort methods produced different orders")

// Report is the outcome of one Runner.Run.
type Report struct {
	Run     storage.Run
	Results []storage.SuiteResult
}

// Runner drives every table variant through the same insert/find/delete
// workload and measures time and effort per phase.
type Runner struct {
	cfg    *config.Config
	logger *zap.Logger
}

func NewRunner(cfg *config.Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run executes the scan, sort and tree suites. Suites run concurrently up to
// Bench.Parallelism; each builds and owns its own tables.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	methods, err := r.cfg.SortMethods()
	if err != nil {
		return nil, err
	}
	if r.cfg.Workload.RecordCount <= 0 {
		return nil, fmt.Errorf("workload.record_count must be positive, got %d", r.cfg.Workload.RecordCount)
	}

	gen := workload.Generator{
		Prefix: r.cfg.Workload.KeyPrefix,
		Count:  r.cfg.Workload.RecordCount,
		Seed:   r.cfg.Workload.Seed,
		Marks:  workload.Marks(r.cfg.Workload.Marks),
	}
	recs, seed := gen.Records()
	rep := &Report{Run: storage.Run{
		StartedAt:   time.Now(),
		RecordCount: len(recs),
		Seed:        seed,
	}}
	r.logger.Info("benchmark started",
		zap.Int("records", len(recs)),
		zap.Int64("seed", seed),
		zap.Int("parallelism", r.cfg.Bench.Parallelism))

	suites := []func() ([]storage.SuiteResult, error){
		func() ([]storage.SuiteResult, error) { return r.scanSuite(recs) },
	}
	for _, m := range methods {
		suites = append(suites, func() ([]storage.SuiteResult, error) { return r.sortSuite(recs, m) })
	}
	suites = append(suites, func() ([]storage.SuiteResult, error) { return r.treeSuite(recs) })

	out := make([][]storage.SuiteResult, len(suites))
	g, ctx := errgroup.WithContext(ctx)
	if limit := r.cfg.Bench.Parallelism; limit > 0 {
		g.SetLimit(limit)
	}
	for i, suite := range suites {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := suite()
			out[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, res := range out {
		rep.Results = append(rep.Results, res...)
	}
	if err := checkSortAgreement(rep.Results); err != nil {
		r.logger.Error("sort results disagree", zap.Error(err))
		return rep, err
	}
	r.logger.Info("benchmark finished", zap.Int("results", len(rep.Results)))
	return rep, nil
}

func (r *Runner) scanSuite(recs []common.Record) ([]storage.SuiteResult, error) {
	tbl := core.NewScanTable(len(recs))
	ins, err := fill(tbl, recs)
	if err != nil {
		return nil, fmt.Errorf("scan suite: %w", err)
	}
	fp := workload.Fingerprint(tbl)
	find := findAll(tbl, recs)

	delTbl := core.NewScanTable(len(recs))
	if _, err := fill(delTbl, recs); err != nil {
		return nil, fmt.Errorf("scan suite: %w", err)
	}
	del := deleteAll(delTbl, recs)

	res := []storage.SuiteResult{
		result(SuiteScan, "", OpInsert, ins, fp),
		result(SuiteScan, "", OpFind, find, 0),
		result(SuiteScan, "", OpDelete, del, 0),
	}
	r.logSuite(res)
	return res, nil
}

func (r *Runner) sortSuite(recs []common.Record, m core.SortMethod) ([]storage.SuiteResult, error) {
	tbl := core.NewSortTable(len(recs))
	tbl.SetSortMethod(m)
	ins, err := fill(tbl, recs)
	if err != nil {
		return nil, fmt.Errorf("sort suite %s: %w", m, err)
	}

	tbl.ResetEffort()
	srt := monitor.NewEffortStats()
	srt.Time(func() { err = tbl.SortData() })
	if err != nil {
		return nil, fmt.Errorf("sort suite %s: %w", m, err)
	}
	srt.Record(tbl.LastEffort())
	fp := workload.Fingerprint(tbl)

	find := findAll(tbl, recs)
	del := deleteAll(tbl, recs)

	res := []storage.SuiteResult{
		result(SuiteSort, m.String(), OpInsert, ins, 0),
		result(SuiteSort, m.String(), OpSort, srt, fp),
		result(SuiteSort, m.String(), OpFind, find, 0),
		result(SuiteSort, m.String(), OpDelete, del, 0),
	}
	r.logSuite(res)
	return res, nil
}

func (r *Runner) treeSuite(recs []common.Record) ([]storage.SuiteResult, error) {
	tbl := memory.NewTreeTable(len(recs), r.cfg.Bench.TreeDegree)
	ins, err := fill(tbl, recs)
	if err != nil {
		return nil, fmt.Errorf("tree suite: %w", err)
	}
	fp := workload.Fingerprint(tbl)
	find := findAll(tbl, recs)
	del := deleteAll(tbl, recs)

	res := []storage.SuiteResult{
		result(SuiteTree, "", OpInsert, ins, fp),
		result(SuiteTree, "", OpFind, find, 0),
		result(SuiteTree, "", OpDelete, del, 0),
	}
	r.logSuite(res)
	return res, nil
}

func (r *Runner) logSuite(res []storage.SuiteResult) {
	for _, s := range res {
		r.logger.Debug("phase finished",
			zap.String("suite", s.Suite),
			zap.String("method", s.Method),
			zap.String("op", s.Op),
			zap.Duration("duration", s.Duration),
			zap.Int("failures", s.Failures),
			zap.Float64("avg_effort", s.AvgEffort))
	}
	r.logger.Info("suite finished", zap.String("suite", res[0].Suite), zap.String("method", res[0].Method))
}

func fill(tbl core.Table, recs []common.Record) (*monitor.EffortStats, error) {
	es := monitor.NewEffortStats()
	var err error
	es.Time(func() {
		for _, rec := range recs {
			if err = tbl.Insert(rec.Key, rec.Value); err != nil {
				err = fmt.Errorf("insert %s: %w", rec.Key, err)
				return
			}
			es.Record(tbl.LastEffort())
		}
	})
	return es, err
}

func findAll(tbl core.Table, recs []common.Record) *monitor.EffortStats {
	es := monitor.NewEffortStats()
	es.Time(func() {
		for _, rec := range recs {
			if _, ok := tbl.Find(rec.Key); ok {
				es.Record(tbl.LastEffort())
			} else {
				es.RecordFailure(tbl.LastEffort())
			}
		}
	})
	return es
}

func deleteAll(tbl core.Table, recs []common.Record) *monitor.EffortStats {
	es := monitor.NewEffortStats()
	es.Time(func() {
		for _, rec := range recs {
			if err := tbl.Delete(rec.Key); err != nil {
				es.RecordFailure(tbl.LastEffort())
			} else {
				es.Record(tbl.LastEffort())
			}
		}
	})
	return es
}

func result(suite, method, op string, es *monitor.EffortStats, fp uint64) storage.SuiteResult {
	return storage.SuiteResult{
		Suite:       suite,
		Method:      method,
		Op:          op,
		Duration:    es.Elapsed,
		Ops:         es.Ops,
		Failures:    es.Failures,
		MinEffort:   es.MinEffort(),
		MaxEffort:   es.Max,
		AvgEffort:   es.Avg(),
		TotalEffort: es.Total,
		Fingerprint: fp,
	}
}

// checkSortAgreement verifies every sort method left the records in the same
// order.
func checkSortAgreement(results []storage.SuiteResult) error {
	var (
		want  uint64
		first string
	)
	for _, s := range results {
		if s.Suite != SuiteSort || s.Op != OpSort {
			continue
		}
		if first == "" {
			want, first = s.Fingerprint, s.Method
			continue
		}
		if s.Fingerprint != want {
			return fmt.Errorf("%w: %s vs %s", ErrSortMismatch, first, s.Method)
		}
	}
	return nil
}
