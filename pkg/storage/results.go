package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var ErrRunNotFound = errors.New("benchmark run not found")

// Run identifies one benchmark invocation.
type Run struct {
	ID          string
	StartedAt   time.Time
	RecordCount int
	Seed        int64
}

// SuiteResult is the measurement of one phase (insert, find, delete, sort)
// of one suite.
type SuiteResult struct {
	Suite       string // "scan", "sort", "tree"
	Method      string // sort method, empty for the other suites
	Op          string
	Duration    time.Duration
	Ops         int
	Failures    int
	MinEffort   int
	MaxEffort   int
	AvgEffort   float64
	TotalEffort int
	Fingerprint uint64
}

// ResultStore keeps benchmark reports in a SQLite file.
type ResultStore struct {
	db *sql.DB
	mu sync.Mutex
}

func OpenResultStore(path string) (*ResultStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER,
		record_count INTEGER,
		seed INTEGER
	);
	CREATE TABLE IF NOT EXISTS suites (
		run_id TEXT,
		suite TEXT,
		method TEXT,
		op TEXT,
		duration_ns INTEGER,
		ops INTEGER,
		failures INTEGER,
		min_effort INTEGER,
		max_effort INTEGER,
		avg_effort REAL,
		total_effort INTEGER,
		fingerprint TEXT
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &ResultStore{db: db}, nil
}

// SaveRun stores run and its results in one transaction. A run without an ID
// gets a fresh uuid, which is returned.
func (s *ResultStore) SaveRun(run Run, results []SuiteResult) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}

	if _, err := tx.Exec("INSERT INTO runs (id, started_at, record_count, seed) VALUES (?, ?, ?, ?)",
		run.ID, run.StartedAt.UnixNano(), run.RecordCount, run.Seed); err != nil {
		tx.Rollback()
		return "", err
	}

	stmt, err := tx.Prepare(`INSERT INTO suites
		(run_id, suite, method, op, duration_ns, ops, failures, min_effort, max_effort, avg_effort, total_effort, fingerprint)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return "", err
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.Exec(run.ID, r.Suite, r.Method, r.Op, int64(r.Duration), r.Ops, r.Failures,
			r.MinEffort, r.MaxEffort, r.AvgEffort, r.TotalEffort,
			strconv.FormatUint(r.Fingerprint, 16)); err != nil {
			tx.Rollback()
			return "", err
		}
	}

	return run.ID, tx.Commit()
}

func (s *ResultStore) LoadRun(id string) (Run, []SuiteResult, error) {
	var (
		run     = Run{ID: id}
		started int64
	)
	err := s.db.QueryRow("SELECT started_at, record_count, seed FROM runs WHERE id = ?", id).
		Scan(&started, &run.RecordCount, &run.Seed)
	if err == sql.ErrNoRows {
		return run, nil, ErrRunNotFound
	}
	if err != nil {
		return run, nil, err
	}
	run.StartedAt = time.Unix(0, started)

	rows, err := s.db.Query(`SELECT suite, method, op, duration_ns, ops, failures, min_effort, max_effort,
		avg_effort, total_effort, fingerprint FROM suites WHERE run_id = ? ORDER BY rowid ASC`, id)
	if err != nil {
		return run, nil, err
	}
	defer rows.Close()

	var results []SuiteResult
	for rows.Next() {
		var (
			r   SuiteResult
			dur int64
			fp  string
		)
		if err := rows.Scan(&r.Suite, &r.Method, &r.Op, &dur, &r.Ops, &r.Failures, &r.MinEffort, &r.MaxEffort,
			&r.AvgEffort, &r.TotalEffort, &fp); err != nil {
			return run, nil, err
		}
		r.Duration = time.Duration(dur)
		if r.Fingerprint, err = strconv.ParseUint(fp, 16, 64); err != nil {
			return run, nil, fmt.Errorf("fingerprint %q: %w", fp, err)
		}
		results = append(results, r)
	}
	return run, results, rows.Err()
}

// ListRuns returns every stored run, newest first.
func (s *ResultStore) ListRuns() ([]Run, error) {
	rows, err := s.db.Query("SELECT id, started_at, record_count, seed FROM runs ORDER BY started_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			started int64
		)
		if err := rows.Scan(&r.ID, &started, &r.RecordCount, &r.Seed); err != nil {
			return nil, err
		}
		r.StartedAt = time.Unix(0, started)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *ResultStore) Close() error {
	return s.db.Close()
}
