package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"recordtable/pkg/storage"
)

var opTitles = map[string]string{
	OpInsert: "Insert",
	OpFind:   "Search",
	OpDelete: "Delete",
	OpSort:   "Sort",
}

var suiteTitles = map[string]string{
	SuiteScan: "ScanTable",
	SuiteSort: "SortTable",
	SuiteTree: "TreeTable",
}

// Print writes a human readable summary of rep, one block per suite.
func (rep *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "Records: %s  Seed: %d\n", humanize.Comma(int64(rep.Run.RecordCount)), rep.Run.Seed)
	if rep.Run.ID != "" {
		fmt.Fprintf(w, "Run: %s\n", rep.Run.ID)
	}

	var suite, method string
	for _, s := range rep.Results {
		if s.Suite != suite || s.Method != method {
			suite, method = s.Suite, s.Method
			fmt.Fprintf(w, "\n=== %s", suiteTitles[s.Suite])
			if s.Method != "" {
				fmt.Fprintf(w, " (%s sort)", s.Method)
			}
			fmt.Fprintln(w, " ===")
		}
		printPhase(w, s)
	}
}

func printPhase(w io.Writer, s storage.SuiteResult) {
	title := opTitles[s.Op]
	fmt.Fprintf(w, "%s Time: %s\n", title, formatMillis(s.Duration))
	switch {
	case s.Op == OpSort:
		fmt.Fprintf(w, "%s Steps: %s\n", title, humanize.Comma(int64(s.TotalEffort)))
	case s.Op == OpInsert:
		// inserts perform no comparisons in the array tables
		if s.TotalEffort == 0 {
			return
		}
		fallthrough
	default:
		fmt.Fprintf(w, "%s Efficiency:\n", title)
		fmt.Fprintf(w, "  Max steps: %s\n", humanize.Comma(int64(s.MaxEffort)))
		fmt.Fprintf(w, "  Min steps: %s\n", humanize.Comma(int64(s.MinEffort)))
		fmt.Fprintf(w, "  Avg steps: %s\n", humanize.CommafWithDigits(s.AvgEffort, 2))
	}
	if s.Failures > 0 {
		fmt.Fprintf(w, "  Failures: %s\n", humanize.Comma(int64(s.Failures)))
	}
}

func formatMillis(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)
	return humanize.CommafWithDigits(ms, 3) + " ms"
}
