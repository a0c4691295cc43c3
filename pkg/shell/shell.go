package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"recordtable/pkg/common"
	"recordtable/pkg/core"
	"recordtable/pkg/core/memory"
)

const (
	Prompt          = "table> "
	DefaultCapacity = 16
	dumpLimit       = 20
)

// Session holds the table an interactive user is driving.
type Session struct {
	table core.Table
	out   io.Writer
}

func NewSession(out io.Writer) *Session {
	return &Session{table: core.NewScanTable(DefaultCapacity), out: out}
}

func (s *Session) Table() core.Table {
	return s.table
}

// Exec runs one command line. It returns false when the user asked to quit.
func (s *Session) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}

	switch strings.ToLower(parts[0]) {
	case "new":
		s.handleNew(parts)
	case "put", "ins":
		s.handlePut(parts)
	case "get", "find":
		s.handleGet(parts)
	case "del", "rm":
		s.handleDel(parts)
	case "method":
		s.handleMethod(parts)
	case "sort":
		s.handleSort()
	case "assign":
		s.handleAssign(parts)
	case "dump":
		s.handleDump()
	case "stats":
		s.handleStats()
	case "help":
		s.printHelp()
	case "exit", "quit":
		fmt.Fprintln(s.out, "Bye!")
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: '%s'. Type 'help'.\n", parts[0])
	}
	return true
}

func (s *Session) handleNew(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(s.out, "Usage: new <scan|sort|tree> [capacity]")
		return
	}
	capacity := DefaultCapacity
	if len(parts) > 2 {
		n, err := strconv.Atoi(parts[2])
		if err != nil || n <= 0 {
			fmt.Fprintln(s.out, "Error: capacity must be a positive integer")
			return
		}
		capacity = n
	}

	switch strings.ToLower(parts[1]) {
	case "scan":
		s.table = core.NewScanTable(capacity)
	case "sort":
		s.table = core.NewSortTable(capacity)
	case "tree":
		s.table = memory.NewTreeTable(capacity, 2)
	default:
		fmt.Fprintf(s.out, "Error: unknown table type '%s'\n", parts[1])
		return
	}
	fmt.Fprintf(s.out, "OK: new %s table, capacity %d\n", s.table.Type(), capacity)
}

func (s *Session) handlePut(parts []string) {
	if len(parts) < 3 {
		fmt.Fprintln(s.out, "Usage: put <key> <value>")
		return
	}
	value := strings.Join(parts[2:], " ")
	if err := s.table.Insert(common.KeyType(parts[1]), common.ValueType(value)); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "OK (effort %d)\n", s.table.LastEffort())
}

func (s *Session) handleGet(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(s.out, "Usage: get <key>")
		return
	}
	val, ok := s.table.Find(common.KeyType(parts[1]))
	if !ok {
		fmt.Fprintf(s.out, "(not found) (effort %d)\n", s.table.LastEffort())
		return
	}
	fmt.Fprintf(s.out, "\"%s\" (effort %d)\n", string(val), s.table.LastEffort())
}

func (s *Session) handleDel(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(s.out, "Usage: del <key>")
		return
	}
	if err := s.table.Delete(common.KeyType(parts[1])); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Deleted (effort %d)\n", s.table.LastEffort())
}

func (s *Session) sortTable() (*core.SortTable, bool) {
	st, ok := s.table.(*core.SortTable)
	if !ok {
		fmt.Fprintf(s.out, "Error: current table is a %s table, not a sort table\n", s.table.Type())
	}
	return st, ok
}

func (s *Session) handleMethod(parts []string) {
	st, ok := s.sortTable()
	if !ok {
		return
	}
	if len(parts) < 2 {
		fmt.Fprintf(s.out, "Sort method: %s\n", st.SortMethod())
		return
	}
	m, err := core.ParseSortMethod(parts[1])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	st.SetSortMethod(m)
	fmt.Fprintf(s.out, "OK: sort method %s\n", m)
}

func (s *Session) handleSort() {
	st, ok := s.sortTable()
	if !ok {
		return
	}
	if err := st.SortData(); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Sorted %d records (effort %d)\n", st.Count(), st.LastEffort())
}

// handleAssign replaces the current table with a sorted copy of it.
func (s *Session) handleAssign(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(s.out, "Usage: assign <insertion|merge|quick>")
		return
	}
	m, err := core.ParseSortMethod(parts[1])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	st := core.NewSortTable(s.table.Capacity())
	st.SetSortMethod(m)
	if err := st.AssignFrom(s.table); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.table = st
	fmt.Fprintf(s.out, "OK: copied %d records into a sort table (effort %d)\n", st.Count(), st.LastEffort())
}

func (s *Session) handleDump() {
	n := 0
	s.table.Iterator(func(rec *common.Record) bool {
		if n == dumpLimit {
			fmt.Fprintf(s.out, "... and %d more\n", s.table.Count()-dumpLimit)
			return false
		}
		fmt.Fprintf(s.out, "  [%d] %s -> %s\n", n, rec.Key, string(rec.Value))
		n++
		return true
	})
	if n == 0 {
		fmt.Fprintln(s.out, "(empty)")
	}
}

func (s *Session) handleStats() {
	t := s.table
	fmt.Fprintf(s.out, "type=%s count=%d capacity=%d full=%v empty=%v last_effort=%d",
		t.Type(), t.Count(), t.Capacity(), t.IsFull(), t.IsEmpty(), t.LastEffort())
	if st, ok := t.(*core.SortTable); ok {
		fmt.Fprintf(s.out, " method=%s sorted=%v", st.SortMethod(), st.IsSorted())
	}
	fmt.Fprintln(s.out)
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `
Commands:
  new <scan|sort|tree> [cap]   Replace the current table
  put <key> <value>            Insert record
  get <key>                    Find record
  del <key>                    Delete record
  method [name]                Show/set sort method (sort table)
  sort                         Sort the records (sort table)
  assign <method>              Copy the table into a sorted sort table
  dump                         List records in slot order
  stats                        Show counters
  exit                         Exit`)
}
