package core

import "recordtable/pkg/common"

// noCursor marks the cursor as undefined.
const noCursor = -1

// slotArray is the fixed-capacity bookkeeping shared by ScanTable and
// SortTable. Slots [0, count) hold records, [count, cap) are nil.
type slotArray struct {
	records []*common.Record
	count   int
	effort  int
	cursor  int
}

func newSlotArray(capacity int) slotArray {
	if capacity <= 0 {
		panic("core: table capacity must be positive")
	}
	return slotArray{
		records: make([]*common.Record, capacity),
		cursor:  noCursor,
	}
}

func (s *slotArray) IsFull() bool {
	return s.count >= len(s.records)
}

func (s *slotArray) IsEmpty() bool {
	return s.count == 0
}

func (s *slotArray) Count() int {
	return s.count
}

func (s *slotArray) Capacity() int {
	return len(s.records)
}

func (s *slotArray) LastEffort() int {
	return s.effort
}

// Cursor returns the slot located by the last operation, or -1 when undefined.
func (s *slotArray) Cursor() int {
	return s.cursor
}

func (s *slotArray) Iterator(fn func(rec *common.Record) bool) {
	for i := 0; i < s.count; i++ {
		if !fn(s.records[i]) {
			return
		}
	}
}

func (s *slotArray) resetCursor() {
	s.cursor = noCursor
}

// reset drops every record and re-allocates the slot array.
func (s *slotArray) reset(capacity int) {
	s.records = make([]*common.Record, capacity)
	s.count = 0
	s.effort = 0
	s.cursor = noCursor
}
