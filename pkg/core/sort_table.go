package core

import "recordtable/pkg/common"

// SortTable keeps records ordered by key and finds them by binary search.
//
// Insert does not sort. After a bulk load the caller must run SortData before
// Find or Delete; on an unsorted table their results are unspecified. IsSorted
// reports which state the table is in.
type SortTable struct {
	slotArray
	method SortMethod
	sorted bool
}

func NewSortTable(capacity int) *SortTable {
	return &SortTable{
		slotArray: newSlotArray(capacity),
		sorted:    true,
	}
}

func (t *SortTable) Type() string { return "Sort" }

func (t *SortTable) SetSortMethod(m SortMethod) {
	t.method = m
}

func (t *SortTable) SortMethod() SortMethod {
	return t.method
}

func (t *SortTable) IsSorted() bool {
	return t.sorted
}

func (t *SortTable) ResetEffort() {
	t.effort = 0
}

// Insert places the record at the cursor, shifting later records right. A
// cursor left by Find is the key's insertion point, so Find followed by Insert
// of the same key keeps the table sorted. With no cursor the record is
// appended, and consecutive inserts keep appending.
func (t *SortTable) Insert(key common.KeyType, val common.ValueType) error {
	t.effort = 0
	if t.IsFull() {
		return ErrTableFull
	}
	pos := t.cursor
	if pos < 0 || pos > t.count {
		pos = t.count
	}
	copy(t.records[pos+1:t.count+1], t.records[pos:t.count])
	t.records[pos] = common.NewRecord(key, val)
	t.count++
	t.cursor = pos + 1
	if t.sorted && !t.inOrderAt(pos) {
		t.sorted = false
	}
	return nil
}

func (t *SortTable) inOrderAt(pos int) bool {
	key := t.records[pos].Key
	if pos > 0 && t.records[pos-1].Key > key {
		return false
	}
	if pos < t.count-1 && key > t.records[pos+1].Key {
		return false
	}
	return true
}

// Find resolves key to the lowest slot whose key is >= key and leaves the
// cursor there whether or not the key matched. Among duplicates the first one
// wins. Effort is the number of halving steps.
func (t *SortTable) Find(key common.KeyType) (common.ValueType, bool) {
	t.effort = 0
	lo, hi := 0, t.count
	for lo < hi {
		t.effort++
		mid := int(uint(lo+hi) >> 1)
		if t.records[mid].Key < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	t.cursor = lo
	if lo < t.count && t.records[lo].Key == key {
		return t.records[lo].Value, true
	}
	return nil, false
}

// Delete closes the gap by shifting later records left, so order is kept.
func (t *SortTable) Delete(key common.KeyType) error {
	if t.IsEmpty() {
		t.effort = 0
		return ErrTableEmpty
	}
	if _, ok := t.Find(key); !ok {
		return ErrKeyNotFound
	}
	copy(t.records[t.cursor:t.count-1], t.records[t.cursor+1:t.count])
	t.count--
	t.records[t.count] = nil
	t.resetCursor()
	return nil
}

// SortData sorts the occupied slots with the selected method. LastEffort then
// reports the sort's effort.
func (t *SortTable) SortData() error {
	t.effort = 0
	sort, ok := t.method.sorter()
	if !ok {
		return ErrUnsupportedMethod
	}
	t.effort = sort(t.records[:t.count])
	t.sorted = true
	t.resetCursor()
	return nil
}

// AssignFrom replaces the contents of t with deep copies of src's records,
// resized to src's capacity, and sorts them with the current method. The
// records are kept even when the sort fails.
func (t *SortTable) AssignFrom(src Source) error {
	if self, ok := src.(*SortTable); ok && self == t {
		return t.SortData()
	}
	capacity := src.Capacity()
	if capacity <= 0 {
		capacity = 1
	}
	t.reset(capacity)
	src.Iterator(func(rec *common.Record) bool {
		if t.count == capacity {
			return false
		}
		t.records[t.count] = rec.Clone()
		t.count++
		return true
	})
	t.sorted = t.count <= 1
	return t.SortData()
}
