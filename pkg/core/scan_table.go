package core

import "recordtable/pkg/common"

// ScanTable is an unordered table. Find is a linear scan and its effort is
// the number of slots examined.
type ScanTable struct {
	slotArray
}

func NewScanTable(capacity int) *ScanTable {
	return &ScanTable{slotArray: newSlotArray(capacity)}
}

func (t *ScanTable) Type() string { return "Scan" }

func (t *ScanTable) Insert(key common.KeyType, val common.ValueType) error {
	t.effort = 0
	if t.IsFull() {
		return ErrTableFull
	}
	t.records[t.count] = common.NewRecord(key, val)
	t.cursor = t.count
	t.count++
	return nil
}

func (t *ScanTable) Find(key common.KeyType) (common.ValueType, bool) {
	t.effort = 0
	for i := 0; i < t.count; i++ {
		t.effort++
		if t.records[i].Key == key {
			t.cursor = i
			return t.records[i].Value, true
		}
	}
	t.cursor = t.count
	return nil, false
}

// Delete moves the last record into the freed slot, so insertion order is not
// preserved.
func (t *ScanTable) Delete(key common.KeyType) error {
	if _, ok := t.Find(key); !ok {
		return ErrKeyNotFound
	}
	last := t.count - 1
	t.records[t.cursor] = t.records[last]
	t.records[last] = nil
	t.count--
	t.resetCursor()
	return nil
}
