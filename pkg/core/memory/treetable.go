package memory

import (
	"recordtable/pkg/common"
	"recordtable/pkg/core"

	"github.com/google/btree"
)

// TreeTable is a fixed-capacity ordered table over a B-tree. Keys are unique:
// inserting an existing key replaces its value. Effort is the number of key
// comparisons the tree made.
type TreeTable struct {
	tree     *btree.BTreeG[*common.Record]
	capacity int
	effort   int
}

func NewTreeTable(capacity, degree int) *TreeTable {
	if capacity <= 0 {
		panic("memory: table capacity must be positive")
	}
	if degree < 2 {
		degree = 2
	}
	tt := &TreeTable{capacity: capacity}
	tt.tree = btree.NewG(degree, func(a, b *common.Record) bool {
		tt.effort++
		return a.Key < b.Key
	})
	return tt
}

var _ core.Table = (*TreeTable)(nil)

func (tt *TreeTable) Type() string { return "Tree" }

func (tt *TreeTable) Insert(key common.KeyType, val common.ValueType) error {
	tt.effort = 0
	if tt.IsFull() && !tt.tree.Has(&common.Record{Key: key}) {
		return core.ErrTableFull
	}
	tt.tree.ReplaceOrInsert(common.NewRecord(key, val))
	return nil
}

func (tt *TreeTable) Find(key common.KeyType) (common.ValueType, bool) {
	tt.effort = 0
	res, ok := tt.tree.Get(&common.Record{Key: key})
	if !ok {
		return nil, false
	}
	return res.Value, true
}

func (tt *TreeTable) Delete(key common.KeyType) error {
	tt.effort = 0
	if tt.IsEmpty() {
		return core.ErrTableEmpty
	}
	if _, ok := tt.tree.Delete(&common.Record{Key: key}); !ok {
		return core.ErrKeyNotFound
	}
	return nil
}

func (tt *TreeTable) Iterator(fn func(rec *common.Record) bool) {
	tt.tree.Ascend(fn)
}

func (tt *TreeTable) IsFull() bool { return tt.tree.Len() >= tt.capacity }

func (tt *TreeTable) IsEmpty() bool { return tt.tree.Len() == 0 }

func (tt *TreeTable) Count() int { return tt.tree.Len() }

func (tt *TreeTable) Capacity() int { return tt.capacity }

func (tt *TreeTable) LastEffort() int { return tt.effort }
