package core

import (
	"errors"

	"recordtable/pkg/common"
)

var (
	ErrTableFull         = errors.New("table is full")
	ErrTableEmpty        = errors.New("table is empty")
	ErrKeyNotFound       = errors.New("key not found")
	ErrUnsupportedMethod = errors.New("unsupported sort method")
)

// Source 是可以被逐条拷贝的记录集合
type Source interface {
	Capacity() int
	// Iterator visits records in slot order until fn returns false.
	Iterator(fn func(rec *common.Record) bool)
}

// Table 抽象接口，屏蔽 Scan / Sort / Tree 三种表的差异
//
// A Table is not safe for concurrent use. LastEffort reports the cost of the
// most recent Insert, Find or Delete; its unit depends on the variant.
type Table interface {
	Source
	Insert(key common.KeyType, val common.ValueType) error
	Find(key common.KeyType) (common.ValueType, bool)
	Delete(key common.KeyType) error
	IsFull() bool
	IsEmpty() bool
	Count() int
	LastEffort() int
	Type() string // "Scan", "Sort", "Tree"
}
