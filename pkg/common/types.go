package common

import "fmt"

// KeyType is the record key. Keys are compared with the built-in string order.
type KeyType string

// ValueType is the opaque record payload.
type ValueType []byte

// Record is the unit stored in a table slot.
type Record struct {
	Key   KeyType
	Value ValueType
}

// NewRecord builds a record that owns a private copy of val.
func NewRecord(key KeyType, val ValueType) *Record {
	return &Record{Key: key, Value: val.Clone()}
}

// Clone returns a deep copy of the record. The copy never shares the payload
// backing array with r.
func (r *Record) Clone() *Record {
	return &Record{Key: r.Key, Value: r.Value.Clone()}
}

// Clone returns a copy of v with its own backing array. nil stays nil.
func (v ValueType) Clone() ValueType {
	if v == nil {
		return nil
	}
	out := make(ValueType, len(v))
	copy(out, v)
	return out
}

// String 方便调试打印
func (r *Record) String() string {
	return fmt.Sprintf("Record{Key: %s, ValLen: %d}", r.Key, len(r.Value))
}
