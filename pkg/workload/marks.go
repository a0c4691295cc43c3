package workload

import (
	"encoding/binary"
	"errors"

	"recordtable/pkg/common"
)

const (
	MarksMagic = 0x4D

	marksHeaderSize = 3
	maxMarks        = 0xFFFF
)

var ErrBadMarks = errors.New("invalid marks payload")

// Marks is the per-student grade list carried as a record payload.
type Marks []uint16

// Encode lays the marks out as [magic:1][count:2][mark:2]... in big endian.
func (m Marks) Encode() common.ValueType {
	n := len(m)
	if n > maxMarks {
		n = maxMarks
	}
	buf := make([]byte, marksHeaderSize+2*n)
	buf[0] = MarksMagic
	binary.BigEndian.PutUint16(buf[1:3], uint16(n))
	for i, mark := range m[:n] {
		binary.BigEndian.PutUint16(buf[marksHeaderSize+2*i:], mark)
	}
	return buf
}

func DecodeMarks(val common.ValueType) (Marks, error) {
	if len(val) < marksHeaderSize || val[0] != MarksMagic {
		return nil, ErrBadMarks
	}
	n := int(binary.BigEndian.Uint16(val[1:3]))
	if len(val) != marksHeaderSize+2*n {
		return nil, ErrBadMarks
	}
	m := make(Marks, n)
	for i := range m {
		m[i] = binary.BigEndian.Uint16(val[marksHeaderSize+2*i:])
	}
	return m, nil
}
