package workload

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"recordtable/pkg/common"
	"recordtable/pkg/core"
)

// Fingerprint hashes src's records in iteration order. Two tables holding the
// same records in the same slot order have the same fingerprint.
func Fingerprint(src core.Source) uint64 {
	d := xxhash.New()
	var lenBuf [8]byte
	src.Iterator(func(rec *common.Record) bool {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(rec.Key)))
		d.Write(lenBuf[:])
		d.WriteString(string(rec.Key))
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(rec.Value)))
		d.Write(lenBuf[:])
		d.Write(rec.Value)
		return true
	})
	return d.Sum64()
}
