package workload

import (
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordtable/pkg/common"
	"recordtable/pkg/core"
)

func TestGeneratorPermutation(t *testing.T) {
	g := Generator{Prefix: "key_", Count: 500, Seed: 42, Marks: Marks{1, 2, 3, 4, 5}}
	recs, seed := g.Records()
	require.Len(t, recs, 500)
	assert.Equal(t, int64(42), seed)

	seen := make(map[common.KeyType]bool, len(recs))
	for _, r := range recs {
		assert.False(t, seen[r.Key], "duplicate key %s", r.Key)
		seen[r.Key] = true
	}
	for i := 1; i <= 500; i++ {
		assert.True(t, seen[common.KeyType("key_"+strconv.Itoa(i))])
	}

	keys := Keys(recs)
	assert.False(t, sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }))
}

func TestGeneratorDeterministic(t *testing.T) {
	g := Generator{Prefix: "k", Count: 50, Seed: 9}
	a, _ := g.Records()
	b, _ := g.Records()
	assert.Equal(t, Keys(a), Keys(b))

	a[0].Value[0] = 0
	assert.NotEqual(t, a[0].Value[0], a[1].Value[0], "records must not share payload")
}

func TestGeneratorTimeSeed(t *testing.T) {
	_, seed := Generator{Count: 3}.Records()
	assert.NotZero(t, seed)
}

func TestMarksCodec(t *testing.T) {
	in := Marks{1, 2, 3, 4, 5}
	out, err := DecodeMarks(in.Encode())
	require.NoError(t, err)
	assert.Equal(t, in, out)

	empty, err := DecodeMarks(Marks{}.Encode())
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = DecodeMarks(common.ValueType{0x00, 0, 0})
	assert.ErrorIs(t, err, ErrBadMarks)
	_, err = DecodeMarks(common.ValueType{MarksMagic, 0, 2, 0})
	assert.ErrorIs(t, err, ErrBadMarks)
}

func TestFingerprint(t *testing.T) {
	recs, _ := Generator{Prefix: "key_", Count: 64, Seed: 1, Marks: Marks{7}}.Records()

	byMethod := make(map[core.SortMethod]uint64)
	for _, m := range core.SortMethods {
		tbl := core.NewSortTable(len(recs))
		for _, r := range recs {
			require.NoError(t, tbl.Insert(r.Key, r.Value))
		}
		tbl.SetSortMethod(m)
		require.NoError(t, tbl.SortData())
		byMethod[m] = Fingerprint(tbl)
	}
	assert.Equal(t, byMethod[core.SortInsertion], byMethod[core.SortMerge])
	assert.Equal(t, byMethod[core.SortInsertion], byMethod[core.SortQuick])

	scan := core.NewScanTable(len(recs))
	for _, r := range recs {
		require.NoError(t, scan.Insert(r.Key, r.Value))
	}
	assert.NotEqual(t, byMethod[core.SortMerge], Fingerprint(scan), "slot order differs")
}
