package workload

import (
	"math/rand"
	"strconv"
	"time"

	"recordtable/pkg/common"
)

// Generator produces Count records keyed Prefix+"1" .. Prefix+Count in a
// shuffled order. Every record carries the same encoded Marks payload.
type Generator struct {
	Prefix string
	Count  int
	Seed   int64 // 0 picks a time based seed
	Marks  Marks
}

// Records returns the shuffled records and the seed actually used, so a run
// can be replayed.
func (g Generator) Records() ([]common.Record, int64) {
	seed := g.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	payload := g.Marks.Encode()

	recs := make([]common.Record, g.Count)
	for i := range recs {
		recs[i] = common.Record{
			Key:   common.KeyType(g.Prefix + strconv.Itoa(i+1)),
			Value: payload.Clone(),
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for i := range recs {
		j := rng.Intn(len(recs))
		recs[i].Key, recs[j].Key = recs[j].Key, recs[i].Key
	}
	return recs, seed
}

// Keys returns the keys of recs in order.
func Keys(recs []common.Record) []common.KeyType {
	keys := make([]common.KeyType, len(recs))
	for i, r := range recs {
		keys[i] = r.Key
	}
	return keys
}
