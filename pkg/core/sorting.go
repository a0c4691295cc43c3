package core

import (
	"fmt"
	"strings"

	"recordtable/pkg/common"
)

// SortMethod selects the algorithm SortTable.SortData runs.
type SortMethod int

const (
	SortNone SortMethod = iota
	SortInsertion
	SortMerge
	SortQuick
)

// SortMethods lists every runnable method in a stable order.
var SortMethods = []SortMethod{SortInsertion, SortMerge, SortQuick}

func (m SortMethod) String() string {
	switch m {
	case SortInsertion:
		return "insertion"
	case SortMerge:
		return "merge"
	case SortQuick:
		return "quick"
	default:
		return "none"
	}
}

// ParseSortMethod accepts the names printed by SortMethod.String, case-insensitively.
func ParseSortMethod(name string) (SortMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "insertion", "insert":
		return SortInsertion, nil
	case "merge":
		return SortMerge, nil
	case "quick":
		return SortQuick, nil
	}
	return SortNone, fmt.Errorf("%w: %q", ErrUnsupportedMethod, name)
}

// sortFunc sorts recs in place by key and returns the effort it spent.
// Each algorithm counts effort with its own granularity.
type sortFunc func(recs []*common.Record) int

func (m SortMethod) sorter() (sortFunc, bool) {
	switch m {
	case SortInsertion:
		return insertionSort, true
	case SortMerge:
		return mergeSort, true
	case SortQuick:
		return quickSort, true
	}
	return nil, false
}

// insertionSort counts one unit per shifted record.
func insertionSort(recs []*common.Record) int {
	effort := 0
	for i := 1; i < len(recs); i++ {
		tmp := recs[i]
		j := i - 1
		for ; j >= 0 && recs[j].Key > tmp.Key; j-- {
			recs[j+1] = recs[j]
			effort++
		}
		recs[j+1] = tmp
	}
	return effort
}

// mergeSort counts one unit per merge comparison plus the length of every
// merged range. The auxiliary buffer is allocated once for the whole run.
func mergeSort(recs []*common.Record) int {
	if len(recs) <= 1 {
		return 0
	}
	buf := make([]*common.Record, len(recs))
	return mergeSorter(recs, buf)
}

func mergeSorter(recs, buf []*common.Record) int {
	n := len(recs)
	if n <= 1 {
		return 0
	}
	mid := n / 2
	effort := mergeSorter(recs[:mid], buf)
	effort += mergeSorter(recs[mid:], buf)
	return effort + merge(recs, buf[:n], mid)
}

// merge combines the sorted halves recs[:mid] and recs[mid:]. Ties take the
// left record first, so the sort is stable.
func merge(recs, buf []*common.Record, mid int) int {
	effort := 0
	i, left, right := 0, 0, mid
	for left < mid && right < len(recs) {
		if recs[left].Key <= recs[right].Key {
			buf[i] = recs[left]
			left++
		} else {
			buf[i] = recs[right]
			right++
		}
		i++
		effort++
	}
	i += copy(buf[i:], recs[left:mid])
	copy(buf[i:], recs[right:])
	copy(recs, buf)
	return effort + len(recs)
}

// quickSort counts the length of every partitioned range.
func quickSort(recs []*common.Record) int {
	if len(recs) <= 1 {
		return 0
	}
	p, effort := partition(recs)
	effort += quickSort(recs[:p])
	effort += quickSort(recs[p+1:])
	return effort
}

// partition uses recs[0] as the pivot and returns its final index. On return
// recs[:p] <= pivot < recs[p+1:].
func partition(recs []*common.Record) (int, int) {
	n := len(recs)
	pivot := recs[0]
	lo, hi := 1, n-1
	for lo <= hi {
		for lo < n && recs[lo].Key <= pivot.Key {
			lo++
		}
		// recs[0] is the pivot itself, so hi stops at 0 at the latest.
		for recs[hi].Key > pivot.Key {
			hi--
		}
		if lo < hi {
			recs[lo], recs[hi] = recs[hi], recs[lo]
		}
	}
	recs[0], recs[hi] = recs[hi], pivot
	return hi, n
}
