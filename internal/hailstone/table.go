package hailstone

import (
	"sync"

	"github.com/vilya/Hailstones/internal/ranger"
)

const (
	// DefaultTableSize is the number of precomputed sequence lengths.
	DefaultTableSize = 1 << 20

	// Sequences that reach 1 from any start below 2^32 take at most 1137
	// terms. Values whose length exceeds fillCap are left out of the table.
	fillCap = 2047
)

// Table caches true (uncapped) hailstone sequence lengths for every value
// below its size. A zero entry means the length is unknown and callers fall
// back to the plain loop, so a Table of any size produces exact results.
type Table struct {
	lengths []uint16
}

// BuildTable precomputes sequence lengths for all values in [1, size) using
// the given number of parallel fillers. Odd values are walked directly;
// each doubling 2v then costs one extra term, so the whole chain v, 2v, 4v,
// ... is filled from a single walk. Every chain belongs to exactly one odd
// base, so fillers never touch the same entry.
func BuildTable(size, workers int) *Table {
	if size < 2 {
		return &Table{}
	}

	t := &Table{lengths: make([]uint16, size)}

	var wg sync.WaitGroup
	for _, sh := range ranger.Split(1, int64(size-1), workers) {
		wg.Add(1)
		go func(from, to int64) {
			defer wg.Done()
			t.fill(from, to)
		}(sh.From, sh.To)
	}
	wg.Wait()

	return t
}

// Size returns the number of table entries including the unused entry 0.
func (t *Table) Size() int {
	return len(t.lengths)
}

// fill walks every odd value in [from, to] and stores its length plus the
// lengths of its doubling chain while the chain stays inside the table.
func (t *Table) fill(from, to int64) {
	if from%2 == 0 {
		from++
	}

	size := int64(len(t.lengths))

	for i := from; i <= to; i += 2 {
		l := Length(i, fillCap)
		if l > fillCap {
			continue // не достигла 1 за fillCap шагов, не кешируем
		}

		for val, vl := i, l; val < size; val, vl = val<<1, vl+1 {
			t.lengths[val] = uint16(vl)
		}
	}
}

// Length behaves exactly like the package-level Length but returns as soon
// as the walk reaches a value with a cached length: the terms walked so far
// plus the cached remainder give the full count, clipped to maxLength+1 the
// same way the plain loop clips it.
func (t *Table) Length(start, maxLength int64) int64 {
	if len(t.lengths) == 0 {
		return Length(start, maxLength)
	}

	val := start
	count := int64(1)

	for val != 1 && count <= maxLength {
		if val > 0 && val < int64(len(t.lengths)) {
			if known := int64(t.lengths[val]); known > 0 {
				total := count - 1 + known
				if total > maxLength {
					return maxLength + 1
				}
				return total
			}
		}
		val = Step(val)
		count++
	}

	return count
}
