package main

import (
	"bytes"

	"github.com/zeebo/xxh3"
)

type tableEntry struct {
	hash  uint64
	key   []byte
	used  bool
	stats Stats
}

// Table accumulates Stats per key for a single worker. It is linearly probed,
// keyed by the raw key bytes and not safe for concurrent use.
type Table struct {
	entries []tableEntry
	size    int
}

const initialTableLen = 1 << 10 // must be a power of two

func NewTable() *Table {
	return &Table{entries: make([]tableEntry, initialTableLen)}
}

// Observe folds v into the statistics of key. key is copied on first sight,
// so the caller may reuse its buffer.
func (t *Table) Observe(key []byte, v float64) {
	if t.size >= len(t.entries)/2 {
		t.grow()
	}
	var (
		h    = xxh3.Hash(key)
		mask = uint64(len(t.entries) - 1)
	)
	for i := h & mask; ; i = (i + 1) & mask {
		e := &t.entries[i]
		if !e.used {
			*e = tableEntry{h, bytes.Clone(key), true, Stats{v, v, v, 1}}
			t.size++
			return
		}
		if e.hash == h && bytes.Equal(e.key, key) {
			e.stats.observe(v)
			return
		}
	}
}

func (t *Table) grow() {
	old := t.entries
	t.entries = make([]tableEntry, max(2*len(old), initialTableLen))
	mask := uint64(len(t.entries) - 1)
	for _, e := range old {
		if !e.used {
			continue
		}
		i := e.hash & mask
		for t.entries[i].used {
			i = (i + 1) & mask
		}
		t.entries[i] = e
	}
}

// Len returns the number of distinct keys observed so far.
func (t *Table) Len() int {
	return t.size
}

// Snapshot copies the table into a StatsMap.
func (t *Table) Snapshot() StatsMap {
	m := make(StatsMap, t.size)
	for _, e := range t.entries {
		if e.used {
			m[string(e.key)] = e.stats
		}
	}
	return m
}
