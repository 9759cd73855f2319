package main

import (
	"cmp"
	"iter"
	"math/rand/v2"
)

const maxSkipListHeight = 32

type skipListNode[K cmp.Ordered, V any] struct {
	k    K
	v    V
	next []*skipListNode[K, V]
}

// SkipList is an ordered map. The zero value is an empty list.
type SkipList[K cmp.Ordered, V any] struct {
	head skipListNode[K, V]
	n    int
}

func randHeight() int {
	h := 1
	for h < maxSkipListHeight && rand.IntN(2) == 0 {
		h++
	}
	return h
}

// Put sets the value of k, replacing any previous one.
func (s *SkipList[K, V]) Put(k K, v V) {
	var (
		update = make([]*skipListNode[K, V], len(s.head.next))
		n      = &s.head
	)
	for i := len(n.next) - 1; i >= 0; i-- {
		for n.next[i] != nil && n.next[i].k < k {
			n = n.next[i]
		}
		update[i] = n
	}
	if len(update) > 0 {
		if m := update[0].next[0]; m != nil && m.k == k {
			m.v = v
			return
		}
	}
	h := randHeight()
	for len(s.head.next) < h {
		s.head.next = append(s.head.next, nil)
		update = append(update, &s.head)
	}
	p := &skipListNode[K, V]{k, v, make([]*skipListNode[K, V], h)}
	for i := range h {
		p.next[i] = update[i].next[i]
		update[i].next[i] = p
	}
	s.n++
}

func (s *SkipList[K, V]) Get(k K) (V, bool) {
	n := &s.head
	for i := len(n.next) - 1; i >= 0; {
		if n.next[i] == nil || n.next[i].k > k {
			i--
		} else if n.next[i].k == k {
			return n.next[i].v, true
		} else {
			n = n.next[i]
		}
	}
	return *new(V), false
}

func (s *SkipList[K, V]) Len() int {
	return s.n
}

// All yields the entries in ascending key order.
func (s *SkipList[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if len(s.head.next) == 0 {
			return
		}
		for n := s.head.next[0]; n != nil; n = n.next[0] {
			if !yield(n.k, n.v) {
				return
			}
		}
	}
}
