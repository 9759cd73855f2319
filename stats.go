package main

// Stats are the running statistics of a key. Count is never zero: a key with
// no observations has no Stats at all.
type Stats struct {
	Min, Max, Sum float64
	Count         uint64
}

func (s Stats) Mean() float64 {
	return s.Sum / float64(s.Count)
}

func (s *Stats) observe(v float64) {
	s.Min, s.Max = min(s.Min, v), max(s.Max, v)
	s.Sum, s.Count = s.Sum+v, s.Count+1
}

func (s Stats) merge(o Stats) Stats {
	return Stats{
		Min:   min(s.Min, o.Min),
		Max:   max(s.Max, o.Max),
		Sum:   s.Sum + o.Sum,
		Count: s.Count + o.Count,
	}
}

// StatsMap maps keys to their statistics.
type StatsMap map[string]Stats

// Merge returns the union of a and b, combining the Stats of keys present in
// both. Neither input is modified.
//
// Merge is commutative and associative, except that Sum may differ in the last
// bits depending on the order floating-point additions happen in.
func Merge(a, b StatsMap) StatsMap {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make(StatsMap, len(a))
	for k, s := range a {
		out[k] = s
	}
	for k, s := range b {
		if cur, ok := out[k]; ok {
			out[k] = cur.merge(s)
		} else {
			out[k] = s
		}
	}
	return out
}

// MergeAll reduces parts pairwise, as a balanced tree.
func MergeAll(parts []StatsMap) StatsMap {
	switch len(parts) {
	case 0:
		return StatsMap{}
	case 1:
		return Merge(parts[0], nil)
	}
	mid := len(parts) / 2
	return Merge(MergeAll(parts[:mid]), MergeAll(parts[mid:]))
}
