package main

import (
	"bytes"
	"io"
)

// Segment is the half-open byte range [Start, End) of the input handled by a
// single worker. End is either just past a '\n' or the size of the input.
type Segment struct {
	Start, End int64
}

func (s Segment) Len() int64 {
	return s.End - s.Start
}

// adjustWindow is how many bytes adjustToLineEnd reads at a time; station
// lines are short, so the first window almost always has the terminator.
const adjustWindow = 128

// adjustToLineEnd returns the offset just past the first '\n' at or after off,
// or size if there is none. It never looks at bytes before off.
func adjustToLineEnd(r io.ReaderAt, off, size int64) (int64, error) {
	var buf [adjustWindow]byte
	for off < size {
		b := buf[:min(int64(len(buf)), size-off)]
		n, err := r.ReadAt(b, off)
		if i := bytes.IndexByte(b[:n], '\n'); i >= 0 {
			return off + int64(i) + 1, nil
		}
		if n < len(b) {
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		off += int64(n)
	}
	return size, nil
}

// partition splits [0, size) into n contiguous, line-aligned segments. Some of
// them may be empty when lines are long relative to size/n. An empty input is
// always a single empty segment.
func partition(r io.ReaderAt, size int64, n int) ([]Segment, error) {
	if n <= 1 || size == 0 {
		return []Segment{{0, size}}, nil
	}
	var (
		stride = size / int64(n)
		segs   = make([]Segment, 0, n)
		start  int64
	)
	for k := 1; k < n; k++ {
		end, err := adjustToLineEnd(r, max(int64(k)*stride, start), size)
		if err != nil {
			return nil, err
		}
		segs = append(segs, Segment{start, end})
		start = end
	}
	return append(segs, Segment{start, size}), nil
}

// partitionBySize splits [0, size) into line-aligned segments of roughly chunk
// bytes each (the last one may be shorter, and a segment is longer than chunk
// only when a single line crosses its boundary).
func partitionBySize(r io.ReaderAt, size, chunk int64) ([]Segment, error) {
	if chunk <= 0 || size <= chunk {
		return []Segment{{0, size}}, nil
	}
	var segs []Segment
	for start := int64(0); start < size; {
		end, err := adjustToLineEnd(r, min(start+chunk, size), size)
		if err != nil {
			return nil, err
		}
		segs = append(segs, Segment{start, end})
		start = end
	}
	return segs, nil
}
