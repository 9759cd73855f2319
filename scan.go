package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"strconv"
	"unsafe"
)

const defaultBlockSize = 1 << 20

type chunkScanner struct {
	ctx   context.Context
	r     io.ReaderAt
	seg   Segment
	block []byte
	carry []byte
	err   error
}

func newChunkScanner(ctx context.Context, r io.ReaderAt, seg Segment) *chunkScanner {
	return newChunkScannerSize(ctx, r, seg, defaultBlockSize)
}

func newChunkScannerSize(ctx context.Context, r io.ReaderAt, seg Segment, blockSize int) *chunkScanner {
	return &chunkScanner{
		ctx:   ctx,
		r:     r,
		seg:   seg,
		block: make([]byte, min(int64(blockSize), max(seg.Len(), 1))),
	}
}

// All yields every well-formed (key, value) pair of the segment, in order.
// Malformed lines are skipped. The key aliases the scanner's buffers and is
// only valid until the next iteration; callers that keep it must copy it.
//
// The sequence stops early on an I/O error or when the scanner's context is
// done, in which case Err reports why.
func (s *chunkScanner) All() iter.Seq2[[]byte, float64] {
	return func(yield func([]byte, float64) bool) {
		s.carry = s.carry[:0]
		for off := s.seg.Start; off < s.seg.End; {
			if err := s.ctx.Err(); err != nil {
				s.err = err
				return
			}
			b := s.block[:min(int64(len(s.block)), s.seg.End-off)]
			n, err := s.r.ReadAt(b, off)
			if n < len(b) {
				if err == nil {
					err = io.ErrUnexpectedEOF
				}
				s.err = err
				return
			}
			off += int64(n)

			if len(s.carry) > 0 {
				i := bytes.IndexByte(b, '\n')
				if i < 0 {
					s.carry = append(s.carry, b...)
					continue
				}
				s.carry = append(s.carry, b[:i]...)
				if !emit(s.carry, yield) {
					return
				}
				s.carry = s.carry[:0]
				b = b[i+1:]
			}
			for {
				i := bytes.IndexByte(b, '\n')
				if i < 0 {
					break
				}
				if !emit(b[:i], yield) {
					return
				}
				b = b[i+1:]
			}
			s.carry = append(s.carry, b...)
		}
		// Only the last segment of a file without a trailing newline gets here
		// with something left over.
		if len(s.carry) > 0 {
			emit(s.carry, yield)
		}
	}
}

// Err returns the first error that stopped All, if any.
func (s *chunkScanner) Err() error {
	return s.err
}

func emit(line []byte, yield func([]byte, float64) bool) bool {
	k, v, err := parseLine(line)
	if err != nil {
		return true
	}
	return yield(k, v)
}

// parseLine splits "<key>;<value>" at the first ';' and parses the value. A
// trailing '\r' is ignored.
func parseLine(line []byte) ([]byte, float64, error) {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	i := bytes.IndexByte(line, ';')
	if i < 0 {
		return nil, 0, ErrMissingSeparator
	}
	raw := line[i+1:]
	if len(raw) == 0 || (len(raw) == 1 && raw[0] == '-') {
		return nil, 0, ErrEmptyValue
	}
	v, err := parseValue(raw)
	if err != nil {
		return nil, 0, err
	}
	return line[:i], v, nil
}

// Powers of ten up to 1e22 are exact in a float64.
var pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
	1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// maxFastDigits keeps the mantissa below 2^53, so that both it and the power
// of ten are exact and the single division rounds correctly.
const maxFastDigits = 15

// parseValue parses -?[0-9]+(\.[0-9]+)? and returns the same result as
// strconv.ParseFloat for every input it accepts.
func parseValue(b []byte) (float64, error) {
	var (
		neg     bool
		i       int
		m       uint64
		digits  int
		frac    int
		seenDot bool
	)
	if len(b) > 0 && b[0] == '-' {
		neg, i = true, 1
	}
	start := i
	for ; i < len(b); i++ {
		c := b[i]
		switch {
		case '0' <= c && c <= '9':
			m = m*10 + uint64(c-'0')
			if m != 0 {
				digits++
			}
			if seenDot {
				frac++
			}
		case c == '.' && !seenDot && i > start && i < len(b)-1:
			seenDot = true
		default:
			return 0, ErrInvalidNumber
		}
	}
	if i == start {
		return 0, ErrInvalidNumber
	}
	if digits > maxFastDigits || frac >= len(pow10) {
		// Out of range values parse to ±Inf (or ±0) along with ErrRange.
		v, err := strconv.ParseFloat(unsafe.String(unsafe.SliceData(b), len(b)), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, ErrInvalidNumber
		}
		return v, nil
	}
	v := float64(m) / pow10[frac]
	if neg {
		v = -v
	}
	return v, nil
}
