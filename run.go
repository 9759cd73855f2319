package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/hyp3rd/ewrap"
	"golang.org/x/exp/mmap"
	"golang.org/x/sync/errgroup"
)

// processFile computes the statistics of c.Path and writes the rendered
// result, followed by a newline, to w. Nothing is written if any part of the
// input cannot be read.
func processFile(ctx context.Context, c config, w io.Writer) error {
	start := time.Now()
	f, err := mmap.Open(c.Path)
	if err != nil {
		return &FileAccessError{Path: c.Path, Op: "open", Err: err}
	}
	defer f.Close()

	m, err := aggregate(ctx, f, int64(f.Len()), c)
	if err != nil {
		var ferr *FileAccessError
		if errors.As(err, &ferr) {
			ferr.Path = c.Path
		}
		return err
	}
	slog.Debug("aggregated", "path", c.Path, "keys", len(m), "elapsed", time.Since(start))
	_, err = io.WriteString(w, render(m)+"\n")
	return err
}

// aggregate partitions [0, size) of r, scans every segment on its own Table
// and merges the results once all of them are done.
func aggregate(ctx context.Context, r io.ReaderAt, size int64, c config) (StatsMap, error) {
	segs, err := plan(r, size, c)
	if err != nil {
		return nil, &FileAccessError{
			Op:  "partition",
			Err: ewrap.Wrapf(err, "%d bytes into %d segments", size, c.Workers),
		}
	}
	slog.Debug("partitioned", "size", size, "segments", len(segs), "workers", c.Workers)

	var (
		parts   = make([]StatsMap, len(segs))
		g, gctx = errgroup.WithContext(ctx)
	)
	g.SetLimit(max(c.Workers, 1))
	for i, seg := range segs {
		g.Go(func() error {
			start := time.Now()
			t, err := scanSegment(gctx, r, seg)
			if err != nil {
				return err
			}
			parts[i] = t.Snapshot()
			slog.Debug("scanned", "segment", i, "start", seg.Start, "end", seg.End,
				"keys", t.Len(), "elapsed", time.Since(start))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return MergeAll(parts), nil
}

func plan(r io.ReaderAt, size int64, c config) ([]Segment, error) {
	if c.ChunkSize > 0 {
		return partitionBySize(r, size, c.ChunkSize)
	}
	return partition(r, size, c.Workers)
}

func scanSegment(ctx context.Context, r io.ReaderAt, seg Segment) (*Table, error) {
	var (
		t = NewTable()
		s = newChunkScanner(ctx, r, seg)
	)
	for k, v := range s.All() {
		t.Observe(k, v)
	}
	if err := s.Err(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &FileAccessError{
			Op:  "read",
			Err: ewrap.Wrapf(err, "segment [%d, %d)", seg.Start, seg.End),
		}
	}
	return t, nil
}
