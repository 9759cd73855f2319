package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/avamsi/ergo/assert"
)

// startProfiling starts whichever of the CPU profile and execution trace are
// configured and returns a func that stops them and writes the allocation
// profile.
func startProfiling(c config) (stop func()) {
	var stops []func()
	if c.Trace != "" {
		f := assert.Ok(os.Create(c.Trace))
		assert.Nil(trace.Start(f))
		stops = append(stops, func() {
			trace.Stop()
			assert.Nil(f.Close())
		})
	}
	if c.CPUProfile != "" {
		f := assert.Ok(os.Create(c.CPUProfile))
		assert.Nil(pprof.StartCPUProfile(f))
		stops = append(stops, func() {
			pprof.StopCPUProfile()
			assert.Nil(f.Close())
		})
	}
	if c.MemProfile != "" {
		stops = append(stops, func() {
			f := assert.Ok(os.Create(c.MemProfile))
			runtime.GC()
			assert.Nil(pprof.Lookup("allocs").WriteTo(f, 0))
			assert.Nil(f.Close())
		})
	}
	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}

func run(args []string) int {
	c, err := parseConfig(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		slog.Error("invalid arguments", "error", err)
		return 2
	}
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	stop := startProfiling(c)
	defer stop()

	w := bufio.NewWriter(os.Stdout)
	if err := processFile(context.Background(), c, w); err != nil {
		slog.Error("failed to compute statistics", "path", c.Path, "error", err)
		return 1
	}
	if err := w.Flush(); err != nil {
		slog.Error("failed to write result", "error", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
