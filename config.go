package main

import (
	"flag"
	"io"
	"runtime"

	"github.com/hyp3rd/ewrap"
)

const defaultPath = "measurements.txt"

type config struct {
	Path string

	// Workers bounds how many segments are scanned at once; 0 means
	// GOMAXPROCS.
	Workers int
	// ChunkSize, when positive, cuts the input into segments of about this
	// many bytes instead of one segment per worker.
	ChunkSize int64

	CPUProfile string
	MemProfile string
	Trace      string
	Verbose    bool
}

func parseConfig(args []string, output io.Writer) (config, error) {
	var (
		c  config
		fs = flag.NewFlagSet("stationstats", flag.ContinueOnError)
	)
	fs.SetOutput(output)
	fs.IntVar(&c.Workers, "workers", 0, "number of parallel workers (0: GOMAXPROCS)")
	fs.Int64Var(&c.ChunkSize, "chunk-size", 0, "split the input into segments of about this many bytes (0: one per worker)")
	fs.StringVar(&c.CPUProfile, "cpuprofile", "", "write a CPU profile to this file")
	fs.StringVar(&c.MemProfile, "memprofile", "", "write an allocation profile to this file")
	fs.StringVar(&c.Trace, "trace", "", "write an execution trace to this file")
	fs.BoolVar(&c.Verbose, "v", false, "log debug diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	switch fs.NArg() {
	case 0:
		c.Path = defaultPath
	case 1:
		c.Path = fs.Arg(0)
	default:
		return config{}, ewrap.Newf("expected at most one input path, got %d", fs.NArg())
	}
	if err := c.validate(); err != nil {
		return config{}, err
	}
	return c, nil
}

func (c *config) validate() error {
	if c.Workers < 0 {
		return ewrap.Wrapf(ErrInvalidWorkers, "workers=%d", c.Workers)
	}
	if c.ChunkSize < 0 {
		return ewrap.Wrapf(ErrInvalidChunkSize, "chunk-size=%d", c.ChunkSize)
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return nil
}
