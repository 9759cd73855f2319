package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/longbridgeapp/assert"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurements.txt")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func assertOutput(t *testing.T, want, got string) {
	t.Helper()
	if want != got {
		t.Errorf("output mismatch:\n%s", diff.LineDiff(want, got))
	}
}

func TestProcessFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "sorted keys",
			content: "A;1.0\nB;2.0\nA;3.0\n",
			want:    "{A=1.00/2.00/3.00, B=2.00/2.00/2.00}\n",
		},
		{
			name:    "dropped lines",
			content: "A;1.0\nA;-\nA;\nA;x\n",
			want:    "{A=1.00/1.00/1.00}\n",
		},
		{
			name:    "no trailing newline",
			content: "B;-1.5\nA;2.25",
			want:    "{A=2.25/2.25/2.25, B=-1.50/-1.50/-1.50}\n",
		},
		{
			name:    "empty file",
			content: "",
			want:    "{}\n",
		},
		{
			name:    "crlf",
			content: "Oslo;-3.5\r\nOslo;4.5\r\n",
			want:    "{Oslo=-3.50/0.50/4.50}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, workers := range []int{1, 2, 7} {
				var (
					out bytes.Buffer
					c   = config{Path: writeInput(t, tt.content), Workers: workers}
				)
				assert.NoError(t, processFile(context.Background(), c, &out))
				assertOutput(t, tt.want, out.String())
			}
		})
	}
}

func TestProcessFile_Missing(t *testing.T) {
	var (
		out  bytes.Buffer
		path = filepath.Join(t.TempDir(), "missing.txt")
		err  = processFile(context.Background(), config{Path: path, Workers: 2}, &out)
	)
	var ferr *FileAccessError
	assert.True(t, errors.As(err, &ferr))
	assert.Equal(t, path, ferr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, 0, out.Len())
}

func TestRun(t *testing.T) {
	path := writeInput(t, "A;1.0\n")
	assert.Equal(t, 0, run([]string{"-workers", "2", path}))
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.txt")}))
	assert.Equal(t, 2, run([]string{"-workers", "-1", path}))
	assert.Equal(t, 2, run([]string{path, path}))
}

func benchmarkFile(b *testing.B, path string) {
	if _, err := os.Stat(path); err != nil {
		b.Skipf("%s: %v", path, err)
	}
	c := config{Path: path}
	if err := c.validate(); err != nil {
		b.Fatal(err)
	}
	for range b.N {
		if err := processFile(context.Background(), c, io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark108(b *testing.B) {
	benchmarkFile(b, "resources/measurements_10_8.txt")
}

func Benchmark109(b *testing.B) {
	benchmarkFile(b, "resources/measurements_10_9.txt")
}
