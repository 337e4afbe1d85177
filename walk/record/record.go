package record

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/yescallop/dogwalker/walk"
)

// Recorder is the shared, concurrent SI->size catalogue backed by an
// append-only text file. N and Closed are fixed at construction and never
// change; Running and Count are free for any goroutine to read or write.
type Recorder struct {
	N      int
	Closed bool

	Running atomic.Bool
	Count   atomic.Uint64

	mu      sync.RWMutex
	entries map[uint32]uint64
	file    *os.File
}

// Path returns the backing file path for an (n, closed) Recorder:
// record/{n}-{kind}.txt, where kind is "general" or "closed".
func Path(n int, closed bool) string {
	kind := "general"
	if closed {
		kind = "closed"
	}
	return filepath.Join("record", fmt.Sprintf("%d-%s.txt", n, kind))
}

// NewRecorder opens (creating if absent) the record file for (n, closed),
// parses any existing records into the catalogue, reports the minimum
// observed SI on stdout, and leaves the file open in append-ready mode for
// subsequent Insert calls.
func NewRecorder(n int, closed bool) (*Recorder, error) {
	path := Path(n, closed)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("record: create record directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}

	recs, err := ParseFile(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("record: parse %s: %w", path, err)
	}

	entries := make(map[uint32]uint64, len(recs))
	min := uint32(1<<32 - 1)
	for _, rec := range recs {
		if rec.Steps != nil {
			entries[rec.SI] = walk.SizeOf(rec.Steps)
		}
		if rec.SI < min {
			min = rec.SI
		}
	}
	fmt.Printf("min: %d\n", min)

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		file.Close()
		return nil, fmt.Errorf("record: seek %s: %w", path, err)
	}

	r := &Recorder{N: n, Closed: closed, entries: entries, file: file}
	r.Running.Store(true)
	return r, nil
}

// Contains reports whether si has any entry in the catalogue.
func (r *Recorder) Contains(si uint32) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[si]
	return ok
}

// ContainsSmaller reports whether si has an entry whose stored size is
// less than or equal to size.
func (r *Recorder) ContainsSmaller(si uint32, size uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.entries[si]
	return ok && stored <= size
}

// Insert records si -> size, overwriting any prior entry for si, appends
// one formatted line to the backing file, and echoes it to stdout. A
// write failure here would silently lose a discovery, so it is treated as
// non-recoverable: Insert panics and takes down the worker (and process)
// rather than continue with a corrupted view of the catalogue.
func (r *Recorder) Insert(si uint32, steps []walk.Point[int32], size uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[si] = size

	var buf bytes.Buffer
	if err := Format(&buf, si, steps); err != nil {
		panic(fmt.Errorf("record: format line for si=%d: %w", si, err))
	}
	buf.WriteByte('\n')

	if _, err := r.file.Write(buf.Bytes()); err != nil {
		panic(fmt.Errorf("record: write to %s: %w", Path(r.N, r.Closed), err))
	}
	fmt.Print(buf.String())
}
