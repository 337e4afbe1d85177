package search

import (
	"context"

	"github.com/yescallop/dogwalker/walk"
	"github.com/yescallop/dogwalker/walk/record"
	"github.com/yescallop/dogwalker/walk/rng"
)

// Mode selects between Simulator's two catalogue-insertion policies.
type Mode int

const (
	// ModeFast is "first-seen SI wins": skip any si already present.
	ModeFast Mode = iota
	// ModeMinifyMore is "keep-smallest-for-each-SI": always minify and
	// only insert when the result beats the stored representative.
	ModeMinifyMore
)

// defaultShifts is the right-shift applied to each raw 32-bit sample,
// clamping typical step magnitudes small enough that a walk's cumulative
// vertex coordinates stay well inside int64 range.
const defaultShifts = 16

// Config parameterizes a Simulator. Shifts defaults to 16 when zero.
type Config struct {
	N      int
	Closed bool
	Mode   Mode
	Shifts uint
}

func (c Config) shifts() uint {
	if c.Shifts == 0 {
		return defaultShifts
	}
	return c.Shifts
}

// Simulator owns one Walker, one Rng, and a reusable sample buffer; it
// samples, tests, and conditionally inserts into a shared Recorder in a
// loop that exits when the context is canceled or the Recorder's Running
// flag goes false. Buffers are allocated once and reused across
// iterations; an insert allocates a copy of the steps it records.
type Simulator struct {
	cfg Config
	rec *record.Recorder
	rng *rng.Rng
	w   *walk.Walker
	buf []walk.Point[int32]
}

// New returns a Simulator for the given config, sharing rec with sibling
// workers. workerID should differ across concurrently constructed
// Simulators so their Rng seeds diverge.
func New(cfg Config, rec *record.Recorder, workerID uint64) *Simulator {
	return &Simulator{
		cfg: cfg,
		rec: rec,
		rng: rng.New(workerID),
		w:   walk.NewWalker(),
		buf: make(walk.Steps, cfg.N),
	}
}

// Run samples, tests, and inserts candidates until ctx is done or the
// Recorder's Running flag is cleared, polling both once per iteration.
func (s *Simulator) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !s.rec.Running.Load() {
			return
		}

		s.sample()
		s.w.SetSteps(s.buf)
		looseSI := s.w.SimplenessIndex(false)

		switch s.cfg.Mode {
		case ModeFast:
			s.runFast(looseSI)
		case ModeMinifyMore:
			s.runMinifyMore(looseSI)
		}

		s.rec.Count.Add(1)
	}
}

// sample draws a fresh candidate into s.buf: 2n shifted samples in open
// mode, or 2(n-1) samples plus a closing step in closed mode.
func (s *Simulator) sample() {
	n := s.cfg.N
	shifts := s.cfg.shifts()

	if s.cfg.Closed {
		var sumX, sumY int32
		for i := 0; i < n-1; i++ {
			x := s.rng.Next32(shifts)
			y := s.rng.Next32(shifts)
			s.buf[i] = walk.Point[int32]{X: x, Y: y}
			sumX += x
			sumY += y
		}
		s.buf[n-1] = walk.Point[int32]{X: -sumX, Y: -sumY}
		return
	}

	for i := 0; i < n; i++ {
		s.buf[i] = walk.Point[int32]{X: s.rng.Next32(shifts), Y: s.rng.Next32(shifts)}
	}
}

// runFast is the first-seen-wins policy: skip any si already in the
// catalogue, confirm the candidate under the strict predicate, reject
// collinear candidates, minify, and insert unconditionally — size isn't
// tracked in this mode, so later discoveries for the same si never
// displace the first.
func (s *Simulator) runFast(looseSI uint32) {
	if s.rec.Contains(looseSI) {
		return
	}

	s.w.SetSteps(s.buf)
	strictSI := s.w.SimplenessIndex(true)
	if strictSI != looseSI {
		return
	}

	s.w.SetSteps(s.buf)
	if s.w.HasCollinearSteps() {
		return
	}

	s.w.Minify(looseSI)
	steps := cloneSteps(s.w.Steps())
	s.rec.Insert(looseSI, steps, 0)
}

// runMinifyMore minifies and verifies unconditionally, then inserts only
// when no representative is catalogued for this si yet, or the new one
// is strictly smaller than the one already there.
func (s *Simulator) runMinifyMore(looseSI uint32) {
	s.w.SetSteps(s.buf)
	s.w.Minify(looseSI)

	if s.w.HasCollinearSteps() {
		return
	}
	strictSI := s.w.SimplenessIndex(true)
	if strictSI != looseSI {
		return
	}

	s.w.SetSteps(s.buf)
	s.w.Minify(looseSI)
	steps := cloneSteps(s.w.Steps())
	size := walk.SizeOf(steps)
	if !s.rec.ContainsSmaller(looseSI, size) {
		s.rec.Insert(looseSI, steps, size)
	}
}

func cloneSteps(s []walk.Point[int32]) []walk.Point[int32] {
	out := make([]walk.Point[int32], len(s))
	copy(out, s)
	return out
}
