package walk

import "github.com/yescallop/dogwalker/walk/geom"

// Walker owns a step array and the scratch buffers needed to test it for
// self-intersection, compute its simpleness index, and minify it — all
// without per-call allocation once sized for a given n. A Walker is not
// safe for concurrent use; each Simulator owns one (see walk/search).
type Walker struct {
	n      int
	closed bool

	steps []Point[int32]   // current step array, length n
	verts []Point[int64]   // vertex scratch, length n+1, verts[0] == origin
	snap  []Point[int32]   // pre-halve snapshot buffer for Minify, length n
	perm  *evenPermuter    // even-permutation generator over n positions
}

// NewWalker returns a Walker with no steps set; call SetSteps before using
// any other method.
func NewWalker() *Walker {
	return &Walker{}
}

// N reports the current step count.
func (w *Walker) N() int {
	return w.n
}

// Steps returns the current step array. The caller must not retain or
// mutate it across a subsequent call to any Walker method that permutes or
// overwrites it (SimplenessIndex, Minify).
func (w *Walker) Steps() []Point[int32] {
	return w.steps
}

// SetSteps replaces the current steps with a copy of s, reallocating
// scratch buffers only when the length changes, and recomputes the
// closed-walk flag.
func (w *Walker) SetSteps(s []Point[int32]) {
	if w.n != len(s) {
		w.n = len(s)
		w.steps = make([]Point[int32], w.n)
		w.verts = make([]Point[int64], w.n+1)
		w.snap = make([]Point[int32], w.n)
		w.perm = newEvenPermuter(w.n)
	}
	copy(w.steps, s)
	w.closed = w.sumIsZero()
}

// sumIsZero reports whether the current steps sum to the origin, computed
// in 64-bit arithmetic.
func (w *Walker) sumIsZero() bool {
	var x, y int64
	for _, s := range w.steps {
		x += int64(s.X)
		y += int64(s.Y)
	}
	return x == 0 && y == 0
}

// IsClosed reports whether the steps sum to (0,0), as cached by the last
// SetSteps call.
func (w *Walker) IsClosed() bool {
	return w.closed
}

// HasCollinearSteps reports whether any two steps (including a zero step)
// are scalar multiples of one another.
func (w *Walker) HasCollinearSteps() bool {
	for i := 0; i < w.n; i++ {
		for j := i + 1; j < w.n; j++ {
			a, b := w.steps[i], w.steps[j]
			if int64(a.X)*int64(b.Y) == int64(a.Y)*int64(b.X) {
				return true
			}
		}
	}
	return false
}

// vertex converts a scratch vertex into a geom.Point for predicate calls.
func vertex(p Point[int64]) geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// IsSimple walks the current step array, accumulating vertices into the
// scratch buffer, and reports whether the resulting polyline is simple —
// no two non-adjacent segments share a point, under the chosen predicate
// (strict, or the faster loose filter). It returns false on the first
// intersection found.
func (w *Walker) IsSimple(strict bool) bool {
	w.verts[0] = Point[int64]{}
	for i := 0; i < w.n; i++ {
		w.verts[i+1] = w.verts[i].Add(ToInt64(w.steps[i]))
	}

	for i := 2; i < w.n; i++ {
		jStart := 0
		if w.closed && i == w.n-1 {
			jStart = 1 // closing segment shares the origin with segment 0
		}
		p2, p3 := vertex(w.verts[i]), vertex(w.verts[i+1])
		for j := jStart; j <= i-2; j++ {
			p0, p1 := vertex(w.verts[j]), vertex(w.verts[j+1])
			var hit bool
			if strict {
				hit = geom.Strict(p0, p1, p2, p3)
			} else {
				hit = geom.Loose(p0, p1, p2, p3)
			}
			if hit {
				return false
			}
		}
	}
	return true
}

// SimplenessIndex computes SI under the given predicate by enumerating
// every even permutation of the step positions exactly once and, for each,
// testing both the permutation as given and the permutation with positions
// 0 and 1 swapped (which covers the odd permutations). It permutes the
// step array in place; callers needing the original order must call
// SetSteps again afterward.
func (w *Walker) SimplenessIndex(strict bool) uint32 {
	w.perm.reset()

	var si uint32
	for w.perm.next(w.steps) {
		if w.IsSimple(strict) {
			si++
		}

		w.steps[0], w.steps[1] = w.steps[1], w.steps[0]
		if w.IsSimple(strict) {
			si++
		}
		w.steps[0], w.steps[1] = w.steps[1], w.steps[0] // restore for the permuter's internal bookkeeping
	}
	return si
}

// sign returns -1, 0, or 1 for v's sign.
func sign(v int32) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Minify repeatedly halves every step component by truncating integer
// division, re-closing the walk (when in closed mode) by adjusting the
// last step, and accepts the result iff it stays non-collinear and its
// strict SI still equals si. It stops and reverts on the first rejected
// halving, then canonicalizes orientation: if the sum of signs of the x
// components is negative, all x components are negated; likewise for y.
// It reports whether any change — a halving or a sign flip — was applied.
func (w *Walker) Minify(si uint32) bool {
	changed := false
	for {
		copy(w.snap, w.steps)
		for i := range w.steps {
			w.steps[i].X /= 2
			w.steps[i].Y /= 2
		}
		if w.closed {
			var sumX, sumY int64
			for _, s := range w.steps {
				sumX += int64(s.X)
				sumY += int64(s.Y)
			}
			last := &w.steps[w.n-1]
			last.X -= int32(sumX)
			last.Y -= int32(sumY)
		}

		if w.HasCollinearSteps() || w.SimplenessIndex(true) != si {
			copy(w.steps, w.snap)
			break
		}
		changed = true
	}

	var signSumX, signSumY int
	for _, s := range w.steps {
		signSumX += sign(s.X)
		signSumY += sign(s.Y)
	}
	if signSumX < 0 {
		for i := range w.steps {
			w.steps[i].X = -w.steps[i].X
		}
		changed = true
	}
	if signSumY < 0 {
		for i := range w.steps {
			w.steps[i].Y = -w.steps[i].Y
		}
		changed = true
	}
	return changed
}
