package walk

// SizeOf computes the packed ordering scalar used to compare the
// "minimality" of two representative step sequences sharing the same SI.
//
// For each step, each component contributes |c|^2*32 + 1 if c is negative,
// else |c|^2*32 — the *32 shift reserves the low bits as a lexicographic
// sign tiebreak, so that sequences with strictly smaller squared
// magnitudes always dominate regardless of sign, and among magnitude ties
// a non-negative-majority sequence dominates. A plain sum of squares
// cannot break that sign tie, which is why the packed form is used here.
func SizeOf(steps []Point[int32]) uint64 {
	var total uint64
	for _, s := range steps {
		total += component(s.X)
		total += component(s.Y)
	}
	return total
}

// component packs a single coordinate's contribution to SizeOf.
func component(v int32) uint64 {
	var abs uint64
	if v < 0 {
		abs = uint64(-int64(v))
	} else {
		abs = uint64(v)
	}
	packed := abs * abs * 32
	if v < 0 {
		packed++
	}
	return packed
}
