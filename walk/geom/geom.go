package geom

// Point is a 64-bit integer coordinate pair, as used for vertex positions
// during intersection testing.
type Point struct {
	X, Y int64
}

// Direction computes the signed area (cross product) of the triangle
// i, j, k: (k.X-i.X)*(j.Y-i.Y) - (j.X-i.X)*(k.Y-i.Y).
//
// Its sign tells which side of the directed line i->j the point k lies on;
// zero means i, j, k are collinear. Complexity: O(1).
func Direction(i, j, k Point) int64 {
	return (k.X-i.X)*(j.Y-i.Y) - (j.X-i.X)*(k.Y-i.Y)
}

// Loose reports whether segments (p0,p1) and (p2,p3) straddle each other,
// comparing only the sign bits of the cross products, so a zero counts as
// non-negative. It is a fast filter: collinear overlaps are not detected,
// and an endpoint touch is detected only when its zero cross product is
// paired with a negative one. Complexity: O(1).
func Loose(p0, p1, p2, p3 Point) bool {
	d1 := Direction(p2, p3, p0)
	d2 := Direction(p2, p3, p1)
	d3 := Direction(p0, p1, p2)
	d4 := Direction(p0, p1, p3)
	return ((d1^d2)&(d3^d4)) < 0
}

// Strict reports whether segments (p0,p1) and (p2,p3) share any point,
// including collinear overlaps and endpoint touches. It is Loose plus the
// on-segment degenerate cases, and must be trusted wherever a result
// drives an irreversible decision (minification, verification).
// Complexity: O(1).
func Strict(p0, p1, p2, p3 Point) bool {
	d1 := Direction(p2, p3, p0)
	d2 := Direction(p2, p3, p1)
	d3 := Direction(p0, p1, p2)
	d4 := Direction(p0, p1, p3)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(p2, p3, p0) {
		return true
	}
	if d2 == 0 && onSegment(p2, p3, p1) {
		return true
	}
	if d3 == 0 && onSegment(p0, p1, p2) {
		return true
	}
	if d4 == 0 && onSegment(p0, p1, p3) {
		return true
	}
	return false
}

// onSegment reports whether k, known to be collinear with segment (i,j),
// lies within (i,j)'s axis-aligned bounding box.
func onSegment(i, j, k Point) bool {
	lo, hi := i.X, j.X
	if lo > hi {
		lo, hi = hi, lo
	}
	if k.X < lo || k.X > hi {
		return false
	}
	lo, hi = i.Y, j.Y
	if lo > hi {
		lo, hi = hi, lo
	}
	return k.Y >= lo && k.Y <= hi
}
