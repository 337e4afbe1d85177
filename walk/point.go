package walk

// Point is a pair of integer coordinates. Steps use int32; cumulative
// vertex coordinates use int64 to keep accumulation safely inside range.
type Point[T int32 | int64] struct {
	X, Y T
}

// Steps is a step sequence: an ordered list of n >= 3 two-dimensional
// integer displacement vectors.
type Steps = []Point[int32]

// Add returns p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

// ToInt64 widens a 32-bit point to 64-bit, for accumulation into vertices.
func ToInt64(p Point[int32]) Point[int64] {
	return Point[int64]{X: int64(p.X), Y: int64(p.Y)}
}
