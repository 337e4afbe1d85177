// Package walk implements the geometric/combinatorial core of dogwalker:
// integer step sequences, their vertex walks, simpleness-index (SI)
// computation, collinearity checks, and magnitude-minifying reduction.
//
// A walk is an ordered sequence of n >= 3 two-dimensional integer steps.
// Its SI counts, over every even permutation of the step order (plus the
// 0<->1 swap, which covers the odd permutations), how many orderings
// produce a non-self-intersecting polyline. Package walk owns this
// computation; it never touches the filesystem, randomness, or concurrency
// — those live in the sibling walk/geom, walk/rng, walk/record and
// walk/search packages.
package walk
