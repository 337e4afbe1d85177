// Package sortutil implements the offline maintenance pass over a
// directory of record files: for each file, it de-duplicates SI entries
// (keeping the smallest verified representative), re-verifies and
// minifies every step sequence, and rewrites the file in ascending SI
// order when anything needed to change.
//
// Unlike walk/search, sortutil is not a hot loop: it runs once per
// invocation of the "sort" CLI mode and is not safe nor designed for
// concurrent use across files of the same Walker.
package sortutil
