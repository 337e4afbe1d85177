package sortutil_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yescallop/dogwalker/walk/record"
	"github.com/yescallop/dogwalker/walk/sortutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// triangleLine is a known-simple, SI=6 triangle over 3 steps, used across
// cases below.
const triangleLine = "6: {{1,0},{0,1},{-1,-1}}\n"

func TestDirRewritesOutOfOrderAndDuplicateSI(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "3-closed.txt", triangleLine+"3\n"+triangleLine)

	outcomes := map[string]string{}
	err := sortutil.Dir(dir, func(name, outcome string) { outcomes[name] = outcome })
	require.NoError(t, err)
	assert.Equal(t, "sorted", outcomes["3-closed.txt"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	recs, err := record.ParseFile(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, uint32(3), recs[0].SI)
	assert.Equal(t, uint32(6), recs[1].SI)
}

func TestDirLeavesAlreadySortedFileUnchanged(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "3-closed.txt", "3\n"+triangleLine)

	outcomes := map[string]string{}
	require.NoError(t, sortutil.Dir(dir, func(name, outcome string) { outcomes[name] = outcome }))
	assert.Equal(t, "unchanged", outcomes["3-closed.txt"])
}

// TestSortIsIdempotent verifies that running the pass twice in a row
// produces "unchanged" the second time: sort is a fixed point of itself.
func TestSortIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "3-closed.txt", triangleLine+"3\n"+triangleLine)

	var first, second string
	require.NoError(t, sortutil.Dir(dir, func(name, outcome string) { first = outcome }))
	require.NoError(t, sortutil.Dir(dir, func(name, outcome string) { second = outcome }))

	assert.Equal(t, "sorted", first)
	assert.Equal(t, "unchanged", second)
}

func TestDirRejectsCorruptInvariant(t *testing.T) {
	dir := t.TempDir()
	// si=6 claimed but steps are collinear, violating the invariant.
	writeFile(t, dir, "3-general.txt", "6: {{2,0},{1,0},{-3,0}}\n")

	err := sortutil.Dir(dir, func(name, outcome string) {})
	require.Error(t, err)
	assert.ErrorIs(t, err, sortutil.ErrCorrupt)
}
