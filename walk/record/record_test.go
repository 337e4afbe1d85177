package record_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yescallop/dogwalker/walk"
	"github.com/yescallop/dogwalker/walk/record"
)

func TestParseFormatRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		si    uint32
		steps []walk.Point[int32]
	}{
		{"bare", 12, nil},
		{"with-steps", 6, []walk.Point[int32]{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: -1}}},
		{"negative", 3, []walk.Point[int32]{{X: -5, Y: 7}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, record.Format(&buf, c.si, c.steps))

			recs, err := record.ParseFile(strings.NewReader(buf.String()))
			require.NoError(t, err)
			require.Len(t, recs, 1)
			assert.Equal(t, c.si, recs[0].SI)
			assert.Equal(t, c.steps, recs[0].Steps)
		})
	}
}

func TestParseFileSkipsEmptyLinesAndWhitespace(t *testing.T) {
	input := "\n  12  \n\n7: { {1,0} , {0,1} , {-1,-1} }\n"
	recs, err := record.ParseFile(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, uint32(12), recs[0].SI)
	assert.Nil(t, recs[0].Steps)
	assert.Equal(t, uint32(7), recs[1].SI)
	assert.Equal(t, []walk.Point[int32]{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: -1}}, recs[1].Steps)
}

func TestParseFileRejectsMalformedLine(t *testing.T) {
	_, err := record.ParseFile(strings.NewReader("not-a-number\n"))
	assert.ErrorIs(t, err, record.ErrInvalidRecord)
}

// TestPersistentCatalogue inserts an entry, then reopens the same record
// file as a fresh Recorder, and checks the catalogue is rebuilt with a
// matching size.
func TestPersistentCatalogue(t *testing.T) {
	dir := t.TempDir()
	restoreWd(t, dir)

	r, err := record.NewRecorder(3, true)
	require.NoError(t, err)

	steps := []walk.Point[int32]{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: -1}}
	size := walk.SizeOf(steps)
	r.Insert(6, steps, size)
	require.True(t, r.Contains(6))

	r2, err := record.NewRecorder(3, true)
	require.NoError(t, err)
	assert.True(t, r2.Contains(6))
	assert.True(t, r2.ContainsSmaller(6, size))
	assert.False(t, r2.ContainsSmaller(6, size-1))
}

func TestRecorderPathNaming(t *testing.T) {
	assert.Equal(t, filepath.Join("record", "6-general.txt"), record.Path(6, false))
	assert.Equal(t, filepath.Join("record", "6-closed.txt"), record.Path(6, true))
}

// restoreWd chdirs into dir for the duration of the test, restoring the
// original working directory on cleanup (Recorder resolves its record file
// relative to the working directory).
func restoreWd(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}
