package sortutil

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/yescallop/dogwalker/walk"
	"github.com/yescallop/dogwalker/walk/record"
)

// ErrCorrupt indicates a record file contained an entry violating one of
// the invariants sortutil re-verifies: its steps must be non-collinear,
// must close when the file's kind says "closed", and must reproduce the
// SI recorded on its line.
var ErrCorrupt = errors.New("sortutil: record violates its stated invariants")

// entry is one in-progress catalogue slot: Steps is nil for a bare
// SI-only line, matching record.Record's convention.
type entry struct {
	steps []walk.Point[int32]
}

// Dir de-duplicates and re-verifies every record file directly inside
// dir, rewriting each one (in ascending SI order) whose content needed
// to change, and reports each file's outcome via report.
func Dir(dir string, report func(name, outcome string)) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("sortutil: read %s: %w", dir, err)
	}

	w := walk.NewWalker()
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		path := filepath.Join(dir, f.Name())
		outcome, err := sortFile(path, w)
		if err != nil {
			return err
		}
		report(f.Name(), outcome)
	}
	return nil
}

// sortFile applies the de-duplication and rewrite pass to one record
// file, returning "unchanged" if every entry was already in ascending SI
// order with no duplicate or upgradeable SI and no representative changed
// under minification, or "sorted" once it has rewritten the file.
func sortFile(path string, w *walk.Walker) (string, error) {
	closed := strings.HasSuffix(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), "closed")

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("sortutil: open %s: %w", path, err)
	}
	recs, err := record.ParseFile(f)
	f.Close()
	if err != nil {
		return "", fmt.Errorf("sortutil: parse %s: %w", path, err)
	}

	catalogue := make(map[uint32]*entry)
	var order []uint32

	sorted := true
	var lastSI uint32
	first := true

	for _, rec := range recs {
		existing, seen := catalogue[rec.SI]
		switch {
		case !seen:
			e := &entry{}
			if rec.Steps != nil {
				steps, err := verifyAndMinify(w, rec.SI, closed, rec.Steps)
				if err != nil {
					return "", fmt.Errorf("%s: %w", path, err)
				}
				e.steps = steps
				if !slices.Equal(steps, rec.Steps) {
					sorted = false
				}
			}
			catalogue[rec.SI] = e
			order = append(order, rec.SI)
		case existing.steps == nil && rec.Steps != nil:
			steps, err := verifyAndMinify(w, rec.SI, closed, rec.Steps)
			if err != nil {
				return "", fmt.Errorf("%s: %w", path, err)
			}
			existing.steps = steps
			sorted = false
		case existing.steps != nil && rec.Steps != nil:
			steps, err := verifyAndMinify(w, rec.SI, closed, rec.Steps)
			if err != nil {
				return "", fmt.Errorf("%s: %w", path, err)
			}
			if walk.SizeOf(steps) < walk.SizeOf(existing.steps) {
				existing.steps = steps
			}
			sorted = false
		default:
			sorted = false
		}

		if !first && rec.SI <= lastSI {
			sorted = false
		}
		lastSI = rec.SI
		first = false
	}

	if sorted {
		return "unchanged", nil
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	var bw strings.Builder
	for _, si := range order {
		e := catalogue[si]
		if err := record.Format(&bw, si, e.steps); err != nil {
			return "", fmt.Errorf("sortutil: format %s: %w", path, err)
		}
		bw.WriteByte('\n')
	}

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("sortutil: rewrite %s: %w", path, err)
	}
	defer out.Close()
	w2 := bufio.NewWriter(out)
	if _, err := w2.WriteString(bw.String()); err != nil {
		return "", fmt.Errorf("sortutil: rewrite %s: %w", path, err)
	}
	if err := w2.Flush(); err != nil {
		return "", fmt.Errorf("sortutil: rewrite %s: %w", path, err)
	}
	return "sorted", nil
}

// verifyAndMinify re-checks the invariants a search worker already
// guaranteed at insert time, then minifies steps in place (a record file
// may predate a stricter minify pass, or may have been hand-edited).
func verifyAndMinify(w *walk.Walker, si uint32, closed bool, steps []walk.Point[int32]) ([]walk.Point[int32], error) {
	w.SetSteps(steps)
	if w.HasCollinearSteps() {
		return nil, fmt.Errorf("%w: si=%d has collinear steps", ErrCorrupt, si)
	}
	if closed && !w.IsClosed() {
		return nil, fmt.Errorf("%w: si=%d is not a closed walk", ErrCorrupt, si)
	}
	if got := w.SimplenessIndex(true); got != si {
		return nil, fmt.Errorf("%w: si=%d recomputes as %d", ErrCorrupt, si, got)
	}

	w.SetSteps(steps)
	w.Minify(si)
	out := make([]walk.Point[int32], w.N())
	copy(out, w.Steps())
	return out, nil
}
