package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yescallop/dogwalker/walk"
)

// ErrInvalidRecord indicates a line did not match the record-file grammar:
// an unsigned si, optionally followed by ": {steps}".
var ErrInvalidRecord = errors.New("record: invalid record line")

// Record is one parsed (si, steps?) entry. Steps is nil when the line
// carried no step sequence — the legacy bare-si form.
type Record struct {
	SI    uint32
	Steps []walk.Point[int32]
}

// ParseFile reads every record from r, in file order. Empty lines are
// skipped; whitespace around tokens is insignificant.
func ParseFile(r io.Reader) ([]Record, error) {
	var recs []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, line)
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// parseLine parses one non-empty, trimmed line.
func parseLine(line string) (Record, error) {
	siPart := line
	var stepsPart string
	hasSteps := false
	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		siPart = line[:idx]
		stepsPart = line[idx+1:]
		hasSteps = true
	}

	si, err := strconv.ParseUint(strings.TrimSpace(siPart), 10, 32)
	if err != nil {
		return Record{}, ErrInvalidRecord
	}

	rec := Record{SI: uint32(si)}
	if hasSteps {
		steps, err := parseSteps(stepsPart)
		if err != nil {
			return Record{}, err
		}
		rec.Steps = steps
	}
	return rec, nil
}

// parseSteps extracts every integer token appearing in s and groups them
// into (x,y) points two at a time; brace and comma layout is not checked
// beyond that, matching the upstream parser's regex-scan tolerance.
func parseSteps(s string) ([]walk.Point[int32], error) {
	ints, err := extractInts(s)
	if err != nil {
		return nil, err
	}
	if len(ints) == 0 || len(ints)%2 != 0 {
		return nil, ErrInvalidRecord
	}
	steps := make([]walk.Point[int32], 0, len(ints)/2)
	for i := 0; i < len(ints); i += 2 {
		steps = append(steps, walk.Point[int32]{X: ints[i], Y: ints[i+1]})
	}
	return steps, nil
}

// extractInts scans s for maximal runs matching the grammar's int token:
// an optional leading '-' followed by one or more decimal digits.
func extractInts(s string) ([]int32, error) {
	var out []int32
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '-' || isDigit(c) {
			start := i
			i++
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			v, err := strconv.ParseInt(s[start:i], 10, 32)
			if err != nil {
				return nil, ErrInvalidRecord
			}
			out = append(out, int32(v))
		} else {
			i++
		}
	}
	return out, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Format writes one record line: "si: {{x,y},{x,y},...}" when steps is
// non-nil, or the bare "si" form otherwise. It does not write a trailing
// newline.
func Format(w io.Writer, si uint32, steps []walk.Point[int32]) error {
	if steps == nil {
		_, err := fmt.Fprintf(w, "%d", si)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d: {", si)
	for i, s := range steps {
		if i != 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "{%d,%d}", s.X, s.Y)
	}
	b.WriteByte('}')
	_, err := io.WriteString(w, b.String())
	return err
}
