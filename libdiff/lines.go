package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type lineOp struct {
	kind diffpatch.Operation
	text string
}

// Lines returns a line diff of from and to in unified style with context
// lines of surrounding text per hunk, or "" when they are equal.
func Lines(from, to string, context int) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var ops []lineOp
	for _, d := range diffs {
		for _, l := range splitLines(d.Text) {
			ops = append(ops, lineOp{kind: d.Type, text: l})
		}
	}
	buf := &strings.Builder{}
	for _, h := range hunks(ops, context) {
		writeHunk(buf, ops, h)
	}
	return buf.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

type hunk struct {
	start, end int
}

// hunks groups changed lines, with context lines around them, merging
// groups whose context overlaps.
func hunks(ops []lineOp, context int) []hunk {
	var res []hunk
	for i, op := range ops {
		if op.kind == diffpatch.DiffEqual {
			continue
		}
		start, end := max(0, i-context), min(len(ops), i+context+1)
		if n := len(res); n > 0 && start <= res[n-1].end {
			res[n-1].end = max(res[n-1].end, end)
			continue
		}
		res = append(res, hunk{start: start, end: end})
	}
	return res
}

func writeHunk(buf *strings.Builder, ops []lineOp, h hunk) {
	fromLine, toLine := 1, 1
	for _, op := range ops[:h.start] {
		if op.kind != diffpatch.DiffInsert {
			fromLine++
		}
		if op.kind != diffpatch.DiffDelete {
			toLine++
		}
	}
	fromN, toN := 0, 0
	for _, op := range ops[h.start:h.end] {
		if op.kind != diffpatch.DiffInsert {
			fromN++
		}
		if op.kind != diffpatch.DiffDelete {
			toN++
		}
	}
	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", fromLine, fromN, toLine, toN)
	for _, op := range ops[h.start:h.end] {
		switch op.kind {
		case diffpatch.DiffDelete:
			buf.WriteString("-")
		case diffpatch.DiffInsert:
			buf.WriteString("+")
		default:
			buf.WriteString(" ")
		}
		buf.WriteString(op.text)
		buf.WriteString("\n")
	}
}
