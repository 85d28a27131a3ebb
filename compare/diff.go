package compare

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffEngine computes unified line diffs. It is normalization-agnostic: it
// diffs exactly the sequences it is given, so the same inputs always yield
// the same hunks.
type DiffEngine struct {
	// Context is the number of unchanged lines shown around each hunk
	Context int
}

// NewDiffEngine returns an engine with the conventional 3 lines of context
func NewDiffEngine() *DiffEngine {
	return &DiffEngine{Context: 3}
}

// Diff produces a unified diff between two line sequences. It returns true
// with no diff lines when the sequences are element-wise equal. Emitted
// lines carry the usual one-character tags: ' ' context, '-' source only,
// '+' target only, '@' hunk header.
func (e *DiffEngine) Diff(sourceLines, targetLines []string, sourceName, targetName string) (bool, []string) {
	diff := difflib.UnifiedDiff{
		A:        terminated(sourceLines),
		B:        terminated(targetLines),
		FromFile: sourceName,
		ToFile:   targetName,
		Context:  e.Context,
	}

	// GetUnifiedDiffString writes to an in-memory buffer; the error path is
	// unreachable for that writer.
	text, _ := difflib.GetUnifiedDiffString(diff)
	if text == "" {
		return true, []string{}
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return false, lines
}

// terminated gives every line a trailing newline, which is the shape
// difflib expects its sequences in
func terminated(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}
