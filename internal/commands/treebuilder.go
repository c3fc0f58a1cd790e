package commands

import (
	"fmt"
	"io"

	"github.com/temirov/dirscan/internal/filter"
	"github.com/temirov/dirscan/internal/types"
)

// TreeRenderer writes a depth-first, alphabetically ordered rendering of a directory subtree,
// inlining the text of every file that survives the filter policy.
// A TreeRenderer is not safe for concurrent use; one render pass owns the sink.
type TreeRenderer struct {
	Policy filter.Policy
	// Warn receives one message per node that could not be listed or read. It may be nil.
	Warn    func(string)
	summary types.ScanSummary
}

// NewTreeRenderer constructs a TreeRenderer for the given policy.
func NewTreeRenderer(policy filter.Policy, warn func(string)) *TreeRenderer {
	return &TreeRenderer{Policy: policy, Warn: warn}
}

// Summary returns the counters accumulated by every Render call made so far.
func (treeRenderer *TreeRenderer) Summary() types.ScanSummary {
	return treeRenderer.summary
}

func (treeRenderer *TreeRenderer) warn(format string, arguments ...any) {
	if treeRenderer.Warn == nil {
		return
	}
	treeRenderer.Warn(fmt.Sprintf(format, arguments...))
}

// writeLine appends one newline-terminated line to the sink.
func writeLine(sink io.Writer, line string) error {
	if _, writeError := io.WriteString(sink, line+"\n"); writeError != nil {
		return fmt.Errorf(errorWriteSinkFormat, writeError)
	}
	return nil
}
