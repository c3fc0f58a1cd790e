// Package output renders the plain-text framing around a scan report and the operator-facing summary.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/temirov/dirscan/internal/filter"
	"github.com/temirov/dirscan/internal/types"
)

const (
	headerTitleFormat      = "Directory scan report: %s\n"
	headerIncludeFormat    = "Only including extensions: %s\n"
	headerExcludeFormat    = "Excluded extensions: %s\n"
	headerSeparatorWidth   = 50
	headerSeparatorPattern = "="
	bannerSeparatorPattern = "-"
)

// HeaderSeparator is the rule closing the report header.
var HeaderSeparator = strings.Repeat(headerSeparatorPattern, headerSeparatorWidth)

// BannerSeparator frames the operator start banner.
var BannerSeparator = strings.Repeat(bannerSeparatorPattern, headerSeparatorWidth)

// WriteReportHeader writes the report preamble: the absolute root, the active extension filters, a separator
// and one blank line. Filter lines are only present when the corresponding list is non-empty.
func WriteReportHeader(writer io.Writer, absoluteRoot string, policy filter.Policy) error {
	var builder strings.Builder
	fmt.Fprintf(&builder, headerTitleFormat, absoluteRoot)
	if includeSummary := policy.IncludeSummary(); includeSummary != "" {
		fmt.Fprintf(&builder, headerIncludeFormat, includeSummary)
	}
	if excludeSummary := policy.ExcludeSummary(); excludeSummary != "" {
		fmt.Fprintf(&builder, headerExcludeFormat, excludeSummary)
	}
	builder.WriteString(HeaderSeparator + "\n\n")
	_, writeError := io.WriteString(writer, builder.String())
	return writeError
}

// FormatSummaryLine formats an OutputSummary into the completion line shown to the operator.
func FormatSummaryLine(summary *types.OutputSummary) string {
	if summary == nil {
		summary = &types.OutputSummary{}
	}
	label := "files"
	if summary.TotalFiles == 1 {
		label = "file"
	}
	extra := ""
	if summary.TotalTokens > 0 {
		extra = fmt.Sprintf(", %d tokens", summary.TotalTokens)
	}
	modelSuffix := ""
	if summary.Model != "" {
		modelSuffix = fmt.Sprintf(" (model: %s)", summary.Model)
	}
	return fmt.Sprintf("Summary: %d %s, %s%s%s", summary.TotalFiles, label, summary.TotalSize, extra, modelSuffix)
}

// FormatScanDetails formats what a render pass visited apart from the inlined files.
func FormatScanDetails(summary types.ScanSummary) string {
	return fmt.Sprintf("Scanned %d directories and %d other entries; %d files looked binary and were inlined as text",
		summary.Directories, summary.OtherEntries, summary.BinaryFiles)
}

// ModeDescription describes the active filter mode for the start banner.
func ModeDescription(policy filter.Policy) string {
	if includeSummary := policy.IncludeSummary(); includeSummary != "" {
		return "whitelist (only: " + includeSummary + ")"
	}
	return "all files (exclusions apply)"
}
