// Package types defines the cross‑package data structures used by the dirscan CLI.
package types

// Node types assigned to directory entries during a scan.
const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
	NodeTypeOther     = "other"
)

// ScanSummary aggregates what a single render pass visited.
type ScanSummary struct {
	Directories           int
	Files                 int
	BinaryFiles           int
	OtherEntries          int
	UnreadableDirectories int
	UnreadableFiles       int
	Bytes                 int64
}

// OutputSummary captures aggregate information reported to the operator once a report is written.
type OutputSummary struct {
	TotalFiles  int
	TotalSize   string
	TotalTokens int
	Model       string
}
