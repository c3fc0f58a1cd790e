// Package commands contains the traversal and rendering logic behind a directory scan report.
package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/temirov/dirscan/internal/types"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	// permissionDeniedPlaceholder replaces the children of a directory that may not be listed.
	permissionDeniedPlaceholder = "[permission denied]"
	// unreadableDirectoryPlaceholderFormat replaces the children of a directory that failed to list for another reason.
	unreadableDirectoryPlaceholderFormat = "[could not read directory: %v]"

	warningPermissionDeniedFormat = "Warning: permission denied listing %s"
	warningReadDirectoryFormat    = "Warning: unable to list %s: %v"
	warningStatPathFormat         = "Warning: unable to stat %s: %v"

	// errorWriteSinkFormat wraps failures of the report sink, which abort the whole run.
	errorWriteSinkFormat = "writing report: %w"
)

// renderEntry is a directory child that survived the ignore set and the extension filters.
type renderEntry struct {
	name     string
	path     string
	nodeType string
}

// Render writes the subtree rooted at directoryPath to sink, prefixing every line with prefix.
// Listing and reading failures are rendered as placeholder lines and never returned;
// the only error returned is a failure to write to sink.
// Symlinked directories are followed without a cycle guard, so a link back to an ancestor recurses until the
// filesystem refuses to resolve the path.
func (treeRenderer *TreeRenderer) Render(directoryPath string, sink io.Writer, prefix string) error {
	entries, listError := treeRenderer.collectEntries(directoryPath)
	if listError != nil {
		treeRenderer.summary.UnreadableDirectories++
		if errors.Is(listError, fs.ErrPermission) {
			treeRenderer.warn(warningPermissionDeniedFormat, directoryPath)
		} else {
			treeRenderer.warn(warningReadDirectoryFormat, directoryPath, listError)
		}
		return writeLine(sink, prefix+treeLastConnector+listingPlaceholder(listError))
	}

	for entryIndex, entry := range entries {
		connector, padding := treeBranchConnector, treeBranchPadding
		if entryIndex == len(entries)-1 {
			connector, padding = treeLastConnector, treeLastPadding
		}
		if writeError := writeLine(sink, prefix+connector+entry.name); writeError != nil {
			return writeError
		}

		childPrefix := prefix + padding
		switch entry.nodeType {
		case types.NodeTypeDirectory:
			treeRenderer.summary.Directories++
			if renderError := treeRenderer.Render(entry.path, sink, childPrefix); renderError != nil {
				return renderError
			}
		case types.NodeTypeFile:
			if inlineError := treeRenderer.inlineContent(entry.path, sink, childPrefix); inlineError != nil {
				return inlineError
			}
		default:
			treeRenderer.summary.OtherEntries++
		}
	}
	return nil
}

// listingPlaceholder is the single line standing in for the children of a directory that could not be listed.
func listingPlaceholder(listError error) string {
	if errors.Is(listError, fs.ErrPermission) {
		return permissionDeniedPlaceholder
	}
	return fmt.Sprintf(unreadableDirectoryPlaceholderFormat, listError)
}

// collectEntries lists directoryPath, applies the filter policy, and sorts survivors by name in byte order.
// Directories are always kept; extension filters only prune leaves.
func (treeRenderer *TreeRenderer) collectEntries(directoryPath string) ([]renderEntry, error) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil, readDirectoryError
	}

	entries := make([]renderEntry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if treeRenderer.Policy.IsIgnored(entryName) {
			continue
		}
		childPath := filepath.Join(directoryPath, entryName)
		nodeType, statError := classifyPath(childPath)
		if statError != nil {
			treeRenderer.warn(warningStatPathFormat, childPath, statError)
		}
		if nodeType != types.NodeTypeDirectory && !treeRenderer.Policy.AllowsFile(entryName) {
			continue
		}
		entries = append(entries, renderEntry{name: entryName, path: childPath, nodeType: nodeType})
	}

	sort.Slice(entries, func(leftIndex, rightIndex int) bool {
		return entries[leftIndex].name < entries[rightIndex].name
	})
	return entries, nil
}

// classifyPath follows symlinks and reports whether path is a directory, a regular file, or anything else.
// A path that cannot be stat'ed, such as a dangling symlink, is classified as other.
func classifyPath(path string) (string, error) {
	fileInformation, statError := os.Stat(path)
	switch {
	case statError != nil:
		return types.NodeTypeOther, statError
	case fileInformation.IsDir():
		return types.NodeTypeDirectory, nil
	case fileInformation.Mode().IsRegular():
		return types.NodeTypeFile, nil
	default:
		return types.NodeTypeOther, nil
	}
}
