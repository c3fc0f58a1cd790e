// Package config loads the dirscan configuration file and the per-root ignore file.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/dirscan/internal/utils"
)

const ignoreFileCommentPrefix = "#"

// LoadIgnoreFileNames reads an ignore file and returns the exact names it lists, one per line.
// Blank lines and lines starting with # are skipped. A missing file yields no names and no error.
//
// #nosec G304
func LoadIgnoreFileNames(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var ignoreNames []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, ignoreFileCommentPrefix) {
			continue
		}
		ignoreNames = append(ignoreNames, strings.TrimSuffix(trimmedLine, "/"))
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return ignoreNames, nil
}

// LoadCombinedIgnoreNames merges the configured ignore names with those listed in the .ignore file at the
// root of absoluteDirectoryPath when useIgnoreFile is true; the ignore file itself is then hidden as well.
// The result is deduplicated in first-seen order.
func LoadCombinedIgnoreNames(absoluteDirectoryPath string, configuredNames []string, useIgnoreFile bool) ([]string, error) {
	combinedNames := append([]string{}, configuredNames...)
	if useIgnoreFile {
		ignoreFilePath := filepath.Join(absoluteDirectoryPath, utils.IgnoreFileName)
		ignoreFileNames, loadError := LoadIgnoreFileNames(ignoreFilePath)
		if loadError != nil {
			return nil, fmt.Errorf("loading %s from %s: %w", utils.IgnoreFileName, absoluteDirectoryPath, loadError)
		}
		combinedNames = append(combinedNames, utils.IgnoreFileName)
		combinedNames = append(combinedNames, ignoreFileNames...)
	}
	return utils.DeduplicatePatterns(combinedNames), nil
}
