package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/dirscan/internal/utils"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// TestLoadIgnoreFileNames verifies comment, blank-line and trailing-slash handling.
func TestLoadIgnoreFileNames(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	ignoreFilePath := filepath.Join(rootDirectory, utils.IgnoreFileName)
	writeTestFile(testingHandle, ignoreFilePath, "# generated\n\ncoverage.out\n  vendor/  \n")

	ignoreNames, loadError := LoadIgnoreFileNames(ignoreFilePath)
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreFileNames failed: %v", loadError)
	}
	expectedNames := []string{"coverage.out", "vendor"}
	if !reflect.DeepEqual(ignoreNames, expectedNames) {
		testingHandle.Fatalf("unexpected names: got %v want %v", ignoreNames, expectedNames)
	}
}

// TestLoadIgnoreFileNamesMissingFile verifies that an absent ignore file is not an error.
func TestLoadIgnoreFileNamesMissingFile(testingHandle *testing.T) {
	ignoreNames, loadError := LoadIgnoreFileNames(filepath.Join(testingHandle.TempDir(), utils.IgnoreFileName))
	if loadError != nil {
		testingHandle.Fatalf("unexpected error: %v", loadError)
	}
	if len(ignoreNames) != 0 {
		testingHandle.Fatalf("expected no names, got %v", ignoreNames)
	}
}

// TestLoadCombinedIgnoreNames verifies merging of configured names with the root ignore file.
func TestLoadCombinedIgnoreNames(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.IgnoreFileName), "tmp\n.git\n")

	testCases := []struct {
		name          string
		useIgnoreFile bool
		expected      []string
	}{
		{name: "with ignore file", useIgnoreFile: true, expected: []string{".git", "dist", utils.IgnoreFileName, "tmp"}},
		{name: "without ignore file", useIgnoreFile: false, expected: []string{".git", "dist"}},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			names, loadError := LoadCombinedIgnoreNames(rootDirectory, []string{".git", "dist"}, testCase.useIgnoreFile)
			if loadError != nil {
				t.Fatalf("LoadCombinedIgnoreNames failed: %v", loadError)
			}
			if !reflect.DeepEqual(names, testCase.expected) {
				t.Fatalf("unexpected names: got %v want %v", names, testCase.expected)
			}
		})
	}
}
