package report_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/dirscan/internal/filter"
	"github.com/temirov/dirscan/internal/services/report"
)

const (
	reportFileName = "directory_listing_with_content.txt"
	headerRule     = "==================================================\n"
)

func writeTestFile(t *testing.T, filePath string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(filePath), err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", filePath, err)
	}
}

func TestGenerateWritesHeaderAndBody(t *testing.T) {
	rootDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(rootDirectory, "a.txt"), "x")
	if err := os.Mkdir(filepath.Join(rootDirectory, "b"), 0o755); err != nil {
		t.Fatalf("mkdir b: %v", err)
	}
	writeTestFile(t, filepath.Join(rootDirectory, ".git", "config"), "[core]\n")
	writeTestFile(t, filepath.Join(rootDirectory, "logo.png"), "\x89PNG")
	outputPath := filepath.Join(rootDirectory, reportFileName)

	result, err := report.Generate(report.Options{
		Root:       rootDirectory,
		OutputPath: outputPath,
		Policy:     filter.NewPolicy([]string{".git"}, nil, []string{".png"}),
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if result.OutputPath != outputPath {
		t.Fatalf("expected output path %s, got %s", outputPath, result.OutputPath)
	}

	content, readErr := os.ReadFile(outputPath)
	if readErr != nil {
		t.Fatalf("read report: %v", readErr)
	}
	expected := "Directory scan report: " + result.AbsoluteRoot + "\n" +
		"Excluded extensions: .png\n" +
		headerRule +
		"\n" +
		"├── a.txt\n" +
		"│   ┌─ [content start] ──────────\n" +
		"│   │ x\n" +
		"│   └─ [content end] ──────────\n" +
		"└── b\n"
	if string(content) != expected {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", string(content), expected)
	}
	if result.Summary.Files != 1 || result.Summary.Directories != 1 {
		t.Fatalf("unexpected summary %+v", result.Summary)
	}
}

func TestGenerateNeverListsItsOwnOutput(t *testing.T) {
	rootDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(rootDirectory, "main.go"), "package main\n")
	writeTestFile(t, filepath.Join(rootDirectory, "nested", reportFileName), "stale report")
	outputPath := filepath.Join(rootDirectory, reportFileName)
	writeTestFile(t, outputPath, "previous run")

	if _, err := report.Generate(report.Options{Root: rootDirectory, OutputPath: outputPath, Policy: filter.NewPolicy(nil, nil, nil)}); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	content, readErr := os.ReadFile(outputPath)
	if readErr != nil {
		t.Fatalf("read report: %v", readErr)
	}
	if strings.Contains(string(content), reportFileName) {
		t.Fatalf("report lists its own file name:\n%s", string(content))
	}
	if strings.Contains(string(content), "previous run") || strings.Contains(string(content), "stale report") {
		t.Fatalf("report inlined a previous report:\n%s", string(content))
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	rootDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(rootDirectory, "src", "app.go"), "package app\n")
	writeTestFile(t, filepath.Join(rootDirectory, "README.md"), "# readme\n")
	outputDirectory := t.TempDir()
	firstPath := filepath.Join(outputDirectory, "first.txt")
	secondPath := filepath.Join(outputDirectory, "second.txt")
	policy := filter.NewPolicy(nil, nil, nil)

	for _, outputPath := range []string{firstPath, secondPath} {
		if _, err := report.Generate(report.Options{Root: rootDirectory, OutputPath: outputPath, Policy: policy}); err != nil {
			t.Fatalf("Generate error: %v", err)
		}
	}
	firstContent, _ := os.ReadFile(firstPath)
	secondContent, _ := os.ReadFile(secondPath)
	if !bytes.Equal(firstContent, secondContent) {
		t.Fatalf("reports differ:\n%s\n---\n%s", firstContent, secondContent)
	}
}

func TestGenerateRejectsInvalidRoots(t *testing.T) {
	rootDirectory := t.TempDir()
	regularFile := filepath.Join(rootDirectory, "file.txt")
	writeTestFile(t, regularFile, "x")
	outputPath := filepath.Join(t.TempDir(), reportFileName)

	testCases := []struct {
		name        string
		root        string
		outputPath  string
		expectedErr string
	}{
		{name: "missing root", root: filepath.Join(rootDirectory, "missing"), outputPath: outputPath, expectedErr: "does not exist"},
		{name: "file root", root: regularFile, outputPath: outputPath, expectedErr: "is not a directory"},
		{name: "unwritable output", root: rootDirectory, outputPath: filepath.Join(rootDirectory, "missing", "out.txt"), expectedErr: "create report"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := report.Generate(report.Options{Root: testCase.root, OutputPath: testCase.outputPath, Policy: filter.NewPolicy(nil, nil, nil)})
			if err == nil || !strings.Contains(err.Error(), testCase.expectedErr) {
				t.Fatalf("expected error containing %q, got %v", testCase.expectedErr, err)
			}
		})
	}

	_, err := report.Generate(report.Options{Root: rootDirectory, Policy: filter.NewPolicy(nil, nil, nil)})
	if !errors.Is(err, report.ErrEmptyOutputPath) {
		t.Fatalf("expected ErrEmptyOutputPath, got %v", err)
	}
}

type brokenSink struct{}

func (brokenSink) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReportsSinkFailure(t *testing.T) {
	rootDirectory := t.TempDir()
	writeTestFile(t, filepath.Join(rootDirectory, "a.txt"), "x")
	_, err := report.Write(brokenSink{}, rootDirectory, filter.NewPolicy(nil, nil, nil), nil)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected sink failure, got %v", err)
	}
}
