package utils_test

import (
	"reflect"
	"testing"

	"github.com/temirov/dirscan/internal/utils"
)

func TestDeduplicatePatterns(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil input", input: nil, expected: []string{}},
		{name: "keeps first occurrence", input: []string{".go", ".md", ".go"}, expected: []string{".go", ".md"}},
		{name: "drops blanks", input: []string{" ", "", ".txt"}, expected: []string{".txt"}},
		{name: "trims values", input: []string{" .py ", ".py"}, expected: []string{".py"}},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			result := utils.DeduplicatePatterns(testCase.input)
			if !reflect.DeepEqual(result, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, result)
			}
		})
	}
}

func TestHasAnySuffix(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		fileName string
		suffixes []string
		expected bool
	}{
		{name: "match", fileName: "main.go", suffixes: []string{".md", ".go"}, expected: true},
		{name: "no match", fileName: "main.go", suffixes: []string{".md"}, expected: false},
		{name: "empty suffix list", fileName: "main.go", suffixes: nil, expected: false},
		{name: "compound suffix", fileName: "archive.tar.gz", suffixes: []string{".tar.gz"}, expected: true},
		{name: "case sensitive", fileName: "IMAGE.PNG", suffixes: []string{".png"}, expected: false},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			if result := utils.HasAnySuffix(testCase.fileName, testCase.suffixes); result != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, result)
			}
		})
	}
}

func TestFormatFileSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "negative", bytes: -1, expected: "0b"},
		{name: "zero", bytes: 0, expected: "0b"},
		{name: "bytes", bytes: 512, expected: "512b"},
		{name: "one kilobyte", bytes: 1024, expected: "1kb"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5kb"},
		{name: "ten megabytes", bytes: 10 * 1024 * 1024, expected: "10mb"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.FormatFileSize(testCase.bytes)
			if result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}

func TestIsBinary(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		expected bool
	}{
		{name: "empty", data: nil, expected: false},
		{name: "text", data: []byte("hello"), expected: false},
		{name: "nul byte", data: []byte{'a', 0x00, 'b'}, expected: true},
		{name: "invalid utf8", data: []byte{0xff, 0xfe}, expected: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if result := utils.IsBinary(testCase.data); result != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, result)
			}
		})
	}
}
