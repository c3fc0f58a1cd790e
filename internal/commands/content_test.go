package commands

import (
	"errors"
	"io/fs"
	"reflect"
	"testing"
)

func TestSplitLines(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected []string
	}{
		{name: "empty", content: "", expected: nil},
		{name: "single line", content: "x", expected: []string{"x"}},
		{name: "lf", content: "a\nb", expected: []string{"a", "b"}},
		{name: "trailing lf", content: "a\nb\n", expected: []string{"a", "b"}},
		{name: "crlf", content: "a\r\nb\r\n", expected: []string{"a", "b"}},
		{name: "lone cr", content: "a\rb", expected: []string{"a", "b"}},
		{name: "blank lines kept", content: "a\n\n\nb", expected: []string{"a", "", "", "b"}},
		{name: "only newline", content: "\n", expected: []string{""}},
		{name: "form feed", content: "a\fb", expected: []string{"a", "b"}},
		{name: "unicode separators", content: "a\u2028b\u2029c\u0085d", expected: []string{"a", "b", "c", "d"}},
		{name: "tabs untouched", content: "\ta\t", expected: []string{"\ta\t"}},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			result := splitLines(testCase.content)
			if !reflect.DeepEqual(result, testCase.expected) {
				t.Fatalf("splitLines(%q) = %q, want %q", testCase.content, result, testCase.expected)
			}
		})
	}
}

func TestIsBlank(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected bool
	}{
		{name: "empty", content: "", expected: true},
		{name: "spaces and newlines", content: "  \n\t\r\n", expected: true},
		{name: "file separator", content: "\x1c\n", expected: true},
		{name: "all separators", content: "\x1c\x1d\x1e\x1f", expected: true},
		{name: "unicode spaces", content: "\u00a0\u2028\u3000", expected: true},
		{name: "text", content: " x ", expected: false},
		{name: "nul is not blank", content: "\x00", expected: false},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			if result := isBlank(testCase.content); result != testCase.expected {
				t.Fatalf("isBlank(%q) = %t, want %t", testCase.content, result, testCase.expected)
			}
		})
	}
}

func TestListingPlaceholder(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "permission denied",
			err:      &fs.PathError{Op: "open", Path: "/locked", Err: fs.ErrPermission},
			expected: "[permission denied]",
		},
		{
			name:     "other failure",
			err:      errors.New("input/output error"),
			expected: "[could not read directory: input/output error]",
		},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			if result := listingPlaceholder(testCase.err); result != testCase.expected {
				t.Fatalf("listingPlaceholder() = %q, want %q", result, testCase.expected)
			}
		})
	}
}
