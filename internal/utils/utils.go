// Package utils contains general helper functions used across dirscan.
package utils

import "strings"

// DeduplicatePatterns removes duplicate and blank values from a slice while preserving order.
// Values are trimmed of surrounding whitespace; the first occurrence of each value is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{}, len(patterns))
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == EmptyString {
			continue
		}
		if _, exists := encounteredPatterns[trimmedPattern]; exists {
			continue
		}
		encounteredPatterns[trimmedPattern] = struct{}{}
		result = append(result, trimmedPattern)
	}
	return result
}

// HasAnySuffix reports whether name ends with at least one of the provided suffixes.
func HasAnySuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
