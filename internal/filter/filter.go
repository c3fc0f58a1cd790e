// Package filter holds the immutable policy deciding which directory entries appear in a report.
package filter

import (
	"sort"
	"strings"

	"github.com/temirov/dirscan/internal/utils"
)

const summarySeparator = ", "

// Policy is the read-only filter configuration shared by every level of a traversal.
// Ignore names are exact, case-sensitive base-name matches applied to files and directories alike.
// Extension lists are suffix matches applied to non-directory entries only; exclusion wins over inclusion.
type Policy struct {
	ignoreNames        map[string]struct{}
	allowedExtensions  []string
	excludedExtensions []string
}

// NewPolicy builds a Policy. Blank and duplicate values are dropped; the order of extension lists is preserved.
func NewPolicy(ignoreNames []string, allowedExtensions []string, excludedExtensions []string) Policy {
	ignoreSet := make(map[string]struct{}, len(ignoreNames))
	for _, ignoreName := range utils.DeduplicatePatterns(ignoreNames) {
		ignoreSet[ignoreName] = struct{}{}
	}
	return Policy{
		ignoreNames:        ignoreSet,
		allowedExtensions:  utils.DeduplicatePatterns(allowedExtensions),
		excludedExtensions: utils.DeduplicatePatterns(excludedExtensions),
	}
}

// WithIgnoredName returns a copy of the policy that also ignores name.
func (policy Policy) WithIgnoredName(name string) Policy {
	trimmedName := strings.TrimSpace(name)
	ignoreSet := make(map[string]struct{}, len(policy.ignoreNames)+1)
	for existingName := range policy.ignoreNames {
		ignoreSet[existingName] = struct{}{}
	}
	if trimmedName != utils.EmptyString {
		ignoreSet[trimmedName] = struct{}{}
	}
	return Policy{
		ignoreNames:        ignoreSet,
		allowedExtensions:  policy.allowedExtensions,
		excludedExtensions: policy.excludedExtensions,
	}
}

// IsIgnored reports whether an entry with the given base name is never considered.
func (policy Policy) IsIgnored(name string) bool {
	_, ignored := policy.ignoreNames[name]
	return ignored
}

// AllowsFile reports whether a non-directory entry survives the extension filters.
func (policy Policy) AllowsFile(name string) bool {
	if utils.HasAnySuffix(name, policy.excludedExtensions) {
		return false
	}
	if len(policy.allowedExtensions) > 0 {
		return utils.HasAnySuffix(name, policy.allowedExtensions)
	}
	return true
}

// IgnoredNames returns the ignore set sorted for display.
func (policy Policy) IgnoredNames() []string {
	names := make([]string, 0, len(policy.ignoreNames))
	for name := range policy.ignoreNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IncludeSummary renders the whitelist for headers and banners; empty when no whitelist is active.
func (policy Policy) IncludeSummary() string {
	return strings.Join(policy.allowedExtensions, summarySeparator)
}

// ExcludeSummary renders the blacklist for headers and banners; empty when no blacklist is active.
func (policy Policy) ExcludeSummary() string {
	return strings.Join(policy.excludedExtensions, summarySeparator)
}

// IgnoreSummary renders the ignore set for the operator banner.
func (policy Policy) IgnoreSummary() string {
	return strings.Join(policy.IgnoredNames(), summarySeparator)
}
