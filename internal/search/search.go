// Package search implements the line filter behind minigrep.
//
// Both variants are pure: they read the contents buffer, never modify it and
// return substrings of it. The returned lines share memory with contents.
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Func is the signature shared by Search and SearchCaseInsensitive.
type Func func(query, contents string) []string

// Search returns, in source order, every line of contents that contains query
// as a byte-exact substring. An empty query matches every line.
// Returns nil when nothing matches.
func Search(query, contents string) []string {
	var out []string
	for _, line := range SplitLines(contents) {
		if strings.Contains(line, query) {
			out = append(out, line)
		}
	}
	return out
}

// SearchCaseInsensitive is Search with both query and candidate lines
// lowercased before the containment test. The returned lines keep their
// original case.
//
// Lowercasing uses the Unicode default full case mapping (language.Und), so
// results do not depend on the host locale. Final sigma is folded into σ so
// the mapping does not depend on the letters around a Σ; every line Search
// matches is also matched here.
func SearchCaseInsensitive(query, contents string) []string {
	// A Caser holds state and must not be shared between goroutines.
	lower := cases.Lower(language.Und)
	needle := lowerKey(lower, query)

	var out []string
	for _, line := range SplitLines(contents) {
		if strings.Contains(lowerKey(lower, line), needle) {
			out = append(out, line)
		}
	}
	return out
}

// finalSigma maps ς to σ. A Replacer is safe for concurrent use.
var finalSigma = strings.NewReplacer("ς", "σ")

// lowerKey returns the comparison form of s.
func lowerKey(lower cases.Caser, s string) string {
	return finalSigma.Replace(lower.String(s))
}
