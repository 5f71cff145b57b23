package pinwatch

import (
	"iter"
	"strings"
)

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// capStrings returns out[:min(limit, len(out))] if limit>0; otherwise out.
func capStrings(out []string, limit int) []string {
	if limit > 0 && limit < len(out) {
		return out[:limit]
	}

	return out
}

// isSigTag reports whether s matches "sha256-<64 anycase hex>.sig".
func isSigTag(s string) bool {
	// "sha256-" (7) + 64 hex + ".sig" (4) = 75
	if len(s) != 75 || s[:7] != "sha256-" || s[71:] != ".sig" {
		return false
	}

	// check 64 anycase hex chars
	for i := 7; i < 71; i++ {
		c := s[i]
		if (c < '0' || c > '9') &&
			(c < 'a' || c > 'f') &&
			(c < 'A' || c > 'F') {
			return false
		}
	}

	return true
}

// Values adapts a slice to the sequence shape consumed by Resolve.
func Values(tags []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, t := range tags {
			if !yield(t, nil) {
				return
			}
		}
	}
}
