package pinwatch

import "strings"

// IsRelease reports whether tag is a release tag.
//
// Two rules are checked in order, the first hit excludes the tag:
//  1. the tag carries an "rc" token (any case), e.g. "3.7-rc1" or "python:3.7-rc-alpine3.6";
//  2. the last of at most three dot parts starts with digits followed by an
//     optional "-" and a pre-release marker (a, alpha, b, beta, dev, rc),
//     e.g. "3.7.0b1" or "1.2.0-alpha".
//
// Only the first three dot parts are considered, so "1.2.3.4-alpha" is
// checked against "3.4-alpha".
func IsRelease(tag string) bool {
	if rcTokenRe.MatchString(tag) {
		return false
	}

	parts := strings.SplitN(tag, ".", 3)

	return !preReleaseRe.MatchString(parts[len(parts)-1])
}

// Filter returns the tags accepted by opt, in input order.
func Filter(in []string, opt Options) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if !accept(t, opt) {
			continue
		}
		out = append(out, t)
	}

	return out
}

// accept runs the cheap user prefilters, then the release filter.
func accept(t string, opt Options) bool {
	if !prefilterTag(t, opt) {
		return false
	}

	return opt.KeepPrereleases || IsRelease(t)
}

// prefilterTag: user regexes and signatures.
func prefilterTag(t string, opt Options) bool {
	if opt.ExcludeSignatures && isSigTag(t) {
		return false
	}

	if opt.Include != nil && !opt.Include.MatchString(t) {
		return false
	}

	if opt.Exclude != nil && opt.Exclude.MatchString(t) {
		return false
	}

	return true
}
