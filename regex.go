package pinwatch

import "regexp"

var (
	// Release candidate token "rc" not glued to other letters,
	// e.g. "3.7-rc1", "v2.0-RC3", "3.7-rc-alpine3.6" (but not "rcfoo", "src").
	rcTokenRe = regexp.MustCompile(`(?i)(?:^|[^A-Za-z])rc(?:[^A-Za-z]|$)`)

	// Pre-release suffix at the start of the last dot part,
	// e.g. "0b1" in "3.7.0b1", "0-alpha" in "2.1.0-alpha".
	preReleaseRe = regexp.MustCompile(`^\d+-?(a(lpha)?|b(eta)?|dev|rc)`)
)
