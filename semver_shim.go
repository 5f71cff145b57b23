package pinwatch

import sv "github.com/woozymasta/semver"

// CompareSemver orders tags by SemVer precedence.
//
// Valid SemVer (leading "v" and X / X.Y shorthands accepted) ranks above
// anything that does not parse; two unparsable tags fall back to CompareVersions.
func CompareSemver(a, b string) int {
	va, okA := parseSemver(a)
	vb, okB := parseSemver(b)

	switch {
	case okA && okB:
		return va.Compare(vb)
	case okA:
		return 1
	case okB:
		return -1
	default:
		return CompareVersions(a, b)
	}
}

// parseSemver skips building the canonical form, it is never printed here.
func parseSemver(s string) (sv.Semver, bool) {
	v, ok := sv.ParseNoCanon(s)
	if !ok || !v.IsValid() {
		return sv.Semver{}, false
	}

	return v, true
}
