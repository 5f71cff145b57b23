package pinwatch

import (
	"cmp"
	"strconv"
	"strings"
)

// numberForm stands in for a numeric field when it is ranked against a
// non-numeric one.
const numberForm = "#"

// specialForms ranks non-numeric fields by prefix, first match wins.
// Anything not listed ranks below all of them.
var specialForms = []struct {
	prefix string
	order  int
}{
	{"dev", 0},
	{"alpha", 1},
	{"a", 1},
	{"beta", 2},
	{"b", 2},
	{"RC", 3},
	{"rc", 3},
	{numberForm, 4},
	{"pl", 5},
	{"p", 5},
}

// CompareVersions orders two free-form version strings the way package
// managers usually do and returns -1, 0 or +1.
//
// Both strings are split into runs of digits and non-digits ("-", "_", "+"
// and other punctuation act as separators). Numeric runs compare as integers.
// Non-numeric runs are ranked as pre-release keywords:
//
//	dev < alpha = a < beta = b < RC = rc < (number) < pl = p
//
// so "1.0.0alpha" < "1.0.0" < "1.0.0pl1". Unknown words rank below "dev".
// When one side has more runs, an extra numeric run wins and an extra word
// is ranked against a plain number. The empty string sorts below anything else.
func CompareVersions(a, b string) int {
	if a == "" || b == "" {
		switch {
		case a == b:
			return 0
		case a == "":
			return -1
		default:
			return 1
		}
	}

	x := splitFields(canonicalVersion(a))
	y := splitFields(canonicalVersion(b))

	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		if c := compareField(x[i], y[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(x) > n:
		if isDigit(x[n][0]) {
			return 1
		}

		return compareForms(x[n], numberForm)

	case len(y) > n:
		if isDigit(y[n][0]) {
			return -1
		}

		return compareForms(numberForm, y[n])

	default:
		return 0
	}
}

// canonicalVersion rewrites v so that every run boundary is a single '.'.
// The first byte is kept verbatim.
func canonicalVersion(v string) string {
	var b strings.Builder
	b.Grow(len(v) * 2)

	b.WriteByte(v[0])
	last, prev := v[0], v[0]

	sep := func() {
		if last != '.' {
			b.WriteByte('.')
			last = '.'
		}
	}

	for i := 1; i < len(v); i++ {
		c := v[i]
		switch {
		case c == '-' || c == '_' || c == '+':
			sep()

		case (isNonDigit(prev) && isDigit(c)) || (isDigit(prev) && isNonDigit(c)):
			sep()
			b.WriteByte(c)
			last = c

		case !isAlnum(c):
			sep()

		default:
			b.WriteByte(c)
			last = c
		}
		prev = c
	}

	return b.String()
}

// splitFields splits on '.' dropping empty fields.
func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '.' })
}

func compareField(a, b string) int {
	da, db := isDigit(a[0]), isDigit(b[0])

	switch {
	case da && db:
		return cmp.Compare(parseRun(a), parseRun(b))
	case !da && !db:
		return compareForms(a, b)
	case da:
		return compareForms(numberForm, b)
	default:
		return compareForms(a, numberForm)
	}
}

// parseRun parses a digit run, saturating on overflow.
func parseRun(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func compareForms(a, b string) int {
	return cmp.Compare(formOrder(a), formOrder(b))
}

func formOrder(s string) int {
	for _, f := range specialForms {
		if strings.HasPrefix(s, f.prefix) {
			return f.order
		}
	}

	return -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNonDigit treats '.' as neither digit nor non-digit.
func isNonDigit(c byte) bool {
	return !isDigit(c) && c != '.'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
