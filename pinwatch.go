package pinwatch

import "iter"

// Resolve scans seq once and returns the highest-precedence accepted tag.
//
// A running maximum is kept: the first accepted tag becomes the provisional
// maximum and is replaced whenever a later tag compares greater, so the
// result does not depend on input order beyond ties between equal versions.
// ok is false when no tag is accepted.
// The first error yielded by seq is returned unchanged.
func Resolve(seq iter.Seq2[string, error], opt Options) (latest string, ok bool, err error) {
	compare := opt.Comparator()

	for tag, fetchErr := range seq {
		if fetchErr != nil {
			return "", false, fetchErr
		}

		if !accept(tag, opt) {
			continue
		}

		if !ok || compare(tag, latest) > 0 {
			latest, ok = tag, true
		}
	}

	return latest, ok, nil
}

// Latest is Resolve over an already fetched slice.
func Latest(tags []string, opt Options) (string, bool) {
	latest, ok, _ := Resolve(Values(tags), opt)
	return latest, ok
}

// Select filters, sorts and limits tags in one call.
// Equivalent to Sort(Filter(in, opt), opt.Sort, opt.Comparator()) capped to opt.Limit.
func Select(in []string, opt Options) []string {
	out := Filter(in, opt)
	if opt.Sort != SortNone {
		out = Sort(out, opt.Sort, opt.Comparator())
	}

	return capStrings(out, opt.Limit)
}

// Releases keeps release tags only and sorts them newest first.
func Releases(in []string) []string {
	return Select(in, Options{Sort: SortDesc})
}

// IsOutdated reports whether pinned is older than latest under compare.
// Nil compare means CompareVersions.
func IsOutdated(pinned, latest string, compare Comparator) bool {
	if compare == nil {
		compare = CompareVersions
	}

	return compare(pinned, latest) < 0
}
