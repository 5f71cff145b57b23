package pinwatch

import "sort"

// Sort returns a sorted copy of in ordered by compare (CompareVersions when nil).
// Equal versions keep their input order.
func Sort(in []string, mode SortMode, compare Comparator) []string {
	out := append([]string(nil), in...)
	if mode == SortNone || len(out) < 2 {
		return out
	}

	if compare == nil {
		compare = CompareVersions
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j])
		if mode == SortAsc {
			return c < 0
		}
		return c > 0 // SortDesc
	})

	return out
}

// SortN sorts and then returns at most N items.
func SortN(in []string, mode SortMode, compare Comparator, n int) []string {
	return capStrings(Sort(in, mode, compare), n)
}
