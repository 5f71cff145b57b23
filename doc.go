/*
Package pinwatch resolves the latest release tag of a container image
repository and tells whether a pinned version is outdated.

The package is network-agnostic: it operates on tag strings, either a slice
or a lazy sequence produced by a registry client (see package registry).
Typical flow:

 1. Fetch raw tags elsewhere (registry.Client.Tags).
 2. Call Resolve (or Latest) to pick the newest release tag.
 3. Compare the pinned version against it with IsOutdated.

Release filtering (IsRelease) drops release candidates ("3.7-rc1"),
and alpha / beta / dev builds ("3.7.0b1", "2.1.0-alpha").

Ordering notes:
  - CompareVersions splits versions into numeric and word runs and ranks
    dev < alpha < beta < rc < release < pl, so "1.0.0alpha" < "1.0.0" < "1.0.0pl1".
  - CompareSemver is a stricter alternative backed by SemVer precedence.

Usage example:

	raw := []string{"1.0.0", "1.1.0", "1.1.0-rc1", "1.1.0b1", "latest"}

	latest, ok := pinwatch.Latest(raw, pinwatch.Options{})
	fmt.Println(latest, ok) // 1.1.0 true

	fmt.Println(pinwatch.IsOutdated("1.0.0", latest, nil)) // true
*/
package pinwatch
