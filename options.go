package pinwatch

import "regexp"

// Comparator orders two version strings, returning a negative number when
// a < b, zero when equal and a positive number when a > b.
type Comparator func(a, b string) int

// Options configures tag filtering and ordering.
// The zero value applies only the release filter and orders with CompareVersions.
type Options struct {
	// Compare orders tags. Nil means CompareVersions.
	Compare Comparator

	// Include positive regex filter applied to the raw tag; only matching tags are kept.
	Include *regexp.Regexp

	// Exclude negative regex filter applied to the raw tag; matching tags are dropped.
	Exclude *regexp.Regexp

	// ExcludeSignatures drops signature-like tags: sha256-<64 hex>.sig
	ExcludeSignatures bool

	// KeepPrereleases disables the release filter (rc / alpha / beta / dev tags pass).
	KeepPrereleases bool

	// Sort defines Select output ordering (none/asc/desc). Resolve ignores it.
	Sort SortMode

	// Limit caps Select output (<=0 = unlimited). Resolve ignores it.
	Limit int
}

// Comparator returns the effective comparator.
func (o Options) Comparator() Comparator {
	if o.Compare == nil {
		return CompareVersions
	}

	return o.Compare
}

// SortMode controls the final output ordering.
type SortMode uint8

const (
	// SortNone preserves the existing order.
	SortNone SortMode = iota
	// SortAsc sorts ascending (oldest first).
	SortAsc
	// SortDesc sorts descending (newest first).
	SortDesc
)

// String returns a stable textual representation for SortMode.
func (m SortMode) String() string {
	switch m {
	case SortAsc:
		return "ascending"
	case SortDesc:
		return "descending"
	default:
		return "none"
	}
}

// ParseSort maps strings to SortMode.
// Supported aliases:
//
//	asc:  "asc","ascending","inc","increase","up"
//	desc: "desc","descending","dec","decrease","down"
//	none: "none","default","asis"
func ParseSort(s string) SortMode {
	switch toTok(s) {
	// ascending (low -> high)
	case "asc", "ascending", "inc", "increase", "up":
		return SortAsc

	// descending (high -> low)
	case "desc", "descending", "dec", "decrease", "down":
		return SortDesc

	default:
		return SortNone
	}
}

// Mode selects the version ordering used for a repository.
type Mode uint8

const (
	// ModeVersion orders with CompareVersions (dotted numeric + keywords).
	ModeVersion Mode = iota
	// ModeSemver orders with CompareSemver (strict SemVer precedence).
	ModeSemver
)

// String returns a stable textual representation for Mode.
func (m Mode) String() string {
	if m == ModeSemver {
		return "semver"
	}

	return "version"
}

// Comparator returns the comparator implementing m.
func (m Mode) Comparator() Comparator {
	if m == ModeSemver {
		return CompareSemver
	}

	return CompareVersions
}

// ParseMode maps free-form tokens to Mode. Empty input selects ModeVersion.
// Supported aliases (case-insensitive):
//
//	version: "", "version", "loose", "default"
//	semver:  "semver", "sv", "strict"
func ParseMode(s string) (Mode, bool) {
	switch toTok(s) {
	case "", "version", "loose", "default":
		return ModeVersion, true
	case "semver", "sv", "strict":
		return ModeSemver, true
	default:
		return ModeVersion, false
	}
}
