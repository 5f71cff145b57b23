package check

import "fmt"

// Status classifies a Result.
type Status uint8

const (
	// StatusUpToDate means the pinned version is not older than the latest release.
	StatusUpToDate Status = iota
	// StatusOutdated means a newer release exists.
	StatusOutdated
	// StatusUnknown means no tag survived filtering, nothing to compare against.
	StatusUnknown
	// StatusError means tags could not be fetched or decoded.
	StatusError
)

// String returns a stable textual representation for Status.
func (s Status) String() string {
	switch s {
	case StatusUpToDate:
		return "up-to-date"
	case StatusOutdated:
		return "outdated"
	case StatusUnknown:
		return "unknown"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// MarshalText encodes the status as its String form.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
