package registry

import "strings"

// Kind selects the tag listing strategy for a repository identifier.
type Kind uint8

const (
	// KindDockerHub lists tags with the Docker Hub v1 API (the default).
	KindDockerHub Kind = iota
	// KindGCR lists tags with the Google Container Registry v2 API.
	KindGCR
)

// String returns a stable textual representation for Kind.
func (k Kind) String() string {
	if k == KindGCR {
		return "gcr"
	}

	return "dockerhub"
}

// KindOf picks KindGCR when id mentions "gcr.io" anywhere, KindDockerHub otherwise.
func KindOf(id string) Kind {
	if strings.Contains(id, "gcr.io") {
		return KindGCR
	}

	return KindDockerHub
}
