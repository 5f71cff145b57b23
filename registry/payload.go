package registry

import (
	"encoding/json"
	"errors"
)

// dockerHubTag is one element of the Docker Hub v1 tag list.
type dockerHubTag struct {
	Name *string `json:"name"`
}

// gcrTagList is the GCR v2 tags/list document.
type gcrTagList struct {
	Tags *[]json.RawMessage `json:"tags"`
}

// items splits a tag list payload into its raw elements.
func (k Kind) items(body []byte) ([]json.RawMessage, error) {
	switch k {
	case KindGCR:
		var doc gcrTagList
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, err
		}
		if doc.Tags == nil {
			return nil, errors.New(`missing "tags" array`)
		}

		return *doc.Tags, nil

	default:
		var list []json.RawMessage
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, err
		}
		if list == nil {
			return nil, errors.New("payload is null, want an array")
		}

		return list, nil
	}
}

// tag decodes a single raw element into a tag name.
func (k Kind) tag(item json.RawMessage) (string, error) {
	switch k {
	case KindGCR:
		var name *string
		if err := json.Unmarshal(item, &name); err != nil {
			return "", err
		}
		if name == nil {
			return "", errors.New("tag is null")
		}

		return *name, nil

	default:
		var t dockerHubTag
		if err := json.Unmarshal(item, &t); err != nil {
			return "", err
		}
		if t.Name == nil {
			return "", errors.New(`missing "name" field`)
		}

		return *t.Name, nil
	}
}
