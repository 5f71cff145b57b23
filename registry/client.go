// Package registry lists the tags published for a container image repository
// on Docker Hub or Google Container Registry.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// DefaultDockerHubURL is the Docker Hub registry API root.
	DefaultDockerHubURL = "https://registry.hub.docker.com"
	// DefaultGCRURL is the Google Container Registry API root.
	DefaultGCRURL = "https://gcr.io"
)

// Client fetches tag lists. The zero value is not usable, see New.
type Client struct {
	// DockerHubURL and GCRURL are API roots without a trailing path.
	DockerHubURL string
	GCRURL       string

	// HTTPClient performs requests. No timeout unless the caller sets one.
	HTTPClient *http.Client

	Logger zerolog.Logger
}

// New returns a Client talking to the public registries.
// A nil httpClient means a client without timeout.
func New(httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		DockerHubURL: DefaultDockerHubURL,
		GCRURL:       DefaultGCRURL,
		HTTPClient:   httpClient,
		Logger:       logger,
	}
}

// Endpoint returns the tag list URL for id.
func (c *Client) Endpoint(id string) (string, error) {
	switch KindOf(id) {
	case KindGCR:
		parts := strings.SplitN(id, "/", 3)
		if len(parts) < 3 {
			return "", fmt.Errorf("%w: %q: want host/organization/project", ErrMalformedIdentifier, id)
		}

		return fmt.Sprintf("%s/v2/%s/%s/tags/list",
			strings.TrimSuffix(c.GCRURL, "/"), url.QueryEscape(parts[1]), url.QueryEscape(parts[2])), nil

	default:
		org, project, _ := strings.Cut(id, "/")
		repo := url.QueryEscape(org)
		if project != "" {
			repo += "/" + url.QueryEscape(project)
		}

		return fmt.Sprintf("%s/v1/repositories/%s/tags", strings.TrimSuffix(c.DockerHubURL, "/"), repo), nil
	}
}

// Tags returns the tags of repository id as a lazy sequence.
//
// Nothing happens until the sequence is ranged over. Then exactly one GET is
// issued and the whole body is read; tags are decoded and yielded one by one.
// On failure a single ("", err) pair is yielded and the sequence ends; err
// wraps ErrFetch, ErrSchema or ErrMalformedIdentifier. Ranging again fetches again.
func (c *Client) Tags(ctx context.Context, id string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		kind := KindOf(id)

		endpoint, err := c.Endpoint(id)
		if err != nil {
			yield("", err)
			return
		}

		body, err := c.get(ctx, endpoint)
		if err != nil {
			yield("", err)
			return
		}

		items, err := kind.items(body)
		if err != nil {
			yield("", fmt.Errorf("%w: %s: %w", ErrSchema, endpoint, err))
			return
		}

		c.Logger.Debug().Str("repository", id).Str("registry", kind.String()).Int("tags", len(items)).Msg("tag list received")

		for i, item := range items {
			tag, err := kind.tag(item)
			if err != nil {
				yield("", fmt.Errorf("%w: %s: element %d: %w", ErrSchema, endpoint, i, err))
				return
			}

			if !yield(tag, nil) {
				return
			}
		}
	}
}

// List collects Tags into a slice.
func (c *Client) List(ctx context.Context, id string) ([]string, error) {
	var out []string
	for tag, err := range c.Tags(ctx, id) {
		if err != nil {
			return nil, err
		}
		out = append(out, tag)
	}

	return out, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	c.Logger.Debug().Str("url", req.URL.Redacted()).Msg("fetching tags")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if err := success(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, requestError(req, ErrFetch, fmt.Errorf("read body: %w", err))
	}

	if !json.Valid(body) {
		return nil, requestError(req, ErrFetch, errors.New("body is not valid JSON"))
	}

	return body, nil
}
