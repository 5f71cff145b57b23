package check

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/pinwatch"
	"github.com/woozymasta/pinwatch/config"
	"github.com/woozymasta/pinwatch/registry"
)

// fakeSource serves tags from memory; repositories missing from tags fail.
type fakeSource struct {
	tags  map[string][]string
	calls atomic.Int32
}

func (f *fakeSource) Tags(_ context.Context, repository string) iter.Seq2[string, error] {
	f.calls.Add(1)
	tags, ok := f.tags[repository]
	if !ok {
		return func(yield func(string, error) bool) {
			yield("", fmt.Errorf("%w: %s unreachable", registry.ErrFetch, repository))
		}
	}

	return pinwatch.Values(tags)
}

func newFake() *fakeSource {
	return &fakeSource{tags: map[string][]string{
		"org/current":  {"1.0.0", "1.9.0", "1.9.1-rc1"},
		"org/stale":    {"1.0.0", "1.1.0", "1.1.0-rc1", "1.1.0b1"},
		"org/prerelea": {"2.0.0-rc1", "2.0.0b2"},
		"org/empty":    {},
		"org/semver":   {"v1.2.0", "v1.10.0", "edge"},
	}}
}

func TestCheck(t *testing.T) {
	c := New(newFake(), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name       string
		entry      config.Entry
		wantStatus Status
		wantLatest string
	}{
		{"newer pin is up-to-date", config.Entry{Repository: "org/current", Version: "2.0.0"}, StatusUpToDate, "1.9.0"},
		{"equal pin is up-to-date", config.Entry{Repository: "org/current", Version: "1.9.0"}, StatusUpToDate, "1.9.0"},
		{"older pin is outdated", config.Entry{Repository: "org/stale", Version: "1.0.0", Uses: []string{"serviceA", "serviceB"}}, StatusOutdated, "1.1.0"},
		{"only prereleases", config.Entry{Repository: "org/prerelea", Version: "1.0.0"}, StatusUnknown, ""},
		{"no tags", config.Entry{Repository: "org/empty", Version: "1.0.0"}, StatusUnknown, ""},
		{"semver mode", config.Entry{Repository: "org/semver", Version: "v1.9.0", Compare: "semver"}, StatusOutdated, "v1.10.0"},
		{"include filter", config.Entry{Repository: "org/stale", Version: "1.0.0", Include: `^1\.0\.`}, StatusUpToDate, "1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Check(ctx, tt.entry)
			require.NoError(t, res.Err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantLatest, res.Latest)
			assert.Equal(t, tt.entry.Repository, res.Repository)
			assert.Equal(t, tt.entry.Version, res.Version)
			assert.Equal(t, tt.entry.Uses, res.Uses)
		})
	}
}

func TestCheck_Errors(t *testing.T) {
	c := New(newFake(), zerolog.Nop())

	res := c.Check(context.Background(), config.Entry{Repository: "org/down", Version: "1.0"})
	assert.Equal(t, StatusError, res.Status)
	require.ErrorIs(t, res.Err, registry.ErrFetch)
	assert.Empty(t, res.Latest)

	res = c.Check(context.Background(), config.Entry{Repository: "org/current", Version: "1.0", Include: "("})
	assert.Equal(t, StatusError, res.Status)
	require.ErrorIs(t, res.Err, config.ErrInvalid)
}

func TestRun_OrderAndIsolation(t *testing.T) {
	entries := []config.Entry{
		{Repository: "org/stale", Version: "1.0.0"},
		{Repository: "org/down", Version: "1.0.0"},
		{Repository: "org/current", Version: "1.9.0"},
		{Repository: "org/empty", Version: "1.0.0"},
	}
	want := []Status{StatusOutdated, StatusError, StatusUpToDate, StatusUnknown}

	for _, jobs := range []int{0, 1, 2, 8} {
		t.Run(fmt.Sprintf("jobs=%d", jobs), func(t *testing.T) {
			src := newFake()
			results := New(src, zerolog.Nop()).Run(context.Background(), entries, jobs)

			require.Len(t, results, len(entries))
			for i, r := range results {
				assert.Equal(t, entries[i].Repository, r.Repository)
				assert.Equal(t, want[i], r.Status, r.Repository)
			}
			assert.EqualValues(t, len(entries), src.calls.Load())

			assert.True(t, Failed(results))
			assert.Equal(t, 1, CountOutdated(results))
		})
	}
}

func TestRun_WithRegistryClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/myorg/myproj/tags/list":
			_, _ = w.Write([]byte(`{"tags":["v1","v2","v3"]}`))
		case "/v1/repositories/library/tags":
			_, _ = w.Write([]byte(`[{"name":"1.0.0"},{"name":"1.1.0"},{"name":"1.1.0-rc1"},{"name":"1.1.0b1"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := registry.New(srv.Client(), zerolog.Nop())
	client.DockerHubURL = srv.URL
	client.GCRURL = srv.URL

	results := New(client, zerolog.Nop()).Run(context.Background(), []config.Entry{
		{Repository: "gcr.io/myorg/myproj", Version: "v3"},
		{Repository: "library", Version: "1.0.0", Uses: []string{"serviceA"}},
		{Repository: "gcr.io/myorg", Version: "1"},
		{Repository: "org/gone", Version: "1"},
	}, 1)

	assert.Equal(t, StatusUpToDate, results[0].Status)
	assert.Equal(t, "v3", results[0].Latest)

	assert.Equal(t, StatusOutdated, results[1].Status)
	assert.Equal(t, "1.1.0", results[1].Latest)

	assert.Equal(t, StatusError, results[2].Status)
	assert.True(t, errors.Is(results[2].Err, registry.ErrMalformedIdentifier))

	assert.Equal(t, StatusError, results[3].Status)
	assert.True(t, errors.Is(results[3].Err, registry.ErrFetch))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "up-to-date", StatusUpToDate.String())
	assert.Equal(t, "outdated", StatusOutdated.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "status(9)", Status(9).String())

	b, err := StatusOutdated.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "outdated", string(b))
}
