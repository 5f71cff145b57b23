// Package check compares pinned versions against the latest release tags.
package check

import (
	"context"
	"iter"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/pinwatch"
	"github.com/woozymasta/pinwatch/config"
)

// TagSource produces the raw tags of a repository.
type TagSource interface {
	Tags(ctx context.Context, repository string) iter.Seq2[string, error]
}

// TagSourceFunc adapts a function to TagSource.
type TagSourceFunc func(ctx context.Context, repository string) iter.Seq2[string, error]

// Tags calls f.
func (f TagSourceFunc) Tags(ctx context.Context, repository string) iter.Seq2[string, error] {
	return f(ctx, repository)
}

// Result is the outcome for one watched repository.
type Result struct {
	Repository string
	Version    string
	// Latest is empty unless Status is StatusUpToDate or StatusOutdated.
	Latest string
	Uses   []string
	Status Status
	// Err is set only for StatusError.
	Err error
}

// Checker resolves watched repositories against a TagSource.
type Checker struct {
	Source TagSource
	Logger zerolog.Logger
}

// New returns a Checker.
func New(src TagSource, logger zerolog.Logger) *Checker {
	return &Checker{Source: src, Logger: logger}
}

// Check fetches, filters and compares a single repository.
func (c *Checker) Check(ctx context.Context, e config.Entry) Result {
	res := Result{
		Repository: e.Repository,
		Version:    e.Version,
		Uses:       e.Uses,
	}
	log := c.Logger.With().Str("repository", e.Repository).Logger()

	opt, err := e.Options()
	if err != nil {
		res.Status, res.Err = StatusError, err
		return res
	}

	latest, ok, err := pinwatch.Resolve(c.Source.Tags(ctx, e.Repository), opt)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("check failed")
		res.Status, res.Err = StatusError, err

	case !ok:
		log.Debug().Msg("no release tag")
		res.Status = StatusUnknown

	case pinwatch.IsOutdated(e.Version, latest, opt.Comparator()):
		res.Latest, res.Status = latest, StatusOutdated

	default:
		res.Latest, res.Status = latest, StatusUpToDate
	}

	log.Debug().Str("pinned", e.Version).Str("latest", res.Latest).Stringer("status", res.Status).Msg("checked")

	return res
}

// Run checks every entry and returns results in entry order.
//
// jobs <= 1 checks one repository after another. Larger values check up to
// jobs repositories at once. A failing repository never stops the others.
func (c *Checker) Run(ctx context.Context, entries []config.Entry, jobs int) []Result {
	results := make([]Result, len(entries))

	if jobs <= 1 {
		for i, e := range entries {
			results[i] = c.Check(ctx, e)
		}

		return results
	}

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, e := range entries {
		g.Go(func() error {
			results[i] = c.Check(ctx, e)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Failed reports whether any result is StatusError.
func Failed(results []Result) bool {
	return lo.SomeBy(results, func(r Result) bool { return r.Status == StatusError })
}

// CountFailed returns how many results are StatusError.
func CountFailed(results []Result) int {
	return lo.CountBy(results, func(r Result) bool { return r.Status == StatusError })
}

// CountOutdated returns how many results are StatusOutdated.
func CountOutdated(results []Result) int {
	return lo.CountBy(results, func(r Result) bool { return r.Status == StatusOutdated })
}
