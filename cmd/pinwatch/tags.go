package main

import (
	"fmt"

	"github.com/woozymasta/pinwatch"
)

type TagsCommand struct {
	app *app

	All         bool   `short:"a" long:"all"          description:"Keep pre-release tags (rc, alpha, beta, dev)"`
	Semver      bool   `short:"s" long:"semver"       description:"Order by strict SemVer precedence"`
	ExcludeSigs bool   `short:"E" long:"exclude-sigs" description:"Drop sha256-<64>.sig tags"`
	Include     string `short:"i" long:"include"      description:"Regexp to keep tags (applied before the release filter)"`
	Exclude     string `short:"e" long:"exclude"      description:"Regexp to drop tags (applied before the release filter)"`
	Sort        string `short:"S" long:"sort"         description:"Sort output tags" choice:"none" choice:"asc" choice:"desc" default:"desc"`
	Limit       int    `short:"n" long:"limit"        description:"Max number of output tags (<=0 = unlimited)" default:"0"`

	Args struct {
		Repository string `positional-arg-name:"repository" description:"e.g. library/python or gcr.io/org/project"`
	} `positional-args:"yes" required:"yes"`
}

// Execute fetches the repository tags and prints the selected ones, one per line.
func (c *TagsCommand) Execute(_ []string) error {
	incRe, err := compileRegexp("include", c.Include)
	if err != nil {
		return err
	}
	excRe, err := compileRegexp("exclude", c.Exclude)
	if err != nil {
		return err
	}

	opt := pinwatch.Options{
		Include:           incRe,
		Exclude:           excRe,
		ExcludeSignatures: c.ExcludeSigs,
		KeepPrereleases:   c.All,
		Sort:              pinwatch.ParseSort(c.Sort),
		Limit:             c.Limit,
	}
	if c.Semver {
		opt.Compare = pinwatch.ModeSemver.Comparator()
	}

	_, client, closeLog := c.app.setup()
	defer closeLog()

	tags, err := client.List(c.app.ctx, c.Args.Repository)
	if err != nil {
		return &exitError{code: exitFailed, err: err}
	}

	for _, t := range pinwatch.Select(tags, opt) {
		fmt.Fprintln(c.app.stdout, t)
	}

	return nil
}
