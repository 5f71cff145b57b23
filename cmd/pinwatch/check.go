package main

import (
	"fmt"

	"github.com/woozymasta/pinwatch/check"
	"github.com/woozymasta/pinwatch/config"
	"github.com/woozymasta/pinwatch/report"
)

type CheckCommand struct {
	app *app

	Config       string `short:"c" long:"config"        description:"Path to the YAML config" default:"conf.yaml"`
	Jobs         int    `short:"j" long:"jobs"          description:"Repositories checked at once (<=1 = one after another)" default:"1"`
	Format       string `short:"f" long:"format"        description:"Output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
	Color        string `long:"color"                   description:"Highlight outdated and failed entries" choice:"auto" choice:"always" choice:"never" default:"auto"`
	FailOutdated bool   `long:"fail-outdated"           description:"Exit with status 3 when an outdated pin is found"`
}

// Execute loads the config, checks every repository and prints the report.
func (c *CheckCommand) Execute(_ []string) error {
	path := c.Config
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	format, ok := report.ParseFormat(c.Format)
	if !ok {
		return fmt.Errorf("unknown format %q", c.Format)
	}

	log, client, closeLog := c.app.setup()
	defer closeLog()

	log.Debug().Str("config", path).Int("repositories", len(cfg.Watch)).Int("jobs", c.Jobs).Msg("checking")

	results := check.New(client, log).Run(c.app.ctx, cfg.Watch, c.Jobs)

	if err := report.New(c.app.stdout, format, report.ParseColor(c.Color)).Write(results); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if failed := check.CountFailed(results); failed > 0 {
		return &exitError{code: exitFailed, err: fmt.Errorf("%d of %d repositories could not be checked", failed, len(results))}
	}

	if n := check.CountOutdated(results); c.FailOutdated && n > 0 {
		return &exitError{code: exitOutdated, err: fmt.Errorf("%d outdated pinned images", n)}
	}

	return nil
}
