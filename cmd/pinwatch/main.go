/*
Package main is the pinwatch cli tool: it reports container images pinned in a
YAML config whose upstream registry (Docker Hub or GCR) publishes a newer release.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/woozymasta/pinwatch/internal/logger"
	"github.com/woozymasta/pinwatch/registry"
)

// Exit codes. Staleness alone never changes the exit code unless --fail-outdated is set.
const (
	exitOK       = 0
	exitUsage    = 1
	exitFailed   = 2
	exitOutdated = 3
)

type Options struct {
	// betteralign:ignore

	// Logging and registry access
	Global GlobalOptions `group:"Global"`

	Check CheckCommand `command:"check" description:"Report outdated pinned images (default command)"`
	Tags  TagsCommand  `command:"tags"  description:"List release tags of a repository, newest first"`
}

type GlobalOptions struct {
	Verbose      bool          `short:"v" long:"verbose"       description:"Enable debug logging"`
	LogFile      string        `long:"log-file"                description:"Also write JSON logs to this file (rotated)"`
	Timeout      time.Duration `long:"timeout"                 description:"Timeout per registry request (0 = none)" default:"0s"`
	DockerHubURL string        `long:"dockerhub-url"           description:"Docker Hub API root" default:"https://registry.hub.docker.com"`
	GCRURL       string        `long:"gcr-url"                 description:"GCR API root" default:"https://gcr.io"`
}

// app carries what commands share: the parsed global options and the I/O ends.
type app struct {
	ctx    context.Context
	global *GlobalOptions
	stdout io.Writer
	stderr io.Writer
}

// exitError carries a process exit code through go-flags.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opt Options
	a := &app{ctx: ctx, global: &opt.Global, stdout: stdout, stderr: stderr}
	opt.Check.app = a
	opt.Tags.app = a

	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true
	parser.LongDescription = `pinwatch checks container images pinned in a YAML config against
the latest release tag published on Docker Hub or GCR.
Release candidates, alpha, beta and dev tags are never considered a release.`

	rest, err := parser.ParseArgs(args)
	if err == nil && parser.Active == nil {
		err = opt.Check.Execute(rest)
	}
	if err == nil {
		return exitOK
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
		fmt.Fprintln(stdout, flagErr.Message)
		return exitOK
	}

	fmt.Fprintf(stderr, "pinwatch: %v\n", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return exitUsage
}

// setup builds the logger and registry client from global options.
func (a *app) setup() (zerolog.Logger, *registry.Client, func() error) {
	log, closeLog := logger.New(a.stderr, logger.Config{
		Verbose: a.global.Verbose,
		File:    a.global.LogFile,
	})

	client := registry.New(&http.Client{Timeout: a.global.Timeout}, log)
	if a.global.DockerHubURL != "" {
		client.DockerHubURL = a.global.DockerHubURL
	}
	if a.global.GCRURL != "" {
		client.GCRURL = a.global.GCRURL
	}

	return log, client, closeLog
}

// compileRegexp returns nil for an empty expression.
func compileRegexp(name, expr string) (*regexp.Regexp, error) {
	if s := strings.TrimSpace(expr); s != "" {
		re, err := regexp.Compile(s)
		if err != nil {
			return nil, fmt.Errorf("%s regexp: %w", name, err)
		}
		return re, nil
	}

	return nil, nil
}
