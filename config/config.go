// Package config loads the list of watched repositories.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pinwatch"
)

// DefaultPath is read when no config path is given.
const DefaultPath = "conf.yaml"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the parsed configuration file.
type Config struct {
	// Watch lists watched repositories in document order.
	Watch []Entry
}

// Entry is one watched repository.
//
//	watch:
//	  library/python:
//	    version: "3.9.1"
//	    uses: [serviceA, serviceB]
type Entry struct {
	// Repository is the mapping key, e.g. "library/python" or "gcr.io/org/project".
	Repository string `yaml:"-"`

	// Version is the pinned version.
	Version string `yaml:"version"`

	// Uses lists dependents reported along with an outdated pin.
	Uses []string `yaml:"uses,omitempty"`

	// Include / Exclude are optional regexps applied to raw tags before the release filter.
	Include string `yaml:"include,omitempty"`
	Exclude string `yaml:"exclude,omitempty"`

	// Compare selects the ordering: "version" (default) or "semver".
	Compare string `yaml:"compare,omitempty"`
}

// Options builds resolver options for e.
func (e Entry) Options() (pinwatch.Options, error) {
	var opt pinwatch.Options

	mode, ok := pinwatch.ParseMode(e.Compare)
	if !ok {
		return opt, fmt.Errorf("%w: %s: unknown compare mode %q", ErrInvalid, e.Repository, e.Compare)
	}
	opt.Compare = mode.Comparator()

	var err error
	if opt.Include, err = compile(e.Include); err != nil {
		return opt, fmt.Errorf("%w: %s: include: %w", ErrInvalid, e.Repository, err)
	}
	if opt.Exclude, err = compile(e.Exclude); err != nil {
		return opt, fmt.Errorf("%w: %s: exclude: %w", ErrInvalid, e.Repository, err)
	}

	return opt, nil
}

func compile(expr string) (*regexp.Regexp, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}

	return regexp.Compile(expr)
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if cfg.Watch == nil {
		return nil, fmt.Errorf(`%w: missing "watch" section`, ErrInvalid)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every entry.
func (c *Config) Validate() error {
	for _, e := range c.Watch {
		if strings.TrimSpace(e.Repository) == "" {
			return fmt.Errorf("%w: empty repository name", ErrInvalid)
		}
		if strings.TrimSpace(e.Version) == "" {
			return fmt.Errorf("%w: %s: version is required", ErrInvalid, e.Repository)
		}
		if _, err := e.Options(); err != nil {
			return err
		}
	}

	return nil
}

// UnmarshalYAML keeps the order of the watch mapping.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Watch yaml.Node `yaml:"watch"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	switch raw.Watch.Kind {
	case 0:
		return errors.New(`missing "watch" section`)
	case yaml.MappingNode:
	default:
		return fmt.Errorf(`line %d: "watch" must be a mapping of repository to settings`, raw.Watch.Line)
	}

	c.Watch = make([]Entry, 0, len(raw.Watch.Content)/2)
	seen := make(map[string]struct{}, len(raw.Watch.Content)/2)

	for i := 0; i+1 < len(raw.Watch.Content); i += 2 {
		key, val := raw.Watch.Content[i], raw.Watch.Content[i+1]

		if _, dup := seen[key.Value]; dup {
			return fmt.Errorf("line %d: repository %q listed twice", key.Line, key.Value)
		}
		seen[key.Value] = struct{}{}

		var e Entry
		if err := val.Decode(&e); err != nil {
			return fmt.Errorf("line %d: %s: %w", val.Line, key.Value, err)
		}
		e.Repository = key.Value

		c.Watch = append(c.Watch, e)
	}

	return nil
}
