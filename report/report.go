// Package report prints check results.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pinwatch/check"
)

// Format selects the output encoding.
type Format uint8

const (
	// FormatText prints one human readable line per repository.
	FormatText Format = iota
	// FormatJSON prints a JSON array.
	FormatJSON
	// FormatYAML prints a YAML sequence.
	FormatYAML
)

// ParseFormat maps "text", "json" and "yaml" (case-insensitive) to Format.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return FormatText, false
	}
}

// ColorMode controls coloring of text output.
type ColorMode uint8

const (
	// ColorAuto colors when the writer is a color capable terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces ANSI colors.
	ColorAlways
	// ColorNever disables colors.
	ColorNever
)

// ParseColor maps "auto", "always" and "never" to ColorMode; unknown input is ColorAuto.
func ParseColor(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "force", "on":
		return ColorAlways
	case "never", "off", "none":
		return ColorNever
	default:
		return ColorAuto
	}
}

// Reporter writes results to an io.Writer.
type Reporter struct {
	w      io.Writer
	format Format
	color  bool

	outdated lipgloss.Style
	failed   lipgloss.Style
}

// New returns a Reporter writing to w.
func New(w io.Writer, format Format, mode ColorMode) *Reporter {
	r := lipgloss.NewRenderer(w)

	color := false
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
		color = true
	case ColorAuto:
		color = r.ColorProfile() != termenv.Ascii
	}

	return &Reporter{
		w:        w,
		format:   format,
		color:    color,
		outdated: r.NewStyle().Foreground(lipgloss.Color("1")),
		failed:   r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Write prints all results in the configured format.
func (r *Reporter) Write(results []check.Result) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(results))

	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(toRecords(results)); err != nil {
			return err
		}
		return enc.Close()

	default:
		for _, res := range results {
			if err := r.writeText(res); err != nil {
				return err
			}
		}
		return nil
	}
}

func (r *Reporter) writeText(res check.Result) error {
	prefix := res.Repository + " " + res.Version

	switch res.Status {
	case check.StatusOutdated:
		lines := []string{fmt.Sprintf("%s is outdated: latest is %s", prefix, res.Latest)}
		if len(res.Uses) > 0 {
			lines = append(lines, "  used in "+strings.Join(res.Uses, ", "))
		}
		return r.lines(&r.outdated, lines...)

	case check.StatusUnknown:
		return r.lines(nil, prefix+": no release tag found")

	case check.StatusError:
		return r.lines(&r.failed, fmt.Sprintf("%s: error: %v", prefix, res.Err))

	default:
		return r.lines(nil, prefix+" is up-to-date")
	}
}

// lines styles each line on its own so multi-line blocks are not padded.
// A nil style prints plain text.
func (r *Reporter) lines(style *lipgloss.Style, lines ...string) error {
	for _, l := range lines {
		if r.color && style != nil {
			l = style.Render(l)
		}
		if _, err := fmt.Fprintln(r.w, l); err != nil {
			return err
		}
	}

	return nil
}

// record is the machine readable form of check.Result.
type record struct {
	Repository string       `json:"repository" yaml:"repository"`
	Version    string       `json:"version" yaml:"version"`
	Latest     string       `json:"latest,omitempty" yaml:"latest,omitempty"`
	Status     check.Status `json:"status" yaml:"status"`
	Uses       []string     `json:"uses,omitempty" yaml:"uses,omitempty"`
	Error      string       `json:"error,omitempty" yaml:"error,omitempty"`
}

func toRecords(results []check.Result) []record {
	out := make([]record, 0, len(results))
	for _, res := range results {
		rec := record{
			Repository: res.Repository,
			Version:    res.Version,
			Latest:     res.Latest,
			Status:     res.Status,
			Uses:       res.Uses,
		}
		if res.Err != nil {
			rec.Error = res.Err.Error()
		}
		out = append(out, rec)
	}

	return out
}
