package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/layout"
)

// flagOverrides holds global flag values. Empty strings mean "not set".
type flagOverrides struct {
	Mode     string
	Interval string
	NoColor  bool
}

// settings is the effective runtime configuration after all overrides.
type settings struct {
	Mode      layout.Mode
	GroupSize int
	Interval  time.Duration
	Color     string
}

// engine builds a layout engine for these settings.
func (s settings) engine() *layout.Engine {
	return layout.New(layout.Options{Mode: s.Mode, CPUGroupSize: s.GroupSize})
}

// resolveSettings applies flag overrides on top of cfg and validates the
// result. cfg is not modified.
func resolveSettings(cfg *config.Config, flags flagOverrides) (settings, error) {
	merged := *cfg

	if flags.Mode != "" {
		merged.Layout.Mode = flags.Mode
	}
	if flags.Interval != "" {
		interval, err := ParseInterval(flags.Interval)
		if err != nil {
			return settings{}, err
		}
		merged.Refresh.Interval = interval
	}
	if flags.NoColor {
		merged.Output.Color = config.ColorNever
	}

	mode, err := layout.ParseMode(merged.Layout.Mode)
	if err != nil {
		return settings{}, err
	}
	merged.Layout.Mode = mode.String()

	if err := config.Validate(&merged); err != nil {
		return settings{}, err
	}

	return settings{
		Mode:      mode,
		GroupSize: merged.Layout.CPUGroupSize,
		Interval:  merged.Refresh.Interval,
		Color:     merged.Output.Color,
	}, nil
}

// ParseInterval parses a refresh interval flag.
func ParseInterval(flag string) (time.Duration, error) {
	interval, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 1s, 2s, or 500ms.")
	}
	return interval, nil
}

// applyColor sets the global lipgloss color profile and reports whether
// frames should be styled. isTTY says whether the output is a terminal.
func applyColor(color string, isTTY bool) bool {
	switch color {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
		return false
	case config.ColorAlways:
		if lipgloss.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
		return true
	default:
		if !isTTY {
			lipgloss.SetColorProfile(termenv.Ascii)
			return false
		}
		return true
	}
}
