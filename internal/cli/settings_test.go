package cli

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/layout"
)

func TestResolveSettings(t *testing.T) {
	tests := []struct {
		name  string
		flags flagOverrides
		want  settings
	}{
		{
			name:  "defaults",
			flags: flagOverrides{},
			want:  settings{Mode: layout.ModeAdaptive, GroupSize: 5, Interval: time.Second, Color: config.ColorAuto},
		},
		{
			name:  "mode flag",
			flags: flagOverrides{Mode: "fixed"},
			want:  settings{Mode: layout.ModeFixed, GroupSize: 5, Interval: time.Second, Color: config.ColorAuto},
		},
		{
			name:  "mode flag is case-insensitive",
			flags: flagOverrides{Mode: "FIXED"},
			want:  settings{Mode: layout.ModeFixed, GroupSize: 5, Interval: time.Second, Color: config.ColorAuto},
		},
		{
			name:  "interval flag",
			flags: flagOverrides{Interval: "500ms"},
			want:  settings{Mode: layout.ModeAdaptive, GroupSize: 5, Interval: 500 * time.Millisecond, Color: config.ColorAuto},
		},
		{
			name:  "no color",
			flags: flagOverrides{NoColor: true},
			want:  settings{Mode: layout.ModeAdaptive, GroupSize: 5, Interval: time.Second, Color: config.ColorNever},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSettings(config.DefaultConfig(), tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSettings_FlagsBeatConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout.Mode = config.ModeFixed
	cfg.Layout.CPUGroupSize = 4
	cfg.Refresh.Interval = 3 * time.Second

	got, err := resolveSettings(cfg, flagOverrides{Mode: "adaptive", Interval: "2s"})
	require.NoError(t, err)

	assert.Equal(t, layout.ModeAdaptive, got.Mode)
	assert.Equal(t, 4, got.GroupSize, "unset flags keep config values")
	assert.Equal(t, 2*time.Second, got.Interval)
	assert.Equal(t, config.ModeFixed, cfg.Layout.Mode, "config is not modified")
}

func TestResolveSettings_Errors(t *testing.T) {
	tests := []struct {
		name     string
		flags    flagOverrides
		contains string
	}{
		{"bad interval", flagOverrides{Interval: "soon"}, "'soon' doesn't look like a valid interval"},
		{"interval too short", flagOverrides{Interval: "10ms"}, "refresh.interval"},
		{"unknown mode", flagOverrides{Mode: "diagonal"}, "Unknown layout mode 'diagonal'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveSettings(config.DefaultConfig(), tt.flags)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSettings_Engine(t *testing.T) {
	e := settings{Mode: layout.ModeFixed, GroupSize: 3}.engine()
	assert.Equal(t, layout.ModeFixed, e.Mode())
	assert.Equal(t, 3, e.GroupSize())
}

func TestApplyColor(t *testing.T) {
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	tests := []struct {
		color      string
		isTTY      bool
		wantStyled bool
		wantAscii  bool
	}{
		{config.ColorNever, true, false, true},
		{config.ColorAlways, false, true, false},
		{config.ColorAuto, false, false, true},
		{config.ColorAuto, true, true, false},
	}

	for _, tt := range tests {
		lipgloss.SetColorProfile(termenv.TrueColor)

		styled := applyColor(tt.color, tt.isTTY)

		assert.Equal(t, tt.wantStyled, styled, "%s tty=%v", tt.color, tt.isTTY)
		assert.Equal(t, tt.wantAscii, lipgloss.ColorProfile() == termenv.Ascii, "%s tty=%v", tt.color, tt.isTTY)
	}
}
