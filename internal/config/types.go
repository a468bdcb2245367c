package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Layout modes accepted in layout.mode.
const (
	ModeAdaptive = "adaptive"
	ModeFixed    = "fixed"
)

// Color settings accepted in output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Defaults applied when a key is absent from the config file.
const (
	DefaultCPUGroupSize = 5
	DefaultInterval     = time.Second
	MinInterval         = 100 * time.Millisecond
)

// Config represents the complete vitals configuration file.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version" validate:"gte=0"`
	Layout  LayoutConfig  `yaml:"layout" mapstructure:"layout"`
	Refresh RefreshConfig `yaml:"refresh" mapstructure:"refresh"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// LayoutConfig controls how panels are arranged.
type LayoutConfig struct {
	// Mode is "adaptive" (reflow by terminal orientation) or "fixed".
	Mode string `yaml:"mode" mapstructure:"mode" validate:"oneof=adaptive fixed"`

	// CPUGroupSize is how many core readings share one row of the CPU panel.
	CPUGroupSize int `yaml:"cpu_group_size" mapstructure:"cpu_group_size" validate:"min=1,max=64"`
}

// RefreshConfig controls the collection cadence.
type RefreshConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval" validate:"min=100ms"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color is "auto", "always" or "never".
	Color string `yaml:"color" mapstructure:"color" validate:"oneof=auto always never"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Layout: LayoutConfig{
			Mode:         ModeAdaptive,
			CPUGroupSize: DefaultCPUGroupSize,
		},
		Refresh: RefreshConfig{
			Interval: DefaultInterval,
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
	}
}
