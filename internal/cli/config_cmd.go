package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/errors"
)

// Exit code used when the user aborts an interactive prompt.
const exitAborted = 130

var (
	initForce          bool
	initNonInteractive bool
	initGlobal         bool
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3fb950")).Bold(true)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the vitals config",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config as YAML",
	Long: `Print the config vitals would run with, after defaults, the config file
and VITALS_* environment overrides are merged. Command-line flags are not
included.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return err
		}
		return showConfig(cmd.OutOrStdout(), cfg, path)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a vitals config file",
	Long: `Create a config file, asking for each setting.

Writes ./.vitals.yaml by default, or ~/.config/vitals/config.yaml with --global.

Examples:
  vitals config init
  vitals config init --global
  vitals config init --non-interactive --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(".", config.ConfigFileName)
		if initGlobal {
			path = config.GlobalPath()
			if path == "" {
				return errors.New(errors.ErrConfig,
					"Cannot determine your home directory",
					"Set $HOME, or run without --global to write ./"+config.ConfigFileName)
			}
		}
		return initConfig(cmd.OutOrStdout(), initOptions{
			Path:           path,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting in the config file",
	Long: fmt.Sprintf(`Change one setting in the config file, keeping its comments.

Keys: %s

Examples:
  vitals config set layout.mode fixed
  vitals config set refresh.interval 2s`, strings.Join(config.Keys, ", ")),
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Find(cfgFile)
		if err != nil {
			return err
		}
		if path == "" {
			return errors.New(errors.ErrConfig,
				"No config file found",
				"Run 'vitals config init' to create one.")
		}
		if err := config.SetValue(path, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s = %s in %s\n", successStyle.Render("✓"), args[0], args[1], path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	configInitCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and write defaults")
	configInitCmd.Flags().BoolVar(&initGlobal, "global", false, "write the global config in ~/.config/vitals")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// showConfig writes cfg as YAML, noting where it came from.
func showConfig(w io.Writer, cfg *config.Config, path string) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}

	source := path
	if source == "" {
		source = "defaults (no config file found)"
	}
	fmt.Fprintf(w, "# source: %s\n", source)
	_, err = w.Write(data)
	return err
}

// initOptions holds options for config init.
type initOptions struct {
	Path           string
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use defaults
}

// initConfig writes a new config file at opts.Path.
func initConfig(w io.Writer, opts initOptions) error {
	if _, err := os.Stat(opts.Path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", opts.Path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", opts.Path)).
					Value(&overwrite),
			),
		)
		if err := runForm(form); err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Write(opts.Path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s Wrote %s\n", successStyle.Render("✓"), opts.Path)
	return nil
}

// promptConfig asks for each setting, starting from cfg's values.
func promptConfig(cfg *config.Config) error {
	mode := cfg.Layout.Mode
	color := cfg.Output.Color
	interval := cfg.Refresh.Interval.String()
	groupSize := strconv.Itoa(cfg.Layout.CPUGroupSize)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Layout mode").
				Description("Adaptive reflows the panels when the terminal turns tall or wide").
				Options(
					huh.NewOption("adaptive", config.ModeAdaptive),
					huh.NewOption("fixed", config.ModeFixed),
				).
				Value(&mode),
			huh.NewInput().
				Title("Refresh interval").
				Placeholder("1s").
				Value(&interval).
				Validate(validateInterval),
			huh.NewInput().
				Title("CPU cores per row").
				Value(&groupSize).
				Validate(validateGroupSize),
			huh.NewSelect[string]().
				Title("Color").
				Options(
					huh.NewOption("auto", config.ColorAuto),
					huh.NewOption("always", config.ColorAlways),
					huh.NewOption("never", config.ColorNever),
				).
				Value(&color),
		),
	)
	if err := runForm(form); err != nil {
		return err
	}

	cfg.Layout.Mode = mode
	cfg.Output.Color = color
	cfg.Refresh.Interval, _ = time.ParseDuration(strings.TrimSpace(interval))
	cfg.Layout.CPUGroupSize, _ = strconv.Atoi(strings.TrimSpace(groupSize))
	return nil
}

func runForm(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return errors.NewExitError(exitAborted)
		}
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}
	return nil
}

func validateInterval(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("use a duration like 1s or 500ms")
	}
	if d < config.MinInterval {
		return fmt.Errorf("must be at least %s", config.MinInterval)
	}
	return nil
}

func validateGroupSize(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 64 {
		return fmt.Errorf("enter a number between 1 and 64")
	}
	return nil
}
