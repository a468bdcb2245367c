package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/logger"
)

// Global flags
var (
	cfgFile      string
	modeFlag     string
	intervalFlag string
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Live terminal dashboard for CPU, memory, disk and network",
	Long: `vitals shows per-core CPU usage, memory, disk usage, disk I/O by process
and network activity in a dashboard that reflows with your terminal.

Wide terminals put the panels side by side, tall ones stack them.

Examples:
  vitals
  vitals --mode fixed
  vitals --interval 500ms --no-color`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return dashboardCommand(cmd.Context(), s)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.vitals.yaml or ~/.config/vitals/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "layout mode: adaptive or fixed")
	rootCmd.PersistentFlags().StringVar(&intervalFlag, "interval", "", "refresh interval (e.g., 1s, 500ms)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	closer, err := logger.Setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: debug logging disabled: %v\n", err)
	}

	err = rootCmd.Execute()
	closeDebugLog(os.Stderr, closer)
	if err != nil {
		os.Exit(handleError(os.Stderr, err))
	}
}

// closeDebugLog closes the debug log opened by logger.Setup, if any, and
// warns on w when the close fails.
func closeDebugLog(w io.Writer, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		fmt.Fprintf(w, "warning: debug log not closed cleanly: %v\n", err)
	}
}

// handleError prints err and returns the process exit code.
func handleError(w io.Writer, err error) int {
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}
	fmt.Fprintln(w, err)
	return 1
}

// loadSettings resolves config, environment and global flags.
func loadSettings() (settings, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return settings{}, err
	}
	logger.Default().Debug("config loaded from %q", path)

	return resolveSettings(cfg, flagOverrides{
		Mode:     modeFlag,
		Interval: intervalFlag,
		NoColor:  noColor,
	})
}
