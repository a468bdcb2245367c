package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/vitals/internal/dash"
	"github.com/rileyhilliard/vitals/internal/layout"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/metrics"
)

// Fallback frame size when the output is not a terminal.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

var (
	snapshotWidth  int
	snapshotHeight int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one dashboard frame to stdout",
	Long: `Take one sample and print a single dashboard frame, then exit.

The frame size defaults to the terminal size, or 80x24 when stdout is not a
terminal. The first sample has no previous reading, so CPU usage is measured
since boot and network counters show zero.

Examples:
  vitals snapshot
  vitals snapshot --width 120 --height 40
  vitals snapshot --mode fixed > frame.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		fd := int(os.Stdout.Fd())
		isTTY := term.IsTerminal(fd)
		v := resolveViewport(snapshotWidth, snapshotHeight, func() (int, int, error) {
			return term.GetSize(fd)
		})

		collector := metrics.NewLocal(metrics.WithLogger(logger.NewEnvLogger("metrics")))
		return snapshotCommand(cmd.Context(), cmd.OutOrStdout(), s, v, collector, applyColor(s.Color, isTTY))
	},
}

func init() {
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 0, "frame width in columns (default: terminal width)")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", 0, "frame height in rows (default: terminal height)")
	rootCmd.AddCommand(snapshotCmd)
}

// snapshotCommand collects once and writes a single frame to w.
func snapshotCommand(ctx context.Context, w io.Writer, s settings, v layout.Viewport, c metrics.Collector, styled bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	snap, err := c.Collect(ctx)
	if err != nil {
		return err
	}

	frame, err := dash.RenderFrame(s.engine(), v, snap, styled)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, frame)
	return err
}

// resolveViewport picks the frame size: explicit flags first, then the
// terminal size, then 80x24. Each dimension falls back independently.
func resolveViewport(width, height int, termSize func() (int, int, error)) layout.Viewport {
	if width > 0 && height > 0 {
		return layout.Viewport{Width: width, Height: height}
	}

	tw, th, err := termSize()
	if err != nil || tw <= 0 || th <= 0 {
		tw, th = fallbackWidth, fallbackHeight
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return layout.Viewport{Width: width, Height: height}
}
