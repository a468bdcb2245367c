package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rileyhilliard/vitals/internal/dash"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/metrics"
)

// dashboardCommand runs the live dashboard until the user quits or the
// process is signalled.
func dashboardCommand(parent context.Context, s settings) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"The dashboard needs an interactive terminal",
			"Run vitals directly in a terminal, or use 'vitals snapshot' to print a single frame.")
	}
	if parent == nil {
		parent = context.Background()
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewEnvLogger("dash")
	styled := applyColor(s.Color, true)

	model := dash.NewModel(dash.Options{
		Engine:    s.engine(),
		Collector: metrics.NewLocal(metrics.WithLogger(logger.NewEnvLogger("metrics"))),
		Interval:  s.Interval,
		Logger:    log,
		Styled:    styled,
		Context:   ctx,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithoutSignalHandler())

	// Signals drain the dashboard the same way the quit keys do.
	go func() {
		<-ctx.Done()
		p.Send(dash.CancelMsg{})
	}()

	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The dashboard stopped unexpectedly",
			"Check that your terminal supports the alternate screen.")
	}

	if m, ok := final.(dash.Model); ok {
		return m.Err()
	}
	return nil
}
