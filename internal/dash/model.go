package dash

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/vitals/internal/layout"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/metrics"
)

// DefaultInterval is the time between collections.
const DefaultInterval = time.Second

// State is the lifecycle state of the dashboard. It only moves forward.
type State int

const (
	StateRunning State = iota
	StateDraining
	StateStopped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options configures a Model.
type Options struct {
	Engine    *layout.Engine
	Collector metrics.Collector
	Interval  time.Duration
	Logger    logger.Logger
	// Styled paints frames with lipgloss styles instead of plain text.
	Styled bool
	// Context bounds every collection. Defaults to context.Background.
	Context context.Context
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	engine    *layout.Engine
	collector metrics.Collector
	interval  time.Duration
	log       logger.Logger
	styled    bool
	ctx       context.Context

	viewport   layout.Viewport
	snapshot   metrics.Snapshot
	haveSample bool
	collecting bool
	frame      string

	help     help.Model
	showHelp bool

	state State
	err   error
}

// tickMsg signals that the next collection is due.
type tickMsg time.Time

// snapshotMsg carries the result of one collection.
type snapshotMsg struct {
	snapshot metrics.Snapshot
	err      error
}

// drainedMsg signals that the last frame has been flushed.
type drainedMsg struct{}

// CancelMsg asks the dashboard to shut down, as if the user pressed q.
type CancelMsg struct{}

// NewModel creates a dashboard model.
func NewModel(opts Options) Model {
	if opts.Engine == nil {
		opts.Engine = layout.New(layout.Options{})
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	// collecting starts true because Init launches the first collection.
	return Model{
		engine:     opts.Engine,
		collector:  opts.Collector,
		interval:   opts.Interval,
		log:        opts.Logger,
		styled:     opts.Styled,
		ctx:        opts.Context,
		collecting: true,
		help:       newHelp(),
		state:      StateRunning,
	}
}

// Init triggers the first collection immediately.
func (m Model) Init() tea.Cmd {
	return m.collectCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.viewport = layout.Viewport{Width: msg.Width, Height: msg.Height}
		m.help.Width = msg.Width
		if m.state == StateRunning && m.haveSample {
			if err := m.paint(); err != nil {
				return m.fail(err)
			}
		}

	case CancelMsg:
		return m.drain()

	case tickMsg:
		if m.state != StateRunning || m.collecting {
			return m, nil
		}
		m.collecting = true
		return m, m.collectCmd()

	case snapshotMsg:
		inFlight := m.collecting
		m.collecting = false
		if m.state == StateStopped || (m.state == StateDraining && !inFlight) {
			return m, nil
		}
		if stderrors.Is(msg.err, context.Canceled) {
			// The shutdown signal won the race with its CancelMsg.
			m.state = StateDraining
			m.showHelp = false
			return m, drained
		}
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.snapshot = msg.snapshot
		m.haveSample = true
		if err := m.paint(); err != nil {
			return m.fail(err)
		}
		if m.state == StateDraining {
			return m, drained
		}
		return m, m.tickCmd()

	case drainedMsg:
		m.state = StateStopped
		return m, tea.Quit
	}

	return m, nil
}

// View returns the cached frame, or the help overlay when it is open.
func (m Model) View() string {
	if m.showHelp && m.state == StateRunning {
		return m.renderHelpOverlay()
	}
	return m.frame
}

// State returns the lifecycle state.
func (m Model) State() State {
	return m.state
}

// Err returns the error that stopped the dashboard, if any.
func (m Model) Err() error {
	return m.err
}

// Frame returns the last painted frame.
func (m Model) Frame() string {
	return m.frame
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.drain()
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, keys.CloseHelp):
		m.showHelp = false
	}
	return m, nil
}

// drain stops polling. A collection already in flight is painted before
// the dashboard stops; otherwise it stops straight away.
func (m Model) drain() (tea.Model, tea.Cmd) {
	if m.state != StateRunning {
		return m, nil
	}
	m.state = StateDraining
	m.showHelp = false
	if m.collecting {
		m.log.Debug("draining dashboard after the current collection")
		return m, nil
	}
	m.log.Debug("draining dashboard")
	return m, drained
}

// drained reports that the last frame has been flushed.
func drained() tea.Msg {
	return drainedMsg{}
}

// fail records a fatal error and quits.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.log.Error("dashboard stopped: %v", err)
	m.err = err
	m.state = StateStopped
	return m, tea.Quit
}

// paint renders the last snapshot at the current viewport size and caches
// the frame. A degenerate viewport skips the frame; any other error is fatal.
func (m *Model) paint() error {
	canvas := NewCanvas(m.viewport.Width, m.viewport.Height)
	err := Render(m.engine, m.viewport, m.snapshot, canvas)
	if stderrors.Is(err, layout.ErrDegenerateViewport) {
		m.log.Debug("skipping frame: viewport %dx%d", m.viewport.Width, m.viewport.Height)
		return nil
	}
	if err != nil {
		return err
	}

	if m.styled {
		m.frame = canvas.Render()
	} else {
		m.frame = canvas.Plain()
	}
	return nil
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd returns a command that takes one snapshot.
func (m Model) collectCmd() tea.Cmd {
	collector, ctx := m.collector, m.ctx
	return func() tea.Msg {
		snap, err := collector.Collect(ctx)
		return snapshotMsg{snapshot: snap, err: err}
	}
}
