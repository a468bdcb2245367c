package dash

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/layout"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/metrics"
)

// fakeCollector returns a fixed snapshot, or err when set.
type fakeCollector struct {
	snapshot metrics.Snapshot
	err      error
	calls    int
}

func (c *fakeCollector) Collect(ctx context.Context) (metrics.Snapshot, error) {
	c.calls++
	if c.err != nil {
		return metrics.Snapshot{}, c.err
	}
	return c.snapshot, ctx.Err()
}

func newTestModel(c metrics.Collector, log logger.Logger) Model {
	return NewModel(Options{
		Engine:    layout.New(layout.Options{Mode: layout.ModeAdaptive}),
		Collector: c,
		Logger:    log,
	})
}

// update runs one message through the model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// runCollect executes the model's collect command and feeds the result back.
func runCollect(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(snapshotMsg)
	require.True(t, ok, "expected a snapshot, got %T", msg)
	return update(t, m, msg)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(Options{Collector: &fakeCollector{}})

	assert.Equal(t, StateRunning, m.State())
	assert.Equal(t, DefaultInterval, m.interval)
	assert.NotNil(t, m.engine)
	assert.NoError(t, m.Err())
	assert.Empty(t, m.View())
}

func TestModel_TickCycle(t *testing.T) {
	c := &fakeCollector{snapshot: scenarioSnapshot()}
	m := newTestModel(c, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, cmd := runCollect(t, m, m.Init())

	assert.Equal(t, 1, c.calls)
	assert.Equal(t, StateRunning, m.State())
	require.NotNil(t, cmd, "next tick is scheduled after the snapshot lands")

	frame := m.View()
	lines := strings.Split(frame, "\n")
	require.Len(t, lines, 40)
	assert.True(t, strings.HasPrefix(lines[0], "╭CPU Usage"))
	assert.Contains(t, frame, "Memory: 512 MB / 8192 MB")
	assert.Contains(t, frame, "╭Disk Processes")
	assert.Equal(t, frame, m.Frame())

	// A tick starts exactly one collection.
	m, cmd = update(t, m, tickMsg{})
	require.NotNil(t, cmd)
	m, extra := update(t, m, tickMsg{})
	assert.Nil(t, extra, "no second collection while one is in flight")

	m, _ = runCollect(t, m, cmd)
	assert.Equal(t, 2, c.calls)
	assert.False(t, m.collecting)
}

func TestModel_ResizeRepaints(t *testing.T) {
	m := newTestModel(&fakeCollector{snapshot: scenarioSnapshot()}, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = runCollect(t, m, m.Init())
	wide := m.View()

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 100})
	assert.Nil(t, cmd)

	tall := m.View()
	assert.NotEqual(t, wide, tall)
	assert.Len(t, strings.Split(tall, "\n"), 100)
}

func TestModel_DegenerateViewportSkipsFrame(t *testing.T) {
	log := logger.NewBufferLogger()
	m := newTestModel(&fakeCollector{snapshot: scenarioSnapshot()}, log)

	// No WindowSizeMsg yet: the viewport is 0x0.
	m, cmd := runCollect(t, m, m.Init())

	assert.Equal(t, StateRunning, m.State())
	assert.NoError(t, m.Err())
	assert.Empty(t, m.View())
	assert.NotNil(t, cmd, "polling continues")
	assert.True(t, log.HasLevel("debug"))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.NotEmpty(t, m.View(), "the next size repaints")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 0})
	assert.Equal(t, StateRunning, m.State())
	assert.Len(t, strings.Split(m.View(), "\n"), 24, "previous frame is kept")
}

func TestModel_CollectFailureIsFatal(t *testing.T) {
	collectErr := errors.New(errors.ErrCollect, "Failed to read CPU usage", "")
	log := logger.NewBufferLogger()
	m := newTestModel(&fakeCollector{err: collectErr}, log)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, cmd := runCollect(t, m, m.Init())

	assert.Equal(t, StateStopped, m.State())
	assert.True(t, errors.IsCode(m.Err(), errors.ErrCollect))
	assert.True(t, isQuit(cmd))
	assert.True(t, log.HasLevel("error"))
}

func TestModel_QuitKeysDrain(t *testing.T) {
	keysToTry := map[string]tea.KeyMsg{
		"q":      keyRunes("q"),
		"ctrl+c": {Type: tea.KeyCtrlC},
	}

	for name, msg := range keysToTry {
		t.Run(name, func(t *testing.T) {
			m := newTestModel(&fakeCollector{snapshot: scenarioSnapshot()}, nil)
			m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
			m, _ = runCollect(t, m, m.Init())
			frame := m.View()

			m, cmd := update(t, m, msg)
			assert.Equal(t, StateDraining, m.State())
			assert.Equal(t, frame, m.View(), "current frame is flushed while draining")
			require.NotNil(t, cmd)

			m, cmd = update(t, m, cmd())
			assert.Equal(t, StateStopped, m.State())
			assert.True(t, isQuit(cmd))
			assert.NoError(t, m.Err())
		})
	}
}

func TestModel_CancelMsgDrains(t *testing.T) {
	m := newTestModel(&fakeCollector{snapshot: scenarioSnapshot()}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = runCollect(t, m, m.Init())

	m, cmd := update(t, m, CancelMsg{})
	assert.Equal(t, StateDraining, m.State())
	require.NotNil(t, cmd)

	// A second cancel does nothing.
	m, again := update(t, m, CancelMsg{})
	assert.Nil(t, again)
	assert.Equal(t, StateDraining, m.State())

	m, cmd = update(t, m, cmd())
	assert.Equal(t, StateStopped, m.State())
	assert.True(t, isQuit(cmd))
}

func TestModel_QuitFinishesCurrentTick(t *testing.T) {
	c := &fakeCollector{snapshot: scenarioSnapshot()}
	m := newTestModel(c, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = runCollect(t, m, m.Init())

	m, inflight := update(t, m, tickMsg{})
	require.NotNil(t, inflight)

	m, cmd := update(t, m, keyRunes("q"))
	assert.Equal(t, StateDraining, m.State())
	assert.Nil(t, cmd, "waits for the collection in flight")
	assert.NotContains(t, m.View(), "Memory: 4096 MB / 8192 MB")

	c.snapshot.Memory = "Memory: 4096 MB / 8192 MB"
	m, cmd = runCollect(t, m, inflight)
	assert.Equal(t, StateDraining, m.State())
	assert.Contains(t, m.View(), "Memory: 4096 MB / 8192 MB", "the last tick is painted")
	require.NotNil(t, cmd)
	assert.False(t, isQuit(cmd), "no new tick is scheduled")

	m, cmd = update(t, m, cmd())
	assert.Equal(t, StateStopped, m.State())
	assert.True(t, isQuit(cmd))
	assert.Equal(t, 2, c.calls)
}

func TestModel_QuitDuringFirstCollection(t *testing.T) {
	m := newTestModel(&fakeCollector{snapshot: scenarioSnapshot()}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	inflight := m.Init()

	m, cmd := update(t, m, keyRunes("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, StateDraining, m.State())

	m, cmd = update(t, m, inflight())
	assert.NotEmpty(t, m.View())
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, StateStopped, m.State())
}

func TestModel_DrainCollectFailureIsFatal(t *testing.T) {
	c := &fakeCollector{snapshot: scenarioSnapshot()}
	m := newTestModel(c, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = runCollect(t, m, m.Init())
	m, inflight := update(t, m, tickMsg{})
	m, _ = update(t, m, CancelMsg{})

	c.err = errors.New(errors.ErrCollect, "Failed to read memory usage", "")
	m, cmd := runCollect(t, m, inflight)

	assert.Equal(t, StateStopped, m.State())
	assert.True(t, errors.IsCode(m.Err(), errors.ErrCollect))
	assert.True(t, isQuit(cmd))
}

func TestModel_IgnoresWorkAfterDrain(t *testing.T) {
	c := &fakeCollector{snapshot: scenarioSnapshot()}
	m := newTestModel(c, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = runCollect(t, m, m.Init())
	frame := m.View()

	m, _ = update(t, m, keyRunes("q"))

	m, cmd := update(t, m, tickMsg{})
	assert.Nil(t, cmd, "no collection after quit")
	assert.Equal(t, 1, c.calls)

	stray := scenarioSnapshot()
	stray.Memory = "Memory: 1 MB / 8192 MB"
	m, cmd = update(t, m, snapshotMsg{snapshot: stray})
	assert.Nil(t, cmd, "a snapshot nobody waits for is dropped")
	assert.Equal(t, frame, m.View())
	assert.Equal(t, StateDraining, m.State())
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(&fakeCollector{snapshot: scenarioSnapshot()}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = runCollect(t, m, m.Init())

	m, _ = update(t, m, keyRunes("?"))
	view := m.View()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "quit")
	assert.Equal(t, StateRunning, m.State())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, m.Frame(), m.View())

	m, _ = update(t, m, keyRunes("?"))
	m, _ = update(t, m, keyRunes("?"))
	assert.Equal(t, m.Frame(), m.View(), "? toggles the overlay off")
}

func TestModel_CollectUsesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &fakeCollector{snapshot: scenarioSnapshot()}
	m := NewModel(Options{Collector: c, Context: ctx})

	msg := m.Init()()
	snap, ok := msg.(snapshotMsg)
	require.True(t, ok)
	assert.ErrorIs(t, snap.err, context.Canceled)
}

func TestModel_CancelledCollectionDrains(t *testing.T) {
	m := newTestModel(&fakeCollector{err: fmt.Errorf("read /proc/stat: %w", context.Canceled)}, nil)

	m, cmd := runCollect(t, m, m.Init())

	assert.Equal(t, StateDraining, m.State())
	assert.NoError(t, m.Err(), "shutdown is not a failure")
	require.NotNil(t, cmd)
	_, ok := cmd().(drainedMsg)
	assert.True(t, ok)
}

func TestState_String(t *testing.T) {
	for s, want := range map[State]string{
		StateRunning:  "running",
		StateDraining: "draining",
		StateStopped:  "stopped",
		State(9):      "unknown",
	} {
		assert.Equal(t, want, s.String(), fmt.Sprint(int(s)))
	}
}
