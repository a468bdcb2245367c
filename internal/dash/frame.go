package dash

import (
	"strings"

	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/layout"
	"github.com/rileyhilliard/vitals/internal/metrics"
)

// Hints returns the layout size hints for a snapshot. The CPU hint is the
// core count; the engine turns it into rows using its group size.
func Hints(s metrics.Snapshot) layout.Hints {
	return layout.Hints{
		layout.CPUUsage:        s.CoreCount(),
		layout.MemoryUsage:     1,
		layout.DiskUsage:       len(s.Disks),
		layout.DiskProcesses:   len(s.DiskProcesses),
		layout.NetworkActivity: len(s.Network),
	}
}

// PackLines joins lines groupSize at a time, separated by a space.
func PackLines(lines []string, groupSize int) []string {
	if groupSize < 1 {
		groupSize = 1
	}
	packed := make([]string, 0, (len(lines)+groupSize-1)/groupSize)
	for start := 0; start < len(lines); start += groupSize {
		end := min(start+groupSize, len(lines))
		packed = append(packed, strings.Join(lines[start:end], " "))
	}
	return packed
}

// Bodies returns the text shown inside each panel.
func Bodies(s metrics.Snapshot, groupSize int) map[layout.Panel][]string {
	return map[layout.Panel][]string{
		layout.CPUUsage:        PackLines(s.CPU, groupSize),
		layout.MemoryUsage:     {s.Memory},
		layout.DiskUsage:       s.Disks,
		layout.DiskProcesses:   s.DiskProcesses,
		layout.NetworkActivity: s.Network,
	}
}

// Render lays out one frame and paints every panel, in layout.Panels order.
// Layout errors are returned unchanged so callers can tell a degenerate
// viewport apart from a fatal one; painter errors carry the PAINT code.
func Render(engine *layout.Engine, v layout.Viewport, s metrics.Snapshot, p Painter) error {
	regions, err := engine.Resolve(v, Hints(s))
	if err != nil {
		return err
	}

	bodies := Bodies(s, engine.GroupSize())
	for _, panel := range layout.Panels {
		if err := p.Paint(regions[panel], panel.Title(), bodies[panel]); err != nil {
			if errors.IsCode(err, errors.ErrPaint) {
				return err
			}
			return errors.WrapWithCode(err, errors.ErrPaint,
				"Failed to paint panel '"+panel.Title()+"'",
				"Try resizing the terminal; if this persists, run with VITALS_DEBUG=1 and check the log.")
		}
	}
	return nil
}

// RenderFrame paints one frame onto a fresh canvas and returns it as text.
// styled selects lipgloss styling over plain text.
func RenderFrame(engine *layout.Engine, v layout.Viewport, s metrics.Snapshot, styled bool) (string, error) {
	canvas := NewCanvas(v.Width, v.Height)
	if err := Render(engine, v, s, canvas); err != nil {
		return "", err
	}
	if styled {
		return canvas.Render(), nil
	}
	return canvas.Plain(), nil
}
