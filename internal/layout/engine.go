package layout

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/vitals/internal/errors"
)

// Mode selects the layout topology family.
type Mode int

const (
	// ModeAdaptive reorders panels by orientation. It is the default.
	ModeAdaptive Mode = iota
	// ModeFixed uses one static topology for every viewport.
	ModeFixed
)

// String returns the mode name as used in config files.
func (m Mode) String() string {
	switch m {
	case ModeAdaptive:
		return "adaptive"
	case ModeFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adaptive", "":
		return ModeAdaptive, nil
	case "fixed":
		return ModeFixed, nil
	default:
		return ModeAdaptive, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown layout mode '%s'", s),
			"Use 'adaptive' or 'fixed'.")
	}
}

// Options configures an Engine.
type Options struct {
	Mode Mode
	// CPUGroupSize is the number of core readings packed per CPU panel row.
	// Values below 1 fall back to DefaultGroupSize.
	CPUGroupSize int
}

// Engine resolves viewports into panel regions. Its topology tables are
// built once by New and never modified, so an Engine is safe to share.
type Engine struct {
	mode      Mode
	groupSize int
	trees     map[Orientation]*Node
}

// New builds an engine for the given options.
func New(opts Options) *Engine {
	groupSize := opts.CPUGroupSize
	if groupSize < 1 {
		groupSize = DefaultGroupSize
	}

	trees, ok := topologies(groupSize)[opts.Mode]
	if !ok {
		trees = topologies(groupSize)[ModeAdaptive]
		opts.Mode = ModeAdaptive
	}

	return &Engine{
		mode:      opts.Mode,
		groupSize: groupSize,
		trees:     trees,
	}
}

// Mode returns the engine's layout mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// GroupSize returns how many CPU core readings share one row.
func (e *Engine) GroupSize() int {
	return e.groupSize
}

// Tree returns the topology used for the given orientation.
func (e *Engine) Tree(o Orientation) *Node {
	return e.trees[o]
}

// Resolve assigns every panel a region of the viewport. It is a pure
// function of its inputs.
func (e *Engine) Resolve(v Viewport, hints Hints) (Assignment, error) {
	if v.Width <= 0 || v.Height <= 0 {
		return nil, errors.WrapWithCode(ErrDegenerateViewport, errors.ErrLayout,
			fmt.Sprintf("Viewport %dx%d has no drawable area", v.Width, v.Height),
			"Resize the terminal so both dimensions are at least one cell.")
	}

	root := e.trees[OrientationOf(v)]

	if missing := root.missingHints(hints); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, p := range missing {
			names[i] = p.String()
		}
		return nil, errors.WrapWithCode(
			fmt.Errorf("%w: %s", ErrMissingSizeHint, strings.Join(names, ", ")),
			errors.ErrLayout,
			"Content-driven panel has no size hint",
			"This is a bug in vitals: every content-driven panel needs a hint.")
	}

	out := make(Assignment, len(Panels))
	root.place(Rect{Width: v.Width, Height: v.Height}, hints, out)
	return out, nil
}

// adaptiveVariant holds everything that differs between orientations in
// adaptive mode.
type adaptiveVariant struct {
	outer Direction
	disk  Constraint
	small Panel // shares the main column, Fixed(5)
	large Panel // owns the processes slot, Percentage(40)
}

var adaptiveVariants = map[Orientation]adaptiveVariant{
	Portrait: {
		outer: Vertical,
		disk:  Fixed(10),
		small: DiskProcesses,
		large: NetworkActivity,
	},
	Landscape: {
		outer: Horizontal,
		disk:  Min(10),
		small: NetworkActivity,
		large: DiskProcesses,
	},
}

// topologies builds the layout trees for every mode and orientation.
func topologies(groupSize int) map[Mode]map[Orientation]*Node {
	cpu := ContentDriven(PackedRows(groupSize))

	fixed := &Node{
		Direction: Vertical,
		Slots: []Slot{
			Leaf("cpu", cpu, CPUUsage),
			Leaf("memory", Fixed(3), MemoryUsage),
			Nested("disk", Min(10), &Node{
				Direction: Horizontal,
				Slots: []Slot{
					Leaf("usage", Percentage(40), DiskUsage),
					Leaf("processes", Percentage(60), DiskProcesses),
				},
			}),
			Leaf("network", Fixed(3), NetworkActivity),
		},
	}

	adaptive := make(map[Orientation]*Node, len(adaptiveVariants))
	for o, v := range adaptiveVariants {
		adaptive[o] = &Node{
			Direction: v.outer,
			Slots: []Slot{
				Nested("main", Min(70), &Node{
					Direction: Vertical,
					Slots: []Slot{
						Leaf("cpu", cpu, CPUUsage),
						Leaf("memory", Fixed(3), MemoryUsage),
						Leaf("disk", v.disk, DiskUsage),
						Leaf("small", Fixed(5), v.small),
					},
				}),
				Leaf("processes", Percentage(40), v.large),
			},
		}
	}

	return map[Mode]map[Orientation]*Node{
		ModeFixed:    {Landscape: fixed, Portrait: fixed},
		ModeAdaptive: adaptive,
	}
}
