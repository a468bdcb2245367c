package layout

import "fmt"

// Kind identifies how a slot negotiates its length.
type Kind int

const (
	KindFixed Kind = iota
	KindMin
	KindPercentage
	KindContentDriven
)

// BorderChrome is the number of rows a bordered panel spends on its frame.
const BorderChrome = 2

// DefaultGroupSize is how many CPU core readings share one displayed row.
const DefaultGroupSize = 5

// Constraint is the sizing rule for one slot of a split.
type Constraint struct {
	Kind    Kind
	Value   int
	Content func(hint int) int
}

// Fixed requests exactly n cells.
func Fixed(n int) Constraint {
	return Constraint{Kind: KindFixed, Value: n}
}

// Min requests at least n cells. Min slots also absorb leftover space.
func Min(n int) Constraint {
	return Constraint{Kind: KindMin, Value: n}
}

// Percentage requests p percent of the parent length.
func Percentage(p int) Constraint {
	return Constraint{Kind: KindPercentage, Value: p}
}

// ContentDriven requests f(hint) cells, where hint is the occupant panel's
// content size.
func ContentDriven(f func(hint int) int) Constraint {
	return Constraint{Kind: KindContentDriven, Content: f}
}

// PackedRows returns a content function for items packed groupSize per row
// inside a bordered panel: ceil(n/groupSize) + BorderChrome.
func PackedRows(groupSize int) func(int) int {
	if groupSize < 1 {
		groupSize = 1
	}
	return func(n int) int {
		if n < 0 {
			n = 0
		}
		return (n+groupSize-1)/groupSize + BorderChrome
	}
}

// String returns the constraint in constructor form, e.g. "Min(10)".
func (c Constraint) String() string {
	switch c.Kind {
	case KindFixed:
		return fmt.Sprintf("Fixed(%d)", c.Value)
	case KindMin:
		return fmt.Sprintf("Min(%d)", c.Value)
	case KindPercentage:
		return fmt.Sprintf("Percentage(%d)", c.Value)
	case KindContentDriven:
		return "ContentDriven"
	default:
		return "Unknown"
	}
}

// priority orders the allocation passes: lower values are granted first.
func (c Constraint) priority() int {
	switch c.Kind {
	case KindFixed, KindContentDriven:
		return 0
	case KindPercentage:
		return 1
	default:
		return 2
	}
}

// request returns the length the constraint asks for inside a parent of the
// given length. Never negative.
func (c Constraint) request(parent, hint int) int {
	var n int
	switch c.Kind {
	case KindFixed, KindMin:
		n = c.Value
	case KindPercentage:
		p := c.Value
		if p > 100 {
			p = 100
		}
		n = parent * p / 100
	case KindContentDriven:
		if c.Content != nil {
			n = c.Content(hint)
		}
	}
	if n < 0 {
		return 0
	}
	return n
}
