package layout

// maxPriority is the last allocation pass (Min slots).
const maxPriority = 2

// Node is a split: a rectangle divided along one axis into ordered slots.
type Node struct {
	Direction Direction
	Slots     []Slot
}

// Slot is one child of a split. It hosts Panel unless Split is set, in which
// case the slot's rectangle is divided again.
type Slot struct {
	Name       string
	Constraint Constraint
	Panel      Panel
	Split      *Node
}

// Leaf returns a slot that hosts a panel.
func Leaf(name string, c Constraint, p Panel) Slot {
	return Slot{Name: name, Constraint: c, Panel: p}
}

// Nested returns a slot that is divided by another split.
func Nested(name string, c Constraint, n *Node) Slot {
	return Slot{Name: name, Constraint: c, Split: n}
}

// Split divides area along dir into one rectangle per slot. The rectangles
// are contiguous, appear in slot order and together cover area exactly.
func Split(area Rect, dir Direction, slots []Slot, hints Hints) []Rect {
	total := area.Height
	if dir == Horizontal {
		total = area.Width
	}

	sizes := allocate(total, slots, hints)
	rects := make([]Rect, len(slots))
	offset := 0
	for i, size := range sizes {
		if dir == Horizontal {
			rects[i] = Rect{X: area.X + offset, Y: area.Y, Width: size, Height: area.Height}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: size}
		}
		offset += size
	}
	return rects
}

// allocate grants each slot a length out of total. The result never holds a
// negative value and always sums to total (or 0 when total is negative).
func allocate(total int, slots []Slot, hints Hints) []int {
	sizes := make([]int, len(slots))
	if len(slots) == 0 {
		return sizes
	}
	if total < 0 {
		total = 0
	}

	remaining := total
	for pass := 0; pass <= maxPriority; pass++ {
		for i, s := range slots {
			if s.Constraint.priority() != pass {
				continue
			}
			want := s.Constraint.request(total, s.hint(hints))
			if want > remaining {
				want = remaining
			}
			sizes[i] = want
			remaining -= want
		}
	}

	if remaining == 0 {
		return sizes
	}

	var flexible []int
	for i, s := range slots {
		if s.Constraint.Kind == KindMin {
			flexible = append(flexible, i)
		}
	}
	if len(flexible) == 0 {
		sizes[len(sizes)-1] += remaining
		return sizes
	}

	share, extra := remaining/len(flexible), remaining%len(flexible)
	for j, i := range flexible {
		sizes[i] += share
		if j < extra {
			sizes[i]++
		}
	}
	return sizes
}

// hint returns the content size of the slot's occupant, or 0 for splits.
func (s Slot) hint(hints Hints) int {
	if s.Split != nil {
		return 0
	}
	return hints[s.Panel]
}

// place resolves the node inside area and records every leaf's region.
func (n *Node) place(area Rect, hints Hints, out Assignment) {
	rects := Split(area, n.Direction, n.Slots, hints)
	for i, s := range n.Slots {
		if s.Split != nil {
			s.Split.place(rects[i], hints, out)
			continue
		}
		out[s.Panel] = rects[i]
	}
}

// missingHints returns the panels of ContentDriven slots that have no hint.
func (n *Node) missingHints(hints Hints) []Panel {
	var missing []Panel
	for _, s := range n.Slots {
		if s.Split != nil {
			missing = append(missing, s.Split.missingHints(hints)...)
			continue
		}
		if s.Constraint.Kind != KindContentDriven {
			continue
		}
		if _, ok := hints[s.Panel]; !ok {
			missing = append(missing, s.Panel)
		}
	}
	return missing
}

// Panels returns the panels hosted by the node's leaves, in slot order.
func (n *Node) Panels() []Panel {
	var panels []Panel
	for _, s := range n.Slots {
		if s.Split != nil {
			panels = append(panels, s.Split.Panels()...)
			continue
		}
		panels = append(panels, s.Panel)
	}
	return panels
}
