// Package layout partitions a terminal viewport into panel regions.
//
// A layout is a tree of splits. Each split divides a rectangle along one axis
// into ordered slots, and every slot carries a Constraint:
//
//	Fixed(n)          exactly n cells
//	Min(n)            at least n cells, absorbs leftover space
//	Percentage(p)     p% of the parent length
//	ContentDriven(f)  f(hint), where hint is the occupant panel's content size
//
// A slot either hosts a Panel or is split again. The Engine owns one tree per
// Orientation for the configured Mode and resolves it on every frame:
//
//	engine := layout.New(layout.Options{Mode: layout.ModeAdaptive})
//	regions, err := engine.Resolve(layout.Viewport{Width: 100, Height: 40}, hints)
//
// # Size negotiation
//
// Within one split, lengths are granted in priority passes against the
// parent length P, each pass clamped to what is still free:
//
//  1. Fixed and ContentDriven slots, in slot order
//  2. Percentage slots (computed against the original P)
//  3. Min slots
//
// Whatever is left goes to the Min slots, or to the last slot when the split
// has none. The granted lengths always sum to P. When the requests exceed P
// the later slots get zero-length regions instead of an error.
//
// # Topologies
//
// ModeFixed uses the same tree in both orientations:
//
//	vertical: cpu | memory Fixed(3) | disk-area Min(10) | network Fixed(3)
//	disk-area horizontal: disk Percentage(40) | processes Percentage(60)
//
// ModeAdaptive splits the screen into a "main" column Min(70) and a
// "processes" slot Percentage(40), side by side in Landscape and stacked in
// Portrait. The main column holds cpu, memory, disk and a small Fixed(5)
// slot. Disk processes and network activity trade places between the small
// slot and the processes slot when the orientation changes.
//
// The main column has no Min slot, so rows it cannot otherwise place go to
// its last slot. In Portrait that makes the "small" slot much taller than
// five rows (at 24x80 with four cores it is 32 rows tall).
package layout
