package layout

import "fmt"

// Viewport is the terminal size for one frame.
type Viewport struct {
	Width  int
	Height int
}

// Rect is a region of the viewport, in cells, with its origin at the top left.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// String returns the rect as "WxH+X+Y".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Area returns the number of cells covered by the rect.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.X+other.Width && other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height && other.Y < r.Y+r.Height
}

// Direction is the axis a split divides along.
type Direction int

const (
	// Vertical stacks slots top to bottom.
	Vertical Direction = iota
	// Horizontal places slots left to right.
	Horizontal
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Orientation classifies a viewport as taller than wide or not.
type Orientation int

const (
	// Landscape is at least as wide as it is tall.
	Landscape Orientation = iota
	// Portrait is taller than it is wide.
	Portrait
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	default:
		return "unknown"
	}
}

// OrientationOf returns Portrait when the viewport is narrower than it is
// tall, Landscape otherwise.
func OrientationOf(v Viewport) Orientation {
	if v.Width < v.Height {
		return Portrait
	}
	return Landscape
}
