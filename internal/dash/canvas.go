package dash

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/layout"
)

// ErrPaint marks a region the painter could not draw.
var ErrPaint = stderrors.New("paint failed")

// Painter draws one bordered panel into a region of the screen.
type Painter interface {
	Paint(region layout.Rect, title string, body []string) error
}

type role uint8

const (
	roleBlank role = iota
	roleBorder
	roleTitle
	roleBody
)

// cell is one screen position. An empty text marks the right half of a
// double-width rune in the cell before it.
type cell struct {
	text string
	role role
}

// Canvas is an in-memory screen that panels are painted into.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas returns a blank canvas. Negative sizes are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([][]cell, height)
	for y := range cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{text: " "}
		}
		cells[y] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Paint draws a rounded border around region with title embedded in the top
// edge and body inside it. Text that does not fit is clipped. Regions with
// no area are skipped; regions outside the canvas are an error.
func (c *Canvas) Paint(region layout.Rect, title string, body []string) error {
	if region.X < 0 || region.Y < 0 ||
		region.X+region.Width > c.width || region.Y+region.Height > c.height {
		return errors.WrapWithCode(
			fmt.Errorf("%w: region %s outside %dx%d canvas", ErrPaint, region, c.width, c.height),
			errors.ErrPaint,
			fmt.Sprintf("Failed to paint panel '%s'", title),
			"This is a bug in vitals: layout regions must lie inside the viewport.")
	}
	if region.Empty() {
		return nil
	}

	x, y, w, h := region.X, region.Y, region.Width, region.Height

	// Too thin for a frame: draw a separator line instead.
	if w < 2 || h < 2 {
		glyph := panelBorder.Top
		if w == 1 && h > 1 {
			glyph = panelBorder.Left
		}
		for row := y; row < y+h; row++ {
			for col := x; col < x+w; col++ {
				c.cells[row][col] = cell{text: glyph, role: roleBorder}
			}
		}
		return nil
	}

	inner := w - 2
	right, bottom := x+w-1, y+h-1

	c.cells[y][x] = cell{text: panelBorder.TopLeft, role: roleBorder}
	c.cells[y][right] = cell{text: panelBorder.TopRight, role: roleBorder}
	c.cells[bottom][x] = cell{text: panelBorder.BottomLeft, role: roleBorder}
	c.cells[bottom][right] = cell{text: panelBorder.BottomRight, role: roleBorder}
	for col := x + 1; col < right; col++ {
		c.cells[y][col] = cell{text: panelBorder.Top, role: roleBorder}
		c.cells[bottom][col] = cell{text: panelBorder.Bottom, role: roleBorder}
	}
	for row := y + 1; row < bottom; row++ {
		c.cells[row][x] = cell{text: panelBorder.Left, role: roleBorder}
		c.cells[row][right] = cell{text: panelBorder.Right, role: roleBorder}
		c.fill(x+1, row, inner)
	}

	c.write(x+1, y, title, inner, roleTitle)
	for i, line := range body {
		if i >= h-2 {
			break
		}
		c.write(x+1, y+1+i, line, inner, roleBody)
	}
	return nil
}

// fill blanks n cells starting at (x, y).
func (c *Canvas) fill(x, y, n int) {
	for col := x; col < x+n; col++ {
		c.cells[y][col] = cell{text: " "}
	}
}

// write places s at (x, y), clipped to maxWidth cells. Escape sequences in
// s are dropped so collected text cannot restyle the terminal.
func (c *Canvas) write(x, y int, s string, maxWidth int, r role) {
	s = ansi.Truncate(ansi.Strip(s), maxWidth, "")

	col := x
	for _, ch := range s {
		text := string(ch)
		w := ansi.StringWidth(text)
		if w == 0 {
			continue
		}
		if col+w > x+maxWidth {
			break
		}
		c.cells[y][col] = cell{text: text, role: r}
		if w == 2 {
			c.cells[y][col+1] = cell{role: r}
		}
		col += w
	}
}

// Plain returns the canvas as unstyled text, one line per row.
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			b.WriteString(cl.text)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Render returns the canvas with each run of cells styled by its role.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].role == row[start].role {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:i] {
				run.WriteString(cl.text)
			}
			b.WriteString(styleFor(row[start].role).Render(run.String()))
			start = i
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func styleFor(r role) lipgloss.Style {
	switch r {
	case roleBorder:
		return BorderStyle
	case roleTitle:
		return TitleStyle
	case roleBody:
		return BodyStyle
	default:
		return lipgloss.NewStyle()
	}
}
