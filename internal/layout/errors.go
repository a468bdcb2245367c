package layout

import "errors"

// ErrDegenerateViewport is returned by Resolve when the viewport has a zero
// or negative dimension.
var ErrDegenerateViewport = errors.New("degenerate viewport")

// ErrMissingSizeHint is returned by Resolve when a ContentDriven slot in the
// active topology has no size hint for its panel. It indicates a wiring bug.
var ErrMissingSizeHint = errors.New("missing size hint")
