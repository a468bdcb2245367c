// Package dash implements the vitals terminal dashboard.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: holds the engine, the collector, the last snapshot and the
//     cached frame
//   - Update: processes ticks, snapshots, window resizes and keystrokes
//   - View: returns the cached frame, or the help overlay
//
// Painting is separate from Bubble Tea. Render resolves a layout for one
// viewport and snapshot and hands each panel to a Painter. Canvas is the
// Painter used by both the live dashboard and the headless snapshot command.
//
// # Message Flow
//
// Each tick runs one cycle:
//
//  1. tickMsg fires at the configured interval (default 1s)
//  2. collectCmd() takes one metrics snapshot
//  3. snapshotMsg arrives; the frame is laid out, painted and cached
//  4. the next tick is scheduled
//
// Only one collection is ever in flight because the next tick is scheduled
// after the snapshot lands.
//
// # Shutdown
//
// The model moves Running -> Draining -> Stopped. q, Ctrl+C or a CancelMsg
// (sent when the process receives SIGINT or SIGTERM) start draining: the
// current frame is flushed and the program quits. Collection and paint
// failures stop the model immediately and are returned from Err.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	?           - Toggle help overlay
//	Esc         - Close help
package dash
