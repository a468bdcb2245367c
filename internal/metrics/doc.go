// Package metrics gathers the readings shown on the dashboard.
//
// A Collector produces a Snapshot: the five blocks of display lines the
// panels render. Local is the Linux implementation. It reads procfs through
// an fs.FS so the parsers can be exercised against fixtures, and asks the
// kernel for filesystem sizes through a replaceable statfs function.
//
// CPU usage and network traffic are rates, so Local keeps the previous
// sample between calls. A Local must not be shared by concurrent callers.
package metrics
