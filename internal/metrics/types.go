package metrics

import (
	"context"
	stderrors "errors"
)

// ErrCollect marks a failed collection. Collect wraps it in a COLLECT-coded
// error so callers can match either.
var ErrCollect = stderrors.New("metrics collection failed")

// Collector produces one snapshot per call.
type Collector interface {
	Collect(ctx context.Context) (Snapshot, error)
}

// Snapshot is the display text for one tick. Memory is a single line; the
// other blocks hold one line per item.
type Snapshot struct {
	CPU           []string
	Memory        string
	Disks         []string
	DiskProcesses []string
	Network       []string
}

// CoreCount returns the number of CPU cores in the snapshot.
func (s Snapshot) CoreCount() int {
	return len(s.CPU)
}

// CPUTimes holds cumulative jiffies for one core.
type CPUTimes struct {
	Total int64
	Idle  int64
}

// Memory holds /proc/meminfo totals in kilobytes.
type Memory struct {
	TotalKB     int64
	AvailableKB int64
}

// UsedKB returns memory in use, excluding reclaimable cache.
func (m Memory) UsedKB() int64 {
	used := m.TotalKB - m.AvailableKB
	if used < 0 {
		return 0
	}
	return used
}

// Mount is one block-device mount from /proc/mounts.
type Mount struct {
	Device string
	Path   string
}

// DiskSpace is the capacity of one mounted filesystem, in bytes.
type DiskSpace struct {
	Device         string
	AvailableBytes uint64
	TotalBytes     uint64
}

// ProcessIO is the storage I/O a process has done since it started.
type ProcessIO struct {
	PID        int
	Name       string
	ReadBytes  int64
	WriteBytes int64
}

// NetworkCounters are the cumulative byte counters of one interface.
type NetworkCounters struct {
	Name    string
	RxBytes int64
	TxBytes int64
}

// Sample is one round of raw readings before formatting.
type Sample struct {
	CoreUsage []float64
	Memory    Memory
	Disks     []DiskSpace
	Processes []ProcessIO
	// Network holds per-interface traffic since the previous sample.
	Network []NetworkCounters
}
