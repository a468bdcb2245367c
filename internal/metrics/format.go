package metrics

import (
	"fmt"
	"sort"
)

const bytesPerMB = 1024 * 1024

// Format renders a sample as display lines.
func Format(s Sample) Snapshot {
	snap := Snapshot{
		CPU:    make([]string, len(s.CoreUsage)),
		Memory: FormatMemory(s.Memory),
	}

	for i, pct := range s.CoreUsage {
		snap.CPU[i] = fmt.Sprintf("Core %d: %.2f%%", i, pct)
	}

	for _, d := range s.Disks {
		snap.Disks = append(snap.Disks, fmt.Sprintf("%s: %d MB / %d MB",
			d.Device, d.AvailableBytes/bytesPerMB, d.TotalBytes/bytesPerMB))
	}

	for _, p := range ActiveProcesses(s.Processes) {
		snap.DiskProcesses = append(snap.DiskProcesses, fmt.Sprintf("%s: Read %d bytes, Wrote %d bytes",
			p.Name, p.ReadBytes, p.WriteBytes))
	}

	for _, n := range s.Network {
		snap.Network = append(snap.Network, fmt.Sprintf("%s: Received %d bytes, Transmitted %d bytes",
			n.Name, n.RxBytes, n.TxBytes))
	}

	return snap
}

// FormatMemory renders the memory line in megabytes.
func FormatMemory(m Memory) string {
	return fmt.Sprintf("Memory: %d MB / %d MB", m.UsedKB()/1024, m.TotalKB/1024)
}

// ActiveProcesses returns the processes that did any storage I/O, busiest
// first. Ties are broken by name and then PID so the order is stable.
func ActiveProcesses(procs []ProcessIO) []ProcessIO {
	active := make([]ProcessIO, 0, len(procs))
	for _, p := range procs {
		if p.ReadBytes > 0 || p.WriteBytes > 0 {
			active = append(active, p)
		}
	}

	sort.Slice(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if at, bt := a.ReadBytes+a.WriteBytes, b.ReadBytes+b.WriteBytes; at != bt {
			return at > bt
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.PID < b.PID
	})
	return active
}
