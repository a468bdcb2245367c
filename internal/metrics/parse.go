package metrics

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// ParseCPUTimes parses the per-core lines (cpu0, cpu1, ...) of /proc/stat.
// The aggregate "cpu" line is ignored.
func ParseCPUTimes(procStat string) ([]CPUTimes, error) {
	var cores []CPUTimes
	scanner := bufio.NewScanner(strings.NewReader(procStat))

	for scanner.Scan() {
		line := scanner.Text()

		// Only individual cores (cpu0, cpu1, etc.)
		if !strings.HasPrefix(line, "cpu") || len(line) < 4 || line[3] < '0' || line[3] > '9' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			return nil, fmt.Errorf("invalid /proc/stat core line: %s", line)
		}

		// Fields: cpuN user nice system idle iowait irq softirq steal guest guest_nice
		var times CPUTimes
		for i := 1; i < len(fields); i++ {
			val, err := strconv.ParseInt(fields[i], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s field %d: %w", fields[0], i, err)
			}
			// guest time is already counted in user and nice
			if i <= 8 {
				times.Total += val
			}
			if i == 4 || i == 5 {
				times.Idle += val
			}
		}
		cores = append(cores, times)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning /proc/stat: %w", err)
	}
	if len(cores) == 0 {
		return nil, fmt.Errorf("no per-core lines found in /proc/stat")
	}

	return cores, nil
}

// CoreUsage returns the busy percentage of each core between two readings.
// When prev does not match cur (first sample, or a core came online) the
// usage since boot is reported instead.
func CoreUsage(prev, cur []CPUTimes) []float64 {
	usage := make([]float64, len(cur))
	for i, c := range cur {
		total, idle := c.Total, c.Idle
		if len(prev) == len(cur) && prev[i].Total <= c.Total && prev[i].Idle <= c.Idle {
			total -= prev[i].Total
			idle -= prev[i].Idle
		}
		if total <= 0 {
			continue
		}
		pct := float64(total-idle) / float64(total) * 100
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		usage[i] = pct
	}
	return usage
}

// ParseMemory parses /proc/meminfo. Kernels without MemAvailable fall back
// to MemFree + Buffers + Cached.
func ParseMemory(procMeminfo string) (Memory, error) {
	var mem Memory
	var free, buffers, cached int64
	hasTotal, hasAvailable, hasFree := false, false, false

	scanner := bufio.NewScanner(strings.NewReader(procMeminfo))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		// Values in /proc/meminfo are in kB
		val, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			continue
		}

		switch strings.TrimSuffix(parts[0], ":") {
		case "MemTotal":
			mem.TotalKB = val
			hasTotal = true
		case "MemAvailable":
			mem.AvailableKB = val
			hasAvailable = true
		case "MemFree":
			free = val
			hasFree = true
		case "Buffers":
			buffers = val
		case "Cached":
			cached = val
		}
	}

	if err := scanner.Err(); err != nil {
		return Memory{}, fmt.Errorf("error scanning /proc/meminfo: %w", err)
	}
	if !hasTotal || (!hasAvailable && !hasFree) {
		return Memory{}, fmt.Errorf("insufficient memory info found in /proc/meminfo")
	}
	if !hasAvailable {
		mem.AvailableKB = free + buffers + cached
	}

	return mem, nil
}

// ParseMounts returns block-device mounts from /proc/mounts, in file order.
// Pseudo filesystems are skipped and each device is listed once.
func ParseMounts(procMounts string) []Mount {
	var mounts []Mount
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(strings.NewReader(procMounts))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		device := unescapeMountField(fields[0])
		if !strings.HasPrefix(device, "/dev/") || seen[device] {
			continue
		}
		// loop devices back snaps and images, not real disks
		if strings.HasPrefix(device, "/dev/loop") {
			continue
		}
		seen[device] = true
		mounts = append(mounts, Mount{Device: device, Path: unescapeMountField(fields[1])})
	}
	return mounts
}

// unescapeMountField decodes the octal escapes (\040 for space, etc.) the
// kernel uses in /proc/mounts.
func unescapeMountField(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// ParseProcessIO parses /proc/[pid]/io. Only storage-layer bytes
// (read_bytes, write_bytes) are reported; rchar and wchar also count
// pipes and sockets.
func ParseProcessIO(procIO string) (readBytes, writeBytes int64, err error) {
	found := 0
	scanner := bufio.NewScanner(strings.NewReader(procIO))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		var dst *int64
		switch strings.TrimSpace(key) {
		case "read_bytes":
			dst = &readBytes
		case "write_bytes":
			dst = &writeBytes
		default:
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to parse %s: %w", strings.TrimSpace(key), err)
		}
		*dst = n
		found++
	}

	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("error scanning process io: %w", err)
	}
	if found < 2 {
		return 0, 0, fmt.Errorf("read_bytes or write_bytes missing from process io")
	}
	return readBytes, writeBytes, nil
}

// ParseNetDev parses interface byte counters from /proc/net/dev.
func ParseNetDev(procNetDev string) ([]NetworkCounters, error) {
	var interfaces []NetworkCounters
	scanner := bufio.NewScanner(strings.NewReader(procNetDev))

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Skip header lines (first two lines)
		if lineNum <= 2 {
			continue
		}

		// Format: "  iface: bytes packets errs drop fifo frame compressed multicast | bytes packets..."
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		fields := strings.Fields(rest)

		// Need at least 16 fields (8 receive + 8 transmit)
		if len(fields) < 16 {
			continue
		}

		rx, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse received bytes for %s: %w", name, err)
		}
		tx, err := strconv.ParseInt(fields[8], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transmitted bytes for %s: %w", name, err)
		}

		interfaces = append(interfaces, NetworkCounters{Name: name, RxBytes: rx, TxBytes: tx})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning /proc/net/dev: %w", err)
	}

	return interfaces, nil
}

// NetworkDelta returns the traffic of each interface in cur since prev.
// Interfaces absent from prev report zero; a counter that went backwards
// (interface reset) reports its current value.
func NetworkDelta(prev map[string]NetworkCounters, cur []NetworkCounters) []NetworkCounters {
	out := make([]NetworkCounters, len(cur))
	for i, c := range cur {
		out[i] = NetworkCounters{Name: c.Name}
		p, ok := prev[c.Name]
		if !ok {
			continue
		}
		out[i].RxBytes = counterDelta(p.RxBytes, c.RxBytes)
		out[i].TxBytes = counterDelta(p.TxBytes, c.TxBytes)
	}
	return out
}

func counterDelta(prev, cur int64) int64 {
	if cur < prev {
		return cur
	}
	return cur - prev
}
