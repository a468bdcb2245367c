package layout

// Panel is one of the dashboard's content blocks.
type Panel int

const (
	CPUUsage Panel = iota
	MemoryUsage
	DiskUsage
	DiskProcesses
	NetworkActivity
)

// Panels lists every panel in paint order.
var Panels = []Panel{CPUUsage, MemoryUsage, DiskUsage, DiskProcesses, NetworkActivity}

// String returns the panel's short name, as used in logs.
func (p Panel) String() string {
	switch p {
	case CPUUsage:
		return "cpu"
	case MemoryUsage:
		return "memory"
	case DiskUsage:
		return "disk"
	case DiskProcesses:
		return "disk-processes"
	case NetworkActivity:
		return "network"
	default:
		return "unknown"
	}
}

// Title returns the text shown in the panel's border.
func (p Panel) Title() string {
	switch p {
	case CPUUsage:
		return "CPU Usage"
	case MemoryUsage:
		return "Memory Usage"
	case DiskUsage:
		return "Disk Usage"
	case DiskProcesses:
		return "Disk Processes"
	case NetworkActivity:
		return "Network Activity"
	default:
		return ""
	}
}

// Hints maps a panel to the size of its content, in lines.
type Hints map[Panel]int

// Assignment maps each panel to the region it occupies for one frame.
type Assignment map[Panel]Rect
