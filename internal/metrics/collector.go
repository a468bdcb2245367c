package metrics

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/logger"
)

// DefaultProcRoot is where procfs is mounted.
const DefaultProcRoot = "/proc"

// StatfsFunc reports the capacity of the filesystem mounted at path.
type StatfsFunc func(path string) (DiskSpace, error)

// LocalOption configures a Local collector.
type LocalOption func(*Local)

// WithProcFS reads procfs from fsys instead of DefaultProcRoot.
func WithProcFS(fsys fs.FS) LocalOption {
	return func(l *Local) {
		l.proc = fsys
	}
}

// WithStatfs replaces the filesystem size lookup.
func WithStatfs(fn StatfsFunc) LocalOption {
	return func(l *Local) {
		l.statfs = fn
	}
}

// WithLogger sets the logger used for skipped readings.
func WithLogger(log logger.Logger) LocalOption {
	return func(l *Local) {
		l.log = log
	}
}

// Local collects metrics for the machine it runs on.
type Local struct {
	proc   fs.FS
	statfs StatfsFunc
	log    logger.Logger

	mu      sync.Mutex // guards the previous sample
	prevCPU []CPUTimes
	prevNet map[string]NetworkCounters
}

// NewLocal creates a collector reading the live procfs.
func NewLocal(opts ...LocalOption) *Local {
	l := &Local{
		proc:   os.DirFS(DefaultProcRoot),
		statfs: statfs,
		log:    logger.Noop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Collect takes one sample and formats it. CPU, memory and network readings
// are required; a disk or process that cannot be read is skipped.
func (l *Local) Collect(ctx context.Context) (Snapshot, error) {
	sample, err := l.Sample(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Format(sample), nil
}

// Sample takes one round of raw readings.
func (l *Local) Sample(ctx context.Context) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, collectError(err, "Collection cancelled")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var sample Sample

	cpu, err := l.readCPU()
	if err != nil {
		return Sample{}, collectError(err, "Failed to read CPU usage")
	}

	sample.Memory, err = l.readMemory()
	if err != nil {
		return Sample{}, collectError(err, "Failed to read memory usage")
	}

	net, err := l.readNetwork()
	if err != nil {
		return Sample{}, collectError(err, "Failed to read network counters")
	}

	sample.Disks = l.readDisks()

	sample.Processes, err = l.readProcesses(ctx)
	if err != nil {
		return Sample{}, collectError(err, "Failed to read process I/O")
	}

	// Only advance the delta state once the whole sample succeeded.
	sample.CoreUsage = CoreUsage(l.prevCPU, cpu)
	sample.Network = NetworkDelta(l.prevNet, net)
	l.prevCPU = cpu
	l.prevNet = make(map[string]NetworkCounters, len(net))
	for _, n := range net {
		l.prevNet[n.Name] = n
	}

	return sample, nil
}

func collectError(err error, message string) error {
	return errors.WrapWithCode(fmt.Errorf("%w: %w", ErrCollect, err), errors.ErrCollect,
		message,
		"vitals reads /proc and needs a Linux host with procfs mounted.")
}

func (l *Local) readFile(name string) (string, error) {
	data, err := fs.ReadFile(l.proc, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (l *Local) readCPU() ([]CPUTimes, error) {
	data, err := l.readFile("stat")
	if err != nil {
		return nil, err
	}
	return ParseCPUTimes(data)
}

func (l *Local) readMemory() (Memory, error) {
	data, err := l.readFile("meminfo")
	if err != nil {
		return Memory{}, err
	}
	return ParseMemory(data)
}

func (l *Local) readNetwork() ([]NetworkCounters, error) {
	data, err := l.readFile("net/dev")
	if err != nil {
		return nil, err
	}
	ifaces, err := ParseNetDev(data)
	if err != nil {
		return nil, err
	}
	sort.Slice(ifaces, func(i, j int) bool { return ifaces[i].Name < ifaces[j].Name })
	return ifaces, nil
}

func (l *Local) readDisks() []DiskSpace {
	data, err := l.readFile("mounts")
	if err != nil {
		l.log.Debug("skipping disks: %v", err)
		return nil
	}

	var disks []DiskSpace
	for _, m := range ParseMounts(data) {
		space, err := l.statfs(m.Path)
		if err != nil {
			l.log.Debug("skipping disk %s at %s: %v", m.Device, m.Path, err)
			continue
		}
		space.Device = m.Device
		disks = append(disks, space)
	}
	return disks
}

// readProcesses reads the I/O counters of every visible process. Processes
// that exit mid-scan or belong to other users are skipped.
func (l *Local) readProcesses(ctx context.Context) ([]ProcessIO, error) {
	entries, err := fs.ReadDir(l.proc, ".")
	if err != nil {
		return nil, err
	}

	var procs []ProcessIO
	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil || !e.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := l.readFile(e.Name() + "/io")
		if err != nil {
			continue
		}
		read, write, err := ParseProcessIO(data)
		if err != nil {
			l.log.Debug("skipping process %d: %v", pid, err)
			continue
		}

		name := e.Name()
		if comm, err := l.readFile(e.Name() + "/comm"); err == nil {
			name = strings.TrimSpace(comm)
		}

		procs = append(procs, ProcessIO{PID: pid, Name: name, ReadBytes: read, WriteBytes: write})
	}
	return procs, nil
}
