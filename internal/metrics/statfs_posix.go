//go:build linux || darwin

package metrics

import "golang.org/x/sys/unix"

// statfs reports the size of the filesystem mounted at path.
func statfs(path string) (DiskSpace, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return DiskSpace{}, err
	}
	bsize := uint64(st.Bsize)
	return DiskSpace{
		AvailableBytes: st.Bavail * bsize,
		TotalBytes:     st.Blocks * bsize,
	}, nil
}
