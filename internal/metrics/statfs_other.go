//go:build !linux && !darwin

package metrics

import "fmt"

func statfs(path string) (DiskSpace, error) {
	return DiskSpace{}, fmt.Errorf("statfs %s: not supported on this platform", path)
}
