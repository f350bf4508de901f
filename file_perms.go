//go:build !windows

package hlayout

import (
	"os"
	"syscall"
)

// preserveFilePermissions restores the owner recorded in fileInfo on path.
// Failing to chown as an unprivileged user to a foreign owner is ignored.
func preserveFilePermissions(path string, fileInfo os.FileInfo) error {
	stat, ok := fileInfo.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	if int(stat.Uid) == os.Getuid() && int(stat.Gid) == os.Getgid() {
		return nil
	}
	if err := os.Chown(path, int(stat.Uid), int(stat.Gid)); err != nil && !os.IsPermission(err) {
		return err
	}
	return nil
}
