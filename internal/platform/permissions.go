package platform

import (
	"os"
	"runtime"
)

// ExecutableMode is the permission set applied to generated scripts.
const ExecutableMode os.FileMode = 0755

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// MarkExecutable sets the executable permission set on path.
func MarkExecutable(path string) error {
	return Chmod(path, ExecutableMode)
}
