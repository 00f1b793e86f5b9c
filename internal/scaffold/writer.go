package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mobiforge-labs/mobiforge/internal/platform"
)

// tmpPattern names the scratch files used during atomic writes. They live in
// the target's parent directory so the final rename never crosses volumes.
const tmpPattern = ".mobiforge-*.tmp"

// WriteFile writes content to path atomically. The content is first written
// in full to a temporary file next to path, then renamed into place; a
// concurrent reader sees either the old file, the new file, or no file, never
// a truncated one. On any failure the temporary file is removed and path is
// left untouched. When executable is true the permission bit is applied after
// the rename succeeds, so an interrupted run cannot leave an executable but
// incomplete file at the final path.
func WriteFile(path string, content []byte, executable bool) WriteResult {
	tmp, err := os.CreateTemp(filepath.Dir(path), tmpPattern)
	if err != nil {
		return WriteResult{Path: path, Err: fmt.Errorf("creating temp file for %s: %w", path, err)}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return WriteResult{Path: path, Err: fmt.Errorf("writing %s: %w", path, err)}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return WriteResult{Path: path, Err: fmt.Errorf("flushing %s: %w", path, err)}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return WriteResult{Path: path, Err: fmt.Errorf("finalizing %s: %w", path, err)}
	}

	if executable {
		if err := platform.MarkExecutable(path); err != nil {
			return WriteResult{Path: path, Err: fmt.Errorf("marking %s executable: %w", path, err)}
		}
	}

	return WriteResult{Path: path}
}
