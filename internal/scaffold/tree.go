package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TreeEntry describes one directory of a repository skeleton.
type TreeEntry struct {
	RelPath     string // relative to the repository root, e.g. "core/"
	Description string // human-readable purpose, used in the directory README
}

// TreeSpec is an ordered list of directories to materialize. Entries are
// independent of each other: no entry reads another's output, so the final
// tree does not depend on iteration order.
type TreeSpec []TreeEntry

// GitkeepName is the empty marker file that keeps otherwise-empty
// directories trackable by version control.
const GitkeepName = ".gitkeep"

const dirPerm os.FileMode = 0755

var titleCaser = cases.Title(language.English)

// ExpandTree creates every directory in spec under root, each with a
// generated README.md and an empty tracking marker. Directory creation is
// idempotent; generated files are overwritten on re-run. A failure on one
// entry is reported on its WriteResult and does not stop the remaining
// entries. Progress lines go to w. One WriteResult is returned per entry, in
// spec order.
func ExpandTree(w io.Writer, root string, spec TreeSpec) []WriteResult {
	results := make([]WriteResult, 0, len(spec))
	for _, entry := range spec {
		res := expandEntry(root, entry)
		if res.Err != nil {
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", entry.RelPath, res.Err)
		} else {
			fmt.Fprintf(w, "  [ OK ] %s\n", entry.RelPath)
		}
		results = append(results, res)
	}
	return results
}

func expandEntry(root string, entry TreeEntry) WriteResult {
	dir := filepath.Join(root, entry.RelPath)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return WriteResult{Path: dir, Err: fmt.Errorf("creating directory: %w", err)}
	}

	readme := directoryReadme(entry)
	if res := WriteFile(filepath.Join(dir, "README.md"), []byte(readme), false); res.Err != nil {
		return res
	}

	if res := WriteFile(filepath.Join(dir, GitkeepName), nil, false); res.Err != nil {
		return res
	}

	return WriteResult{Path: dir}
}

// directoryReadme synthesizes the per-directory documentation file from the
// entry's description.
func directoryReadme(entry TreeEntry) string {
	name := strings.TrimSuffix(entry.RelPath, "/")
	return fmt.Sprintf(`# %s

%s

## Mobile Access

This directory is optimized for mobile access and remote management.

## Quick Start

`+"```bash"+`
# Navigate to this directory
cd %s

# View available files
ls -la
`+"```"+`

## Mobile Optimization

- Compressed file formats
- Optimized for mobile viewing
- Remote access enabled
- Mobile-friendly documentation
`, titleCaser.String(name), entry.Description, entry.RelPath)
}
