package compose

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMaxIncludeDepth bounds include nesting when the caller does not
// choose a limit.
const DefaultMaxIncludeDepth = 64

// include resolves path against the ordered search-path list and recursively
// scans the included file through the same shared context. The composition
// state may stay open across the boundary: an include inside an open module
// keeps accumulating into that module.
func (c *Context) include(s *scanner, path string) {
	if len(c.searchPaths) == 0 {
		c.diags.Addf(DiagResource, s.file, s.directiveLine,
			"cannot include %s: no search paths configured", path)
		return
	}

	full := ""
	for _, dir := range c.searchPaths {
		candidate := filepath.Join(dir, path)
		f, err := os.Open(candidate)
		if err != nil {
			continue
		}
		f.Close()
		full = candidate
		break
	}
	if full == "" {
		c.diags.Addf(DiagResource, s.file, s.directiveLine,
			"%s: not found in any search path", path)
		return
	}

	canon := canonicalPath(full)
	for _, open := range c.openFiles {
		if open == canon {
			c.diags.Addf(DiagResource, s.file, s.directiveLine, "%s: cyclic include", path)
			return
		}
	}
	if len(c.openFiles) >= c.maxDepth {
		c.diags.Addf(DiagResource, s.file, s.directiveLine,
			"%s: include depth limit (%d) exceeded", path, c.maxDepth)
		return
	}

	data, err := os.ReadFile(full)
	if err != nil {
		c.diags.Addf(DiagResource, s.file, s.directiveLine, "%s: %v", path, err)
		return
	}

	// The included file's own directory leads the search list for the
	// dynamic extent of its parse, so nested relative includes resolve
	// relative to their immediate includer first. Both pushes unwind on
	// return.
	c.searchPaths = append([]string{filepath.Dir(full)}, c.searchPaths...)
	c.openFiles = append(c.openFiles, canon)

	newScanner(c, full, string(data)).scan()

	c.openFiles = c.openFiles[:len(c.openFiles)-1]
	c.searchPaths = c.searchPaths[1:]
}

// ScanFile reads path and scans it as a root source file. The file's own
// directory is prepended to the search paths and the file itself becomes
// the bottom include frame, so a file including itself is caught as cyclic.
// The returned error covers only the root read; parse problems are
// diagnostics.
func (c *Context) ScanFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	c.searchPaths = append([]string{filepath.Dir(path)}, c.searchPaths...)
	c.openFiles = append(c.openFiles, canonicalPath(path))

	c.ScanSource(path, string(data))

	c.openFiles = c.openFiles[:len(c.openFiles)-1]
	c.searchPaths = c.searchPaths[1:]
	return nil
}

func canonicalPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return filepath.Clean(abs)
	}
	return filepath.Clean(path)
}
