package scan

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/accrava/codesweep/internal/ignore"
)

// Targets walks root and returns the scannable files in walk order. Vendored
// and VCS directories are skipped, as are files over maxBytes, files matched
// by the ignore file, and files that look binary.
func Targets(root string, ign ignore.Matcher, maxBytes int64) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if strings.HasPrefix(name, ".git") || name == "node_modules" || name == "target" || name == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(root, p)
		if ign.Match(rel) {
			return nil
		}
		info, _ := d.Info()
		if info != nil && maxBytes > 0 && info.Size() > maxBytes {
			return nil
		}
		if looksBinary(p) {
			return nil
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

// crude binary sniff: a NUL in the first 800 bytes
func looksBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	buf := make([]byte, 800)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			return true
		}
	}
	return false
}
