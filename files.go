package vizserve

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

const VisualizationExtension = ".html"

var ErrBaseFolder = errors.New("base folder is not a readable directory")

// Scan walks fsys from its root and returns the slash separated paths of the
// regular files whose base name satisfies match. A nil match keeps every file.
// Symlinks to regular files are listed. Entries below the root that cannot be
// read are logged with the default logger and skipped.
func Scan(fsys fs.FS, match func(name string) bool) ([]string, error) {
	result := make([]string, 0)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." {
				return err
			}
			slog.Warn("skipping unreadable entry", "path", p, "error", err)
			return nil
		}
		if !isFile(fsys, p, d) {
			return nil
		}
		if match != nil && !match(d.Name()) {
			return nil
		}
		result = append(result, p)
		return nil
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

func isFile(fsys fs.FS, p string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(fsys, p)
	return err == nil && info.Mode().IsRegular()
}

func ScanDir(dir string, match func(name string) bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return make([]string, 0), fmt.Errorf("%w: %s: %w", ErrBaseFolder, dir, err)
	}
	if !info.IsDir() {
		return make([]string, 0), fmt.Errorf("%w: %s", ErrBaseFolder, dir)
	}
	return Scan(os.DirFS(dir), match)
}

func HasExtension(ext string) func(string) bool {
	return func(name string) bool {
		return strings.HasSuffix(name, ext)
	}
}

// ListVisualizations returns the HTML files under dir. When strict is false a
// missing or unreadable dir is logged and reported as an empty listing.
func ListVisualizations(dir string, strict bool, logger *slog.Logger) ([]string, error) {
	return list(dir, HasExtension(VisualizationExtension), strict, logger)
}

// ListPaths returns every file under dir with the same strictness rules as
// ListVisualizations.
func ListPaths(dir string, strict bool, logger *slog.Logger) ([]string, error) {
	return list(dir, nil, strict, logger)
}

func list(dir string, match func(string) bool, strict bool, logger *slog.Logger) ([]string, error) {
	paths, err := ScanDir(dir, match)
	if err == nil {
		return paths, nil
	}
	if strict {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("failed to scan visualization folder", "dir", dir, "error", err)
	return make([]string, 0), nil
}
