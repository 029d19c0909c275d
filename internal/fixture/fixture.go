// Package fixture writes txtar archives to temporary directories so tests can
// scan and serve real file trees.
package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// Dir writes every file in the archive source below a new temporary directory
// and returns the directory path. The directory is removed when the test ends.
func Dir(t testing.TB, source string) string {
	t.Helper()
	return ArchiveDir(t, txtar.Parse([]byte(source)))
}

func ArchiveDir(t testing.TB, archive *txtar.Archive) string {
	t.Helper()
	dir := t.TempDir()
	dirFS, err := txtar.FS(archive)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.CopyFS(dir, dirFS); err != nil {
		t.Fatal(err)
	}
	return dir
}

// Missing returns a path below a temporary directory that does not exist.
func Missing(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing")
}
