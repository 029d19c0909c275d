package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/mod/sumdb/dirhash"
	"golang.org/x/tools/txtar"

	"github.com/crhntr/vizserve"
)

type exportResult struct {
	Files  int
	Digest string
}

// exportArchive writes the visualizations below dir (every file when all is
// set) to out as a txtar archive and returns an h1 digest of their contents.
func exportArchive(out io.Writer, dir string, all bool) (exportResult, error) {
	var match func(string) bool
	if !all {
		match = vizserve.HasExtension(vizserve.VisualizationExtension)
	}
	names, err := vizserve.ScanDir(dir, match)
	if err != nil {
		return exportResult{}, err
	}

	open := func(name string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, filepath.FromSlash(name)))
	}

	archive := &txtar.Archive{
		Comment: fmt.Appendf(nil, "exported from %s\n", filepath.ToSlash(dir)),
		Files:   make([]txtar.File, 0, len(names)),
	}
	for _, name := range names {
		buf, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil {
			return exportResult{}, fmt.Errorf("failed to read %s: %w", name, err)
		}
		archive.Files = append(archive.Files, txtar.File{Name: name, Data: buf})
	}

	digest, err := dirhash.Hash1(names, open)
	if err != nil {
		return exportResult{}, fmt.Errorf("failed to hash files: %w", err)
	}

	if _, err := out.Write(txtar.Format(archive)); err != nil {
		return exportResult{}, err
	}
	return exportResult{Files: len(names), Digest: digest}, nil
}
