package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// handleStatic serves files below dir. Files are opened through a bound
// filesystem so symlinks and cleaned paths cannot leave dir.
func handleStatic(dir string, logger *slog.Logger) http.HandlerFunc {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	root := osfs.New(dir, osfs.WithBoundOS())
	return func(res http.ResponseWriter, req *http.Request) {
		name, ok := staticFileName(req.URL.Path)
		if !ok {
			http.NotFound(res, req)
			return
		}
		serveFile(res, req, root, name, logger)
	}
}

func serveFile(res http.ResponseWriter, req *http.Request, root billy.Filesystem, name string, logger *slog.Logger) {
	info, err := root.Stat(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("failed to stat static file", "name", name, "error", err)
		}
		http.NotFound(res, req)
		return
	}
	if !info.Mode().IsRegular() {
		http.NotFound(res, req)
		return
	}
	f, err := root.Open(name)
	if err != nil {
		logger.Warn("failed to open static file", "name", name, "error", err)
		http.NotFound(res, req)
		return
	}
	defer closeAndIgnoreError(f)
	http.ServeContent(res, req, path.Base(name), info.ModTime(), f)
}

// staticFileName maps a request path to a slash separated name relative to
// the base folder. Parent segments, backslashes and NUL bytes are refused.
func staticFileName(urlPath string) (string, bool) {
	name := strings.TrimPrefix(urlPath, "/")
	if name == "" || strings.HasSuffix(name, "/") {
		return "", false
	}
	if strings.ContainsAny(name, "\\\x00") {
		return "", false
	}
	if !fs.ValidPath(name) {
		return "", false
	}
	return name, true
}
