package main

import (
	"log/slog"
	"net/http"

	"github.com/crhntr/vizserve"
)

func handlePaths(config Config, logger *slog.Logger) http.HandlerFunc {
	return func(res http.ResponseWriter, _ *http.Request) {
		paths, err := vizserve.ListPaths(config.Dir, config.Strict, logger)
		if err != nil {
			logger.Error("failed to list paths", "error", err)
			http.Error(res, err.Error(), http.StatusInternalServerError)
			return
		}
		renderJSON(res, http.StatusOK, paths)
	}
}
