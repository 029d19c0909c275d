package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/crhntr/vizserve"
	"github.com/crhntr/vizserve/view"
)

func handleIndexPage(config Config, logger *slog.Logger) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		visualizations, err := vizserve.ListVisualizations(config.Dir, config.Strict, logger)
		if err != nil {
			logger.Error("failed to list visualizations", "error", err)
			http.Error(res, err.Error(), http.StatusInternalServerError)
			return
		}
		data := view.IndexData{
			Visualizations: visualizations,
			Copyright:      fmt.Sprintf(view.CopyrightNotice, time.Now().Year()),
		}
		renderHTML(res, req, http.StatusOK, func(w io.Writer) error {
			return view.RenderIndex(w, data)
		})
	}
}
