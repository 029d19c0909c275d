package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/pterm/pterm"
)

func main() {
	if err := Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }

func renderHTML(res http.ResponseWriter, _ *http.Request, status int, execute func(w io.Writer) error) {
	var buf bytes.Buffer
	if err := execute(&buf); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	writeResponse(res, status, "text/html; charset=utf-8", buf.Bytes())
}

func renderJSON(res http.ResponseWriter, status int, data any) {
	buf, err := json.Marshal(data)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	writeResponse(res, status, "application/json", append(buf, '\n'))
}

func writeResponse(res http.ResponseWriter, code int, contentType string, buf []byte) {
	h := res.Header()
	h.Set("content-type", contentType)
	h.Set("content-length", strconv.Itoa(len(buf)))
	h.Set("cache-control", "no-cache")
	res.WriteHeader(code)
	_, _ = res.Write(buf)
}
