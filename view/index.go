package view

import (
	"embed"
	"html/template"
	"io"
	"net/url"
	"strings"
)

const CopyrightNotice = "© %d vizserve authors"

type IndexData struct {
	Visualizations []string
	Copyright      string
}

var (
	//go:embed templates
	templateSource embed.FS

	templates = template.Must(template.New("").Funcs(template.FuncMap{
		"href": href,
	}).ParseFS(templateSource, "templates/*.template"))
)

func RenderIndex(w io.Writer, data IndexData) error {
	return templates.ExecuteTemplate(w, "index.html.template", data)
}

// href escapes p as a URL path so names holding '?' or '#' still reach the
// static handler.
func href(p string) template.URL {
	u := url.URL{Path: "/" + strings.TrimPrefix(p, "/")}
	return template.URL(u.EscapedPath())
}
