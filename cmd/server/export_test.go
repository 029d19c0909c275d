package main

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/crhntr/vizserve"
	"github.com/crhntr/vizserve/internal/fixture"
)

func Test_exportArchive(t *testing.T) {
	dir := fixture.Dir(t, `-- report.html --
<h1>report</h1>
-- sub/chart.html --
<h1>chart</h1>
-- sub/data.json --
{}
`)

	tests := []struct {
		name  string
		all   bool
		files []string
	}{
		{name: "visualizations", files: []string{"report.html", "sub/chart.html"}},
		{name: "all files", all: true, files: []string{"report.html", "sub/chart.html", "sub/data.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			result, err := exportArchive(&buf, dir, tt.all)
			if err != nil {
				t.Fatal(err)
			}
			if result.Files != len(tt.files) {
				t.Errorf("expected %d files got %d", len(tt.files), result.Files)
			}
			if !strings.HasPrefix(result.Digest, "h1:") {
				t.Errorf("unexpected digest %q", result.Digest)
			}

			archive := txtar.Parse(buf.Bytes())
			var names []string
			for _, f := range archive.Files {
				names = append(names, f.Name)
				if f.Name == "report.html" && string(f.Data) != "<h1>report</h1>\n" {
					t.Errorf("unexpected report data %q", f.Data)
				}
			}
			slices.Sort(names)
			if !slices.Equal(names, tt.files) {
				t.Errorf("archive files = %q, want %q", names, tt.files)
			}

			// exporting the archive again from a fresh copy keeps the digest
			copied := fixture.ArchiveDir(t, archive)
			var again bytes.Buffer
			second, err := exportArchive(&again, copied, tt.all)
			if err != nil {
				t.Fatal(err)
			}
			if second.Digest != result.Digest {
				t.Errorf("digest changed from %s to %s", result.Digest, second.Digest)
			}
		})
	}
}

func Test_exportArchive_missingFolder(t *testing.T) {
	var buf bytes.Buffer
	_, err := exportArchive(&buf, fixture.Missing(t), false)
	if !errors.Is(err, vizserve.ErrBaseFolder) {
		t.Errorf("expected ErrBaseFolder got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output got %q", buf.String())
	}
}
