package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestPrinter_URL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{"root", "https://github.com/user/repo"},
		{"line fragment", "https://github.com/user/repo/blob/master/README.md#L10"},
		{"stash query", "https://stash.int.corp.com/projects/PROJ/repos/repo/browse/foo/bar?at=test2&raw"},
		{"bitbucket line", "https://bitbucket.org/user/repo/src/master/README.md#cl-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			FromContext(WithPrinter(context.Background(), &buf)).URL(tt.url)
			if got, want := buf.String(), tt.url+"\n"; got != want {
				t.Errorf("URL() wrote %q, want %q", got, want)
			}
		})
	}
}

// Scripts read one URL per line from --url-only runs.
func TestPrinter_URLPerLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)
	p.URL("https://gitlab.com/user/repo/commits/master")
	p.URL("https://gitlab.com/user/repo/commit/a78cd8e")

	want := "https://gitlab.com/user/repo/commits/master\nhttps://gitlab.com/user/repo/commit/a78cd8e\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrinter_ConfigShow(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)
	p.Printf("# %s\n", "/home/user/.config/git-browse/config.toml")
	p.Println(`remote = "origin"`)

	want := "# /home/user/.config/git-browse/config.toml\nremote = \"origin\"\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if p.Writer() != &buf {
		t.Error("Writer() should return the writer passed to New")
	}
}

func TestFromContext_DefaultStdout(t *testing.T) {
	t.Parallel()
	if FromContext(context.Background()).Writer() != os.Stdout {
		t.Error("Printer without context should write to os.Stdout")
	}
}
