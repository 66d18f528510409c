package render_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rstlight/rstlight/pkg/docast"
	"github.com/rstlight/rstlight/pkg/render"
)

func renderInclude(t *testing.T, sourceDir, filename string, options map[string]string) string {
	t.Helper()
	r := render.New(render.Config{SourceDir: sourceDir})
	return r.RenderRST(&docast.RSTContent{AST: []docast.Node{{
		Kind:    docast.NodeDirective,
		Name:    "include",
		Args:    []string{filename},
		Options: options,
	}}})
}

func TestInclude_RendersFragment(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fragment := "Shared Section\n==============\n\nReused *everywhere*.\n"
	if err := os.WriteFile(filepath.Join(dir, "shared.rst"), []byte(fragment), 0o644); err != nil {
		t.Fatal(err)
	}

	got := renderInclude(t, dir, "shared.rst", nil)

	if !strings.Contains(got, `<section id="shared-section">`) {
		t.Errorf("included heading missing:\n%s", got)
	}
	if !strings.Contains(got, "Reused <em>everywhere</em>.") {
		t.Errorf("included paragraph missing:\n%s", got)
	}
}

func TestInclude_NonRSTExtensionStillParsesAsRST(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "snippet.txt"), []byte("A *styled* line.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := renderInclude(t, dir, "snippet.txt", nil)

	if !strings.Contains(got, "<em>styled</em>") {
		t.Errorf("included txt not parsed as RST:\n%s", got)
	}
}

func TestInclude_LineRange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "first\n\nsecond\n\nthird\n"
	if err := os.WriteFile(filepath.Join(dir, "parts.rst"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := renderInclude(t, dir, "parts.rst", map[string]string{
		"start-line": "2",
		"end-line":   "1",
	})

	if !strings.Contains(got, "<p>second</p>") {
		t.Errorf("selected line missing:\n%s", got)
	}
	if strings.Contains(got, "first") || strings.Contains(got, "third") {
		t.Errorf("out-of-range lines present:\n%s", got)
	}
}

func TestInclude_Markers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := ".. begin\n\nkept paragraph\n\n.. end\n\ndropped paragraph\n"
	if err := os.WriteFile(filepath.Join(dir, "marked.rst"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := renderInclude(t, dir, "marked.rst", map[string]string{
		"start-after": ".. begin",
		"end-before":  ".. end",
	})

	if !strings.Contains(got, "<p>kept paragraph</p>") {
		t.Errorf("marked region missing:\n%s", got)
	}
	if strings.Contains(got, "dropped paragraph") {
		t.Errorf("content past end marker present:\n%s", got)
	}
}

func TestInclude_MissingFile(t *testing.T) {
	t.Parallel()

	got := renderInclude(t, t.TempDir(), "absent.rst", nil)

	if !strings.Contains(got, "<!-- include error: could not read 'absent.rst'") {
		t.Errorf("missing-file comment wrong:\n%s", got)
	}
}
