package render_test

import (
	"strings"
	"testing"

	"github.com/rstlight/rstlight/pkg/docast"
	"github.com/rstlight/rstlight/pkg/nav"
	"github.com/rstlight/rstlight/pkg/render"
)

func renderToctree(t *testing.T, navb *nav.Builder, options map[string]string, content string) string {
	t.Helper()
	r := render.New(render.Config{Nav: navb})
	return r.RenderRST(&docast.RSTContent{AST: []docast.Node{{
		Kind:    docast.NodeDirective,
		Name:    "toctree",
		Options: options,
		Content: content,
	}}})
}

func TestToctree_EntriesWithRegistryTitles(t *testing.T) {
	t.Parallel()

	navb := nav.NewBuilder("index")
	navb.RegisterDocument("intro", "Introduction")

	got := renderToctree(t, navb, nil, ":maxdepth: 2\n\nintro\nmissing\nCustom <guide/setup>")

	if !strings.Contains(got, `<div class="toctree-wrapper">`) {
		t.Errorf("wrapper missing:\n%s", got)
	}
	if !strings.Contains(got, `<li class="toctree-l1"><a class="reference internal" href="intro.html">Introduction</a></li>`) {
		t.Errorf("registry title not used:\n%s", got)
	}
	// Unregistered paths fall back to the path itself.
	if !strings.Contains(got, `href="missing.html">missing</a>`) {
		t.Errorf("path fallback missing:\n%s", got)
	}
	// Explicit titles win over the registry.
	if !strings.Contains(got, `href="guide/setup.html">Custom</a>`) {
		t.Errorf("explicit title not used:\n%s", got)
	}
	// Option lines never become entries.
	if strings.Contains(got, "maxdepth") {
		t.Errorf("option line leaked:\n%s", got)
	}
}

func TestToctree_Hidden(t *testing.T) {
	t.Parallel()

	got := renderToctree(t, nav.NewBuilder("index"), map[string]string{"hidden": ""}, "intro")

	if !strings.Contains(got, `<div class="toctree-wrapper" style="display: none;">`) {
		t.Errorf("hidden style missing:\n%s", got)
	}
}

func TestToctree_Caption(t *testing.T) {
	t.Parallel()

	got := renderToctree(t, nav.NewBuilder("index"),
		map[string]string{"caption": "Contents & More"}, "intro")

	if !strings.Contains(got, `<p class="caption"><span class="caption-text">Contents &amp; More</span></p>`) {
		t.Errorf("caption missing:\n%s", got)
	}
}

func TestToctree_EmptyBody(t *testing.T) {
	t.Parallel()

	got := renderToctree(t, nav.NewBuilder("index"), nil, ":maxdepth: 1")

	if strings.Contains(got, "<ul>") {
		t.Errorf("empty toctree rendered a list:\n%s", got)
	}
	if !strings.Contains(got, `<div class="toctree-wrapper">`) {
		t.Errorf("wrapper missing:\n%s", got)
	}
}

func TestToctree_NilNavFallsBackToPath(t *testing.T) {
	t.Parallel()

	r := render.New(render.Config{})
	got := r.RenderRST(&docast.RSTContent{AST: []docast.Node{{
		Kind:    docast.NodeDirective,
		Name:    "toctree",
		Content: "guide/usage",
	}}})

	if !strings.Contains(got, `href="guide/usage.html">guide/usage</a>`) {
		t.Errorf("nil registry fallback wrong:\n%s", got)
	}
}
