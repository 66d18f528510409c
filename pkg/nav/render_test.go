package nav_test

import (
	"strings"
	"testing"

	"github.com/rstlight/rstlight/pkg/nav"
)

func TestRenderToctree_RootChildrenOnly(t *testing.T) {
	t.Parallel()

	out, err := siteBuilder().RenderToctree(nav.DefaultToctreeOptions())
	if err != nil {
		t.Fatalf("RenderToctree() error = %v", err)
	}

	if strings.Contains(out, ">Home<") {
		t.Error("root title leaked into sidebar")
	}
	for _, want := range []string{
		`<li class="toctree-l1"><a class="reference internal" href="intro.html">Introduction</a></li>`,
		`class="toctree-l1 has-children"`,
		`<a class="reference internal" href="guide.html">User Guide</a>`,
		`<li class="toctree-l2"><a class="reference internal" href="guide/install.html">Installation</a></li>`,
		`<a class="reference external" href="https://example.com">Docs Site</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRenderToctree_Empty(t *testing.T) {
	t.Parallel()

	b := nav.NewBuilder("index")
	b.RegisterDocument("index", "Home")

	out, err := b.RenderToctree(nav.DefaultToctreeOptions())
	if err != nil {
		t.Fatalf("RenderToctree() error = %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestRenderToctree_CurrentClasses(t *testing.T) {
	t.Parallel()

	opts := nav.DefaultToctreeOptions()
	opts.CurrentDoc = "guide/install"

	out, err := siteBuilder().RenderToctree(opts)
	if err != nil {
		t.Fatalf("RenderToctree() error = %v", err)
	}

	for _, want := range []string{
		`<li class="toctree-l1 current has-children">`,
		`<li class="toctree-l2 current current-page">`,
		`<a class="current reference internal" href="guide/install.html">Installation</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	// The sibling must not pick up the current marker.
	if !strings.Contains(out, `<li class="toctree-l2"><a class="reference internal" href="guide/usage.html">Usage</a></li>`) {
		t.Errorf("sibling entry wrong:\n%s", out)
	}
}

func TestRenderToctree_CheckboxIDs(t *testing.T) {
	t.Parallel()

	b := nav.NewBuilder("index")
	b.RegisterDocument("index", "Home")
	b.RegisterDocument("a", "A")
	b.RegisterDocument("a/x", "AX")
	b.RegisterDocument("b", "B")
	b.RegisterDocument("b/y", "BY")
	b.RegisterToctree("index", []string{"a", "b"})
	b.RegisterToctree("a", []string{"a/x"})
	b.RegisterToctree("b", []string{"b/y"})

	out, err := b.RenderToctree(nav.DefaultToctreeOptions())
	if err != nil {
		t.Fatalf("RenderToctree() error = %v", err)
	}

	if !strings.Contains(out, `id="toctree-checkbox-1"`) {
		t.Error("first checkbox id missing")
	}
	if !strings.Contains(out, `id="toctree-checkbox-2"`) {
		t.Error("second checkbox id missing")
	}
	if strings.Contains(out, `id="toctree-checkbox-3"`) {
		t.Error("unexpected third checkbox")
	}
	if strings.Contains(out, "checked") {
		t.Error("checkbox checked without a current doc")
	}

	opts := nav.DefaultToctreeOptions()
	opts.CurrentDoc = "b/y"
	out, err = b.RenderToctree(opts)
	if err != nil {
		t.Fatalf("RenderToctree() error = %v", err)
	}
	if !strings.Contains(out, `type="checkbox" checked`) {
		t.Errorf("current branch checkbox not checked:\n%s", out)
	}
}

func TestRenderToctree_Maxdepth(t *testing.T) {
	t.Parallel()

	opts := nav.ToctreeOptions{Maxdepth: 1}
	out, err := siteBuilder().RenderToctree(opts)
	if err != nil {
		t.Fatalf("RenderToctree() error = %v", err)
	}

	if strings.Contains(out, "toctree-l2") {
		t.Errorf("depth 2 rendered despite maxdepth 1:\n%s", out)
	}
	// A capped branch loses its expander entirely.
	if strings.Contains(out, "has-children") || strings.Contains(out, "toctree-checkbox") {
		t.Errorf("collapsed branch still has expander:\n%s", out)
	}
}

func TestRenderToctree_TitleEscaping(t *testing.T) {
	t.Parallel()

	b := nav.NewBuilder("index")
	b.RegisterDocument("index", "Home")
	b.RegisterDocument("api", "The `Engine` API & Friends")
	b.RegisterToctree("index", []string{"api"})

	out, err := b.RenderToctree(nav.DefaultToctreeOptions())
	if err != nil {
		t.Fatalf("RenderToctree() error = %v", err)
	}

	if !strings.Contains(out, "&amp; Friends") {
		t.Errorf("ampersand not escaped:\n%s", out)
	}
	if !strings.Contains(out, `<code class="code docutils literal notranslate"><span class="pre">Engine</span></code>`) {
		t.Errorf("backtick span not converted:\n%s", out)
	}
}

func TestRenderToctreeFor(t *testing.T) {
	t.Parallel()

	out, err := siteBuilder().RenderToctreeFor("guide", nav.DefaultToctreeOptions())
	if err != nil {
		t.Fatalf("RenderToctreeFor() error = %v", err)
	}

	if !strings.HasPrefix(out, "<ul>\n") || !strings.HasSuffix(out, "</ul>\n") {
		t.Errorf("subtree not wrapped in ul:\n%s", out)
	}
	if !strings.Contains(out, `href="guide/install.html"`) || !strings.Contains(out, `href="guide/usage.html"`) {
		t.Errorf("subtree entries missing:\n%s", out)
	}
	if strings.Contains(out, "intro.html") {
		t.Errorf("unrelated entry rendered:\n%s", out)
	}

	out, err = siteBuilder().RenderToctreeFor("intro", nav.DefaultToctreeOptions())
	if err != nil {
		t.Fatalf("RenderToctreeFor() error = %v", err)
	}
	if out != "" {
		t.Errorf("leaf subtree = %q, want empty", out)
	}
}
