package inline_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rstlight/rstlight/pkg/inline"
)

// fakeRoles resolves every role to a recognizable marker, or fails for
// names listed in deny.
type fakeRoles struct {
	deny map[string]bool
}

func (f *fakeRoles) Process(role inline.Role) (string, error) {
	if f.deny[role.Name] {
		return "", fmt.Errorf("unknown role %q", role.Name)
	}
	return fmt.Sprintf("[%s:%s:%s]", role.Name, role.Target, role.Text), nil
}

func TestRender_PlainTextEscaped(t *testing.T) {
	t.Parallel()

	e := inline.NewEngine(nil)

	got := e.Render("a < b && c > d")
	want := "a &lt; b &amp;&amp; c &gt; d"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_BoldItalic(t *testing.T) {
	t.Parallel()

	e := inline.NewEngine(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold", "**strong** text", "<strong>strong</strong> text"},
		{"italic", "*emphasis* text", "<em>emphasis</em> text"},
		{"bold then italic", "**a** and *b*", "<strong>a</strong> and <em>b</em>"},
		{"lone star stays", "5 * 3 = 15", "5 * 3 = 15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := e.Render(tt.input); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRender_CodeSpans(t *testing.T) {
	t.Parallel()

	e := inline.NewEngine(nil)

	got := e.Render("run ``make all`` now")
	if got != "run <code>make all</code> now" {
		t.Errorf("double backtick: got %q", got)
	}

	got = e.Render("the `main` function")
	want := `the <code class="code docutils literal notranslate"><span class="pre">main</span></code> function`
	if got != want {
		t.Errorf("single backtick: got %q, want %q", got, want)
	}
}

func TestRender_CodeSpanContentNotDoubleEscaped(t *testing.T) {
	t.Parallel()

	e := inline.NewEngine(nil)

	// The escape pass runs before code spans are carved out, so escaped
	// entities inside a span must appear exactly once.
	got := e.Render("``a < b``")
	if got != "<code>a &lt; b</code>" {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, "&amp;lt;") {
		t.Errorf("content was escaped twice: %q", got)
	}
}

func TestRender_ExternalReference(t *testing.T) {
	t.Parallel()

	e := inline.NewEngine(nil)

	got := e.Render("see `Go <https://go.dev>`_ for details")
	want := `see <a class="reference external" href="https://go.dev">Go</a> for details`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_InternalReference(t *testing.T) {
	t.Parallel()

	e := inline.NewEngine(nil)

	got := e.Render("see `Getting Started`_ first")
	want := `see <a class="reference internal" href="#getting-started">Getting Started</a> first`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_BareReference(t *testing.T) {
	t.Parallel()

	e := inline.NewEngine(nil)

	got := e.Render("read Installation_ next")
	want := `read <a class="reference internal" href="#installation">Installation</a> next`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_RoleDispatch(t *testing.T) {
	t.Parallel()

	e := inline.NewEngine(&fakeRoles{})

	got := e.Render("see :ref:`install` here")
	if got != "see [ref:install:] here" {
		t.Errorf("bare role: got %q", got)
	}

	got = e.Render("see :ref:`Setup <install>` here")
	if got != "see [ref:install:Setup] here" {
		t.Errorf("titled role: got %q", got)
	}
}

func TestRender_UnknownRoleBecomesComment(t *testing.T) {
	t.Parallel()

	e := inline.NewEngine(&fakeRoles{deny: map[string]bool{"bogus": true}})

	got := e.Render("a :bogus:`thing` b")
	if got != "a <!-- Unknown role: bogus --> b" {
		t.Errorf("got %q", got)
	}
}

func TestRender_RoleOutputProtectedFromLaterPasses(t *testing.T) {
	t.Parallel()

	// A role that renders markup-looking output must survive the escape
	// and emphasis passes untouched.
	e := inline.NewEngine(&fakeRoles{})

	got := e.Render(":code:`**x**`")
	if got != "[code:**x**:]" {
		t.Errorf("got %q", got)
	}
}

func TestSplitTitleTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		entry   string
		display string
		target  string
	}{
		{"guide/install", "", "guide/install"},
		{"Install Guide <guide/install>", "Install Guide", "guide/install"},
		{"API <https://example.com/api>", "API", "https://example.com/api"},
	}

	for _, tt := range tests {
		display, target := inline.SplitTitleTarget(tt.entry)
		if display != tt.display || target != tt.target {
			t.Errorf("SplitTitleTarget(%q) = (%q, %q), want (%q, %q)",
				tt.entry, display, target, tt.display, tt.target)
		}
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Getting Started", "getting-started"},
		{"API Reference!", "api-reference"},
		{"foo_bar.baz", "foo-bar-baz"},
		{"--multiple   gaps--", "multiple-gaps"},
		{"Ünïcode Titles", "ünïcode-titles"},
	}

	for _, tt := range tests {
		if got := inline.Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Plain Title", "Plain Title"},
		{"The :mod:`parser` Module", "The parser Module"},
		{"Using :ref:`Setup <install>`", "Using Setup"},
		{"The `Engine` Type", "The Engine Type"},
	}

	for _, tt := range tests {
		if got := inline.StripMarkup(tt.input); got != tt.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
