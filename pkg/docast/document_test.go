package docast_test

import (
	"testing"

	"github.com/rstlight/rstlight/pkg/docast"
)

func TestDocument_Titles(t *testing.T) {
	t.Parallel()

	doc := &docast.Document{
		Content: docast.Content{
			Kind: docast.ContentRST,
			RST: &docast.RSTContent{
				AST: []docast.Node{
					docast.NewTitle("One", 3, 1),
					docast.NewParagraph("text", 3),
					docast.NewTitle("Two", 4, 5),
				},
			},
		},
	}

	titles := doc.Titles()
	if len(titles) != 2 {
		t.Fatalf("got %d titles", len(titles))
	}
	if titles[0].Text != "One" || titles[1].Text != "Two" {
		t.Errorf("titles = %q, %q", titles[0].Text, titles[1].Text)
	}
}

func TestDocument_TitlesNonRST(t *testing.T) {
	t.Parallel()

	doc := &docast.Document{Content: docast.Content{Kind: docast.ContentPlainText, Plain: "x"}}
	if doc.Titles() != nil {
		t.Error("expected nil titles for plain text")
	}
	if doc.IsRST() {
		t.Error("IsRST() = true for plain text")
	}
}

func TestDocument_ToctreeEntries(t *testing.T) {
	t.Parallel()

	doc := &docast.Document{
		Content: docast.Content{
			Kind: docast.ContentRST,
			RST: &docast.RSTContent{
				Directives: []docast.Directive{
					{Name: "note", Content: "not a toctree"},
					{Name: "toctree", Content: ":maxdepth: 2\n\nintro\n  guide/install  \n"},
					{Name: "toctree", Content: "appendix"},
				},
			},
		},
	}

	entries := doc.ToctreeEntries()
	want := []string{"intro", "guide/install", "appendix"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %v", entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i], want[i])
		}
	}
}

func TestNodeKind_String(t *testing.T) {
	t.Parallel()

	if docast.NodeTitle.String() == "" || docast.NodeParagraph.String() == "" {
		t.Error("node kinds must have string names")
	}
	if docast.NodeTitle.String() == docast.NodeParagraph.String() {
		t.Error("node kinds must have distinct names")
	}
}
