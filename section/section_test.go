package section

import (
	"strings"
	"testing"

	"github.com/AngelaFabregues/CheatsheetImagesGenerator/markup"
)

func TestSplitAtTitles(t *testing.T) {
	doc, err := markup.ParseString("= Intro\nhello\n* a\n= Usage\n* b\n* c")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sections := Split(doc)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "Intro" || sections[0].Document.Len() != 3 {
		t.Fatalf("unexpected first section %+v", sections[0])
	}
	if sections[1].Title != "Usage" || sections[1].Document.Len() != 3 {
		t.Fatalf("unexpected second section %+v", sections[1])
	}
	for i, s := range sections {
		first := s.Document.Blocks[0]
		if first.Kind != markup.Title {
			t.Fatalf("section %d does not begin with its title", i)
		}
		for _, b := range s.Document.Blocks[1:] {
			if b.Kind == markup.Title {
				t.Fatalf("section %d holds a second title", i)
			}
		}
	}
}

func TestSplitLeadingContent(t *testing.T) {
	doc, err := markup.ParseString("preface words\n* early\n= First\nbody")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sections := Split(doc)
	if len(sections) != 2 {
		t.Fatalf("expected untitled leading section plus one, got %d", len(sections))
	}
	if sections[0].Title != "" || sections[0].Document.Len() != 2 {
		t.Fatalf("unexpected leading section %+v", sections[0])
	}
	if sections[1].Title != "First" {
		t.Fatalf("unexpected titled section %+v", sections[1])
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := Split(markup.Document{}); len(got) != 0 {
		t.Fatalf("expected no sections, got %+v", got)
	}
}

func TestSplitKeepsEveryBlock(t *testing.T) {
	doc, _ := markup.ParseString("a\n= b\nc\n= d\n= e\n* f")
	total := 0
	for _, s := range Split(doc) {
		total += s.Document.Len()
	}
	if total != doc.Len() {
		t.Fatalf("split lost blocks: %d of %d", total, doc.Len())
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Intro":                 "intro",
		"Git: Branches & Tags!": "git-branches-tags",
		"  --Leading--  ":       "leading",
		"Café crème":            "café-crème",
		"v1.2 (beta)":           "v1-2-beta",
		"!!!":                   "section",
		"":                      "section",
	}
	for in, want := range tests {
		if got := Slug(in); got != want {
			t.Fatalf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNamerCollisions(t *testing.T) {
	n := NewNamer()
	got := []string{n.Name("Intro"), n.Name("Intro"), n.Name("intro!"), n.Name("Intro 2"), n.Name("Other")}
	want := []string{"intro", "intro-2", "intro-3", "intro-2-2", "other"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("names = %v, want %v", got, want)
	}

	var zero Namer
	if zero.Name("x") != "x" || zero.Name("x") != "x-2" {
		t.Fatalf("zero Namer should be usable")
	}
}
