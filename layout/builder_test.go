package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/AngelaFabregues/CheatsheetImagesGenerator/markup"
)

func build(t *testing.T, doc markup.Document, style Style) *Page {
	t.Helper()
	page, err := Build(doc, BuildOptions{Typesetter: &stubTypesetter{}, Style: style})
	if err != nil {
		t.Fatalf("布局计算失败: %v", err)
	}
	return page
}

func TestBuildScenario(t *testing.T) {
	doc := markup.Document{Blocks: []markup.Block{
		{Kind: markup.Title, Text: "Title"},
		{Kind: markup.Paragraph, Text: "Paragraph."},
		{Kind: markup.Bullet, Text: "bullet one"},
		{Kind: markup.Bullet, Text: "bullet two"},
	}}
	page := build(t, doc, DefaultStyle())
	if page.Width != 1080 {
		t.Fatalf("width = %g, want 1080", page.Width)
	}
	if page.Height < 1920 {
		t.Fatalf("height = %g, want >= 1920", page.Height)
	}
	if len(page.Lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(page.Lines))
	}
	if len(page.Markers) != 2 {
		t.Fatalf("expected 2 bullet markers, got %d", len(page.Markers))
	}
}

func TestBuildEmptyKeepsConfiguredSize(t *testing.T) {
	style := DefaultStyle()
	page := build(t, markup.Document{}, style)
	if page.Width != style.Width || page.Height != style.Height {
		t.Fatalf("empty page = %gx%g, want %gx%g", page.Width, page.Height, style.Width, style.Height)
	}
	if len(page.Lines) != 0 || page.Required != 2*style.Margin {
		t.Fatalf("unexpected content on empty page: %+v", page)
	}
}

// TestBuildPositions 手工计算游标，验证块间距、标题前间距与列表前间距。
func TestBuildPositions(t *testing.T) {
	style := DefaultStyle()
	doc := markup.Document{Blocks: []markup.Block{
		{Kind: markup.Title, Text: "A"},
		{Kind: markup.Paragraph, Text: "b"},
		{Kind: markup.Bullet, Text: "c"},
		{Kind: markup.Bullet, Text: "d"},
		{Kind: markup.Title, Text: "E"},
	}}
	page := build(t, doc, style)

	titleH := 120 * 1.2
	bodyH := 48 * 1.2
	bulletH := 84 * 1.2
	y := style.Margin
	wantY := []float64{y}
	y += titleH + style.BlockSpacing
	wantY = append(wantY, y)
	y += bodyH + style.BlockSpacing + style.ListGap
	wantY = append(wantY, y)
	y += bulletH + style.BlockSpacing
	wantY = append(wantY, y)
	y += bulletH + style.BlockSpacing + style.TitleGap
	wantY = append(wantY, y)
	y += titleH

	for i, ln := range page.Lines {
		if !eq(ln.Y, wantY[i]) {
			t.Fatalf("line %d y = %g, want %g", i, ln.Y, wantY[i])
		}
		if !eq(ln.Baseline, ln.Y+ln.Ascent) {
			t.Fatalf("line %d baseline = %g", i, ln.Baseline)
		}
	}
	if !eq(page.Required, y+style.Margin) {
		t.Fatalf("required = %g, want %g", page.Required, y+style.Margin)
	}
	if page.Lines[2].X != style.Margin+style.BulletIndent || page.Lines[0].X != style.Margin {
		t.Fatalf("unexpected x positions: %g %g", page.Lines[0].X, page.Lines[2].X)
	}
	m := page.Markers[0]
	if !eq(m.CX, style.Margin+style.BulletRadius) || !eq(m.CY, page.Lines[2].Baseline-84.0/4) {
		t.Fatalf("unexpected marker %+v", m)
	}
}

func TestBuildLineSpacingWithinBlock(t *testing.T) {
	style := DefaultStyle()
	style.Width = 300 // 内容宽 172px，正文每字符 24px
	doc := markup.Document{Blocks: []markup.Block{{Kind: markup.Paragraph, Text: "one two three four"}}}
	page := build(t, doc, style)
	if len(page.Lines) < 2 {
		t.Fatalf("expected wrapping, got %d lines", len(page.Lines))
	}
	gap := page.Lines[1].Y - (page.Lines[0].Y + page.Lines[0].Height)
	if !eq(gap, style.LineSpacing[markup.Paragraph]) {
		t.Fatalf("line gap = %g, want %g", gap, style.LineSpacing[markup.Paragraph])
	}
}

func TestBuildGrowsBeyondConfiguredHeight(t *testing.T) {
	style := DefaultStyle()
	var blocks []markup.Block
	for i := 0; i < 40; i++ {
		blocks = append(blocks, markup.Block{Kind: markup.Bullet, Text: "an item that needs some room"})
	}
	page := build(t, markup.Document{Blocks: blocks}, style)
	if page.Height <= style.Height {
		t.Fatalf("expected growth beyond %g, got %g", style.Height, page.Height)
	}
	if page.Height != math.Ceil(page.Required) {
		t.Fatalf("height %g should be ceil(required %g)", page.Height, page.Required)
	}
	last := page.Lines[len(page.Lines)-1]
	if last.Y+last.Height+style.Margin > page.Height {
		t.Fatalf("last line overflows the canvas")
	}
}

func TestBuildHeightMonotonic(t *testing.T) {
	style := DefaultStyle()
	style.Height = 0
	var (
		blocks []markup.Block
		prev   float64
	)
	kinds := []markup.Kind{markup.Title, markup.Paragraph, markup.Bullet, markup.Bullet, markup.Paragraph}
	for i := 0; i < 15; i++ {
		blocks = append(blocks, markup.Block{Kind: kinds[i%len(kinds)], Text: strings.Repeat("word ", i+1)})
		page := build(t, markup.Document{Blocks: blocks}, style)
		if page.Height < prev {
			t.Fatalf("height decreased at %d blocks: %g < %g", i+1, page.Height, prev)
		}
		prev = page.Height
	}

	short := build(t, markup.Document{Blocks: []markup.Block{{Kind: markup.Paragraph, Text: "a few words"}}}, style)
	long := build(t, markup.Document{Blocks: []markup.Block{{Kind: markup.Paragraph, Text: strings.Repeat("a few words ", 30)}}}, style)
	if long.Height < short.Height {
		t.Fatalf("longer block produced a shorter page: %g < %g", long.Height, short.Height)
	}
}

func TestBuildRequiresTypesetter(t *testing.T) {
	if _, err := Build(markup.Document{}, BuildOptions{}); err == nil {
		t.Fatalf("expected error without typesetter")
	}
}

func TestBuildZeroStyleUsesDefaults(t *testing.T) {
	page, err := Build(markup.Document{}, BuildOptions{Typesetter: &stubTypesetter{}})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if page.Width != 1080 || page.Height != 1920 {
		t.Fatalf("unexpected default size %gx%g", page.Width, page.Height)
	}
}

func eq(a, b float64) bool { return math.Abs(a-b) < 1e-6 }
