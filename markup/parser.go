package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Every rule except Whitespace and Newline runs to the end of the line, so
// Title and Bullet can only ever match at the start of a line. Whitespace
// covers Unicode spaces (NBSP, U+3000) so indented markers still classify.
var (
	sheetLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Title", Pattern: `= [^\n]*`},
		{Name: "Bullet", Pattern: `\* [^\n]*`},
		{Name: "Whitespace", Pattern: `[\p{Z}\t\r\f\v\x{85}]+`},
		{Name: "Newline", Pattern: `\n`},
		{Name: "Text", Pattern: `[^\n]+`},
	})

	sourceParser = participle.MustBuild[source](
		participle.Lexer(sheetLexer),
		participle.Elide("Whitespace"),
	)
)

// source is the raw line structure of a cheatsheet before paragraphs are joined.
type source struct {
	Lines []*line `parser:"@@*"`
}

// line is either a classified line of content or a blank line.
type line struct {
	Title  *string        `parser:"(   ( @Title"`
	Bullet *string        `parser:"    | @Bullet"`
	Text   *string        `parser:"    | @Text ) Newline?"`
	Blank  bool           `parser:"  | @Newline )"`
}

// Parse reads cheatsheet text from r. Any text is accepted; the only error
// is a failure to read r.
func Parse(r io.Reader) (Document, error) {
	src, err := sourceParser.Parse("", r)
	if err != nil {
		return Document{}, fmt.Errorf("markup: %w", err)
	}
	return assemble(src), nil
}

// ParseString parses cheatsheet text held in memory.
func ParseString(input string) (Document, error) {
	return Parse(strings.NewReader(input))
}

// assemble joins consecutive plain lines into paragraphs and drops blank lines.
func assemble(src *source) Document {
	var (
		doc  Document
		para []string
	)
	flush := func() {
		if len(para) == 0 {
			return
		}
		doc.Blocks = append(doc.Blocks, Block{Kind: Paragraph, Text: strings.Join(para, " ")})
		para = nil
	}

	for _, ln := range src.Lines {
		kind, text, ok := ln.classify()
		if !ok {
			flush()
			continue
		}
		if kind == Paragraph {
			para = append(para, text)
			continue
		}
		flush()
		doc.Blocks = append(doc.Blocks, Block{Kind: kind, Text: text})
	}
	flush()
	return doc
}

// classify returns the block kind and text of a line; ok is false for blank lines.
func (l *line) classify() (Kind, string, bool) {
	switch {
	case l.Title != nil:
		return marked(Title, *l.Title)
	case l.Bullet != nil:
		return marked(Bullet, *l.Bullet)
	case l.Text != nil:
		text := strings.TrimSpace(*l.Text)
		return Paragraph, text, text != ""
	default:
		return Paragraph, "", false
	}
}

// marked strips the two-character marker. A marker followed only by
// whitespace trims down to a lone "=" or "*", which is plain text.
func marked(kind Kind, raw string) (Kind, string, bool) {
	text := strings.TrimSpace(raw[2:])
	if text == "" {
		return Paragraph, strings.TrimSpace(raw), true
	}
	return kind, text, true
}
