package layout

import (
	"fmt"
	"strings"

	"github.com/AngelaFabregues/CheatsheetImagesGenerator/markup"
)

// Measure 将一个块按贪心算法折行，返回带像素度量的行。
// maxWidth 为整个内容区宽度，项目符号的缩进会先从中扣除。
// 单个单词超过可用宽度时独占一行，不做拆分。
func Measure(block markup.Block, index int, ts Typesetter, style Style, maxWidth float64) ([]WrappedLine, error) {
	if ts == nil {
		return nil, fmt.Errorf("layout: missing typesetter")
	}
	m, err := newMeasurer(block.Kind, ts, style)
	if err != nil {
		return nil, err
	}
	limit := maxWidth - m.indent

	words := strings.Fields(block.Text)
	if len(words) == 0 {
		return []WrappedLine{m.line(index, "", 0)}, nil
	}

	var (
		lines   []WrappedLine
		current []string
		depth   int // 当前行起始处的括号深度
	)
	emit := func() {
		ln := m.line(index, strings.Join(current, " "), depth)
		_, depth = splitParens(ln.Text, depth)
		lines = append(lines, ln)
		current = current[:0]
	}

	for _, word := range words {
		if len(current) > 0 {
			candidate := strings.Join(current, " ") + " " + word
			if m.width(candidate, depth) > limit {
				emit()
			}
		}
		current = append(current, word)
	}
	emit()
	return lines, nil
}

// measurer 持有某类块所用的正文与括号字体。
type measurer struct {
	kind    markup.Kind
	indent  float64
	size    float64
	small   float64
	face    Face
	smaller Face
}

func newMeasurer(kind markup.Kind, ts Typesetter, style Style) (*measurer, error) {
	size := style.fontSize(kind)
	face, err := ts.Face(size)
	if err != nil {
		return nil, fmt.Errorf("layout: load %s face: %w", kind, err)
	}
	small := style.parenSize(size)
	smaller := face
	if small != size {
		if smaller, err = ts.Face(small); err != nil {
			return nil, fmt.Errorf("layout: load %s parenthesis face: %w", kind, err)
		}
	}
	return &measurer{
		kind:    kind,
		indent:  style.indent(kind),
		size:    size,
		small:   small,
		face:    face,
		smaller: smaller,
	}, nil
}

// segments 测量文本各段宽度；depth 为文本起始处的括号深度。
func (m *measurer) segments(text string, depth int) []Segment {
	runs, _ := splitParens(text, depth)
	segs := make([]Segment, 0, len(runs))
	for _, r := range runs {
		face, size := m.face, m.size
		if r.paren {
			face, size = m.smaller, m.small
		}
		segs = append(segs, Segment{Text: r.text, Size: size, Width: face.TextWidth(r.text)})
	}
	return segs
}

func (m *measurer) width(text string, depth int) float64 {
	total := 0.0
	for _, s := range m.segments(text, depth) {
		total += s.Width
	}
	return total
}

func (m *measurer) line(index int, text string, depth int) WrappedLine {
	metrics := m.face.Metrics()
	segs := m.segments(text, depth)
	width := 0.0
	for _, s := range segs {
		width += s.Width
	}
	return WrappedLine{
		Kind:     m.kind,
		Block:    index,
		Text:     text,
		Segments: segs,
		Indent:   m.indent,
		Width:    width,
		Height:   metrics.LineHeight,
		Ascent:   metrics.Ascent,
	}
}

type parenRun struct {
	text  string
	paren bool
}

// splitParens 按括号切分文本，括号本身归入括号内的一段，支持嵌套。
// depth 为起始深度，返回结束时的深度，使跨行的括号保持一致。
func splitParens(text string, depth int) ([]parenRun, int) {
	var (
		runs []parenRun
		b    strings.Builder
	)
	inside := depth > 0
	flush := func() {
		if b.Len() == 0 {
			return
		}
		runs = append(runs, parenRun{text: b.String(), paren: inside})
		b.Reset()
	}
	for _, r := range text {
		switch {
		case r == '(':
			if depth == 0 {
				flush()
				inside = true
			}
			depth++
			b.WriteRune(r)
		case r == ')' && depth > 0:
			b.WriteRune(r)
			depth--
			if depth == 0 {
				flush()
				inside = false
			}
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return runs, depth
}
