package layout

import (
	"fmt"
	"math"

	"github.com/AngelaFabregues/CheatsheetImagesGenerator/markup"
)

// Build 根据文档生成一张图片的布局。
// 分两遍完成：先测量所有块得到折行结果，再按顺序累计纵向游标并定位每一行；
// 最终高度取配置高度与内容所需高度的较大值，不设上限。
func Build(doc markup.Document, opts BuildOptions) (*Page, error) {
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("layout: missing typesetter")
	}
	style := opts.Style
	if style.Width <= 0 {
		style = DefaultStyle()
	}

	measured, err := measureAll(doc, opts.Typesetter, style)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Width:      style.Width,
		Margin:     style.Margin,
		Background: style.Background,
		Foreground: style.Foreground,
	}
	cursor := place(page, doc, measured, opts.Typesetter, style)

	page.Required = cursor + style.Margin
	page.Height = math.Max(style.Height, math.Ceil(page.Required))
	return page, nil
}

func measureAll(doc markup.Document, ts Typesetter, style Style) ([][]WrappedLine, error) {
	maxWidth := style.ContentWidth()
	out := make([][]WrappedLine, 0, doc.Len())
	for i, block := range doc.Blocks {
		lines, err := Measure(block, i, ts, style, maxWidth)
		if err != nil {
			return nil, fmt.Errorf("layout: block %d: %w", i, err)
		}
		out = append(out, lines)
	}
	return out, nil
}

// place 定位所有行并返回最后一行底部的游标位置。
func place(page *Page, doc markup.Document, measured [][]WrappedLine, ts Typesetter, style Style) float64 {
	cursor := style.Margin
	for i, lines := range measured {
		kind := doc.Blocks[i].Kind
		if i > 0 {
			cursor += style.BlockSpacing + leadingGap(kind, doc.Blocks[i-1].Kind, style)
		}
		for j, ln := range lines {
			if j > 0 {
				cursor += style.LineSpacing[kind]
			}
			placed := PlacedLine{
				WrappedLine: ln,
				X:           style.Margin + ln.Indent,
				Y:           cursor,
				Baseline:    cursor + ln.Ascent,
			}
			page.Lines = append(page.Lines, placed)
			if kind == markup.Bullet && j == 0 {
				page.Markers = append(page.Markers, marker(placed, ts, style))
			}
			cursor += ln.Height
		}
	}
	return cursor
}

func leadingGap(kind, prev markup.Kind, style Style) float64 {
	switch {
	case kind == markup.Title:
		return style.TitleGap
	case kind == markup.Bullet && prev != markup.Bullet:
		return style.ListGap
	default:
		return 0
	}
}

// marker 将圆点垂直居中于首行小写字母高度的中部。
func marker(ln PlacedLine, ts Typesetter, style Style) Marker {
	cy := ln.Y + ln.Height/2
	if face, err := ts.Face(style.fontSize(markup.Bullet)); err == nil {
		if m := face.Metrics(); m.XHeight > 0 {
			cy = ln.Baseline - m.XHeight/2
		}
	}
	return Marker{
		CX: style.Margin + style.BulletRadius,
		CY: cy,
		R:  style.BulletRadius,
	}
}
