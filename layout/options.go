package layout

import "github.com/AngelaFabregues/CheatsheetImagesGenerator/markup"

// BuildOptions 配置布局阶段所需的依赖与样式。
type BuildOptions struct {
	Typesetter Typesetter
	Style      Style
}

// Typesetter 提供指定字号（像素）的字体度量，渲染后端实现该接口。
type Typesetter interface {
	Face(size float64) (Face, error)
}

// Face 是某一字号下可查询的字体度量。
type Face interface {
	TextWidth(text string) float64
	Metrics() FontMetrics
}

// FontMetrics 以像素为单位。
type FontMetrics struct {
	LineHeight float64
	Ascent     float64
	Descent    float64
	XHeight    float64
}

// Style 汇总画布尺寸、颜色以及各类块的字号与间距。
type Style struct {
	Width      float64
	Height     float64 // 初始高度，内容超出时增长
	Margin     float64
	Background Color
	Foreground Color

	FontSize    map[markup.Kind]float64
	LineSpacing map[markup.Kind]float64

	BlockSpacing float64 // 相邻块之间
	TitleGap     float64 // 标题前额外间距
	ListGap      float64 // 非列表块之后第一个项目符号前的额外间距
	BulletIndent float64 // 项目符号文本缩进（包含圆点）
	BulletRadius float64
	ParenScale   float64 // 括号内文字相对字号，>=1 或 <=0 表示不缩小
}

// DefaultStyle 返回适合 1080x1920 竖屏的默认样式。
func DefaultStyle() Style {
	return Style{
		Width:      1080,
		Height:     1920,
		Margin:     64,
		Background: Color{R: 0x11, G: 0x11, B: 0x11},
		Foreground: Color{R: 0xff, G: 0xff, B: 0xff},
		FontSize: map[markup.Kind]float64{
			markup.Title:     120,
			markup.Paragraph: 48,
			markup.Bullet:    84,
		},
		LineSpacing: map[markup.Kind]float64{
			markup.Title:     48,
			markup.Paragraph: 36,
			markup.Bullet:    36,
		},
		BlockSpacing: 60,
		TitleGap:     60,
		ListGap:      24,
		BulletIndent: 48,
		BulletRadius: 12,
		ParenScale:   0.5,
	}
}

// fontSize 返回某类块的字号，未配置时回退到正文字号。
func (s Style) fontSize(kind markup.Kind) float64 {
	if v := s.FontSize[kind]; v > 0 {
		return v
	}
	if v := s.FontSize[markup.Paragraph]; v > 0 {
		return v
	}
	return 48
}

func (s Style) parenSize(size float64) float64 {
	if s.ParenScale <= 0 || s.ParenScale >= 1 {
		return size
	}
	return size * s.ParenScale
}

func (s Style) indent(kind markup.Kind) float64 {
	if kind == markup.Bullet {
		return s.BulletIndent
	}
	return 0
}

// ContentWidth 是左右边距之间可用于排版的宽度。
func (s Style) ContentWidth() float64 {
	return s.Width - 2*s.Margin
}
