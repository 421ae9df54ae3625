package layout

import "github.com/AngelaFabregues/CheatsheetImagesGenerator/markup"

// 该文件定义布局结果，供排版计算、渲染与调试 JSON 共用。所有长度单位均为像素。

// Page 是一张图片的最终布局：画布尺寸、颜色以及已定位的行与项目符号。
type Page struct {
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	Required   float64      `json:"required"` // 内容实际所需高度（未与配置高度取最大值）
	Margin     float64      `json:"margin"`
	Background Color        `json:"background"`
	Foreground Color        `json:"foreground"`
	Lines      []PlacedLine `json:"lines"`
	Markers    []Marker     `json:"markers,omitempty"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// WrappedLine 表示折行后的一行文本及其度量。
type WrappedLine struct {
	Kind     markup.Kind `json:"kind"`
	Block    int         `json:"block"`
	Text     string      `json:"text"`
	Segments []Segment   `json:"segments"`
	Indent   float64     `json:"indent,omitempty"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Ascent   float64     `json:"ascent"`
}

// Segment 是一行中使用同一字号绘制的连续文本（括号内文字可使用更小字号）。
type Segment struct {
	Text  string  `json:"text"`
	Size  float64 `json:"size"`
	Width float64 `json:"width"`
}

// PlacedLine 是已确定坐标的行。Y 为行顶部，Baseline 为基线位置。
type PlacedLine struct {
	WrappedLine
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Baseline float64 `json:"baseline"`
}

// Marker 是项目符号前的实心圆点。
type Marker struct {
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
}
