package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/AngelaFabregues/CheatsheetImagesGenerator/fonts"
	"github.com/AngelaFabregues/CheatsheetImagesGenerator/layout"
	"github.com/AngelaFabregues/CheatsheetImagesGenerator/renderer"
)

// Canvas units are millimetres; pages are rasterised at one pixel per unit,
// so a face of N pixels needs N millimetres expressed in points.
const ptPerUnit = 72.0 / 25.4

var resolution = canvas.DPMM(1.0)

// Renderer draws layout pages via github.com/tdewolff/canvas and provides the
// font metrics used by the layout engine.
type Renderer struct {
	fontPath string
	strategy fonts.Strategy
	logger   *log.Logger

	fontMu sync.Mutex
	family *canvas.FontFamily
	source fonts.Source
	faces  map[faceKey]*canvas.FontFace
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

type faceKey struct {
	size float64
	col  layout.Color
}

// Options configures the canvas renderer.
type Options struct {
	FontPath string         // requested font file, may be empty
	Strategy fonts.Strategy // defaults to fonts.NewSystemStrategy()
	Logger   *log.Logger    // defaults to log.Default()
}

// NewRenderer creates a renderer using the platform font strategy.
func NewRenderer(fontPath string) *Renderer {
	return NewRendererWithOptions(Options{FontPath: fontPath})
}

// NewRendererWithOptions creates a renderer with an explicit font strategy and logger.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		fontPath: opts.FontPath,
		strategy: opts.Strategy,
		logger:   opts.Logger,
		faces:    map[faceKey]*canvas.FontFace{},
	}
	if r.strategy == nil {
		r.strategy = fonts.NewSystemStrategy()
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	return r
}

// Font returns the font source in use, loading it on first call.
func (r *Renderer) Font() (fonts.Source, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if _, err := r.ensureFamily(); err != nil {
		return fonts.Source{}, err
	}
	return r.source, nil
}

// Face 实现 layout.Typesetter 接口，size 为像素字号。
func (r *Renderer) Face(size float64) (layout.Face, error) {
	face, err := r.fontFace(size, layout.Color{})
	if err != nil {
		return nil, err
	}
	return metricsFace{face: face}, nil
}

// Render renders the page into PNG bytes.
func (r *Renderer) Render(page *layout.Page) ([]byte, error) {
	if page == nil {
		return nil, fmt.Errorf("render: nil page")
	}
	if !(page.Width > 0 && page.Height > 0) || math.IsInf(page.Width, 0) || math.IsInf(page.Height, 0) {
		return nil, fmt.Errorf("render: invalid page size %gx%g", page.Width, page.Height)
	}

	c := canvas.New(page.Width, page.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	if err := r.drawPage(ctx, page); err != nil {
		return nil, err
	}

	img := rasterizer.Draw(c, resolution, canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawPage(ctx *canvas.Context, page *layout.Page) error {
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.SetFillColor(colorFromLayout(page.Background))
	ctx.DrawPath(0, 0, canvas.Rectangle(page.Width, page.Height))

	ctx.SetFillColor(colorFromLayout(page.Foreground))
	for _, m := range page.Markers {
		ctx.DrawPath(m.CX, m.CY, canvas.Circle(m.R))
	}

	for _, ln := range page.Lines {
		if err := r.drawLine(ctx, ln, page.Foreground); err != nil {
			return err
		}
	}
	return nil
}

// drawLine 逐段绘制一行，各段共享同一基线，横向按测量宽度推进。
func (r *Renderer) drawLine(ctx *canvas.Context, ln layout.PlacedLine, col layout.Color) error {
	x := ln.X
	for _, seg := range ln.Segments {
		face, err := r.fontFace(seg.Size, col)
		if err != nil {
			return err
		}
		ctx.DrawText(x, ln.Baseline, canvas.NewTextLine(face, seg.Text, canvas.Left))
		x += seg.Width
	}
	return nil
}

func (r *Renderer) fontFace(size float64, col layout.Color) (*canvas.FontFace, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	key := faceKey{size: size, col: col}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}
	family, err := r.ensureFamily()
	if err != nil {
		return nil, err
	}
	face := family.Face(size*ptPerUnit, colorFromLayout(col), canvas.FontRegular, canvas.FontNormal)
	r.faces[key] = face
	return face, nil
}

// ensureFamily loads the first candidate font that parses. Callers hold fontMu.
func (r *Renderer) ensureFamily() (*canvas.FontFamily, error) {
	if r.family != nil {
		return r.family, nil
	}
	for _, src := range r.strategy.Candidates(r.fontPath) {
		family, err := loadFamily(src)
		if err != nil {
			r.logger.Warn("font unavailable, trying next", "font", src.Name, "err", err)
			continue
		}
		r.logger.Debug("using font", "font", src.Name, "path", src.Path)
		r.family = family
		r.source = src
		return family, nil
	}
	return nil, fmt.Errorf("%w: no usable font (requested %q)", fonts.ErrFontLoad, r.fontPath)
}

func loadFamily(src fonts.Source) (*canvas.FontFamily, error) {
	data, err := src.Read()
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("cheatsheet")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fonts.ErrFontLoad, src.Name, err)
	}
	return family, nil
}

func colorFromLayout(c layout.Color) color.Color {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
}

// metricsFace adapts a canvas face to layout.Face.
type metricsFace struct {
	face *canvas.FontFace
}

func (f metricsFace) TextWidth(text string) float64 {
	return f.face.TextWidth(text)
}

func (f metricsFace) Metrics() layout.FontMetrics {
	m := f.face.Metrics()
	return layout.FontMetrics{
		LineHeight: m.LineHeight,
		Ascent:     m.Ascent,
		Descent:    m.Descent,
		XHeight:    m.XHeight,
	}
}
