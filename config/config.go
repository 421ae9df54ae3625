// Package config holds the generator settings: canvas geometry, colours,
// typography and output options, loaded from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/AngelaFabregues/CheatsheetImagesGenerator/layout"
	"github.com/AngelaFabregues/CheatsheetImagesGenerator/markup"
)

// Sentinel errors for config operations.
var (
	ErrConfigParse   = errors.New("failed to parse config")
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidSize   = errors.New("invalid size")
)

// MaxFileSize limits config input (1MB).
const MaxFileSize = 1 << 20

// Config holds all settings for one generator run.
type Config struct {
	Width           int    `toml:"width" yaml:"width"`
	Height          int    `toml:"height" yaml:"height"` // initial height, grows with content
	Margin          int    `toml:"margin" yaml:"margin"`
	BackgroundColor string `toml:"background_color" yaml:"background_color"`
	ForegroundColor string `toml:"foreground_color" yaml:"foreground_color"`
	FontPath        string `toml:"font_path" yaml:"font_path"` // empty = platform fonts, then built-in
	Single          bool   `toml:"single" yaml:"single"`
	OutDir          string `toml:"out_dir" yaml:"out_dir"` // empty = derived from the input name

	Typography Typography `toml:"typography" yaml:"typography"`
}

// Typography defines font sizes and spacing per block kind.
type Typography struct {
	TitleSize     Length `toml:"title_size" yaml:"title_size"`
	ParagraphSize Length `toml:"paragraph_size" yaml:"paragraph_size"`
	BulletSize    Length `toml:"bullet_size" yaml:"bullet_size"`

	TitleLineSpacing     Length `toml:"title_line_spacing" yaml:"title_line_spacing"`
	ParagraphLineSpacing Length `toml:"paragraph_line_spacing" yaml:"paragraph_line_spacing"`
	BulletLineSpacing    Length `toml:"bullet_line_spacing" yaml:"bullet_line_spacing"`

	BlockSpacing Length  `toml:"block_spacing" yaml:"block_spacing"`
	TitleGap     Length  `toml:"title_gap" yaml:"title_gap"`
	ListGap      Length  `toml:"list_gap" yaml:"list_gap"`
	BulletIndent Length  `toml:"bullet_indent" yaml:"bullet_indent"`
	BulletRadius Length  `toml:"bullet_radius" yaml:"bullet_radius"`
	ParenScale   float64 `toml:"paren_scale" yaml:"paren_scale"` // 0 or >= 1 disables shrinking
}

// Default returns the built-in settings for a 1080x1920 portrait image.
func Default() *Config {
	s := layout.DefaultStyle()
	return &Config{
		Width:           int(s.Width),
		Height:          int(s.Height),
		Margin:          int(s.Margin),
		BackgroundColor: "#111111",
		ForegroundColor: "#ffffff",
		Typography: Typography{
			TitleSize:            px(s.FontSize[markup.Title]),
			ParagraphSize:        px(s.FontSize[markup.Paragraph]),
			BulletSize:           px(s.FontSize[markup.Bullet]),
			TitleLineSpacing:     px(s.LineSpacing[markup.Title]),
			ParagraphLineSpacing: px(s.LineSpacing[markup.Paragraph]),
			BulletLineSpacing:    px(s.LineSpacing[markup.Bullet]),
			BlockSpacing:         px(s.BlockSpacing),
			TitleGap:             px(s.TitleGap),
			ListGap:              px(s.ListGap),
			BulletIndent:         px(s.BulletIndent),
			BulletRadius:         px(s.BulletRadius),
			ParenScale:           s.ParenScale,
		},
	}
}

// Load reads a config file over the defaults. The format follows the
// extension: .toml, .yaml or .yml. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigParse, path, MaxFileSize)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %s: unknown key %q", ErrConfigParse, path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrConfigParse, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks geometry, colours and lengths.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Margin < 0 || 2*c.Margin >= c.Width || 2*c.Margin >= c.Height {
		return fmt.Errorf("%w: margin %d for canvas %dx%d", ErrInvalidSize, c.Margin, c.Width, c.Height)
	}
	if _, err := ParseColor(c.BackgroundColor); err != nil {
		return err
	}
	if _, err := ParseColor(c.ForegroundColor); err != nil {
		return err
	}
	if ps := c.Typography.ParenScale; ps < 0 || math.IsNaN(ps) || math.IsInf(ps, 0) {
		return fmt.Errorf("%w: paren_scale %v", ErrInvalidSize, c.Typography.ParenScale)
	}
	_, err := c.Typography.resolve()
	return err
}

// Style converts the config into layout settings.
func (c *Config) Style() (layout.Style, error) {
	if err := c.Validate(); err != nil {
		return layout.Style{}, err
	}
	bg, _ := ParseColor(c.BackgroundColor)
	fg, _ := ParseColor(c.ForegroundColor)
	t, _ := c.Typography.resolve()

	return layout.Style{
		Width:      float64(c.Width),
		Height:     float64(c.Height),
		Margin:     float64(c.Margin),
		Background: bg,
		Foreground: fg,
		FontSize: map[markup.Kind]float64{
			markup.Title:     t.titleSize,
			markup.Paragraph: t.paragraphSize,
			markup.Bullet:    t.bulletSize,
		},
		LineSpacing: map[markup.Kind]float64{
			markup.Title:     t.titleLine,
			markup.Paragraph: t.paragraphLine,
			markup.Bullet:    t.bulletLine,
		},
		BlockSpacing: t.blockSpacing,
		TitleGap:     t.titleGap,
		ListGap:      t.listGap,
		BulletIndent: t.bulletIndent,
		BulletRadius: t.bulletRadius,
		ParenScale:   c.Typography.ParenScale,
	}, nil
}

type resolved struct {
	titleSize, paragraphSize, bulletSize float64
	titleLine, paragraphLine, bulletLine float64
	blockSpacing, titleGap, listGap      float64
	bulletIndent, bulletRadius           float64
}

// resolve 将所有长度换算为像素；字号必须大于零。
func (t Typography) resolve() (resolved, error) {
	var (
		r    resolved
		errs []error
	)
	size := func(name string, l Length, dst *float64) {
		v, err := l.PX()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive", ErrInvalidSize, name))
			return
		}
		*dst = v
	}
	length := func(name string, l Length, dst *float64) {
		v, err := l.PX()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		*dst = v
	}

	size("title_size", t.TitleSize, &r.titleSize)
	size("paragraph_size", t.ParagraphSize, &r.paragraphSize)
	size("bullet_size", t.BulletSize, &r.bulletSize)
	length("title_line_spacing", t.TitleLineSpacing, &r.titleLine)
	length("paragraph_line_spacing", t.ParagraphLineSpacing, &r.paragraphLine)
	length("bullet_line_spacing", t.BulletLineSpacing, &r.bulletLine)
	length("block_spacing", t.BlockSpacing, &r.blockSpacing)
	length("title_gap", t.TitleGap, &r.titleGap)
	length("list_gap", t.ListGap, &r.listGap)
	length("bullet_indent", t.BulletIndent, &r.bulletIndent)
	length("bullet_radius", t.BulletRadius, &r.bulletRadius)

	return r, errors.Join(errs...)
}
