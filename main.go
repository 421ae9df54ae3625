package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/AngelaFabregues/CheatsheetImagesGenerator/config"
	"github.com/AngelaFabregues/CheatsheetImagesGenerator/layout"
	"github.com/AngelaFabregues/CheatsheetImagesGenerator/markup"
	"github.com/AngelaFabregues/CheatsheetImagesGenerator/output"
	"github.com/AngelaFabregues/CheatsheetImagesGenerator/renderer"
	"github.com/AngelaFabregues/CheatsheetImagesGenerator/section"
)

const (
	stdinName      = "-"
	stdinOutDir    = "output_images"
	stdinImageName = "cheatsheet"
)

func main() {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	logger := newLogger(os.Stderr, log.InfoLevel)
	cmd := newRootCmd(os.Stdin, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Error("生成失败", "err", err)
		stop()
		os.Exit(exitCodeFor(err))
	}
}

// runOptions 汇总一次生成所需的输入与依赖。
type runOptions struct {
	Input     string // 文件路径，"-" 表示标准输入
	DebugPath string
	Config    *config.Config
	Renderer  renderer.Renderer
	Logger    *log.Logger
	Stdin     io.Reader
	Now       func() time.Time
}

// image 是一张待渲染的图片。
type image struct {
	name string
	doc  markup.Document
}

// run 串联读取、解析、分节、布局、渲染与写出。
func run(ctx context.Context, opts runOptions) ([]string, error) {
	if opts.Renderer == nil {
		return nil, fmt.Errorf("renderer 不能为空")
	}
	ts, ok := opts.Renderer.(layout.Typesetter)
	if !ok {
		return nil, fmt.Errorf("renderer 未实现排版接口")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}

	src, err := readInput(opts.Input, opts.Stdin)
	if err != nil {
		return nil, err
	}
	doc, err := markup.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("解析输入失败: %w", err)
	}
	logger.Debug("parsed input", "input", displayName(opts.Input), "blocks", doc.Len())

	images := plan(doc, opts.Input, cfg.Single)
	logger.Debug("planned images", "count", len(images), "single", cfg.Single)

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = defaultOutDir(opts.Input)
	}
	archived, err := output.Prepare(outDir, now())
	if err != nil {
		return nil, err
	}
	if archived != "" {
		logger.Info("archived previous output", "dir", archived)
	}

	var (
		written []string
		debug   []layout.DebugEntry
	)
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		page, err := layout.Build(img.doc, layout.BuildOptions{Typesetter: ts, Style: style})
		if err != nil {
			return written, fmt.Errorf("布局计算失败: %w", err)
		}
		data, err := opts.Renderer.Render(page)
		if err != nil {
			return written, fmt.Errorf("渲染 %s 失败: %w", img.name, err)
		}
		path, err := output.Write(outDir, img.name, data)
		if err != nil {
			return written, err
		}
		logger.Info("wrote image", "path", path, "width", page.Width, "height", page.Height)
		written = append(written, path)
		debug = append(debug, layout.DebugEntry{Name: img.name, Page: page})
	}

	if opts.DebugPath != "" {
		if err := writeDebug(debug, opts.DebugPath); err != nil {
			return written, err
		}
		logger.Debug("wrote layout debug", "path", opts.DebugPath)
	}
	return written, nil
}

// plan 决定输出哪些图片：单图模式整篇一张，否则每节一张。
func plan(doc markup.Document, input string, single bool) []image {
	if single {
		name := stdinImageName
		if input != stdinName {
			name = section.Slug(baseName(input))
		}
		return []image{{name: name, doc: doc}}
	}

	sections := section.Split(doc)
	if len(sections) == 0 {
		return []image{{name: section.DefaultName, doc: doc}}
	}
	namer := section.NewNamer()
	images := make([]image, 0, len(sections))
	for _, s := range sections {
		images = append(images, image{name: namer.Name(s.Title), doc: s.Document})
	}
	return images
}

func readInput(input string, stdin io.Reader) ([]byte, error) {
	switch input {
	case "":
		return nil, fmt.Errorf("%w: no input file given", ErrInputNotFound)
	case stdinName:
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrInputNotFound, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	return data, nil
}

// defaultOutDir 为输入文件旁去掉扩展名的同名目录；
// 输入没有扩展名时追加后缀，避免把输入文件当作旧目录归档。
func defaultOutDir(input string) string {
	if input == stdinName || input == "" {
		return stdinOutDir
	}
	dir := filepath.Join(filepath.Dir(input), baseName(input))
	if dir == filepath.Clean(input) {
		dir += "_" + stdinOutDir
	}
	return dir
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func displayName(input string) string {
	if input == stdinName {
		return "stdin"
	}
	return input
}

func writeDebug(entries []layout.DebugEntry, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("%w: 创建调试目录失败: %w", output.ErrWrite, err)
	}
	if err := layout.WriteDebugJSON(entries, debugPath); err != nil {
		return fmt.Errorf("%w: 输出调试 JSON 失败: %w", output.ErrWrite, err)
	}
	return nil
}
