package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/AngelaFabregues/CheatsheetImagesGenerator/config"
	canvasrenderer "github.com/AngelaFabregues/CheatsheetImagesGenerator/renderer/canvas"
)

// notifyContext returns a context canceled on interrupt or termination.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// cliFlags 保存命令行参数；显式设置的参数覆盖配置文件。
type cliFlags struct {
	input      string
	outDir     string
	width      int
	height     int
	margin     int
	background string
	foreground string
	fontPath   string
	single     bool
	configPath string
	debugPath  string
	verbose    bool
}

func newRootCmd(stdin io.Reader, stderr io.Writer) *cobra.Command {
	defaults := config.Default()
	var f cliFlags

	cmd := &cobra.Command{
		Use:   "cheatsheet [input]",
		Short: "Render a markdown cheatsheet as PNG images",
		Long: `cheatsheet turns a small markdown subset ("= " titles, "* " bullets and
paragraphs) into portrait PNG images, one per titled section by default.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if f.input != "" && f.input != args[0] {
					return fmt.Errorf("%w: input given both as argument and --input", ErrUsage)
				}
				f.input = args[0]
			}

			level := log.InfoLevel
			if f.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)

			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
				FontPath: cfg.FontPath,
				Logger:   logger,
			})
			src, err := r.Font()
			if err != nil {
				return err
			}
			logger.Debug("using font", "name", src.Name, "path", src.Path)

			written, err := run(cmd.Context(), runOptions{
				Input:     f.input,
				DebugPath: f.debugPath,
				Config:    cfg,
				Renderer:  r,
				Logger:    logger,
				Stdin:     stdin,
			})
			if err != nil {
				return err
			}
			logger.Debug("done", "images", len(written))
			return nil
		},
	}
	cmd.SetIn(stdin)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&f.input, "input", "i", "", `input file ("-" for standard input)`)
	flags.StringVarP(&f.outDir, "outdir", "o", "", `output directory (default: input file name without extension, "output_images" for standard input)`)
	flags.IntVar(&f.width, "width", defaults.Width, "image width")
	flags.IntVar(&f.height, "height", defaults.Height, "initial image height, grows as needed")
	flags.IntVar(&f.margin, "margin", defaults.Margin, "margin in pixels")
	flags.StringVar(&f.background, "bg", defaults.BackgroundColor, "background colour")
	flags.StringVar(&f.foreground, "fg", defaults.ForegroundColor, "text colour")
	flags.StringVar(&f.fontPath, "font", "", "TTF/OTF font path (falls back to platform fonts, then built-in)")
	flags.BoolVar(&f.single, "single", false, "render the whole document as one image instead of one per section")
	flags.StringVarP(&f.configPath, "config", "c", "", "TOML or YAML configuration file")
	flags.StringVar(&f.debugPath, "debug", "", "write the layout of every image as JSON to this path")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// resolveConfig 按 默认值 < 配置文件 < 显式参数 的顺序合并配置。
func resolveConfig(cmd *cobra.Command, f cliFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("outdir") {
		cfg.OutDir = f.outDir
	}
	if changed("width") {
		cfg.Width = f.width
	}
	if changed("height") {
		cfg.Height = f.height
	}
	if changed("margin") {
		cfg.Margin = f.margin
	}
	if changed("bg") {
		cfg.BackgroundColor = f.background
	}
	if changed("fg") {
		cfg.ForegroundColor = f.foreground
	}
	if changed("font") {
		cfg.FontPath = f.fontPath
	}
	if changed("single") {
		cfg.Single = f.single
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
