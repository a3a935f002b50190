package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kk-code-lab/rhex/internal/app"
	"github.com/kk-code-lab/rhex/internal/clipboard"
	"github.com/kk-code-lab/rhex/internal/config"
	"github.com/kk-code-lab/rhex/internal/logging"
	"github.com/kk-code-lab/rhex/internal/source"
	"github.com/kk-code-lab/rhex/internal/ui/render"
)

var version = "dev"

// session is everything the viewer needs once flags and config are resolved.
type session struct {
	opts   app.Options
	src    source.ByteSource
	title  string
	config *config.Config
}

type runner func(s session) error

type rootFlags struct {
	configPath    string
	logFile       string
	logLevel      string
	bytesPerLine  int
	caseSensitive bool
	wholeWords    bool
	fromViewport  bool
}

func newRootCmd(run runner) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "rhex [flags] FILE",
		Short: "Terminal hex viewer with streaming search",
		Long: `rhex shows a file as a hex/text grid without loading it into memory.

Drag to select bytes, Ctrl+C copies them, / searches for text or
space-separated hex bytes (e.g. "DE AD BE EF").`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, flags, args[0], run)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "config file (default is $HOME/.config/rhex/rhex.toml)")
	f.StringVar(&flags.logFile, "log-file", "", "write JSON logs to this file")
	f.StringVar(&flags.logLevel, "log-level", logging.LevelInfo, "log level ("+strings.Join(logging.ValidLevels(), ", ")+")")
	f.IntVar(&flags.bytesPerLine, "bytes-per-line", 0, "bytes shown per grid line (overrides config)")
	f.BoolVar(&flags.caseSensitive, "case-sensitive", false, "match text patterns case-sensitively")
	f.BoolVar(&flags.wholeWords, "whole-words", false, "only match text patterns at word boundaries")
	f.BoolVar(&flags.fromViewport, "from-viewport", false, "focus the first match at or after the viewport instead of the top")
	return cmd
}

func execute(cmd *cobra.Command, flags rootFlags, path string, run runner) error {
	logger, err := logging.NewLogger(flags.logFile, flags.logLevel)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		_ = logger.Close()
	}()

	configPath := flags.configPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("config ignored, using defaults", "path", configPath, "error", err)
	}
	applyFlags(cmd, flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	theme, err := cfg.ColorTheme(render.GetColorTheme())
	if err != nil {
		return err
	}

	src, err := source.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	logger.Info("opened file", "path", path, "length", src.Len())

	opts := app.Options{
		Viewer: cfg.Viewer(),
		Theme:  theme,
		Logger: logger,
	}
	if sink, err := clipboard.Detect(cfg.Clipboard.Command); err != nil {
		logger.Debug("clipboard unavailable", "error", err)
	} else {
		opts.Clipboard = sink
	}

	return run(session{opts: opts, src: src, title: filepath.Base(path), config: cfg})
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command, flags rootFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("bytes-per-line") {
		cfg.Layout.BytesPerLine = flags.bytesPerLine
	}
	if changed("case-sensitive") {
		cfg.Search.CaseSensitive = flags.caseSensitive
	}
	if changed("whole-words") {
		cfg.Search.WholeWords = flags.wholeWords
	}
	if changed("from-viewport") {
		cfg.Search.FromTop = !flags.fromViewport
	}
}

func runViewer(s session) error {
	application, err := app.NewApplication(s.opts)
	if err != nil {
		_ = s.src.Close()
		return fmt.Errorf("error initializing application: %w", err)
	}
	defer func() {
		_ = application.Close()
	}()

	application.SetSource(s.src, s.title)
	application.Run()
	return nil
}
