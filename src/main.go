package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/sandrolain/greet/src/cli"
	"github.com/sandrolain/greet/src/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	envCfg, err := config.LoadEnvConfig()
	if err != nil {
		newLogger(stderr, slog.LevelWarn, !isTerminal(stderr)).Error("failed to load environment configuration", "error", err)
		return cli.ExitFailure
	}

	// stdout carries only the greeting, logs and diagnostics go to stderr,
	// so stderr decides about color
	noColor := envCfg.ColorDisabled() || !isTerminal(stderr)
	color.NoColor = noColor

	logger := newLogger(stderr, envCfg.Level(), noColor)
	slog.SetDefault(logger)

	lang := envCfg.Language()
	logger.Debug("environment configuration loaded", "level", envCfg.LogLevel, "language", lang.String())

	return cli.Execute(args, cli.Options{
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Language: lang,
	})
}

func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
