package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/clog/hooks"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
)

// LevelTrace is below slog.LevelDebug and shows per secret classification detail
const LevelTrace = slog.Level(-8)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func init() {
	_ = Configure("text", "info", "stderr")
}

// Default returns the default logger
func Default() *slog.Logger {
	return defaultLogger
}

// ParseLevel converts a level name to slog.Level
func ParseLevel(logLevel string) (slog.Level, error) {
	levelMap := map[string]slog.Level{
		"trace": LevelTrace,
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	level, ok := levelMap[logLevel]
	if !ok {
		return 0, goerr.Wrap(types.ErrInvalidOption, "invalid log level, should be one of trace, debug, info, warn or error", goerr.V("value", logLevel))
	}
	return level, nil
}

// newFilter masks `masq:"secret"` fields. Credential types in types mask themselves by LogValue.
func newFilter() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
	)
}

func openOutput(logOutput string) (io.Writer, error) {
	switch logOutput {
	case "stdout", "-":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		fd, err := os.Create(filepath.Clean(logOutput))
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "failed to open log file",
				goerr.V("path", logOutput), goerr.V("error", err.Error()))
		}
		return fd, nil
	}
}

// Configure configures the default logger with the given format, level, and output
func Configure(logFormat, logLevel, logOutput string) error {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return err
	}

	w, err := openOutput(logOutput)
	if err != nil {
		return err
	}

	filter := newFilter()

	var handler slog.Handler
	switch logFormat {
	case "text":
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(level <= slog.LevelDebug),
			clog.WithColorMap(&clog.ColorMap{
				Level: map[slog.Level]*color.Color{
					LevelTrace:      color.New(color.FgHiBlack, color.Bold),
					slog.LevelDebug: color.New(color.FgGreen, color.Bold),
					slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
					slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
					slog.LevelError: color.New(color.FgRed, color.Bold),
				},
				LevelDefault: color.New(color.FgBlue, color.Bold),
				Time:         color.New(color.FgWhite),
				Message:      color.New(color.FgHiWhite),
				AttrKey:      color.New(color.FgHiCyan),
				AttrValue:    color.New(color.FgHiWhite),
			}),
			clog.WithAttrHook(hooks.GoErr()),
			clog.WithReplaceAttr(filter),
		)

	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   level <= slog.LevelDebug,
			Level:       level,
			ReplaceAttr: filter,
		})

	default:
		return goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", logFormat))
	}

	defaultLogger = slog.New(handler)

	return nil
}
