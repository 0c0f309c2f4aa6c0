// Package logger builds the process-wide slog.Logger for the configured
// environment: colored text for local work, JSON for everything else.
package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"

	"medtracker/internal/app/client/config"
)

func New(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return setupPrettySlog()
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(newPrettyHandler(os.Stdout, slog.LevelDebug))
}

// prettyHandler renders records as "15:04:05 LEVEL message {attrs}" with a
// colored level. For terminal output only; structured sinks get JSON.
type prettyHandler struct {
	out   io.Writer
	level slog.Level
	attrs []slog.Attr
}

func newPrettyHandler(out io.Writer, level slog.Level) *prettyHandler {
	return &prettyHandler{out: out, level: level}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := make(map[string]interface{}, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()
		return true
	})

	var suffix string
	if len(fields) > 0 {
		b, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("marshal attrs: %w", err)
		}
		suffix = " " + color.WhiteString(string(b))
	}

	_, err := fmt.Fprintf(h.out, "%s %s %s%s\n",
		r.Time.Format("15:04:05.000"),
		level,
		color.CyanString(r.Message),
		suffix,
	)
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &prettyHandler{out: h.out, level: h.level, attrs: merged}
}

func (h *prettyHandler) WithGroup(_ string) slog.Handler {
	return h
}
