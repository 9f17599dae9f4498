// Package logging builds the slog logger used by the executable on top of
// charmbracelet/log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a level name to a charmbracelet/log level. The empty
// string means info.
func ParseLevel(s string) (log.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "":
		return log.InfoLevel, nil
	case "warning":
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
	}
	return lvl, nil
}

// New returns a slog logger writing to w through a charmbracelet/log
// handler at the given level.
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	h := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "maniacpanel",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	})
	return slog.New(h), nil
}
