// Package logging wires the run's structured logger. Every run gets one
// root logger at startup; ForFile and ForOntology return child loggers
// that carry the source file path or the ontology's root entity as a
// structured field, so log lines stay attributable to the input they
// concern.
package logging

import (
	"io"
	"strings"

	charmlog "charm.land/log/v2"
)

// Level mirrors charm.land/log/v2's Level so callers outside this
// package never need to import it directly.
type Level = charmlog.Level

// Logger wraps a charm.land/log/v2 logger.
type Logger struct {
	*charmlog.Logger
}

// New builds a root Logger writing to w. format is "json" or "text"
// (text is the default for any other value); level is parsed
// case-insensitively with "info" as the default.
func New(w io.Writer, level, format string) *Logger {
	l := charmlog.New(w)
	l.SetLevel(parseLevel(level))
	l.SetReportTimestamp(true)
	if strings.EqualFold(format, "json") {
		l.SetFormatter(charmlog.JSONFormatter)
	} else {
		l.SetFormatter(charmlog.TextFormatter)
	}
	return &Logger{l}
}

func parseLevel(s string) charmlog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return charmlog.DebugLevel
	case "warn", "warning":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// ForOntology returns a child logger carrying root_entity as a
// structured field on every line it emits.
func (l *Logger) ForOntology(rootEntity string) *Logger {
	return &Logger{l.Logger.With("root_entity", rootEntity)}
}

// ForFile returns a child logger carrying the source file path.
func (l *Logger) ForFile(path string) *Logger {
	return &Logger{l.Logger.With("file", path)}
}
