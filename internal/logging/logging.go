// Package logging is the ambient structured-logging layer: New builds a
// github.com/sirupsen/logrus logger rather than a package-level global.
// The CLI's run command uses it to warn about a missing source file;
// pkg/httpapi does not log through it.
//
// Program-level `print`/`println` output is a separate concern (see
// sink.go's Sink): it is user-visible interpreter output, not an
// operational log line, so it never goes through the FieldLogger.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus.Logger configured from level/format (as loaded by
// internal/config). format "json" selects logrus.JSONFormatter; anything
// else selects the default TextFormatter. An unrecognized level falls
// back to logrus.InfoLevel.
func New(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}
