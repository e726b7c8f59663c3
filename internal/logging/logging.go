// Package logging configures the process-wide logrus logger.
//
// Stride owns the terminal while running, so logs never go to stdout or
// stderr; they would corrupt the rendered screen. Everything is written to a
// rotated file instead, which also gives "what did the client do last night"
// forensics across restarts.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup routes logrus output to a rotated log file at path. An empty path
// discards all output, which keeps tests quiet.
func Setup(path, level string) error {
	logrus.SetLevel(GetLevel(level))

	if strings.TrimSpace(path) == "" {
		logrus.SetOutput(nopWriter{})
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	if !strings.HasSuffix(path, ".log") {
		path += ".log"
	}

	logrus.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		LocalTime:  true,
	})
	return nil
}

// GetLevel maps a level name to a logrus level, defaulting to info.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "trace":
		return logrus.TraceLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
