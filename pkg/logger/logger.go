// Package logger holds the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It is usable before Init is called so that
// library code and tests can log without setup.
var Log = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	l.SetOutput(os.Stderr)
	return l
}

// Init configures Log from LOG_LEVEL (default "info") and LOG_FORMAT
// ("json" or text). Call once from main.
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// stdout carries the rendered dungeon
	Log.SetOutput(os.Stderr)
}

// Silence discards all log output. Used by tests and -quiet.
func Silence() {
	Log.SetOutput(io.Discard)
}
