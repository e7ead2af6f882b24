// Package logger owns the process-wide logrus logger used by lvlath-aoc
// components. Algorithms never log unless a caller hands them a logger;
// the default everywhere is Discard.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is nil until Init is called.
var Log *logrus.Logger

// Init configures Log from the environment. Call it once from main.
//
//   - LOG_LEVEL:  any logrus level name; defaults to "info", falls back to info if invalid.
//   - LOG_FORMAT: "json" selects JSONFormatter, anything else a timestamped TextFormatter.
func Init() *logrus.Logger {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	Log = New(os.Stdout, level)
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}

	return Log
}

// New builds a text logger writing to w at the named level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})
	l.SetOutput(w)

	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}

// Component returns an entry tagged with the component field, the way
// every subsystem labels its records.
func Component(l logrus.FieldLogger, name string) logrus.FieldLogger {
	if l == nil {
		l = Discard()
	}

	return l.WithField("component", name)
}
