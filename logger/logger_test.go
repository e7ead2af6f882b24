package logger_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-aoc/logger"
)

func TestNew_LevelAndOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, "debug")
	require.Equal(t, logrus.DebugLevel, l.GetLevel())

	logger.Component(l, "astar").WithField("expanded", 3).Debug("search done")
	out := buf.String()
	assert.Contains(t, out, "component=astar")
	assert.Contains(t, out, "expanded=3")
	assert.Contains(t, out, `msg="search done"`)
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	l := logger.New(&bytes.Buffer{}, "loud")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestInit_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	l := logger.Init()
	require.Same(t, l, logger.Log)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
}

func TestComponent_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Component(nil, "turnsim").Info("dropped")
	})
}
