package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("debug", "development")
	require.NotNil(t, logger)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestNewLogger_ProductionUsesJSON(t *testing.T) {
	logger := NewLogger("warn", "Production")
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestNewLogger_InvalidLevelFallsBack(t *testing.T) {
	logger := NewLogger("chatty", "development")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
