package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	logger := logrus.New()

	require.NoError(t, Configure(logger, "debug", "json"))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	require.NoError(t, Configure(logger, "", "TEXT"))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestConfigureRejectsUnknownValues(t *testing.T) {
	logger := logrus.New()
	assert.Error(t, Configure(logger, "loud", ""))
	assert.Error(t, Configure(logger, "", "xml"))
}
