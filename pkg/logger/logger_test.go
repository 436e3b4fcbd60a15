package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.warn)
	assert.NotNil(t, logger.error)
}

func TestLogger_Levels(t *testing.T) {
	logger := New()

	// None of the levels should panic, with or without format args
	logger.Info("server starting on port %s", "8080")
	logger.Warn("rate limit close to threshold: %d", 95)
	logger.Error("failed to allocate payout %s: %v", "payout-1", assert.AnError)
	logger.Info("plain message")
}
