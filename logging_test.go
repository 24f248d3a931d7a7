package printforge_test

import (
	"testing"

	printforge "github.com/printforge/go-printforge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := printforge.NewZapLogger(zap.New(core))

	logger.Debug("token present: %v", true)
	logger.Info("401 on %s", "/api/v1/orders/my")
	logger.Error("store read failed: %v", "boom")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "token present: true", entries[0].Message)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, "401 on /api/v1/orders/my", entries[1].Message)
	assert.Equal(t, zap.ErrorLevel, entries[2].Level)
}
