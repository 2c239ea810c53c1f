package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForService(t *testing.T) {
	var structured, human bytes.Buffer
	SetOutput(&structured, &human)

	logger := ForService("check")
	require.NotNil(t, logger)
	logger.Info("validation failed", "category", "ypred")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &entry))
	assert.Equal(t, "check", entry["service"])
	assert.Equal(t, "validation failed", entry["msg"])
	assert.Equal(t, "ypred", entry["category"])
}

func TestCustomLevelNames(t *testing.T) {
	var structured, human bytes.Buffer
	SetOutput(&structured, &human)

	Trace("tracing compile")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &entry))
	assert.Equal(t, "TRACE", entry["level"])
}

func TestNewFileLogger(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "glassbox.log")

	logger, closeFn, err := NewFileLogger(path, "explainer", slog.LevelDebug, RotationConfig{})
	require.NoError(t, err)
	defer func() { require.NoError(t, closeFn()) }()

	logger.Debug("compile started", "rows", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "explainer", entry["service"])
	assert.Equal(t, "compile started", entry["msg"])
}
