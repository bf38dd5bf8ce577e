package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dash.log")
	logger := logrus.New()

	cleanup, err := Configure(logger, "debug", path, &bytes.Buffer{})
	require.NoError(t, err)
	logger.WithField("component", "test").Debug("hello")
	cleanup()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "hello")
	assert.Contains(t, string(raw), "component=test")
}

func TestConfigure_FallsBackOnBadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	var buf bytes.Buffer
	logger := logrus.New()
	cleanup, err := Configure(logger, "info", filepath.Join(blocker, "dash.log"), &buf)
	require.Error(t, err)
	require.NotNil(t, cleanup)
	defer cleanup()

	logger.Info("still logging")
	assert.Contains(t, buf.String(), "still logging")
}

func TestConfigure_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	_, err := Configure(logger, "loud", "", &buf)
	require.NoError(t, err)

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x", "y.log"), ExpandHome("~/x/y.log"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "rel", ExpandHome("rel"))
}
