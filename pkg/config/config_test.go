package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumatoshi-tech/projectdetect/pkg/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultMaxProjectFiles, cfg.Detector.MaxProjectFiles)
	assert.Equal(t, config.DefaultMaxDepth, cfg.Detector.MaxDepth)
	assert.True(t, cfg.Detector.EnableGitAnalysis)
	assert.Equal(t, config.DefaultSkipDirs, cfg.Detector.SkipDirs)
	assert.InDelta(t, config.DefaultMinConfidence, cfg.Detector.MinConfidence, 0.001)
	assert.False(t, cfg.Detector.EnableEnryTieBreak)
	assert.Equal(t, config.DefaultLoggingLevel, cfg.Logging.Level)
	assert.Equal(t, config.DefaultServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, config.DefaultServerAddr, cfg.Server.Addr)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	configContent := `
detector:
  max_project_files: 1000
  max_depth: 4
  enable_git_analysis: false
  min_confidence: 0.75

logging:
  level: debug
  format: json

server:
  addr: ":9999"
`

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0o600))

	cfg, err := config.LoadConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Detector.MaxProjectFiles)
	assert.Equal(t, 4, cfg.Detector.MaxDepth)
	assert.False(t, cfg.Detector.EnableGitAnalysis)
	assert.InDelta(t, 0.75, cfg.Detector.MinConfidence, 0.001)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PROJECTDETECT_DETECTOR_MAX_DEPTH", "3")
	t.Setenv("PROJECTDETECT_DETECTOR_MIN_CONFIDENCE", "0.9")
	t.Setenv("PROJECTDETECT_SERVER_ADDR", ":7070")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Detector.MaxDepth)
	assert.InDelta(t, 0.9, cfg.Detector.MinConfidence, 0.001)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestValidateConfig_DefaultsPass(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestValidateConfig_InvalidMinConfidence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("detector:\n  min_confidence: 1.5\n"), 0o600))

	cfg, err := config.LoadConfig(cfgPath)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, config.ErrInvalidMinConfidence)
}

func TestValidateConfig_InvalidMaxDepth(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("detector:\n  max_depth: 0\n"), 0o600))

	cfg, err := config.LoadConfig(cfgPath)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, config.ErrInvalidMaxDepth)
}

func TestValidateConfig_InvalidLoggingLevel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  level: verbose\n"), 0o600))

	cfg, err := config.LoadConfig(cfgPath)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_MalformedYAML_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("detector:\n  max_depth: [invalid\n"), 0o600))

	cfg, err := config.LoadConfig(cfgPath)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfig_PartialConfig_MergesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("detector:\n  max_depth: 2\n"), 0o600))

	cfg, err := config.LoadConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Detector.MaxDepth)
	assert.Equal(t, config.DefaultMaxProjectFiles, cfg.Detector.MaxProjectFiles)
	assert.True(t, cfg.Detector.EnableGitAnalysis)
}

func TestLoadConfig_ExplicitPath_NotFound_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Nil(t, cfg)
}
