package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
	require.Equal(t, int64(10<<20), cfg.HTTP.MaxImageBytes)
	require.Equal(t, int64(50_000_000), cfg.HTTP.MaxPixels)
	require.Equal(t, "onnx", cfg.Model.Backend)
	require.Equal(t, "models/garbage_classification.onnx", cfg.Model.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Log.Development)
	require.Empty(t, cfg.Telegram.Token)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("MODEL_PATH", "/srv/model.onnx")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	require.Equal(t, "/srv/model.onnx", cfg.Model.Path)
	require.True(t, cfg.Log.Development)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("MODEL_BACKEND=gocv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("MODEL_BACKEND") })

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "gocv", cfg.Model.Backend)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	body := "http:\n  port: \"9000\"\nmodel:\n  path: waste.onnx\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.HTTP.Port)
	require.Equal(t, "waste.onnx", cfg.Model.Path)
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
}

func TestLoad_InvalidLimit(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MAX_IMAGE_BYTES", "0")

	_, err := Load("")
	require.Error(t, err)
}
