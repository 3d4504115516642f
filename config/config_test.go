package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.NotEmpty(t, cfg.StorageURL)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{ServerURL: " https://pybo.example.com/ ", StorageURL: "mem://localhost/s.json"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://pybo.example.com", cfg.ServerURL)

	assert.Error(t, (&Config{StorageURL: "x"}).Validate())
	assert.Error(t, (&Config{ServerURL: DefaultServerURL}).Validate())
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pybo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("serverURL: http://file:8000/\nlogLevel: debug\nstorageURL: mem://localhost/pybo.json\n"), 0o600))

	t.Setenv("PYBO_LOG_LEVEL", "error")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://file:8000", cfg.ServerURL)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "mem://localhost/pybo.json", cfg.StorageURL)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	var useCases = []struct {
		description string
		content     string
	}{
		{description: "bad yaml", content: "serverURL: [\n"},
		{description: "bad scheme", content: "serverURL: ftp://x\n"},
	}
	for _, useCase := range useCases {
		path := filepath.Join(t.TempDir(), "pybo.yaml")
		require.NoError(t, os.WriteFile(path, []byte(useCase.content), 0o600))
		_, err := Load(path)
		assert.Error(t, err, useCase.description)
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
