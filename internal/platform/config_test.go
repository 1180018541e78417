package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, "base_url: http://notes.internal:9000\npage_size: 25\n")

	cfg, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://notes.internal:9000", cfg.BaseURL)
	assert.Equal(t, 25, cfg.PageSize)
}

func TestLoadFileConfig_MissingFile(t *testing.T) {
	cfg, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Zero(t, cfg)
}

func TestLoadFileConfig_Malformed(t *testing.T) {
	path := writeConfig(t, "base_url: [broken\n")

	_, err := LoadFileConfig(path)
	assert.Error(t, err, "a typo must not silently fall back to defaults")
}

func TestResolveBaseURL_Precedence(t *testing.T) {
	file := FileConfig{BaseURL: "http://from-file"}

	t.Run("explicit wins over everything", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "http://from-env")
		assert.Equal(t, "http://explicit", ResolveBaseURL("http://explicit", file))
	})

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "http://from-env")
		assert.Equal(t, "http://from-env", ResolveBaseURL("", file))
	})

	t.Run("file is the fallback", func(t *testing.T) {
		assert.Equal(t, "http://from-file", ResolveBaseURL("", file))
	})

	t.Run("all empty defers to the gateway default", func(t *testing.T) {
		assert.Empty(t, ResolveBaseURL("", FileConfig{}))
	})
}
