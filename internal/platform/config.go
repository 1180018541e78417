package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvBaseURL overrides the config file's base URL when set.
const EnvBaseURL = "NOTEWIRE_BASE_URL"

// FileConfig is the on-disk YAML configuration
// ($XDG_CONFIG_HOME/notewire/config.yaml).
type FileConfig struct {
	BaseURL  string `yaml:"base_url"`
	PageSize int    `yaml:"page_size"`
}

// ConfigDir resolves the notewire configuration directory.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, "notewire"), nil
}

// DefaultSessionPath is where the file-backed session store persists.
func DefaultSessionPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

// DefaultConfigPath is where the YAML config file is looked up.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFileConfig reads the YAML config. A missing file yields the zero
// config, not an error; a malformed file is an error (a typo should not
// silently fall back to defaults).
func LoadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveBaseURL applies precedence: explicit option > env > config file.
// Empty result means "use the gateway's built-in default".
func ResolveBaseURL(explicit string, file FileConfig) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvBaseURL); env != "" {
		return env
	}
	return file.BaseURL
}
