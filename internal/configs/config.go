package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ToolConfig is the CLI's own settings file, separate from the
// configuration document it manages.
type ToolConfig struct {
	Install Install `toml:"install"`
	// DataDir overrides the default data directory when set.
	DataDir string `toml:"data_dir,omitempty"`
}

type Install struct {
	UUID      string    `toml:"install_uuid"`
	CreatedAt time.Time `toml:"created_at"`
}

const toolConfigFileName = "settings.toml"

// LoadToolConfig loads the tool settings, returning an empty config when
// none exists yet.
func LoadToolConfig() (*ToolConfig, error) {
	configPath := filepath.Join(UserPrintvaultSettings.UserConfigsPath, toolConfigFileName)

	config := &ToolConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load tool config: %w", err)
	}

	return config, nil
}

// SaveToolConfig saves the tool settings.
func SaveToolConfig(config *ToolConfig) error {
	configPath := filepath.Join(UserPrintvaultSettings.UserConfigsPath, toolConfigFileName)

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save tool config: %w", err)
	}

	return nil
}

// EnsureToolConfig ensures the tool settings exist and carry an install UUID.
func EnsureToolConfig() (*ToolConfig, error) {
	config, err := LoadToolConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load tool config: %w", err)
	}

	if config.Install.UUID == "" {
		config.Install.UUID = uuid.New().String()
		config.Install.CreatedAt = time.Now().UTC()
		if err := SaveToolConfig(config); err != nil {
			return nil, fmt.Errorf("failed to save tool config: %w", err)
		}
	}

	return config, nil
}

// ResolveDataDir picks the data directory: an explicit flag value wins,
// then the configured override, then the platform default.
func ResolveDataDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	config, err := LoadToolConfig()
	if err != nil {
		return "", err
	}
	if config.DataDir != "" {
		return config.DataDir, nil
	}

	return UserPrintvaultSettings.DefaultDataPath, nil
}
