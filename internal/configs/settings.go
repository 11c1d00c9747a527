package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	// UserConfigsPath holds the tool's own settings.toml.
	UserConfigsPath string
	// DefaultDataPath is where key material and the configuration document
	// live when no override is configured.
	DefaultDataPath string
}

var UserPrintvaultSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	UserPrintvaultSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "printvault"),
		DefaultDataPath: filepath.Join(dataDir, "printvault"),
	}
}
