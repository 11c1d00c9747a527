package cmd

import (
	"strings"
	"testing"

	"github.com/printvault/printvault/internal/configstore"
	logger "github.com/printvault/printvault/internal/logging"
)

func runConfig(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()

	return captureOutput(t, func() error {
		ConfigCmd.SetArgs(append(args, "--data-dir", dataDir))
		return ConfigCmd.Execute()
	})
}

func TestConfigWorkflow(t *testing.T) {
	t.Run("GetDefaultValue", func(t *testing.T) {
		dataDir := setupTestEnvironment(t)
		runInit(t, dataDir)

		output, err := runConfig(t, dataDir, "get", "db_user")
		if err != nil {
			t.Fatalf("config get failed: %v", err)
		}
		if strings.TrimSpace(output) != "user" {
			t.Errorf("Expected db_user=user, got: %q", output)
		}
	})

	t.Run("GetUnknownFieldFails", func(t *testing.T) {
		dataDir := setupTestEnvironment(t)
		runInit(t, dataDir)

		if _, err := runConfig(t, dataDir, "get", "no_such_field"); err == nil {
			t.Error("Expected an error for an unknown field")
		}
	})

	t.Run("SetStringField", func(t *testing.T) {
		dataDir := setupTestEnvironment(t)
		runInit(t, dataDir)

		if _, err := runConfig(t, dataDir, "set", "db_host", "db.example.com"); err != nil {
			t.Fatalf("config set failed: %v", err)
		}

		output, err := runConfig(t, dataDir, "get", "db_host")
		if err != nil {
			t.Fatalf("config get failed: %v", err)
		}
		if strings.TrimSpace(output) != "db.example.com" {
			t.Errorf("Expected updated db_host, got: %q", output)
		}
	})

	t.Run("SetNumericFieldStoresNumber", func(t *testing.T) {
		dataDir := setupTestEnvironment(t)
		runInit(t, dataDir)

		if _, err := runConfig(t, dataDir, "set", "printer_id", "42"); err != nil {
			t.Fatalf("config set failed: %v", err)
		}

		store := configstore.New(dataDir, logger.Logger{})
		doc, err := store.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if doc["printer_id"] != float64(42) {
			t.Errorf("Expected printer_id stored as number 42, got %v", doc["printer_id"])
		}
		// Untouched sibling fields survive the merge.
		if doc["db_user"] != "user" {
			t.Errorf("Merge update touched db_user: %v", doc["db_user"])
		}
	})

	t.Run("SetNumericFieldRejectsGarbage", func(t *testing.T) {
		dataDir := setupTestEnvironment(t)
		runInit(t, dataDir)

		if _, err := runConfig(t, dataDir, "set", "electricity_cost", "cheap"); err == nil {
			t.Error("Expected an error storing a non-number in electricity_cost")
		}
	})

	t.Run("SetWithoutInitFailsClosed", func(t *testing.T) {
		dataDir := setupTestEnvironment(t)

		if _, err := runConfig(t, dataDir, "set", "db_host", "nope"); err == nil {
			t.Error("Expected set to fail before init")
		}
	})

	t.Run("ShowListsAllFields", func(t *testing.T) {
		dataDir := setupTestEnvironment(t)
		runInit(t, dataDir)

		output, err := runConfig(t, dataDir, "show")
		if err != nil {
			t.Fatalf("config show failed: %v", err)
		}
		for _, field := range []string{"db_user", "db_password", "db_host", "db_port", "db_database", "printer_id", "currency", "electricity_cost"} {
			if !strings.Contains(output, field) {
				t.Errorf("Expected %s in show output, got: %s", field, output)
			}
		}
	})
}
