package configs

import (
	"path/filepath"
	"testing"
)

type tomlFixture struct {
	Name  string `toml:"name"`
	Count int    `toml:"count"`
}

func TestSaveAndLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fixture.toml")

	saved := tomlFixture{Name: "printvault", Count: 3}
	if err := SaveTOML(path, saved); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	var loaded tomlFixture
	if err := LoadTOML(path, &loaded); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if loaded != saved {
		t.Errorf("Expected %+v, got %+v", saved, loaded)
	}
}

func TestLoadTOMLMissingFile(t *testing.T) {
	var out tomlFixture
	if err := LoadTOML(filepath.Join(t.TempDir(), "missing.toml"), &out); err == nil {
		t.Error("Expected an error loading a missing file")
	}
}
