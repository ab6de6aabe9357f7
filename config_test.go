// config_test.go
//
// Copyright (C) 2024 dawgdict contributors

package dawgdict

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DAWGDICT_LISTEN_ADDR", "")
	t.Setenv("DAWGDICT_PATH", "")
	t.Setenv("DAWGDICT_DATASTORE_PROJECT", "")
	t.Setenv("DAWGDICT_CACHE_SIZE", "")

	cfg := LoadConfig()
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr == %q, want \":8080\"", cfg.ListenAddr)
	}
	if cfg.CacheSize != 4096 {
		t.Errorf("CacheSize == %v, want 4096", cfg.CacheSize)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DAWGDICT_LISTEN_ADDR", ":9090")
	t.Setenv("DAWGDICT_PATH", "/tmp/dict.bin")
	t.Setenv("DAWGDICT_DATASTORE_PROJECT", "my-project")
	t.Setenv("DAWGDICT_CACHE_SIZE", "128")

	cfg := LoadConfig()
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr == %q, want \":9090\"", cfg.ListenAddr)
	}
	if cfg.DictionaryPath != "/tmp/dict.bin" {
		t.Errorf("DictionaryPath == %q, want \"/tmp/dict.bin\"", cfg.DictionaryPath)
	}
	if cfg.DatastoreProject != "my-project" {
		t.Errorf("DatastoreProject == %q, want \"my-project\"", cfg.DatastoreProject)
	}
	if cfg.CacheSize != 128 {
		t.Errorf("CacheSize == %v, want 128", cfg.CacheSize)
	}
}

func TestAtoiDefaultFallsBackOnGarbage(t *testing.T) {
	if got := atoiDefault("not-a-number", 99); got != 99 {
		t.Errorf("atoiDefault(garbage, 99) == %v, want 99", got)
	}
	if got := atoiDefault("42", 99); got != 42 {
		t.Errorf("atoiDefault(\"42\", 99) == %v, want 42", got)
	}
}
