// config.go
//
// Copyright (C) 2024 dawgdict contributors
//
// This file holds the runtime configuration for the dictionary lookup
// server and its remote store: the listen address, the on-disk
// dictionary path, the optional datastore project, and the lookup cache
// size. Values
// are read from the environment, with an optional .env file loaded
// first for local development.

package dawgdict

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything lookupserver.go and store.go need to start.
type Config struct {
	// ListenAddr is the address the lookup server binds to, e.g. ":8080".
	ListenAddr string
	// DictionaryPath is the local path to a dictionary produced by
	// Dictionary.Write, loaded at startup via Open or ReadDictionary.
	DictionaryPath string
	// DatastoreProject is the Google Cloud project ID for
	// NewDatastoreStore. Nothing in this module reads it on its own;
	// cmd/dawgdict does not open a remote store.
	DatastoreProject string
	// CacheSize is the number of entries lookupcache.go's LRU keeps.
	// Zero or less disables caching entirely.
	CacheSize int
}

// LoadConfig reads configuration from the environment. If a .env file
// is present in the working directory it is loaded first via godotenv,
// without overriding any variable already set in the real environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		// A malformed .env is a local development nuisance, not a
		// reason to refuse to start; fall through to plain os.Getenv.
	}

	return Config{
		ListenAddr:       getenvDefault("DAWGDICT_LISTEN_ADDR", ":8080"),
		DictionaryPath:   os.Getenv("DAWGDICT_PATH"),
		DatastoreProject: os.Getenv("DAWGDICT_DATASTORE_PROJECT"),
		CacheSize:        atoiDefault(os.Getenv("DAWGDICT_CACHE_SIZE"), 4096),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func atoiDefault(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return fallback
		}
		n = n*10 + int(ch-'0')
	}
	return n
}
