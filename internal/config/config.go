// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage backend names accepted by [Storage.Backend].
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Message locales accepted by [App.Locale].
const (
	LocaleEnglish = "en"
	LocaleArabic  = "ar"
)

// Default values applied before any other configuration source.
const (
	DefaultStorageBackend = BackendFile
	DefaultStoragePath    = "notes.json"
	DefaultStorageKey     = "notes"
	DefaultValidationTTL  = 5 * time.Second
	DefaultLocale         = LocaleEnglish
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper application. It is populated by merging defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
//   - validate  : go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds behaviour settings of the note store.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logging output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds behaviour settings of the note store.
type App struct {
	// ValidationTTL is how long validation messages stay visible before they
	// are cleared automatically (e.g. "5s").
	// Env: APP_VALIDATION_TTL
	ValidationTTL time.Duration `env:"VALIDATION_TTL" validate:"gt=0"`

	// Locale selects the validation message set ("en" or "ar").
	// Env: APP_LOCALE
	Locale string `env:"LOCALE" validate:"required,oneof=en ar"`
}

// Storage holds the persistence backend settings.
type Storage struct {
	// Backend is one of "file", "sqlite" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND" validate:"required,oneof=file sqlite memory"`

	// Path is the JSON file path for the file backend or the database file
	// for the sqlite backend. Ignored by the memory backend.
	// Env: STORAGE_PATH
	Path string `env:"PATH" validate:"required_unless=Backend memory"`

	// Key is the storage key under which the notes array is kept.
	// Env: STORAGE_KEY
	Key string `env:"KEY" validate:"required"`
}

// Log holds logging output settings.
type Log struct {
	// Path is the log file. Empty means a file next to the executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ValidationTTL: DefaultValidationTTL,
			Locale:        DefaultLocale,
		},
		Storage: Storage{
			Backend: DefaultStorageBackend,
			Path:    DefaultStoragePath,
			Key:     DefaultStorageKey,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
