package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-b storage backend: file, sqlite or memory
//	-p storage path (JSON file or sqlite database)
//	-k storage key
//	-validation-ttl validation message lifetime (e.g. "5s")
//	-locale validation message locale: en or ar
//	-log log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var backend string
	var storagePath string
	var storageKey string
	var validationTTL time.Duration
	var locale string
	var logPath string
	var jsonConfigPath string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.StringVar(&backend, "b", "", "Storage backend: file, sqlite or memory")
	fs.StringVar(&storagePath, "p", "", "Storage path")
	fs.StringVar(&storageKey, "k", "", "Storage key")
	fs.DurationVar(&validationTTL, "validation-ttl", 0, "Validation message lifetime (e.g., 5s)")
	fs.StringVar(&locale, "locale", "", "Validation message locale: en or ar")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ValidationTTL: validationTTL,
			Locale:        locale,
		},
		Storage: Storage{
			Backend: backend,
			Path:    storagePath,
			Key:     storageKey,
		},
		Log: Log{
			Path: logPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "notes"
}
