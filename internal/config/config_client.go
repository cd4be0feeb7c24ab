package config

import (
	"fmt"
	"time"
)

// ClientApp holds note store behaviour settings.
type ClientApp struct {
	// ValidationTTL is the lifetime of validation messages.
	ValidationTTL time.Duration
	// Locale selects the validation message set.
	Locale string
}

// ClientStorage holds the persistence backend settings.
type ClientStorage struct {
	// Backend is one of [BackendFile], [BackendSQLite] or [BackendMemory].
	Backend string
	// Path is the JSON file or sqlite database path.
	Path string
	// Key is the storage key of the notes array.
	Key string
}

// ClientLog holds logger settings.
type ClientLog struct {
	// Path is the log file path; empty means next to the executable.
	Path string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains note store settings.
	App ClientApp
	// Storage contains persistence settings.
	Storage ClientStorage
	// Log contains logger settings.
	Log ClientLog
}

// GetClientConfig builds a client-specific config view from the merged
// structured configuration read from defaults, the environment, args and an
// optional JSON file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		App: ClientApp{
			ValidationTTL: cfg.App.ValidationTTL,
			Locale:        cfg.App.Locale,
		},
		Storage: ClientStorage{
			Backend: cfg.Storage.Backend,
			Path:    cfg.Storage.Path,
			Key:     cfg.Storage.Key,
		},
		Log: ClientLog{
			Path: cfg.Log.Path,
		},
	}, nil
}
