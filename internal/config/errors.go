package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown backend or an empty path for the file backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a zero validation TTL or an unsupported locale).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidConfigs is returned for rule violations outside the groups above.
	ErrInvalidConfigs = errors.New("invalid configuration")
)
