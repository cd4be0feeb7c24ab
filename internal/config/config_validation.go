// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var configValidate = validator.New()

// validate checks the merged [StructuredConfig] against the `validate` struct
// tags and maps every violation to the sentinel of its configuration group.
//
// Returns nil if the configuration is valid, or all violations joined
// together otherwise.
func (cfg *StructuredConfig) validate() error {
	err := configValidate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfigs, err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%w: %s failed on %q", groupError(fe.StructNamespace()), fe.StructNamespace(), fe.Tag()))
	}

	return errors.Join(errs...)
}

func groupError(namespace string) error {
	switch {
	case strings.Contains(namespace, ".Storage."):
		return ErrInvalidStorageConfigs
	case strings.Contains(namespace, ".App."):
		return ErrInvalidAppConfigs
	default:
		return ErrInvalidConfigs
	}
}
