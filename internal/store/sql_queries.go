// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_storage"
	kvColKey      = "key"
	kvColValue    = "value"
	kvColUpdateAt = "updated_at"

	upsertKVSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

// buildGetValueQuery builds the SELECT of a single value by key.
func buildGetValueQuery(key string) (string, []any, error) {
	return sq.Select(kvColValue).
		From(kvTable).
		Where(sq.Eq{kvColKey: key}).
		Limit(1).
		ToSql()
}

// buildSetValueQuery builds an upsert of value under key.
func buildSetValueQuery(key string, value []byte, at time.Time) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns(kvColKey, kvColValue, kvColUpdateAt).
		Values(key, value, at).
		Suffix(upsertKVSuffix).
		ToSql()
}
