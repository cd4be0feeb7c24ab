// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const tempFilePrefix = "notes-tmp-"

// fileStorage keeps every key in a single JSON object on disk, mapping keys
// to string values the same way browser local storage does. Writes go to a
// temporary file that is renamed over the target, so a crash mid-write
// leaves the previous document intact.
type fileStorage struct {
	path   string
	logger *logger.Logger

	mu     sync.Mutex
	closed bool
}

// NewFileStorage returns a [KeyValueStorage] backed by the JSON document at
// path. The file and its directory are created on first write.
func NewFileStorage(path string, logger *logger.Logger) KeyValueStorage {
	return &fileStorage{path: path, logger: logger}
}

func (f *fileStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, false, ErrStorageClosed
	}

	doc, err := f.readDocument()
	if err != nil {
		return nil, false, err
	}

	v, ok := doc[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (f *fileStorage) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrStorageClosed
	}

	doc, err := f.readDocument()
	if err != nil {
		// unreadable document: start over with only this key
		f.logger.Warn().Err(err).
			Str("func", "fileStorage.Set").
			Str("path", f.path).
			Msg("replacing unreadable storage document")
		doc = make(map[string]string)
	}
	doc[key] = string(value)

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage document: %w", err)
	}

	if err = writeFileAtomic(f.path, payload, 0o600); err != nil {
		return fmt.Errorf("write storage document: %w", err)
	}

	return nil
}

func (f *fileStorage) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	return nil
}

func (f *fileStorage) readDocument() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	doc := make(map[string]string)
	if len(data) == 0 {
		return doc, nil
	}
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode storage file: %w", err)
	}
	if doc == nil {
		doc = make(map[string]string)
	}

	return doc, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err = tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", filename, err)
	}

	return nil
}
