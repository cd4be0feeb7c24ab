// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the note store: the single-writer state core
// behind the terminal UI.
//
// The store keeps the ordered note collection, the selected note, the draft
// being composed and the current mode (browsing, creating or editing). Every
// mutation works on a fresh copy of the collection, persists it through a
// [store.NoteGateway] and only then makes it visible. Callers receive
// snapshots that share nothing with the store.
//
// Validation messages produced by a failed commit expire on their own after
// a configurable delay; listeners registered with OnChange are notified so a
// UI can redraw.
package service
