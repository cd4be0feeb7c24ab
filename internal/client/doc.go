// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive note keeper runtime.
//
// It loads the note collection, runs the terminal UI on top of the note
// store and closes the storage backend when the UI exits.
package client
