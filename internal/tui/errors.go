// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var ErrNoNoteStore = errors.New("terminal ui needs a note store")
