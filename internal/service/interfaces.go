// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteStore owns the authoritative note collection together with the
// selection, the draft buffer, the current mode and the validation messages.
//
// Every method returns a snapshot that is a deep copy of the state after the
// call. Operations whose preconditions do not hold leave the state unchanged.
type NoteStore interface {
	// Initialize loads the persisted collection and resets the store to
	// browsing with no selection, an empty draft and no validation messages.
	Initialize(ctx context.Context) models.Snapshot

	// BeginCreate switches to creating with an empty draft. The selection is
	// kept.
	BeginCreate() models.Snapshot

	// BeginEdit switches to editing the selected note and copies its title
	// and content into the draft. It does nothing without a selection.
	BeginEdit() models.Snapshot

	// UpdateDraftTitle replaces the draft title while creating or editing.
	UpdateDraftTitle(text string) models.Snapshot

	// UpdateDraftContent replaces the draft content while creating or
	// editing.
	UpdateDraftContent(text string) models.Snapshot

	// Validate checks draft without touching the store. Blank fields
	// produce one message each, title first.
	Validate(draft models.Draft) models.ValidationResult

	// CommitCreate validates the draft and appends it as a new note, which
	// becomes selected. Failed validation sets the validation messages and
	// leaves the collection unchanged.
	CommitCreate(ctx context.Context) (models.Snapshot, models.ValidationResult)

	// CommitEdit validates the draft and replaces the edited note in place.
	CommitEdit(ctx context.Context) (models.Snapshot, models.ValidationResult)

	// DeleteSelected removes the selected note by id and clears the
	// selection.
	DeleteSelected(ctx context.Context) models.Snapshot

	// SelectNote selects the note with id and returns to browsing. Unknown
	// ids are ignored.
	SelectNote(id string) models.Snapshot

	// Cancel abandons the draft and returns to browsing.
	Cancel() models.Snapshot

	// Snapshot returns the current state.
	Snapshot() models.Snapshot

	// OnChange registers fn to be called after the store changes on its own,
	// i.e. when validation messages expire.
	OnChange(fn func())

	// Close cancels pending background tasks.
	Close()
}
