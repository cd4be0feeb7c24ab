// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ModeKind enumerates the states of the note store.
type ModeKind int

const (
	// Browsing is the default state: the user looks at the list and at most
	// one selected note.
	Browsing ModeKind = iota

	// Creating means a new note is being composed in the draft buffer.
	Creating

	// Editing means an existing note is being changed in the draft buffer.
	Editing
)

// String returns a lowercase name of the mode kind.
func (k ModeKind) String() string {
	switch k {
	case Browsing:
		return "browsing"
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// Mode is the tagged store state. NoteID is set only for [Editing] and
// references the note being edited.
type Mode struct {
	Kind   ModeKind
	NoteID string
}

// BrowsingMode returns the browsing state.
func BrowsingMode() Mode { return Mode{Kind: Browsing} }

// CreatingMode returns the creating state.
func CreatingMode() Mode { return Mode{Kind: Creating} }

// EditingMode returns the editing state for the note with the given id.
func EditingMode(noteID string) Mode { return Mode{Kind: Editing, NoteID: noteID} }

// IsComposing reports whether the draft buffer is in use.
func (m Mode) IsComposing() bool {
	return m.Kind == Creating || m.Kind == Editing
}

// ValidationResult is the outcome of validating a [Draft].
type ValidationResult struct {
	// Passed is true when no messages were produced.
	Passed bool

	// Messages holds one human-readable message per failed field,
	// title before content.
	Messages []string
}

// Snapshot is an immutable view of the note store handed to the host UI.
// Every slice in it is a copy; mutating it has no effect on the store.
type Snapshot struct {
	Mode             Mode
	Notes            Notes
	Selection        string
	Draft            Draft
	ValidationErrors []string
}

// HasSelection reports whether a note is selected.
func (s Snapshot) HasSelection() bool {
	return s.Selection != ""
}

// Selected returns the selected note, if any.
func (s Snapshot) Selected() (Note, bool) {
	if s.Selection == "" {
		return Note{}, false
	}
	return s.Notes.Find(s.Selection)
}
