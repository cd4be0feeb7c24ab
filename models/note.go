// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note represents a single user-authored note.
// It is the only record type persisted by the application.
type Note struct {
	// ID is the opaque unique identifier assigned at creation.
	// It never changes afterwards and is used as the selection key.
	ID string `json:"id"`

	// Title is the user-provided heading of the note.
	Title string `json:"title"`

	// Content is the body text of the note.
	Content string `json:"content"`
}

// Notes is an ordered collection of [Note] values.
// Order is insertion order; the list is never sorted.
type Notes []Note

// Clone returns an independent copy of the collection.
// A nil receiver yields an empty, non-nil collection.
func (n Notes) Clone() Notes {
	out := make(Notes, len(n))
	copy(out, n)
	return out
}

// IndexOf returns the position of the note with the given id, or -1.
func (n Notes) IndexOf(id string) int {
	for i := range n {
		if n[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the note with the given id.
func (n Notes) Find(id string) (Note, bool) {
	idx := n.IndexOf(id)
	if idx < 0 {
		return Note{}, false
	}
	return n[idx], true
}

// Draft is the transient title/content pair edited while composing a new
// note or changing an existing one. Drafts are never persisted.
type Draft struct {
	Title   string
	Content string
}

// IsEmpty reports whether both draft fields are empty.
func (d Draft) IsEmpty() bool {
	return d.Title == "" && d.Content == ""
}
