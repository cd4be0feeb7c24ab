// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer strings used across the
// note store and the terminal UI.
//
// All Msg* values are human-readable strings shown to the user. Keeping them
// in one place per locale ensures consistent wording throughout the UI.
package app

// Supported locale codes.
const (
	LocaleEnglish = "en"
	LocaleArabic  = "ar"
)

// Messages is the set of user-facing strings for one locale.
type Messages struct {
	// MsgTitleRequired is the validation message for a blank title.
	MsgTitleRequired string

	// MsgContentRequired is the validation message for blank content.
	MsgContentRequired string

	// MsgNoNotes is shown in the detail pane when the collection is empty.
	MsgNoNotes string

	// MsgSelectNote is shown in the detail pane when nothing is selected.
	MsgSelectNote string

	// MsgNewNote heads the form while creating a note.
	MsgNewNote string

	// MsgEditNote heads the form while editing a note.
	MsgEditNote string

	MsgSave   string
	MsgUpdate string
	MsgEdit   string
	MsgDelete string
}

var english = Messages{
	MsgTitleRequired:   "Please enter a note title",
	MsgContentRequired: "Please enter the note content",
	MsgNoNotes:         "No notes yet",
	MsgSelectNote:      "Please select a note",
	MsgNewNote:         "New note",
	MsgEditNote:        "Edit note",
	MsgSave:            "Save",
	MsgUpdate:          "Update",
	MsgEdit:            "Edit",
	MsgDelete:          "Delete",
}

var arabic = Messages{
	MsgTitleRequired:   "الرجاء ادخال عنوان للملاحظه",
	MsgContentRequired: "الرجاء ادخال محتوى الملاحظه",
	MsgNoNotes:         "لا توجد ملاحظة",
	MsgSelectNote:      "الرجاء اختيار ملاحظة",
	MsgNewNote:         "ملاحظة جديدة",
	MsgEditNote:        "تعديل ملاحظة",
	MsgSave:            "حفظ",
	MsgUpdate:          "تعديل",
	MsgEdit:            "تعديل",
	MsgDelete:          "حذف",
}

// MessagesFor returns the message set of locale, falling back to English.
func MessagesFor(locale string) Messages {
	if locale == LocaleArabic {
		return arabic
	}
	return english
}
