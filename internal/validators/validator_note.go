package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldContent targets the note body.
	FieldContent = "content"
)

// NoteValidator implements [Validator] for [models.Draft] and [models.Note].
//
// A field passes when it contains at least one non-whitespace character.
// Every requested field is checked and the failures are joined in field
// order, so callers can report all of them at once.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator and returns it as the
// Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate accepts models.Draft, models.Note and pointers to either.
// Returns ErrUnsupportedType for anything else.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Draft:
		return v.validateDraft(ctx, value, fields...)
	case *models.Draft:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDraft(ctx, *value, fields...)
	case models.Note:
		return v.validateDraft(ctx, models.Draft{Title: value.Title, Content: value.Content}, fields...)
	case *models.Note:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDraft(ctx, models.Draft{Title: value.Title, Content: value.Content}, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateDraft(_ context.Context, draft models.Draft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(draft.Title) {
				errs = append(errs, ErrEmptyTitle)
			}
		case FieldContent:
			if isBlank(draft.Content) {
				errs = append(errs, ErrEmptyContent)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
