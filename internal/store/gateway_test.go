package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNoteGateway_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		notes models.Notes
	}{
		{name: "empty", notes: models.Notes{}},
		{name: "single", notes: models.Notes{{ID: "1", Title: "Groceries", Content: "milk"}}},
		{
			name: "many with unicode and newlines",
			notes: models.Notes{
				{ID: "a", Title: "مرحبا", Content: "سطر أول\nسطر ثاني"},
				{ID: "b", Title: "  padded  ", Content: "tabs\tand \"quotes\""},
				{ID: "c", Title: "emoji 📝", Content: "<html>&</html>"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			g := NewNoteGateway(NewMemoryStorage(), "notes", logger.Nop())

			require.NoError(t, g.Save(ctx, tt.notes))
			assert.Equal(t, tt.notes, g.Load(ctx))
		})
	}
}

func TestNoteGateway_SaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	g := NewNoteGateway(s, "notes", logger.Nop())

	require.NoError(t, g.Save(ctx, nil))

	v, found, err := s.Get(ctx, "notes")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "[]", string(v))
}

func TestNoteGateway_LoadMissingInitializesStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	g := NewNoteGateway(s, "notes", logger.Nop())

	notes := g.Load(ctx)
	require.NotNil(t, notes)
	assert.Empty(t, notes)

	v, found, err := s.Get(ctx, "notes")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "[]", string(v))
}

func TestNoteGateway_LoadUnreadablePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{name: "not json", payload: "{oops", want: 0},
		{name: "object instead of array", payload: `{"id":"1"}`, want: 0},
		{name: "array of numbers", payload: `[1,2,3]`, want: 0},
		{name: "missing id", payload: `[{"title":"t","content":"c"}]`, want: 0},
		{name: "duplicate id", payload: `[{"id":"1"},{"id":"1"}]`, want: 0},
		{name: "json null", payload: "null", want: 0},
		{name: "blank", payload: "  ", want: 0},
		{name: "unknown fields ignored", payload: `[{"id":"1","title":"t","content":"c","pinned":true}]`, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := NewMemoryStorage()
			require.NoError(t, s.Set(ctx, "notes", []byte(tt.payload)))

			notes := NewNoteGateway(s, "notes", logger.Nop()).Load(ctx)
			require.NotNil(t, notes)
			assert.Len(t, notes, tt.want)
		})
	}
}

func Test_decodeNotes_Errors(t *testing.T) {
	_, err := decodeNotes([]byte(`[{"id":"1"},{"id":"1"}]`))
	assert.ErrorIs(t, err, ErrCorruptPayload)

	_, err = decodeNotes([]byte(`[{"id":""}]`))
	assert.ErrorIs(t, err, ErrCorruptPayload)

	_, err = decodeNotes([]byte(`"text"`))
	assert.ErrorIs(t, err, ErrCorruptPayload)
}

func TestNoteGateway_DefaultKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	g := NewNoteGateway(s, "", logger.Nop())

	require.NoError(t, g.Save(ctx, models.Notes{{ID: "1"}}))

	_, found, err := s.Get(ctx, DefaultNotesKey)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestNoteGateway_ReadFailureYieldsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockKeyValueStorage(ctrl)
	s.EXPECT().Get(gomock.Any(), "notes").Return(nil, false, errors.New("permission denied"))

	notes := NewNoteGateway(s, "notes", logger.Nop()).Load(context.Background())
	require.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteGateway_InitializeFailureStillLoads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockKeyValueStorage(ctrl)
	gomock.InOrder(
		s.EXPECT().Get(gomock.Any(), "notes").Return(nil, false, nil),
		s.EXPECT().Set(gomock.Any(), "notes", []byte("[]")).Return(errors.New("read-only file system")),
	)

	notes := NewNoteGateway(s, "notes", logger.Nop()).Load(context.Background())
	assert.Empty(t, notes)
}

func TestNoteGateway_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockKeyValueStorage(ctrl)
	s.EXPECT().Set(gomock.Any(), "notes", gomock.Any()).Return(errors.New("quota exceeded"))

	err := NewNoteGateway(s, "notes", logger.Nop()).Save(context.Background(), models.Notes{{ID: "1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistenceWrite)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestNoteGateway_SaveWritesJSONKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockKeyValueStorage(ctrl)
	s.EXPECT().Set(gomock.Any(), "notes", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, value []byte) error {
			assert.JSONEq(t, `[{"id":"1","title":"T","content":"C"}]`, string(value))
			return nil
		},
	)

	err := NewNoteGateway(s, "notes", logger.Nop()).Save(context.Background(), models.Notes{{ID: "1", Title: "T", Content: "C"}})
	require.NoError(t, err)
}
