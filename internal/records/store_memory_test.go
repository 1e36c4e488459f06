package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemoryStore_CaseLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.CreateCase(ctx, Case{ID: 1, Title: "first", CreatedAt: "2026-01-01T10:00:00Z"}))
	require.NoError(t, store.CreateCase(ctx, Case{ID: 2, Title: "second", CreatedAt: "2026-02-01T10:00:00Z"}))

	cases, err := store.ListCases(ctx)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	// Newest first.
	assert.Equal(t, int64(2), cases[0].ID)
	assert.Equal(t, int64(1), cases[1].ID)

	resolved := "2026-03-01T10:00:00Z"
	require.NoError(t, store.UpdateCase(ctx, 1, CaseUpdate{Title: "first, renamed", ResolvedAt: &resolved}))
	cases, err = store.ListCases(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first, renamed", cases[1].Title)
	require.NotNil(t, cases[1].ResolvedAt)
	assert.Equal(t, resolved, *cases[1].ResolvedAt)

	require.NoError(t, store.DeleteCase(ctx, 1))
	cases, err = store.ListCases(ctx)
	require.NoError(t, err)
	require.Len(t, cases, 1)
}

func Test_MemoryStore_DuplicateCaseID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.CreateCase(ctx, Case{ID: 7}))
	err := store.CreateCase(ctx, Case{ID: 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate case id 7")
}

func Test_MemoryStore_UpdateUnknownCaseIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Matches SQL UPDATE semantics: zero rows touched, no error.
	require.NoError(t, store.UpdateCase(ctx, 99, CaseUpdate{Title: "ghost"}))
	cases, err := store.ListCases(ctx)
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func Test_MemoryStore_NoteLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id1, err := store.CreateNote(ctx, "ops", "first note")
	require.NoError(t, err)
	id2, err := store.CreateNote(ctx, "ops", "second note")
	require.NoError(t, err)
	assert.Equal(t, id1+1, id2)

	require.NoError(t, store.UpdateNote(ctx, id1, "first note, edited"))

	notes, err := store.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, id1, notes[0].ID)
	assert.Equal(t, "first note, edited", notes[0].Content)

	require.NoError(t, store.DeleteNote(ctx, id1))
	notes, err = store.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, id2, notes[0].ID)
}
