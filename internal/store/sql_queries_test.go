package store

import (
	"strings"
	"testing"

	"github.com/adontsov/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func Test_buildUpdateNoteQuery_AllFields(t *testing.T) {
	update := models.NoteUpdate{
		Title:       strPtr("New title"),
		Description: strPtr("New description"),
		Tag:         strPtr("Work"),
	}

	query, args, err := buildUpdateNoteQuery(testNoteID, update)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update notes")
	require.Contains(t, q, "set")
	require.Contains(t, q, "title")
	require.Contains(t, q, "description")
	require.Contains(t, q, "tag")
	require.Contains(t, q, "updated_at")
	require.Contains(t, q, "where note_id")
	require.Contains(t, q, "returning")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// title, description, tag, note_id — NOW() adds no placeholder
	require.Len(t, args, 4)
	assert.Equal(t, "New title", args[0])
	assert.Equal(t, "New description", args[1])
	assert.Equal(t, "Work", args[2])
	assert.Equal(t, testNoteID, args[3])
}

func Test_buildUpdateNoteQuery_SingleField(t *testing.T) {
	query, args, err := buildUpdateNoteQuery(testNoteID, models.NoteUpdate{Tag: strPtr("Work")})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "tag")
	assert.NotContains(t, q, "title =")
	assert.NotContains(t, q, "description =")

	require.Len(t, args, 2)
	assert.Equal(t, "Work", args[0])
	assert.Equal(t, testNoteID, args[1])
}

func Test_buildUpdateNoteQuery_NeverTouchesOwner(t *testing.T) {
	update := models.NoteUpdate{
		Title:       strPtr("New title"),
		Description: strPtr("New description"),
		Tag:         strPtr("Work"),
	}

	query, _, err := buildUpdateNoteQuery(testNoteID, update)
	require.NoError(t, err)

	assert.NotContains(t, strings.ToLower(query), "owner_id =")
}

func Test_buildUpdateNoteQuery_EmptyUpdate(t *testing.T) {
	_, _, err := buildUpdateNoteQuery(testNoteID, models.NoteUpdate{})
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}
