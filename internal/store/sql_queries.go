package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adontsov/go-note-keeper/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createNote = `INSERT INTO notes (owner_id, title, description, tag)
    VALUES ($1, $2, $3, $4)
    RETURNING note_id, owner_id, title, description, tag, created_at, updated_at;`

	findNoteByID = `SELECT note_id, owner_id, title, description, tag, created_at, updated_at
    FROM notes
    WHERE note_id = $1;`

	findNotesByOwner = `SELECT note_id, owner_id, title, description, tag, created_at, updated_at
    FROM notes
    WHERE owner_id = $1;`

	deleteNote = `DELETE FROM notes
    WHERE note_id = $1
    RETURNING note_id, owner_id, title, description, tag, created_at, updated_at;`
)

// buildUpdateNoteQuery builds the partial UPDATE for a note. Only the fields
// present in update end up in the SET clause; owner_id is never touched.
// updated_at always advances so concurrent last-write-wins updates stay
// distinguishable by timestamp.
func buildUpdateNoteQuery(noteID string, update models.NoteUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := squirrel.Update("notes").
		PlaceholderFormat(squirrel.Dollar).
		Set("updated_at", squirrel.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Tag != nil {
		builder = builder.Set("tag", *update.Tag)
	}

	query, args, err := builder.
		Where(squirrel.Eq{"note_id": noteID}).
		Suffix("RETURNING note_id, owner_id, title, description, tag, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
