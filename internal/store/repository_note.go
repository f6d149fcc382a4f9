package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adontsov/go-note-keeper/internal/logger"
	"github.com/adontsov/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It handles note persistence against the "notes" table.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// FindNotesByOwner returns every note whose owner_id equals ownerID, in
// store-native order. An owner with no notes yields an empty slice, not an
// error.
func (r *noteRepository) FindNotesByOwner(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findNotesByOwner, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNotesByOwner").Str("owner_id", ownerID).Msg("error: notes query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.NoteID, &note.OwnerID, &note.Title, &note.Description, &note.Tag, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.FindNotesByOwner").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// FindNoteByID retrieves a single note by its store-assigned identifier.
//
// Error handling:
//   - No matching row → [ErrNoteNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) FindNoteByID(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.db.QueryRowContext(ctx, findNoteByID, noteID)

	if err := row.Scan(&note.NoteID, &note.OwnerID, &note.Title, &note.Description, &note.Tag, &note.CreatedAt, &note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.FindNoteByID").Str("note_id", noteID).Msg("error: note lookup failed")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// CreateNote persists a new note and returns the fully populated
// [models.Note] with server-assigned fields (NoteID, CreatedAt, UpdatedAt).
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote, note.OwnerID, note.Title, note.Description, note.Tag)

	var created models.Note
	if err := row.Scan(&created.NoteID, &created.OwnerID, &created.Title, &created.Description, &created.Tag, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Str("owner_id", note.OwnerID).Msg("error: note insert failed")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// UpdateNote applies a partial mutation to the note identified by noteID and
// returns the post-update record. Only the fields present in update are
// written; owner_id is not reachable through this path.
//
// Error handling:
//   - Empty update or builder failure → wrapped [ErrBuildingSQLQuery].
//   - No matching row → [ErrNoteNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(noteID, update)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Str("note_id", noteID).Msg("error: building update query failed")
		return models.Note{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Note
	if err := row.Scan(&updated.NoteID, &updated.OwnerID, &updated.Title, &updated.Description, &updated.Tag, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.UpdateNote").Str("note_id", noteID).Msg("error: note update failed")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteNote permanently removes the note identified by noteID and returns
// the removed snapshot.
//
// Error handling:
//   - No matching row → [ErrNoteNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) DeleteNote(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, deleteNote, noteID)

	var deleted models.Note
	if err := row.Scan(&deleted.NoteID, &deleted.OwnerID, &deleted.Title, &deleted.Description, &deleted.Tag, &deleted.CreatedAt, &deleted.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.DeleteNote").Str("note_id", noteID).Msg("error: note delete failed")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}
