package models

import "time"

// DefaultNoteTag is assigned to a note when the caller omits the tag field.
const DefaultNoteTag = "General"

// Note represents a single text note owned by exactly one user.
type Note struct {
	// NoteID is the store-assigned unique identifier of the note.
	NoteID string `json:"id"`

	// OwnerID references the UserID of the note's owner. It is set at
	// creation time and never changes afterwards.
	OwnerID string `json:"owner_id"`

	// Title is a short human-readable caption, at least 3 characters.
	Title string `json:"title"`

	// Description is the note body, at least 5 characters.
	Description string `json:"description"`

	// Tag is a free-form grouping label. Defaults to DefaultNoteTag.
	Tag string `json:"tag"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteUpdate describes a partial mutation of a note. Nil fields are left
// untouched by the store. The owner is deliberately not representable here.
type NoteUpdate struct {
	Title       *string
	Description *string
	Tag         *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Tag == nil
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
