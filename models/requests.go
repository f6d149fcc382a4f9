package models

// RegisterRequest is the inbound payload of POST /auth/register.
// Constraints mirror the account rules: name at least 3 characters,
// syntactically valid email, password at least 5 characters.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

// LoginRequest is the inbound payload of POST /auth/login.
// The password only has to be present; its length was enforced at
// registration time.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateNoteRequest is the inbound payload of POST /notes.
// Tag is optional; an absent or empty tag falls back to DefaultNoteTag.
type CreateNoteRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=5"`
	Tag         string `json:"tag" validate:"omitempty"`
}

// UpdateNoteRequest is the inbound payload of PUT /notes/{noteID}.
// Only the fields present in the JSON body are applied; the owner of a
// note is never alterable through this path.
type UpdateNoteRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3"`
	Description *string `json:"description" validate:"omitempty,min=5"`
	Tag         *string `json:"tag" validate:"omitempty"`
}

// Update converts the request into the store-level partial mutation.
func (r UpdateNoteRequest) Update() NoteUpdate {
	return NoteUpdate{
		Title:       r.Title,
		Description: r.Description,
		Tag:         r.Tag,
	}
}
