package models

// FieldError is a single validation failure tied to one input field.
// Validation failures are always reported as a list of these, never as a
// single concatenated message.
type FieldError struct {
	// Field is the JSON name of the offending input field.
	Field string `json:"field"`

	// Message is a human-readable description of the constraint violation.
	Message string `json:"message"`
}

// AuthResponse is the success body of POST /auth/register and
// POST /auth/login: the issued session token plus the public-safe user
// projection (the password hash is never included).
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// DeleteNoteResponse is the success body of DELETE /notes/{noteID}.
// DeletedNote is the snapshot of the record as it was removed.
type DeleteNoteResponse struct {
	Success     bool `json:"success"`
	DeletedNote Note `json:"deletedNote"`
}

// ErrorResponse is the stable machine-checkable error body shared by all
// failure responses that carry a single message.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidationErrorResponse is the failure body for input validation:
// a structured list of field errors.
type ValidationErrorResponse struct {
	Success bool         `json:"success"`
	Errors  []FieldError `json:"errors"`
}
