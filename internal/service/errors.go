package service

import "errors"

var (
	// ErrInvalidCredentials is returned when a login attempt fails, either
	// because no account exists for the email or because the password does
	// not match. The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountMisconfigured is returned when a stored account has no
	// password digest and therefore can never be authenticated.
	ErrAccountMisconfigured = errors.New("account is not configured for password login")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidNoteID is returned when a note identifier is not a valid
	// UUID. Malformed identifiers are rejected before any storage lookup.
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrNotNoteOwner is returned when a note exists but belongs to a
	// different user than the caller.
	ErrNotNoteOwner = errors.New("note belongs to another user")
)
