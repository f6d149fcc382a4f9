package utils

import "github.com/google/uuid"

// IsValidID reports whether id is a syntactically valid store identifier
// (a UUID in its canonical textual form). Both users and notes are keyed by
// store-assigned UUIDs, so this predicate guards every lookup keyed by a
// caller-supplied id before the store is touched.
func IsValidID(id string) bool {
	if id == "" {
		return false
	}

	_, err := uuid.Parse(id)
	return err == nil
}
