// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//   - ValidationErrors: the aggregated result of a failed validation — a
//     structured list of per-field failures, never one concatenated message.
//
// Usage patterns:
//  1. Inject a Validator implementation into services.
//  2. Call Validate with context and the request value to enforce rules.
//  3. Unpack the per-field failures with errors.As on *ValidationErrors.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable, composable, and testable validation strategies.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input. A failure caused by the input
	// itself is reported as *ValidationErrors; any other error signals a
	// misuse of the validator (e.g. an unsupported type).
	Validate(context.Context, any) error
}
