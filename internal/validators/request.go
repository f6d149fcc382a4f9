package validators

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/adontsov/go-note-keeper/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates inbound request payloads using their `validate`
// struct tags. It is the single Validator implementation used by the auth
// and note services.
//
// Field names in the reported errors are the JSON names of the offending
// fields, so the structured error list matches what the caller actually sent.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator backed by a
// go-playground validator instance configured to report JSON field names.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its `validate` struct tags.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.CreateNoteRequest / *models.CreateNoteRequest
//   - models.UpdateNoteRequest / *models.UpdateNoteRequest
//
// Returns ErrUnsupportedType for anything else, *ValidationErrors when the
// input violates its constraints, and nil on success.
func (r *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.CreateNoteRequest, *models.CreateNoteRequest,
		models.UpdateNoteRequest, *models.UpdateNoteRequest:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	err := r.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator.InvalidValidationError: not an input problem
		return fmt.Errorf("error validating request: %w", err)
	}

	out := &ValidationErrors{Fields: make([]models.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, models.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}

	return out
}

// messageFor renders one tag violation into the caller-facing message.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
