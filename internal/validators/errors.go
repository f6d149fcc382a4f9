package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adontsov/go-note-keeper/models"
)

// ErrUnsupportedType is returned when Validate receives a value the
// validator has no rules for. It signals a programming error, not bad input.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// ValidationErrors aggregates all field-level failures found in one input
// value. It implements the error interface so it can travel through normal
// error returns; callers recover the structured list with errors.As.
type ValidationErrors struct {
	Fields []models.FieldError
}

// Error implements the error interface. The message is a compact summary
// for logs; the structured Fields slice is the canonical representation.
func (v *ValidationErrors) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationErrors unwraps err into *ValidationErrors if possible.
func AsValidationErrors(err error) (*ValidationErrors, bool) {
	var verrs *ValidationErrors
	ok := errors.As(err, &verrs)
	return verrs, ok
}
