package validators

import (
	"context"
	"testing"

	"github.com/adontsov/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRequestValidator_RegisterRequest_Valid(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{
		Name:     "Alice123",
		Email:    "a@x.com",
		Password: "secret",
	})
	require.NoError(t, err)
}

func TestRequestValidator_RegisterRequest_AggregatesAllFailures(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{
		Name:     "Al",
		Email:    "not-an-email",
		Password: "1234",
	})
	require.Error(t, err)

	verrs, ok := AsValidationErrors(err)
	require.True(t, ok, "expected *ValidationErrors, got %T", err)
	require.Len(t, verrs.Fields, 3)

	fields := map[string]string{}
	for _, fe := range verrs.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "must be at least 3 characters", fields["name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be at least 5 characters", fields["password"])
}

func TestRequestValidator_LoginRequest(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr bool
		field   string
	}{
		{
			name: "valid",
			req:  models.LoginRequest{Email: "a@x.com", Password: "anything"},
		},
		{
			name:    "blank password",
			req:     models.LoginRequest{Email: "a@x.com"},
			wantErr: true,
			field:   "password",
		},
		{
			name:    "bad email",
			req:     models.LoginRequest{Email: "nope", Password: "secret"},
			wantErr: true,
			field:   "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			verrs, ok := AsValidationErrors(err)
			require.True(t, ok)
			require.Len(t, verrs.Fields, 1)
			assert.Equal(t, tt.field, verrs.Fields[0].Field)
		})
	}
}

func TestRequestValidator_CreateNoteRequest(t *testing.T) {
	v := NewRequestValidator()

	// tag is optional
	err := v.Validate(context.Background(), models.CreateNoteRequest{
		Title:       "Hi there",
		Description: "a short note",
	})
	require.NoError(t, err)

	err = v.Validate(context.Background(), models.CreateNoteRequest{
		Title:       "Hi",
		Description: "tiny",
	})
	verrs, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.Len(t, verrs.Fields, 2)
}

func TestRequestValidator_UpdateNoteRequest_OmittedFieldsPass(t *testing.T) {
	v := NewRequestValidator()

	// an entirely empty partial update is valid input
	require.NoError(t, v.Validate(context.Background(), models.UpdateNoteRequest{}))

	// present fields are still constrained
	err := v.Validate(context.Background(), models.UpdateNoteRequest{
		Title: strPtr("ab"),
	})
	verrs, ok := AsValidationErrors(err)
	require.True(t, ok)
	require.Len(t, verrs.Fields, 1)
	assert.Equal(t, "title", verrs.Fields[0].Field)

	require.NoError(t, v.Validate(context.Background(), models.UpdateNoteRequest{
		Tag: strPtr("Work"),
	}))
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), struct{ X int }{X: 1})
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidationErrors_ErrorMessage(t *testing.T) {
	verrs := &ValidationErrors{Fields: []models.FieldError{
		{Field: "name", Message: "is required"},
	}}
	assert.Contains(t, verrs.Error(), "name: is required")

	empty := &ValidationErrors{}
	assert.Equal(t, "validation failed", empty.Error())
}
