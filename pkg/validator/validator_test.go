package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/onboarding/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("email", ""),
			validator.Required("password", " "),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, "password", errs[1].Field)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.Required("email", "a@b.co")))
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	err := validator.First(
		validator.Required("a", "x"),
		validator.Required("b", ""),
		validator.Required("c", ""),
	)
	require.Error(t, err)

	errs := validator.ExtractValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "b", errs[0].Field)
	assert.Equal(t, []string{"b is required"}, errs.Messages())
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.True(t, validator.IsValidationError(validator.ValidationErrors{{Field: "f", Message: "m"}}))
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		valid bool
	}{
		{"user@test.com", true},
		{"first.last@sub.example.org", true},
		{"user+tag@example.io", true},
		{"", false},
		{"   ", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@localhost", false},
		{"user@.example.com", false},
		{"user@example.com.", false},
		{"user@example..com", false},
		{"Bob <bob@example.com>", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.ValidEmail("email", tt.email))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, []string{"invalid email format"}, validator.ExtractValidationErrors(err).Messages())
		})
	}
}
