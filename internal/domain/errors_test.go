package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
)

func TestValidationError_UnwrapsToErrValidation(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("posting todo: %w", &domain.ValidationError{
		Fields: map[string]string{"owner": "is required"},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["owner"])
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"owner":    "is required",
		"body":     "is required",
		"category": "too long",
	}}

	want := "validation error: body: is required; category: too long; owner: is required"
	assert.Equal(t, want, err.Error())
}

func TestSentinels_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrValidation,
		domain.ErrConflict,
		domain.ErrForbidden,
		domain.ErrUnavailable,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}
