package validate

import (
	"errors"
	"testing"

	"rentmate/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Kind   string  `json:"kind" validate:"omitempty,oneof=a b"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(&sample{Name: "x", Amount: 1}))

	err := Struct(&sample{Kind: "c"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{
		"name is required",
		"amount must be greater than 0",
		"kind must be one of: a b",
	}, verr.Fields)
}
