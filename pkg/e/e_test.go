package e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	err := Wrap("ProductUseCase.Create", Validation("el campo '%s' es obligatorio", "nombre"))

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrProductNotFound)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "el campo 'nombre' es obligatorio", ve.Msg)
	assert.Equal(t, "ProductUseCase.Create: validation failed: el campo 'nombre' es obligatorio", err.Error())
}
