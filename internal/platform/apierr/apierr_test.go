package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsUnwrapsWrappedErrors(t *testing.T) {
	base := NotFound("Career not found")
	wrapped := fmt.Errorf("load career: %w", base)

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "Career not found", got.Error())
	assert.Equal(t, http.StatusNotFound, StatusOf(wrapped))
}

func TestStatusOfPlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
	_, ok := As(errors.New("boom"))
	assert.False(t, ok)
}

func TestErrorMessageFallbacks(t *testing.T) {
	assert.Equal(t, "conflict", New(http.StatusConflict, "conflict", nil).Error())
	assert.Equal(t, "api error (418)", New(http.StatusTeapot, "", nil).Error())
	var nilErr *Error
	assert.Equal(t, "", nilErr.Error())
}
