package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypes_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{ValidationError("bad input"), http.StatusBadRequest},
		{NotFoundError("missing"), http.StatusNotFound},
		{ConflictError("duplicate"), http.StatusConflict},
		{InternalError("boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPStatus())
	}
}

func TestError_ErrorString(t *testing.T) {
	cause := errors.New("underlying")

	withCause := InternalError("something failed", cause)
	assert.Equal(t, "internal: something failed: underlying", withCause.Error())

	withoutCause := ValidationError("bad field")
	assert.Equal(t, "validation: bad field", withoutCause.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := InternalError("wrapper", cause)

	assert.ErrorIs(t, err, cause)
}

func TestError_WithField(t *testing.T) {
	err := ValidationError("invalid limit").
		WithField("limit", "abc").
		WithField("max", 50)

	assert.Equal(t, "abc", err.Context["limit"])
	assert.Equal(t, 50, err.Context["max"])
}

func TestAsStructuredError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, AsStructuredError(nil))
	})

	t.Run("structured error passes through", func(t *testing.T) {
		original := NotFoundError("missing")
		assert.Same(t, original, AsStructuredError(original))
	})

	t.Run("wrapped structured error is recovered", func(t *testing.T) {
		original := ConflictError("duplicate")
		wrapped := fmt.Errorf("handler: %w", original)
		assert.Same(t, original, AsStructuredError(wrapped))
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		plain := errors.New("boom")
		structured := AsStructuredError(plain)
		require.NotNil(t, structured)
		assert.Equal(t, TypeInternal, structured.Type)
		assert.ErrorIs(t, structured, plain)
	})
}

func TestError_ToResponse(t *testing.T) {
	err := ConflictError("reaction already exists").WithField("kind", "like")

	resp := err.ToResponse()

	assert.Equal(t, "reaction already exists", resp.Error)
	assert.Equal(t, TypeConflict, resp.Type)
	assert.Equal(t, "like", resp.Context["kind"])
}
