package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus_MapsEveryKind(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindPrecondition, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindTransient, http.StatusServiceUnavailable},
		{KindFatal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			e := New(tt.kind, "code", "message")
			assert.Equal(t, tt.want, e.HTTPStatus())
		})
	}
}

func TestAs_UnwrapsThroughErrorChain(t *testing.T) {
	base := New(KindNotFound, "not_found", "game x not found")
	wrapped := errors.New("wrapper: " + base.Error())
	_, ok := As(wrapped)
	assert.False(t, ok)

	_, ok = As(base)
	assert.True(t, ok)

	chained := fmt.Errorf("wrapper: %w", base)
	found, ok := As(chained)
	assert.True(t, ok)
	assert.Same(t, base, found)
}

func TestWrap_PreservesUnderlyingError(t *testing.T) {
	underlying := errors.New("connection refused")
	wrapped := Wrap(KindTransient, "transient", "store unavailable", underlying)
	assert.ErrorIs(t, wrapped, underlying)
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestNotFound_FormatsResourceAndID(t *testing.T) {
	e := NotFound("game", "abc123")
	assert.Equal(t, "game abc123 not found", e.Message)
	assert.Equal(t, KindNotFound, e.Kind)
}
