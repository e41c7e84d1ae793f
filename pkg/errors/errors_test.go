package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHTTPStatus(t *testing.T) {
	tests := []struct {
		status    int
		sentinel  error
		retryable bool
	}{
		{http.StatusNotFound, ErrNotFound, false},
		{http.StatusUnauthorized, ErrUnauthorized, false},
		{http.StatusForbidden, ErrForbidden, false},
		{http.StatusUnprocessableEntity, ErrInvalidInput, false},
		{http.StatusBadRequest, ErrBadRequest, false},
		{http.StatusServiceUnavailable, ErrServiceUnavailable, true},
		{http.StatusInternalServerError, ErrInternalServer, true},
	}

	for _, tt := range tests {
		err := FromHTTPStatus(tt.status, "boom")
		assert.ErrorIs(t, err, tt.sentinel, "status %d", tt.status)
		assert.Equal(t, tt.retryable, IsRetryable(err), "status %d", tt.status)
		assert.Equal(t, "boom", GetMessage(err))
	}
}

func TestFromHTTPStatus_DefaultDetail(t *testing.T) {
	err := FromHTTPStatus(http.StatusTeapot, "")
	assert.Equal(t, "Request failed", GetMessage(err))
	assert.Equal(t, "http_418", GetCode(err))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	base := errors.New("dial tcp: refused")
	err := Wrap(base, "failed to poll unread counts")
	assert.EqualError(t, err, "failed to poll unread counts: dial tcp: refused")
	assert.True(t, Is(err, base))
	assert.Empty(t, GetCode(err))
}

func TestWrapKeepsChain(t *testing.T) {
	base := New("socket closed")
	err := Wrap(base, "read frame")

	assert.Equal(t, "read frame: socket closed", err.Error())
	assert.True(t, Is(err, base))

	var e *Error
	assert.True(t, As(err, &e))
	assert.Equal(t, base, e.Unwrap())
	assert.Nil(t, Wrap(nil, "ignored"))
}
