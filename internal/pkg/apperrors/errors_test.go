package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Unwrap(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthenticated},
		{http.StatusForbidden, ErrUnauthenticated},
		{http.StatusNotFound, ErrResourceNotFound},
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusInternalServerError, ErrUpstreamStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := fmt.Errorf("list alumni: %w", &APIError{Method: "GET", Path: "/alumni", StatusCode: tt.status})
			assert.ErrorIs(t, err, ErrUpstreamStatus)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.status, StatusCode(err))
		})
	}
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{Method: "POST", Path: "/forum", StatusCode: 400, Message: "title is required"}
	assert.Equal(t, "POST /forum: 400 title is required", err.Error())

	err = &APIError{Method: "GET", Path: "/forum", StatusCode: 502}
	assert.Equal(t, "GET /forum: 502 Bad Gateway", err.Error())
}

func TestStatusCode_NonAPIError(t *testing.T) {
	assert.Zero(t, StatusCode(errors.New("boom")))
	assert.Zero(t, StatusCode(nil))
}

func TestCustomError(t *testing.T) {
	err := NewValidationError("title", "Title is required")
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "Title is required", err.Error())
	assert.Equal(t, "title", err.Field)

	assert.True(t, Is(NewBadRequestError("nope"), ErrTransport, ErrBadRequest))
	assert.False(t, Is(NewBadRequestError("nope"), ErrTransport))
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}
