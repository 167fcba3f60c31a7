package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{NewNotFound("project", "1"), http.StatusNotFound},
		{NewInvalidInput("bad", nil), http.StatusBadRequest},
		{NewInvalidLogin(nil), http.StatusUnauthorized},
		{NewPermissionDenied("no"), http.StatusForbidden},
		{NewConflict("profile", "email", "a@b.c"), http.StatusConflict},
		{fmt.Errorf("wrapped: %w", NewNotFound("service", "2")), http.StatusNotFound},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, ToHTTPStatus(tt.err), tt.err.Error())
	}
}

func TestToJSON_DetailsOnlyForInvalidInput(t *testing.T) {
	invalid := ToJSON(NewInvalidInput("title is required", nil))
	assert.Equal(t, "title is required", invalid["details"])

	internal := ToJSON(NewInternal("db exploded", errors.New("secret dsn")))
	assert.NotContains(t, internal, "details")
	assert.Equal(t, ErrInternal.Error(), internal["error"])

	plain := ToJSON(errors.New("boom"))
	assert.Equal(t, "An internal server error occurred", plain["message"])
}
