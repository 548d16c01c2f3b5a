package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorMessage(t *testing.T) {
	plain := &CustomError{Code: 400, Message: "Bad input"}
	assert.Equal(t, "Bad input", plain.Error())

	detailed := &CustomError{Code: 400, Message: "Validation failed", Detail: "job_role is required"}
	assert.Equal(t, "Validation failed: job_role is required", detailed.Error())
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *CustomError
		wantCode int
		wantMsg  string
	}{
		{"bad request", NewBadRequestError("missing field"), http.StatusBadRequest, "missing field"},
		{"internal server", NewInternalServerError("boom"), http.StatusInternalServerError, "boom"},
		{"validation", NewValidationError("job_role is required"), http.StatusBadRequest, "Validation failed: job_role is required"},
		{"extraction", NewExtractionError("bad zip"), http.StatusBadRequest, "Failed to parse file: bad zip"},
		{"file too large", NewFileTooLargeError("over the limit"), http.StatusRequestEntityTooLarge, "over the limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}
