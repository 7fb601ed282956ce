package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidationHelper_ValidateStruct(t *testing.T) {
	vh := NewValidationHelper()

	t.Run("valid struct", func(t *testing.T) {
		err := vh.ValidateStruct(&signupRequest{Name: "User A", Email: "a@example.com", Password: "secret1"})
		assert.NoError(t, err)
	})

	t.Run("fields reported by json name", func(t *testing.T) {
		err := vh.ValidateStruct(&signupRequest{Email: "invalid-email", Password: "123"})
		require.Error(t, err)

		validationErrors, ok := err.(validator.ValidationErrors)
		require.True(t, ok)
		require.Len(t, validationErrors, 3)

		fields := []string{}
		for _, fe := range validationErrors {
			fields = append(fields, fe.Field())
		}
		assert.ElementsMatch(t, []string{"name", "email", "password"}, fields)
	})
}

func TestSendErrorResponse(t *testing.T) {
	t.Run("without validation errors", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendErrorResponse(w, "Something went wrong", http.StatusInternalServerError, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Something went wrong", response.Error)
		assert.Nil(t, response.Details)
	})

	t.Run("with validation errors", func(t *testing.T) {
		validationErr := NewValidationHelper().ValidateStruct(&signupRequest{Name: "A", Email: "nope", Password: "secret1"})
		require.Error(t, validationErr)

		w := httptest.NewRecorder()
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, validationErr)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Validation failed", response.Error)
		assert.Equal(t, "Field Validation Failed on 'email' tag", response.Details["email"])
	})

	t.Run("plain error as details is ignored", func(t *testing.T) {
		w := httptest.NewRecorder()
		SendErrorResponse(w, "Invalid request", http.StatusBadRequest, ErrInvalidAmount)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Nil(t, response.Details)
	})
}

func TestDecodeJSON(t *testing.T) {
	decode := func(body string) error {
		var dst signupRequest
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		return DecodeJSON(httptest.NewRecorder(), req, &dst)
	}

	assert.NoError(t, decode(`{"name":"A","email":"a@example.com","password":"secret1"}`))
	assert.Error(t, decode(`{"name":"A","role":"admin"}`))
	assert.Error(t, decode(`{"name":"A"}{"name":"B"}`))
	assert.Error(t, decode(`not json`))
	assert.Error(t, decode(`{"name":"`+strings.Repeat("x", maxBodyBytes)+`"}`))
}
