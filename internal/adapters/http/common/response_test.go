package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerr "github.com/clubarena/rosterhub/internal/domain/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, handle gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	handle(c)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHandleDomainError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", domerr.ValidationErrors{{Field: "email", Message: "bad"}}, http.StatusBadRequest},
		{"conflict", domerr.NewConflictError("email", "a@b.co"), http.StatusConflict},
		{"not found", domerr.NewNotFoundError("temporary person", "x"), http.StatusNotFound},
		{"lifecycle guard", domerr.NewStateTransitionError("temporary person", "still active"), http.StatusUnprocessableEntity},
		{"internal", domerr.NewInternalError("save", assert.AnError), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := perform(t, func(c *gin.Context) {
				HandleDomainError(c, tt.err)
			})
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.False(t, resp.Success)
		})
	}
}

func TestHandleDomainError_ValidationCarriesFieldErrors(t *testing.T) {
	batch := domerr.ValidationErrors{
		{Field: "firstName", Message: "is required", RejectedValue: ""},
		{Field: "age", Message: "must be between 5 and 120", RejectedValue: 200},
	}

	w, resp := perform(t, func(c *gin.Context) {
		HandleDomainError(c, batch)
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "firstName", resp.Errors[0].Field)
	assert.Equal(t, "age", resp.Errors[1].Field)
	assert.EqualValues(t, 200, resp.Errors[1].Value)
}

func TestHandleDomainError_InternalHidesDetail(t *testing.T) {
	_, resp := perform(t, func(c *gin.Context) {
		HandleDomainError(c, domerr.NewInternalError("save", assert.AnError))
	})
	assert.Equal(t, "An unexpected error occurred", resp.Message)
	assert.NotContains(t, resp.Message, assert.AnError.Error())
}

func TestRespondSuccess(t *testing.T) {
	w, resp := perform(t, func(c *gin.Context) {
		c.Set("request_id", "req-123")
		RespondSuccess(c, http.StatusOK, map[string]string{"hello": "world"})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestRespondSuccessWithWarnings(t *testing.T) {
	_, resp := perform(t, func(c *gin.Context) {
		RespondSuccessWithWarnings(c, http.StatusOK, nil, []string{"heads up"})
	})
	assert.True(t, resp.Success)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "heads up", resp.Warnings[0])
}
