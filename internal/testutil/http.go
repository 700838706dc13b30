// Package testutil provides HTTP helpers shared by the handler and router
// tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linq/acme-integration/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Serve sends one request through h. A non-empty token is sent as a bearer
// credential and a non-empty body as JSON.
func Serve(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DecodeJSON parses the response body into T.
func DecodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var result T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result), "Failed to parse JSON response: %s", w.Body.String())
	return result
}

// ErrorResponse parses an error envelope, failing the test if the body is
// anything else.
func ErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()

	resp := DecodeJSON[dto.Response](t, w)
	require.False(t, resp.Success, "Expected success to be false")
	require.NotNil(t, resp.Error, "Expected error object in response")
	return resp
}

// AssertErrorResponse checks the status and error code of an error envelope.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, code string) dto.Response {
	t.Helper()

	assert.Equal(t, status, w.Code, "Unexpected status code")
	resp := ErrorResponse(t, w)
	assert.Equal(t, code, resp.Error.Code, "Unexpected error code")
	return resp
}
