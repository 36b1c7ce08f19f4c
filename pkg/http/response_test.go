package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/util-kit/pkg/errors"
	"github.com/cecil-the-coder/util-kit/pkg/testutil"
)

func TestResponseHeaders(t *testing.T) {
	h := ResponseHeaders()
	assert.Equal(t, "application/json", h["Content-Type"])
	assert.Equal(t, "*", h["Access-Control-Allow-Origin"])
	assert.Equal(t, "GET, OPTIONS, POST, DELETE", h["Allow"])

	h["Allow"] = "changed"
	assert.Equal(t, "GET, OPTIONS, POST, DELETE", ResponseHeaders()["Allow"])
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteJSON(rec, http.StatusCreated, map[string]any{"id": 7}))

	testutil.AssertStatusCode(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	testutil.AssertJSONEqual(t, `{"id":7}`, rec.Body.String())

	rec = httptest.NewRecorder()
	assert.Error(t, WriteJSON(rec, http.StatusOK, make(chan int)))
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{"validation", errors.Validation("name is required"), http.StatusBadRequest,
			`{"error":{"type":"ValidationError","message":"name is required"}}`},
		{"not found wrapped", fmt.Errorf("lookup: %w", errors.NotFound("no such user")), http.StatusNotFound,
			`{"error":{"type":"NotFoundError","message":"no such user"}}`},
		{"auth", errors.Authentication("bad token"), http.StatusUnauthorized,
			`{"error":{"type":"AuthenticationError","message":"bad token"}}`},
		{"conflict", errors.Conflict("exists"), http.StatusConflict,
			`{"error":{"type":"ConflictError","message":"exists"}}`},
		{"plain error hides message", fmt.Errorf("db password leaked"), http.StatusInternalServerError,
			`{"error":{"type":"InternalServerError","message":"Internal Server Error"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)
			testutil.AssertStatusCode(t, tt.status, rec.Code)
			testutil.AssertJSONEqual(t, tt.expected, rec.Body.String())
		})
	}
}

func TestParseErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.Authorization("admins only"))

	parsed := ParseErrorResponse(rec.Code, rec.Body.Bytes())
	assert.Equal(t, errors.NameAuthorization, parsed.Name)
	assert.Equal(t, "admins only", parsed.Message)
	assert.Equal(t, http.StatusForbidden, parsed.HTTPStatus())

	plain := ParseErrorResponse(http.StatusBadGateway, []byte("  upstream down \n"))
	assert.Equal(t, errors.NameInternalServer, plain.Name)
	assert.Equal(t, "upstream down", plain.Message)

	empty := ParseErrorResponse(http.StatusServiceUnavailable, nil)
	assert.Equal(t, "Service Unavailable", empty.Message)
}

func TestCORS(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_ = WriteJSON(w, http.StatusOK, map[string]string{"ok": "yes"})
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called)
	assert.Equal(t, allowedHeaders, rec.Header().Get("Access-Control-Allow-Headers"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "yes", body["ok"])
}
