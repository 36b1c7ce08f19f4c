// Package http writes JSON responses and error bodies for handlers built on
// util-kit, mapping *errors.Error names to status codes.
package http

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/cecil-the-coder/util-kit/pkg/errors"
)

const (
	allowedMethods = "GET, OPTIONS, POST, DELETE"
	allowedHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"
)

// ResponseHeaders returns the JSON content type and permissive CORS headers.
// Each call returns a fresh map.
func ResponseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Allow":                        allowedMethods,
		"Access-Control-Allow-Methods": allowedMethods,
		"Access-Control-Allow-Headers": allowedHeaders,
	}
}

// ApplyResponseHeaders sets ResponseHeaders on h.
func ApplyResponseHeaders(h http.Header) {
	for k, v := range ResponseHeaders() {
		h.Set(k, v)
	}
}

// ErrorResponse is the body WriteError produces.
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// WriteJSON writes v with the standard headers and the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal response body: %w", err)
	}
	ApplyResponseHeaders(w.Header())
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write response body: %w", err)
	}
	return nil
}

// WriteError writes err as an ErrorResponse. The status comes from the error
// name; errors outside the util-kit family are reported as 500 without their
// message.
func WriteError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)

	var resp ErrorResponse
	resp.Error.Type = string(errors.NameOf(err))
	if resp.Error.Type == "" {
		resp.Error.Type = string(errors.NameInternalServer)
		resp.Error.Message = http.StatusText(status)
		log.Printf("http: unclassified error: %v", err)
	} else {
		resp.Error.Message = message(err)
	}

	if werr := WriteJSON(w, status, resp); werr != nil {
		log.Printf("http: failed to write error response: %v", werr)
	}
}

func message(err error) string {
	e, _ := errors.As(err)
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Name)
}

// ParseErrorResponse turns a response body written by WriteError back into an
// *errors.Error. Bodies in any other shape become an InternalServerError
// carrying the trimmed body or the status text.
func ParseErrorResponse(statusCode int, body []byte) *errors.Error {
	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error.Type != "" {
		return errors.New(errors.Name(resp.Error.Type), resp.Error.Message)
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return errors.InternalServer(msg)
}

// CORS answers preflight requests and applies ResponseHeaders to every other
// response before calling next.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ApplyResponseHeaders(w.Header())
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
