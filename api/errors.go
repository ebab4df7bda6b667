package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is returned when the server rejects the bearer token.
// Callers clear the stored credential and re-authenticate.
var ErrUnauthorized = errors.New("authentication required")

// RequestError wraps a transport failure: the request never produced a
// response. Retrying is a user action, not automatic.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ServerError carries a non-success response, preserving the server's
// message verbatim.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

func asServerError(err error, dest **ServerError) bool {
	return errors.As(err, dest)
}

// readMessage extracts the server message from an error response body,
// falling back to the HTTP status line.
func readMessage(resp *http.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return resp.Status
}
