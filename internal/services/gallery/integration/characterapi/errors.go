package characterapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotFound reports that the API has no record for the request.
	ErrNotFound = errors.New("character not found")
	// ErrUnavailable reports a network failure, timeout or 5xx response.
	ErrUnavailable = errors.New("character api unavailable")
	// ErrDecode reports a response body that is not the expected JSON.
	ErrDecode = errors.New("decode character api response")
	// ErrUnexpectedStatus reports any other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected character api status")
)

// apiErrorBody is the error envelope written by the character API.
type apiErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// StatusError describes a non-2xx API response.
type StatusError struct {
	Path       string
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	message := strings.TrimSpace(e.Message)
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("GET %s: status %d (%s): %s", e.Path, e.StatusCode, e.Code, message)
	}
	return fmt.Sprintf("GET %s: status %d: %s", e.Path, e.StatusCode, message)
}

// Is matches the sentinel error for the status class.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnavailable:
		return e.StatusCode >= http.StatusInternalServerError
	case ErrUnexpectedStatus:
		return e.StatusCode != http.StatusNotFound && e.StatusCode < http.StatusInternalServerError
	}
	return false
}
