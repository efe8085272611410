package api

import (
	"errors"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/tidwall/gjson"
)

var (
	// ErrNoResults is returned when a response holds no usable entries.
	ErrNoResults = errors.New("no results")

	// ErrEmptyQuery is returned when the word to look up is blank.
	ErrEmptyQuery = errors.New("word to look up is empty")
)

// maxErrorMessage bounds the length of messages taken from response bodies.
const maxErrorMessage = 300

// MissingKeyError reports that no API key is configured for a reference.
type MissingKeyError struct {
	Reference Reference
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("no API key configured for the %s reference (run 'lex init')", e.Reference)
}

// APIError represents an error response from the API.
type APIError struct {
	Reference  Reference
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Reference, e.StatusCode, e.Message)
}

// newAPIError builds an APIError from a response body, which may be JSON,
// HTML or plain text.
func newAPIError(ref Reference, status int, body []byte) *APIError {
	return &APIError{
		Reference:  ref,
		StatusCode: status,
		Message:    errorMessage(body),
	}
}

func errorMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "empty response"
	}

	if gjson.Valid(text) {
		for _, path := range []string{"message", "error", "errors.0"} {
			if msg := gjson.Get(text, path); msg.Type == gjson.String && msg.String() != "" {
				return truncate(msg.String())
			}
		}
		return truncate(text)
	}

	if strings.Contains(text, "<") {
		if md, err := htmltomarkdown.ConvertString(text); err == nil && strings.TrimSpace(md) != "" {
			text = strings.TrimSpace(md)
		}
	}
	return truncate(strings.Join(strings.Fields(text), " "))
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxErrorMessage {
		return s
	}
	return string(r[:maxErrorMessage-3]) + "..."
}
