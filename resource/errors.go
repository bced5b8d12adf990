package resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrScopeUnresolved is returned when an operation is attempted without a
// resolved tenant. The call is suppressed before any network I/O; an
// unscoped request would leak cross-tenant data.
var ErrScopeUnresolved = errors.New("tenant scope is not resolved")

// APIError is a non-2xx response that is not a validation failure
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// SaveError is a create/update rejection from the backend. It carries either
// a single message or a list of field messages; the form renders a single
// line or a bulleted list accordingly.
type SaveError struct {
	Status  int
	Message string
	Fields  []string
}

func (e *SaveError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("validation failed (status %d): %s", e.Status, strings.Join(e.Fields, "; "))
	}
	return fmt.Sprintf("validation failed (status %d): %s", e.Status, e.Message)
}

// IsFieldErrors reports whether the rejection carries per-field messages
func (e *SaveError) IsFieldErrors() bool {
	return len(e.Fields) > 0
}

// Messages returns the rejection as a flat list for rendering
func (e *SaveError) Messages() []string {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	return []string{e.Message}
}

// errorEnvelope matches the backend error body shapes: both "error" and
// "message" keys occur, each holding either a string or an array of strings.
type errorEnvelope struct {
	Error   json.RawMessage `json:"error"`
	Message json.RawMessage `json:"message"`
}

// parseErrorBody extracts messages from a non-2xx body. The body is parsed
// as JSON first; on parse failure the raw text becomes the message, since
// some backend error paths return plain text.
func parseErrorBody(body []byte) (message string, fields []string) {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return strings.TrimSpace(string(body)), nil
	}

	raw := envelope.Error
	if len(raw) == 0 {
		raw = envelope.Message
	}
	if len(raw) == 0 {
		return strings.TrimSpace(string(body)), nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		if len(many) == 1 {
			return many[0], nil
		}
		return "", many
	}

	return strings.TrimSpace(string(raw)), nil
}
