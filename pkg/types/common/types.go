// Package common holds the small cross-layer types shared between the
// application services and the interface adapters: opaque identifiers,
// timestamps, and the uniform API response envelope.
package common

import (
	"time"

	"github.com/google/uuid"
)

// ID is an opaque unique identifier assigned to conversion results.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id == ""
}

// Timestamp is a UTC wall-clock instant with RFC 3339 JSON encoding.
type Timestamp time.Time

// Now returns the current instant in UTC.
func Now() Timestamp {
	return Timestamp(time.Now().UTC())
}

// Time converts back to a time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// MarshalJSON encodes the instant as a quoted RFC 3339 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(time.RFC3339Nano) + `"`), nil
}

// UnmarshalJSON decodes a quoted RFC 3339 string.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// ErrorDetail is the machine-readable error block inside an APIResponse.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// APIResponse is the uniform envelope returned by every HTTP endpoint.
type APIResponse struct {
	Success   bool         `json:"success"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
	Timestamp Timestamp    `json:"timestamp"`
}

// OK builds a success envelope around data.
func OK(data interface{}) *APIResponse {
	return &APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: Now(),
	}
}

// Fail builds a failure envelope with the given error block.
func Fail(code, message, detail string) *APIResponse {
	return &APIResponse{
		Success: false,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Detail:  detail,
		},
		Timestamp: Now(),
	}
}
