package errors

import "net/http"

// ErrorCode is the string identifier of a specific failure category.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes shared by every layer.
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeBadRequest     ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeValidation     ErrorCode = "COMMON_004"
	ErrCodeNotImplemented ErrorCode = "COMMON_005"

	// CodeOK is the sentinel returned by GetCode for a nil error.
	CodeOK ErrorCode = "OK"
	// CodeUnknown is returned by GetCode when no AppError is in the chain.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Peptide build error codes.  Each corresponds to one of the typed build
// failures surfaced by internal/domain/peptide; tests and HTTP handlers
// match on these rather than on message text.
const (
	// ErrCodeEmptySequence: a build was requested for zero residues.
	ErrCodeEmptySequence ErrorCode = "PEP_001"

	// ErrCodeUnknownResidue: a one- or three-letter code did not decode
	// to any catalog identity.
	ErrCodeUnknownResidue ErrorCode = "PEP_002"

	// ErrCodeUnknownAnchor: a cross-link referenced an anchor role that
	// the target residue's template does not declare.
	ErrCodeUnknownAnchor ErrorCode = "PEP_003"

	// ErrCodeAnchorAlreadyUsed: an anchor was consumed twice.
	ErrCodeAnchorAlreadyUsed ErrorCode = "PEP_004"

	// ErrCodeCyclization: head-to-tail closure was requested but a
	// terminus anchor is unavailable (or the sequence has one residue).
	ErrCodeCyclization ErrorCode = "PEP_005"

	// ErrCodeKekulization: no single/double assignment satisfies valence
	// for a template-flagged aromatic ring.  Indicates corrupt catalog data.
	ErrCodeKekulization ErrorCode = "PEP_006"

	// ErrCodeMalformedTemplate: a catalog template is internally
	// inconsistent (bad atom index, unclosed ring).  Programmer error.
	ErrCodeMalformedTemplate ErrorCode = "PEP_007"
)

// httpStatusByCode maps each error code to the HTTP status the API layer
// responds with.  Codes absent from the map fall back to 500.
var httpStatusByCode = map[ErrorCode]int{
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeValidation:        http.StatusUnprocessableEntity,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeNotImplemented:    http.StatusNotImplemented,
	ErrCodeEmptySequence:     http.StatusUnprocessableEntity,
	ErrCodeUnknownResidue:    http.StatusUnprocessableEntity,
	ErrCodeUnknownAnchor:     http.StatusUnprocessableEntity,
	ErrCodeAnchorAlreadyUsed: http.StatusConflict,
	ErrCodeCyclization:       http.StatusConflict,
	ErrCodeKekulization:      http.StatusInternalServerError,
	ErrCodeMalformedTemplate: http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status code associated with c.
func (c ErrorCode) HTTPStatus() int {
	if s, ok := httpStatusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}
