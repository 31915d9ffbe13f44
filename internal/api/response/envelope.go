// Package response holds the error envelope every rejected request receives
// and the mapping from rejection reasons to statuses and message keys.
package response

import (
	"net/http"

	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/i18n"
)

// Field locations reported in FieldError.Location.
const (
	LocationBody   = "body"
	LocationQuery  = "query"
	LocationParams = "params"
	LocationHeader = "headers"
)

// Envelope is the client-visible error payload. Message fields are always
// present; InputValidationErrors is null unless validation failed.
type Envelope struct {
	ClientErrorMessage    string       `json:"clientErrorMessage"`
	DebugErrorMessage     string       `json:"debugErrorMessage"`
	InputValidationErrors []FieldError `json:"inputValidationErrors"`
}

// FieldError describes one failed field rule.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// Internal builds the envelope for an unhandled failure: only the debug
// message is populated.
func Internal(err error) Envelope {
	return Envelope{DebugErrorMessage: err.Error()}
}

// Rejection returns the HTTP status and message key for a locally resolved
// authorization rejection.
func Rejection(reason domain.Reason) (status int, key string) {
	switch reason {
	case domain.ReasonMissingCredential:
		return http.StatusUnauthorized, i18n.KeyTokenUnspecified
	case domain.ReasonRevokedCredential:
		return http.StatusUnauthorized, i18n.KeyTokenRevoked
	case domain.ReasonExpiredCredential:
		return http.StatusUnauthorized, i18n.KeyTokenExpired
	case domain.ReasonUnknownAccount:
		return http.StatusUnauthorized, i18n.KeyUserNotFound
	case domain.ReasonRoleNotSpecified:
		return http.StatusUnauthorized, i18n.KeyRoleUnspecified
	case domain.ReasonNotAllowed:
		return http.StatusForbidden, i18n.KeyNotAllowed
	default:
		return http.StatusInternalServerError, ""
	}
}
