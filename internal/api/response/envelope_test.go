package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/i18n"
)

func TestRejection(t *testing.T) {
	tests := []struct {
		reason     domain.Reason
		wantStatus int
		wantKey    string
	}{
		{domain.ReasonMissingCredential, http.StatusUnauthorized, i18n.KeyTokenUnspecified},
		{domain.ReasonRevokedCredential, http.StatusUnauthorized, i18n.KeyTokenRevoked},
		{domain.ReasonExpiredCredential, http.StatusUnauthorized, i18n.KeyTokenExpired},
		{domain.ReasonUnknownAccount, http.StatusUnauthorized, i18n.KeyUserNotFound},
		{domain.ReasonRoleNotSpecified, http.StatusUnauthorized, i18n.KeyRoleUnspecified},
		{domain.ReasonNotAllowed, http.StatusForbidden, i18n.KeyNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.reason.String(), func(t *testing.T) {
			status, key := Rejection(tc.reason)
			if status != tc.wantStatus || key != tc.wantKey {
				t.Errorf("Rejection(%s) = (%d, %s), want (%d, %s)", tc.reason, status, key, tc.wantStatus, tc.wantKey)
			}
		})
	}
}

func TestEnvelopeJSON(t *testing.T) {
	raw, err := json.Marshal(Internal(errors.New("db down")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"clientErrorMessage":"","debugErrorMessage":"db down","inputValidationErrors":null}`
	if string(raw) != want {
		t.Errorf("got %s, want %s", raw, want)
	}
}
