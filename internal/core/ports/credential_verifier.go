package ports

import (
	"context"
	"time"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

// CredentialVerifier validates an opaque bearer credential against the
// identity authority. Expired and revoked credentials are reported as
// domain.ErrCredentialExpired and domain.ErrCredentialRevoked; any other
// error is unclassified.
type CredentialVerifier interface {
	Verify(ctx context.Context, token string) (*domain.IdentityClaims, error)
}

// RevocationStore keeps, per subject, the instant before which every issued
// credential is considered revoked.
type RevocationStore interface {
	RevokedAfter(ctx context.Context, subject string) (time.Time, bool, error)
	Revoke(ctx context.Context, subject string, at time.Time) error
}
