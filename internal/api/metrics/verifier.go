package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/core/ports"
)

type instrumentedVerifier struct {
	next ports.CredentialVerifier
}

// InstrumentVerifier records the duration and outcome of every verification
// performed by next.
func InstrumentVerifier(next ports.CredentialVerifier) ports.CredentialVerifier {
	return &instrumentedVerifier{next: next}
}

func (v *instrumentedVerifier) Verify(ctx context.Context, token string) (*domain.IdentityClaims, error) {
	start := time.Now()
	claims, err := v.next.Verify(ctx, token)
	CredentialVerificationDuration.WithLabelValues(verifyResult(err)).Observe(time.Since(start).Seconds())
	return claims, err
}

func verifyResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrCredentialExpired):
		return "expired"
	case errors.Is(err, domain.ErrCredentialRevoked):
		return "revoked"
	default:
		return "error"
	}
}
