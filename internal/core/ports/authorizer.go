package ports

import (
	"context"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

// Authorizer decides whether a request carrying rawHeader may proceed under
// the given requirement. A non-nil error is a system failure; every client
// problem is expressed as a rejected Decision.
type Authorizer interface {
	Authorize(ctx context.Context, rawHeader string, req domain.Requirement) (domain.Decision, error)
}
