package ports

import (
	"context"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

// AccountRepository looks up local accounts. A missing account is reported
// as domain.ErrAccountNotFound.
type AccountRepository interface {
	FindByExternalID(ctx context.Context, externalID string) (*domain.Account, error)
}

// GrantRepository answers whether a role is granted a capability.
type GrantRepository interface {
	HasGrant(ctx context.Context, role domain.Role, capability domain.Capability) (bool, error)
}
