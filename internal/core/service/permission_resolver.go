package service

import (
	"context"
	"fmt"

	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/core/ports"
)

// PermissionResolver checks the role-capability grant relation.
type PermissionResolver struct {
	repo ports.GrantRepository
}

func NewPermissionResolver(repo ports.GrantRepository) *PermissionResolver {
	return &PermissionResolver{repo: repo}
}

// HasGrant reports whether role may exercise capability. Absence of a grant
// is a deny.
func (p *PermissionResolver) HasGrant(ctx context.Context, role domain.Role, capability domain.Capability) (bool, error) {
	if role.IsZero() {
		return false, fmt.Errorf("has grant: %w", domain.ErrUnknownRole)
	}
	ok, err := p.repo.HasGrant(ctx, role, capability)
	if err != nil {
		return false, fmt.Errorf("has grant %s/%s: %w", role, capability, err)
	}
	return ok, nil
}
