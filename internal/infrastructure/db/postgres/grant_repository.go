package postgres

import (
	"context"
	"fmt"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

const hasGrantSQL = `SELECT EXISTS (SELECT 1 FROM role_capabilities WHERE role_id = $1 AND capability = $2)`

type GrantRepository struct {
	db querier
}

func NewGrantRepository(store *Store) *GrantRepository {
	return &GrantRepository{db: store.pool}
}

func (r *GrantRepository) HasGrant(ctx context.Context, role domain.Role, capability domain.Capability) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasGrantSQL, role.ID(), capability.String()).Scan(&exists); err != nil {
		return false, fmt.Errorf("has grant: %w", err)
	}
	return exists, nil
}
