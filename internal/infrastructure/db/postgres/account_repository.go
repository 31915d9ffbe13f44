package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

const findAccountSQL = `SELECT id, role_id FROM accounts WHERE external_id = $1`

type AccountRepository struct {
	db querier
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{db: store.pool}
}

func (r *AccountRepository) FindByExternalID(ctx context.Context, externalID string) (*domain.Account, error) {
	var (
		id     int64
		roleID *int
	)
	err := r.db.QueryRow(ctx, findAccountSQL, externalID).Scan(&id, &roleID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	account := &domain.Account{ID: id, ExternalID: externalID}
	if roleID != nil {
		if account.Role, err = domain.RoleFromID(*roleID); err != nil {
			return nil, fmt.Errorf("account %d: %w", id, err)
		}
	}
	return account, nil
}
