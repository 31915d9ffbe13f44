package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

const (
	insertBankSQL = `INSERT INTO banks (name, code, owner_id, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	deleteBankSQL = `DELETE FROM banks WHERE id = $1`

	uniqueViolation = "23505"
)

type BankRepository struct {
	db querier
}

func NewBankRepository(store *Store) *BankRepository {
	return &BankRepository{db: store.pool}
}

func (r *BankRepository) Create(ctx context.Context, bank *domain.Bank) (*domain.Bank, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertBankSQL, bank.Name, bank.Code, bank.OwnerID, bank.CreatedAt.UTC()).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrBankExists
		}
		return nil, fmt.Errorf("insert bank: %w", err)
	}

	created := *bank
	created.ID = strconv.FormatInt(id, 10)
	return &created, nil
}

func (r *BankRepository) Delete(ctx context.Context, id string) error {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return domain.ErrBankNotFound
	}

	tag, err := r.db.Exec(ctx, deleteBankSQL, numericID)
	if err != nil {
		return fmt.Errorf("delete bank: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBankNotFound
	}
	return nil
}
