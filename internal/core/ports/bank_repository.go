package ports

import (
	"context"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

// BankRepository defines the persistence operations the bank routes need.
type BankRepository interface {
	Create(ctx context.Context, bank *domain.Bank) (*domain.Bank, error)
	Delete(ctx context.Context, id string) error
}
