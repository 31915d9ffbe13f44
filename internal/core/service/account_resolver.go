package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/core/ports"
)

// AccountResolver maps a verified external subject to a local account.
type AccountResolver struct {
	repo ports.AccountRepository
}

func NewAccountResolver(repo ports.AccountRepository) *AccountResolver {
	return &AccountResolver{repo: repo}
}

// Resolve returns (nil, nil) when no account exists for the subject. Any
// other repository error is wrapped and returned.
func (r *AccountResolver) Resolve(ctx context.Context, externalID string) (*domain.Account, error) {
	account, err := r.repo.FindByExternalID(ctx, externalID)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve account: %w", err)
	}
	return account, nil
}
