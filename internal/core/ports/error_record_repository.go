package ports

import (
	"context"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

// ErrorRecordRepository persists audit records of unhandled failures.
type ErrorRecordRepository interface {
	Insert(ctx context.Context, record *domain.ErrorRecord) error
}
