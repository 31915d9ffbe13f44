package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

const insertErrorRecordSQL = `
INSERT INTO error_records (message, stack, url, status, body, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

type ErrorRecordRepository struct {
	db querier
}

func NewErrorRecordRepository(store *Store) *ErrorRecordRepository {
	return &ErrorRecordRepository{db: store.pool}
}

func (r *ErrorRecordRepository) Insert(ctx context.Context, record *domain.ErrorRecord) error {
	var id int64
	err := r.db.QueryRow(ctx, insertErrorRecordSQL,
		record.Message,
		record.Stack,
		record.URL,
		string(record.Status),
		record.Body,
		record.CreatedAt.UTC(),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("insert error record: %w", err)
	}
	record.ID = strconv.FormatInt(id, 10)
	return nil
}
