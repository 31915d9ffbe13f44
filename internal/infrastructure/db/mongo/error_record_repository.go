package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

const errorsCollection = "error_records"

type ErrorRecordRepository struct {
	coll *mongo.Collection
}

func NewErrorRecordRepository(db *mongo.Database) *ErrorRecordRepository {
	return &ErrorRecordRepository{coll: db.Collection(errorsCollection)}
}

type mongoErrorRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Message   string             `bson:"message"`
	Stack     string             `bson:"stack"`
	URL       string             `bson:"url"`
	Status    string             `bson:"status"`
	Body      string             `bson:"body"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Insert stores the record and sets its ID.
func (r *ErrorRecordRepository) Insert(ctx context.Context, record *domain.ErrorRecord) error {
	doc := mongoErrorRecord{
		ID:        primitive.NewObjectID(),
		Message:   record.Message,
		Stack:     record.Stack,
		URL:       record.URL,
		Status:    string(record.Status),
		Body:      record.Body,
		CreatedAt: record.CreatedAt.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert error record: %w", err)
	}
	record.ID = doc.ID.Hex()
	return nil
}
