package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

const banksCollection = "banks"

type BankRepository struct {
	coll *mongo.Collection
}

func NewBankRepository(db *mongo.Database) *BankRepository {
	return &BankRepository{coll: db.Collection(banksCollection)}
}

type mongoBank struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Code      string             `bson:"code"`
	OwnerID   int64              `bson:"owner_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *BankRepository) Create(ctx context.Context, bank *domain.Bank) (*domain.Bank, error) {
	doc := mongoBank{
		ID:        primitive.NewObjectID(),
		Name:      bank.Name,
		Code:      bank.Code,
		OwnerID:   bank.OwnerID,
		CreatedAt: bank.CreatedAt.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrBankExists
		}
		return nil, fmt.Errorf("insert bank: %w", err)
	}

	created := *bank
	created.ID = doc.ID.Hex()
	return &created, nil
}

// Delete removes a bank by id; unknown or malformed ids yield domain.ErrBankNotFound.
func (r *BankRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBankNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete bank: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBankNotFound
	}
	return nil
}
