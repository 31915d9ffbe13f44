package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

const accountsCollection = "accounts"

type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountsCollection)}
}

type mongoAccount struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	AccountID  int64              `bson:"account_id"`
	ExternalID string             `bson:"external_id"`
	RoleID     int                `bson:"role_id,omitempty"`
}

// FindByExternalID returns domain.ErrAccountNotFound when no document matches.
func (r *AccountRepository) FindByExternalID(ctx context.Context, externalID string) (*domain.Account, error) {
	var doc mongoAccount
	if err := r.coll.FindOne(ctx, bson.M{"external_id": externalID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	role, err := domain.RoleFromID(doc.RoleID)
	if err != nil {
		return nil, fmt.Errorf("account %d: %w", doc.AccountID, err)
	}

	return &domain.Account{
		ID:         doc.AccountID,
		ExternalID: doc.ExternalID,
		Role:       role,
	}, nil
}
