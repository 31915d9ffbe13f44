package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

const grantsCollection = "role_capabilities"

// GrantRepository reads the role -> capability relation. One document per
// grant: {role_id, capability}.
type GrantRepository struct {
	coll *mongo.Collection
}

func NewGrantRepository(db *mongo.Database) *GrantRepository {
	return &GrantRepository{coll: db.Collection(grantsCollection)}
}

func (r *GrantRepository) HasGrant(ctx context.Context, role domain.Role, capability domain.Capability) (bool, error) {
	filter := bson.M{"role_id": role.ID(), "capability": capability.String()}
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := r.coll.FindOne(ctx, filter, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find grant: %w", err)
	}
	return true, nil
}
