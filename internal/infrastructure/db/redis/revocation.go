package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultRevocationTTL outlives the longest credential the identity
// authority issues, after which the entry carries no information.
const defaultRevocationTTL = 7 * 24 * time.Hour

// RevocationStore keeps a per-subject "revoked after" instant.
// Key format: revoked:<subject> -> unix seconds.
type RevocationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRevocationStore creates a RevocationStore wrapping the given Redis client.
// A non-positive ttl selects defaultRevocationTTL.
func NewRevocationStore(client *redis.Client, ttl time.Duration) *RevocationStore {
	if ttl <= 0 {
		ttl = defaultRevocationTTL
	}
	return &RevocationStore{client: client, ttl: ttl}
}

// RevokedAfter returns the revocation instant for subject, if any.
func (s *RevocationStore) RevokedAfter(ctx context.Context, subject string) (time.Time, bool, error) {
	raw, err := s.client.Get(ctx, s.key(subject)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("revocation get: %w", err)
	}

	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("revocation decode %q: %w", raw, err)
	}
	return time.Unix(secs, 0).UTC(), true, nil
}

// Revoke marks every credential of subject issued before at as revoked.
// Credentials carry whole-second iat values, so a fractional instant is
// rounded up: anything issued in the same second as the revocation is revoked.
func (s *RevocationStore) Revoke(ctx context.Context, subject string, at time.Time) error {
	secs := at.Unix()
	if at.Nanosecond() > 0 {
		secs++
	}
	if err := s.client.Set(ctx, s.key(subject), secs, s.ttl).Err(); err != nil {
		return fmt.Errorf("revocation set: %w", err)
	}
	return nil
}

func (s *RevocationStore) key(subject string) string {
	return "revoked:" + subject
}
