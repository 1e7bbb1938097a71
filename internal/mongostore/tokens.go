package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RevokeToken adds a token's JTI to the revocation list. Expired entries
// are removed by the TTL index on expiresAt.
func (s *Store) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	_, err := s.tokens().UpdateOne(ctx,
		bson.M{"jti": jti},
		bson.M{"$setOnInsert": bson.M{"jti": jti, "expiresAt": expiresAt.UTC()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}

// IsTokenRevoked checks if a token's JTI has been revoked.
func (s *Store) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.tokens().CountDocuments(ctx, bson.M{"jti": jti}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("checking token revocation: %w", err)
	}
	return n > 0, nil
}
