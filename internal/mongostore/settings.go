package mongostore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const jwtSecretKey = "jwt_secret"

type setting struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// JWTSecret returns the stored signing secret, creating one on first use.
// The upsert only sets the value on insert, so concurrent startups agree.
func (s *Store) JWTSecret(ctx context.Context) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}

	var out setting
	err := s.db.Collection(settingsCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": jwtSecretKey},
		bson.M{"$setOnInsert": bson.M{"value": hex.EncodeToString(buf)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return "", fmt.Errorf("loading jwt secret: %w", err)
	}
	return out.Value, nil
}
