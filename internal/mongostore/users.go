package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Abdullah403/lost-and-found/internal/model"
)

// CreateUser inserts a new account. A taken email yields model.ErrEmailTaken.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	if _, err := s.users().InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrEmailTaken
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// GetUser returns a user by ID, or nil if not found.
func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.findUser(ctx, bson.M{"id": id})
}

// GetUserByEmail returns a user by email, or nil if not found.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

func (s *Store) findUser(ctx context.Context, filter bson.M) (*model.User, error) {
	var u model.User
	err := s.users().FindOne(ctx, filter, options.FindOne().SetProjection(noID)).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &u, nil
}
