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

// CreateUpload stores an image.
func (s *Store) CreateUpload(ctx context.Context, u *model.Upload) error {
	if _, err := s.uploads().InsertOne(ctx, u); err != nil {
		return fmt.Errorf("creating upload: %w", err)
	}
	return nil
}

// GetUpload returns an image by name, or nil if not found.
func (s *Store) GetUpload(ctx context.Context, name string) (*model.Upload, error) {
	var u model.Upload
	err := s.uploads().FindOne(ctx, bson.M{"name": name}, options.FindOne().SetProjection(noID)).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting upload: %w", err)
	}
	return &u, nil
}
