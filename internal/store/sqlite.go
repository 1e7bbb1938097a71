package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/Abdullah403/lost-and-found/internal/model"
)

// SQLite adapts the package functions to the backend interfaces used by the
// item service and the API.
type SQLite struct {
	DB *sql.DB
}

// NewSQLite wraps an open database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{DB: db}
}

func (s *SQLite) ListItems(ctx context.Context, f model.ItemFilter) ([]model.Item, error) {
	return ListItems(ctx, s.DB, f)
}

func (s *SQLite) InsertItem(ctx context.Context, item *model.Item) error {
	return CreateItem(ctx, s.DB, item)
}

func (s *SQLite) GetItem(ctx context.Context, id string) (*model.Item, error) {
	return GetItem(ctx, s.DB, id)
}

func (s *SQLite) UpdateItem(ctx context.Context, item *model.Item) (bool, error) {
	return UpdateItem(ctx, s.DB, item)
}

func (s *SQLite) DeleteItem(ctx context.Context, id string) (bool, error) {
	return DeleteItem(ctx, s.DB, id)
}

func (s *SQLite) CreateUser(ctx context.Context, u *model.User) error {
	return CreateUser(ctx, s.DB, u)
}

func (s *SQLite) GetUser(ctx context.Context, id string) (*model.User, error) {
	return GetUser(ctx, s.DB, id)
}

func (s *SQLite) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return GetUserByEmail(ctx, s.DB, email)
}

func (s *SQLite) CreateUpload(ctx context.Context, u *model.Upload) error {
	return CreateUpload(ctx, s.DB, u)
}

func (s *SQLite) GetUpload(ctx context.Context, name string) (*model.Upload, error) {
	return GetUpload(ctx, s.DB, name)
}

func (s *SQLite) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	return RevokeToken(ctx, s.DB, jti, expiresAt)
}

func (s *SQLite) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return IsTokenRevoked(ctx, s.DB, jti)
}

func (s *SQLite) JWTSecret(ctx context.Context) (string, error) {
	return GetJWTSecret(ctx, s.DB)
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *SQLite) Close(context.Context) error {
	return s.DB.Close()
}
