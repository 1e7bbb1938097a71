package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Abdullah403/lost-and-found/internal/model"
)

// CreateUpload stores image bytes under a unique name.
func CreateUpload(ctx context.Context, db *sql.DB, u *model.Upload) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO uploads (name, data, mime, uploaded_by, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.Name, u.Data, u.MIME, u.UploadedBy, formatTime(u.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("creating upload: %w", err)
	}
	return nil
}

// GetUpload returns an upload by name, or nil if it does not exist.
func GetUpload(ctx context.Context, db *sql.DB, name string) (*model.Upload, error) {
	u := &model.Upload{}
	var createdAt string
	err := db.QueryRowContext(ctx,
		`SELECT name, data, mime, uploaded_by, created_at FROM uploads WHERE name = ?`, name,
	).Scan(&u.Name, &u.Data, &u.MIME, &u.UploadedBy, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting upload: %w", err)
	}
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return u, nil
}
