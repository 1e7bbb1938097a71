package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Abdullah403/lost-and-found/internal/db"
	"github.com/Abdullah403/lost-and-found/internal/model"
)

const itemColumns = `id, title, description, category, status, location, date, image,
	contact_info, user_id, user_name, user_email, verified, created_at, updated_at`

// searchFields are the columns a free-text search looks at.
var searchFields = []string{"title", "description", "location", "category"}

// CreateItem inserts a fully populated item.
func CreateItem(ctx context.Context, db *sql.DB, item *model.Item) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO items (`+itemColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Description, item.Category, item.Status, item.Location, item.Date,
		nullString(item.Image), item.ContactInfo, item.UserID, item.UserName, item.UserEmail,
		item.Verified, formatTime(item.CreatedAt), formatNullTime(item.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

// GetItem returns an item by ID, or nil if it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	row := db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns items matching the filter, newest first.
func ListItems(ctx context.Context, db *sql.DB, filter model.ItemFilter) ([]model.Item, error) {
	where, args := itemWhere(filter.Normalize())

	query := `SELECT ` + itemColumns + ` FROM items`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// itemWhere builds the WHERE clause for a normalized filter. Search text is
// bound as a parameter and matched with contains_fold, so it is never
// interpreted as a pattern and case folds beyond ASCII.
func itemWhere(f model.ItemFilter) (string, []any) {
	var clauses []string
	var args []any

	if f.Search != "" {
		ors := make([]string, len(searchFields))
		for i, field := range searchFields {
			ors[i] = db.ContainsFold + "(" + field + ", ?)"
			args = append(args, f.Search)
		}
		clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")
	}
	if f.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, f.Category)
	}
	if f.Location != "" {
		clauses = append(clauses, "location = ?")
		args = append(args, f.Location)
	}
	if f.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, f.Status)
	}
	if f.VerifiedOnly {
		clauses = append(clauses, "verified = 1")
	}

	return strings.Join(clauses, " AND "), args
}

// UpdateItem writes every mutable field of item. Returns false if the item
// no longer exists.
func UpdateItem(ctx context.Context, db *sql.DB, item *model.Item) (bool, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET title = ?, description = ?, category = ?, status = ?, location = ?,
		        date = ?, image = ?, contact_info = ?, verified = ?, updated_at = ?
		 WHERE id = ?`,
		item.Title, item.Description, item.Category, item.Status, item.Location,
		item.Date, nullString(item.Image), item.ContactInfo, item.Verified, formatNullTime(item.UpdatedAt),
		item.ID,
	)
	if err != nil {
		return false, fmt.Errorf("updating item: %w", err)
	}
	return affected(result)
}

// DeleteItem permanently removes an item. Returns false if it did not exist.
func DeleteItem(ctx context.Context, db *sql.DB, id string) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}
	return affected(result)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*model.Item, error) {
	item := &model.Item{}
	var image, updatedAt sql.NullString
	var createdAt string
	err := s.Scan(&item.ID, &item.Title, &item.Description, &item.Category, &item.Status,
		&item.Location, &item.Date, &image, &item.ContactInfo, &item.UserID, &item.UserName,
		&item.UserEmail, &item.Verified, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if image.Valid {
		item.Image = &image.String
	}
	if item.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if item.UpdatedAt, err = parseNullTime(updatedAt); err != nil {
		return nil, err
	}
	return item, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}
