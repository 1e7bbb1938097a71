package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
)

// JWTSecretKey is the settings row holding the token signing secret.
const JWTSecretKey = "jwt_secret"

// GetJWTSecret returns the signing secret, creating a random one the first
// time it is asked for.
func GetJWTSecret(ctx context.Context, db *sql.DB) (string, error) {
	return settingOrInit(ctx, db, JWTSecretKey, func() (string, error) {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generating jwt secret: %w", err)
		}
		return hex.EncodeToString(buf), nil
	})
}

// settingOrInit reads a setting, storing init's value first if the key is
// absent. The insert is conditional, so every concurrent caller reads back
// the same winner.
func settingOrInit(ctx context.Context, db *sql.DB, key string, init func() (string, error)) (string, error) {
	candidate, err := init()
	if err != nil {
		return "", err
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT (key) DO NOTHING`,
		key, candidate,
	); err != nil {
		return "", fmt.Errorf("storing setting %s: %w", key, err)
	}

	var value string
	if err := db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value); err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}
