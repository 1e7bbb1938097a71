package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Abdullah403/lost-and-found/internal/db"
)

func TestJWTSecretIsStable(t *testing.T) {
	backend := NewSQLite(db.NewTestDB(t))
	ctx := context.Background()

	first, err := backend.JWTSecret(ctx)
	if err != nil {
		t.Fatalf("JWTSecret: %v", err)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}

	second, err := backend.JWTSecret(ctx)
	if err != nil {
		t.Fatalf("JWTSecret: %v", err)
	}
	if first != second {
		t.Errorf("secret changed between calls: %q vs %q", first, second)
	}
}

func TestSettingOrInit(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	v, err := settingOrInit(ctx, database, "greeting", func() (string, error) { return "hello", nil })
	if err != nil || v != "hello" {
		t.Fatalf("first call: got %q, %v", v, err)
	}

	v, err = settingOrInit(ctx, database, "greeting", func() (string, error) { return "bye", nil })
	if err != nil || v != "hello" {
		t.Errorf("existing value should win: got %q, %v", v, err)
	}

	boom := errors.New("boom")
	if _, err := settingOrInit(ctx, database, "other", func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Errorf("expected init error, got %v", err)
	}
}
