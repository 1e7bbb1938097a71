package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Abdullah403/lost-and-found/internal/db"
	"github.com/Abdullah403/lost-and-found/internal/model"
	"github.com/Abdullah403/lost-and-found/internal/store"
)

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	s := store.NewSQLite(db.NewTestDB(t))

	password, err := ensureAdmin(ctx, s, " Admin@LostAndFound.com ")
	if err != nil {
		t.Fatalf("ensureAdmin: %v", err)
	}
	if len(password) != 16 {
		t.Fatalf("expected 16 character password, got %q", password)
	}

	u, err := s.GetUserByEmail(ctx, "admin@lostandfound.com")
	if err != nil || u == nil {
		t.Fatalf("admin not stored: %v", err)
	}
	if u.Role != model.RoleAdmin {
		t.Errorf("expected admin role, got %q", u.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		t.Error("stored hash does not match generated password")
	}

	again, err := ensureAdmin(ctx, s, "admin@lostandfound.com")
	if err != nil {
		t.Fatalf("second ensureAdmin: %v", err)
	}
	if again != "" {
		t.Error("expected no new password for existing admin")
	}
}

func TestEnsureAdminDisabled(t *testing.T) {
	s := store.NewSQLite(db.NewTestDB(t))
	password, err := ensureAdmin(context.Background(), s, "")
	if err != nil || password != "" {
		t.Errorf("expected no-op, got %q, %v", password, err)
	}
}

func TestLevelRouter(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := slog.New(newLevelRouter(&out, &errOut)).With("component", "test")

	logger.Debug("hidden")
	logger.Info("hello")
	logger.Warn("careful")
	logger.Error("broken")

	if strings.Contains(out.String(), "hidden") {
		t.Error("debug should be filtered")
	}
	if !strings.Contains(out.String(), "hello") || !strings.Contains(out.String(), "careful") {
		t.Errorf("stdout missing info/warn: %q", out.String())
	}
	if strings.Contains(out.String(), "broken") {
		t.Error("error leaked to stdout")
	}
	if !strings.Contains(errOut.String(), "broken") || !strings.Contains(errOut.String(), "component=test") {
		t.Errorf("stderr missing error with attrs: %q", errOut.String())
	}
}
