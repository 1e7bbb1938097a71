package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Abdullah403/lost-and-found/internal/db"
	"github.com/Abdullah403/lost-and-found/internal/model"
)

func testUser(id, email, role string) *model.User {
	return &model.User{
		ID:           id,
		Email:        email,
		PasswordHash: "hash",
		Name:         "Test " + id,
		Role:         role,
		CreatedAt:    baseTime,
	}
}

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := CreateUser(ctx, database, testUser("u1", "john@example.com", model.RoleUser)); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := GetUser(ctx, database, "u1")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "john@example.com" {
		t.Errorf("expected email 'john@example.com', got %q", got.Email)
	}
	if got.Role != model.RoleUser {
		t.Errorf("expected role 'user', got %q", got.Role)
	}
	if got.PasswordHash != "hash" {
		t.Errorf("expected password hash 'hash', got %q", got.PasswordHash)
	}
}

func TestGetUserByEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, testUser("u1", "alice@example.com", model.RoleAdmin))

	user, err := GetUserByEmail(ctx, database, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}
	if user.ID != "u1" {
		t.Errorf("expected 'u1', got %q", user.ID)
	}

	missing, err := GetUserByEmail(ctx, database, "bob@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing user")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, testUser("u1", "dup@example.com", model.RoleUser))
	err := CreateUser(ctx, database, testUser("u2", "dup@example.com", model.RoleUser))
	if !errors.Is(err, model.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}
