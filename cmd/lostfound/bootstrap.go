package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abdullah403/lost-and-found/internal/api"
	"github.com/Abdullah403/lost-and-found/internal/model"
)

// ensureAdmin creates the administrator account if email is set and no
// account exists for it yet. It returns the generated password when an
// account was created, or "" otherwise.
func ensureAdmin(ctx context.Context, users api.UserStore, email string) (string, error) {
	email = model.NormalizeEmail(email)
	if email == "" {
		return "", nil
	}

	existing, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("looking up admin: %w", err)
	}
	if existing != nil {
		return "", nil
	}

	password, err := generatePassword(16)
	if err != nil {
		return "", fmt.Errorf("generating password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	err = users.CreateUser(ctx, &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("creating admin user: %w", err)
	}
	return password, nil
}

// printAdminCreated tells the operator the one-time admin password.
func printAdminCreated(w io.Writer, email, password string) {
	fmt.Fprintln(w, "Admin account created:")
	fmt.Fprintf(w, "  Email:    %s\n", email)
	fmt.Fprintf(w, "  Password: %s\n", password)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Save this password, it cannot be recovered.")
}

// generatePassword creates a random password of the given length.
func generatePassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}
