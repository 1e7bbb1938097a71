package model

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// User is an account. Role is fixed at registration.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	Name         string    `json:"name" bson:"name"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// Roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// ErrEmailTaken is returned by user stores when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// Principal is the authenticated caller.
type Principal struct {
	ID    string
	Email string
	Name  string
	Role  string
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// Principal returns the identity snapshot used for authorization.
func (u *User) Principal() *Principal {
	return &Principal{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// RoleForEmail assigns admin to the configured administrator address.
func RoleForEmail(email, adminEmail string) string {
	if adminEmail != "" && NormalizeEmail(email) == NormalizeEmail(adminEmail) {
		return RoleAdmin
	}
	return RoleUser
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that email is a bare address.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword checks the password policy.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}
