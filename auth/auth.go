// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/dish4u/models"
)

var (
	ErrNotAdmin          = errors.New("admin role required")
	ErrInvalidAdminToken = errors.New("invalid admin token")
)

// Session is passed explicitly into views that need a role decision.
// The role check on the client is advisory; AdminToken is forwarded on
// privileged calls so the server can decide for itself.
type Session struct {
	ID         string
	Role       string
	AdminToken string
}

func NewSession(role, adminToken string) Session {
	return Session{
		ID:         uuid.NewString(),
		Role:       role,
		AdminToken: adminToken,
	}
}

// RoleSource is where a stored role flag is read from.
type RoleSource interface {
	Role(ctx context.Context) (string, error)
}

// LoadSession builds a session from the stored role flag.
// An unset flag yields a customer session.
func LoadSession(ctx context.Context, src RoleSource, adminToken string) (Session, error) {
	role, err := src.Role(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("failed to read role flag: %w", err)
	}
	if role == "" {
		role = models.RoleCustomer
	}
	return NewSession(role, adminToken), nil
}

// Logger tags records with the session ID and role. The token is never logged.
func (s Session) Logger() *slog.Logger {
	return slog.Default().With("session_id", s.ID, "role", s.Role)
}

func (s Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

// RequireAdmin is the mount-time guard of the admin views.
func RequireAdmin(s Session) error {
	if !s.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}

// SetBearer attaches the admin token to a privileged request.
func (s Session) SetBearer(req *http.Request) {
	if s.AdminToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AdminToken)
	}
}

// BearerToken extracts the token from an Authorization header
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// ValidateAdminToken compares in constant time
func ValidateAdminToken(got, expected string) error {
	if expected == "" || !hmac.Equal([]byte(got), []byte(expected)) {
		return ErrInvalidAdminToken
	}
	return nil
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}
