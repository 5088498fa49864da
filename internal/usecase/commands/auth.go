package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"glamping-booking/internal/pkg/errs"
	"glamping-booking/internal/pkg/jwt"
	"glamping-booking/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type AdminCredentials struct {
	Email        string
	PasswordHash string
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	admin      AdminCredentials
	jwtService *jwt.Service
}

func NewAuthCommands(admin AdminCredentials, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		admin:      admin,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, email, plainPassword string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	emailMatches := subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(a.admin.Email))) == 1

	// bcrypt runs even for a wrong email
	if err := password.ComparePassword(a.admin.PasswordHash, plainPassword); err != nil || !emailMatches {
		slog.Warn("admin login rejected", "email", email)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateToken(email, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}
