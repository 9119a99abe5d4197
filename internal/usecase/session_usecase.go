package usecase

import (
	"context"

	"staffing/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginResult is an issued access token and the identity it was issued for.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
	UserID      uuid.UUID
	Role        entity.Role
}

// SessionUsecase authenticates users.
type SessionUsecase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
