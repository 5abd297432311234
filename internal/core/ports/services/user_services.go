package services

import (
	"context"

	"github.com/boighar/backoffice/internal/core/domain"
	"github.com/boighar/backoffice/internal/dto"
)

// UserSvcFacade manages staff users.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	// Authenticate verifies credentials and returns the user, or
	// apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// TokenSvcFacade issues session tokens.
type TokenSvcFacade interface {
	IssueToken(user *domain.User) (token string, expiresInSeconds int64, err error)
}
