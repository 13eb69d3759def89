// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"gadgetshop/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Email    string
	Name     string
	PhotoURL string
	Role     entity.Role // Empty means buyer.
}

// IssueTokenInput defines the data required to issue an access token.
type IssueTokenInput struct {
	Email string
}

// --- Output DTOs ---

// TokenOutput returns the generated access token.
type TokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error)

	// GetUser returns the user with email. Actor must be that user or an admin.
	GetUser(ctx context.Context, actor *entity.User, email string) (*entity.User, error)

	// UpdateRole sets the role of the user with email. Actor must be an admin.
	UpdateRole(ctx context.Context, actor *entity.User, email string, role entity.Role) (*entity.User, error)
}

// AuthUsecase issues bearer tokens and resolves them back to users.
type AuthUsecase interface {
	IssueToken(ctx context.Context, input IssueTokenInput) (*TokenOutput, error)

	// Authenticate validates token and loads the registered user it names.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
