package repository

import (
	"context"

	"gadgetshop/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and assigns its ID.
	// It returns ErrDuplicateUser when the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole changes the role of the user with email.
	UpdateRole(ctx context.Context, email string, role entity.Role) error

	// AddToList adds productID to the named list as a set member.
	// modified is false when the id was already present.
	AddToList(ctx context.Context, email string, list entity.SavedList, productID string) (modified bool, err error)

	// RemoveFromList removes productIDs from the named list.
	// modified is false when none of them were present.
	RemoveFromList(ctx context.Context, email string, list entity.SavedList, productIDs ...string) (modified bool, err error)
}
