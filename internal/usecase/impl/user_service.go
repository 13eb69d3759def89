package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "gadgetshop/internal/delivery/context"
	"gadgetshop/internal/domain/entity"
	domainerrors "gadgetshop/internal/domain/errors"
	"gadgetshop/internal/domain/repository"
	"gadgetshop/internal/errors"
	"gadgetshop/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewUserService is the constructor for userService.
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// RegisterUser stores a new account. Buyer is the default role and admin cannot be self-assigned.
func (srv *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleBuyer
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}
	if !role.CanSelfRegister() {
		return nil, domainerrors.ErrRoleNotAllowed
	}

	user := &entity.User{
		Email:     normalizeEmail(input.Email),
		Name:      strings.TrimSpace(input.Name),
		PhotoURL:  input.PhotoURL,
		Role:      role,
		Wishlist:  []string{},
		Cart:      []string{},
		CreatedAt: srv.now(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, user.Email)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create user")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("User registered",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
	)

	return user, nil
}

// GetUser returns the user with email. Actor must be that user or an admin.
func (srv *userService) GetUser(ctx context.Context, actor *entity.User, email string) (*entity.User, error) {
	email = normalizeEmail(email)
	if err := requireSelfOrAdmin(actor, email); err != nil {
		return nil, err
	}

	return srv.findByEmail(ctx, email)
}

// UpdateRole sets the role of the user with email. Actor must be an admin.
func (srv *userService) UpdateRole(ctx context.Context, actor *entity.User, email string, role entity.Role) (*entity.User, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}

	email = normalizeEmail(email)
	if err := srv.userRepo.UpdateRole(ctx, email, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, email)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "update role")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("User role changed",
		slog.String("email", email),
		slog.String("role", role.String()),
		slog.String("actor", actor.Email),
	)

	return srv.findByEmail(ctx, email)
}

func (srv *userService) findByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, email)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find user")
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
