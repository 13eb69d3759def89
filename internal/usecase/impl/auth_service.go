package impl

import (
	"context"

	"gadgetshop/config"
	"gadgetshop/internal/domain/entity"
	domainerrors "gadgetshop/internal/domain/errors"
	"gadgetshop/internal/domain/repository"
	"gadgetshop/internal/domain/service"
	"gadgetshop/internal/errors"
	"gadgetshop/internal/usecase"
)

type authService struct {
	tokenService service.TokenService
	userRepo     repository.UserRepository
	issueEnabled bool
}

// NewAuthService creates a new auth service instance
func NewAuthService(tokenService service.TokenService, userRepo repository.UserRepository, cfg *config.Config) usecase.AuthUsecase {
	return &authService{
		tokenService: tokenService,
		userRepo:     userRepo,
		issueEnabled: cfg.Auth == nil || !cfg.Auth.DisableTokenIssue,
	}
}

// IssueToken signs an access token for the email. Registration is not required,
// a client signs in with its identity provider first and registers afterwards.
//
// The email is trusted as given. Whoever can reach this endpoint can mint a token
// for any address, admins included, so it must sit behind the identity provider
// that proved ownership of the email. Deployments without one set
// auth.disableTokenIssue and mint tokens elsewhere with the shared secret.
func (s *authService) IssueToken(_ context.Context, input usecase.IssueTokenInput) (*usecase.TokenOutput, error) {
	if !s.issueEnabled {
		return nil, domainerrors.ErrForbidden.WithDetails("token issuing is disabled")
	}

	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	token, expiresAt, err := s.tokenService.GenerateToken(email)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.TokenOutput{Token: token, ExpiresAt: expiresAt}, nil
}

// Authenticate validates token and loads the registered user it names.
func (s *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.tokenService.ValidateToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(claims.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "account is not registered")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find token owner")
	}

	return user, nil
}
