package impl

import (
	"context"
	"log/slog"

	deliverycontext "gadgetshop/internal/delivery/context"
	"gadgetshop/internal/domain/entity"
	domainerrors "gadgetshop/internal/domain/errors"
	"gadgetshop/internal/domain/repository"
	"gadgetshop/internal/errors"
	"gadgetshop/internal/usecase"
)

type collectionService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCollectionService creates a new wishlist and cart service instance
func NewCollectionService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CollectionUsecase {
	return &collectionService{
		userRepo:    userRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddToList adds a product to the list. The product must exist.
func (s *collectionService) AddToList(ctx context.Context, actor *entity.User, input usecase.UpdateListInput) (bool, error) {
	email, err := s.resolveTarget(actor, input)
	if err != nil {
		return false, err
	}

	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return false, mapProductError(err, "find product")
	}

	modified, err := s.userRepo.AddToList(ctx, email, input.List, input.ProductID)
	if err != nil {
		return false, mapListError(err, email)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Product added to list",
		slog.String("list", input.List.String()),
		slog.String("product_id", input.ProductID),
		slog.Bool("modified", modified),
	)

	return modified, nil
}

// RemoveFromList removes a product from the list. Removing an absent product is a no-op.
func (s *collectionService) RemoveFromList(ctx context.Context, actor *entity.User, input usecase.UpdateListInput) (bool, error) {
	email, err := s.resolveTarget(actor, input)
	if err != nil {
		return false, err
	}

	modified, err := s.userRepo.RemoveFromList(ctx, email, input.List, input.ProductID)
	if err != nil {
		return false, mapListError(err, email)
	}

	return modified, nil
}

// GetListProducts resolves the list of userID to products, dropping stale ids.
func (s *collectionService) GetListProducts(ctx context.Context, actor *entity.User, userID string, list entity.SavedList) ([]*entity.Product, error) {
	if !list.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown list " + list.String())
	}
	if !entity.IsValidID(userID) {
		return nil, domainerrors.ErrInvalidID.WithDetails(userID)
	}
	if err := requireSelfOrAdminByID(actor, userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, userID)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find user")
	}

	ids := entity.ValidIDs(user.List(list))
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	products, err := s.productRepo.FindByIDs(ctx, ids, "")
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find list products")
	}

	return products, nil
}

// resolveTarget returns the email whose list is changed. Acting on another user's list needs admin.
func (s *collectionService) resolveTarget(actor *entity.User, input usecase.UpdateListInput) (string, error) {
	if actor == nil {
		return "", domainerrors.ErrUnauthorized
	}
	if !input.List.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown list " + input.List.String())
	}
	if !entity.IsValidID(input.ProductID) {
		return "", domainerrors.ErrInvalidID.WithDetails(input.ProductID)
	}

	email := normalizeEmail(input.UserEmail)
	if email == "" {
		return actor.Email, nil
	}
	if err := requireSelfOrAdmin(actor, email); err != nil {
		return "", err
	}

	return email, nil
}

func mapListError(err error, email string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, email)
	case errors.Is(err, repository.ErrInvalidID):
		return errors.Wrap(domainerrors.ErrInvalidID, email)
	default:
		return domainerrors.NewDatabaseExecuteError(err, "update list")
	}
}
