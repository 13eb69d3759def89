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

type productService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewProductService creates a new product service instance
func NewProductService(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	if !entity.IsValidID(id) {
		return nil, domainerrors.ErrInvalidID.WithDetails(id)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err, "find product")
	}

	return product, nil
}

// CreateProduct lists a product owned by actor.
func (s *productService) CreateProduct(ctx context.Context, actor *entity.User, input usecase.CreateProductInput) (*entity.Product, error) {
	if err := requireRole(actor, entity.RoleSeller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	now := s.now()
	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		SubCategory: strings.TrimSpace(input.SubCategory),
		Brand:       strings.TrimSpace(input.Brand),
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		OwnerEmail:  actor.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create product")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Product created",
		slog.String("product_id", product.ID),
		slog.String("owner", product.OwnerEmail),
	)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, actor *entity.User, id string, patch *entity.ProductPatch) (*entity.Product, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no fields to update")
	}

	if _, err := s.loadOwned(ctx, actor, id); err != nil {
		return nil, err
	}

	updated, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, mapProductError(err, "update product")
	}

	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, actor *entity.User, id string) error {
	if _, err := s.loadOwned(ctx, actor, id); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return mapProductError(err, "delete product")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Product deleted",
		slog.String("product_id", id),
		slog.String("actor", actor.Email),
	)

	return nil
}

// ListOwnedProducts returns the products listed by ownerEmail.
func (s *productService) ListOwnedProducts(ctx context.Context, actor *entity.User, ownerEmail string) ([]*entity.Product, error) {
	if err := requireSelfOrAdmin(actor, ownerEmail); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, ownerEmail); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, ownerEmail)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find owner")
	}

	products, err := s.productRepo.FindByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find products by owner")
	}

	return products, nil
}

// loadOwned fetches the product and checks that actor may mutate it.
func (s *productService) loadOwned(ctx context.Context, actor *entity.User, id string) (*entity.Product, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && !product.IsOwnedBy(actor.Email) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "product belongs to another seller")
	}

	return product, nil
}

func mapProductError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrProductNotFound, action)
	case errors.Is(err, repository.ErrInvalidID):
		return errors.Wrap(domainerrors.ErrInvalidID, action)
	default:
		return domainerrors.NewDatabaseExecuteError(err, action)
	}
}
