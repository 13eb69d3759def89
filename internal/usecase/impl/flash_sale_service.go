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

type flashSaleService struct {
	flashSaleRepo repository.FlashSaleRepository
	logger        *slog.Logger
	now           func() time.Time
}

// NewFlashSaleService creates a new flash sale administration service
func NewFlashSaleService(flashSaleRepo repository.FlashSaleRepository, logger *slog.Logger) usecase.FlashSaleUsecase {
	return &flashSaleService{
		flashSaleRepo: flashSaleRepo,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *flashSaleService) CreateFlashSale(ctx context.Context, actor *entity.User, input usecase.CreateFlashSaleInput) (*entity.FlashSale, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if input.Discount < 0 || input.Discount > 100 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("discount must be between 0 and 100")
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, domainerrors.ErrInvalidSaleWindow
	}

	ids := entity.ValidIDs(input.ProductIDs)
	if len(ids) != len(input.ProductIDs) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productIds must be unique store ids")
	}

	sale := &entity.FlashSale{
		Name:       strings.TrimSpace(input.Name),
		ProductIDs: ids,
		Discount:   input.Discount,
		StartTime:  input.StartTime.UTC(),
		EndTime:    input.EndTime.UTC(),
		CreatedAt:  s.now(),
	}

	if err := s.flashSaleRepo.Create(ctx, sale); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create flash sale")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Flash sale created",
		slog.String("flash_sale_id", sale.ID),
		slog.Float64("discount", sale.Discount),
		slog.Time("start", sale.StartTime),
		slog.Time("end", sale.EndTime),
	)

	return sale, nil
}

// Reschedule moves the window of an existing sale.
func (s *flashSaleService) Reschedule(ctx context.Context, actor *entity.User, id string, start, end time.Time) (*entity.FlashSale, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if !entity.IsValidID(id) {
		return nil, domainerrors.ErrInvalidID.WithDetails(id)
	}
	if !end.After(start) {
		return nil, domainerrors.ErrInvalidSaleWindow
	}

	if err := s.flashSaleRepo.UpdateSchedule(ctx, id, start.UTC(), end.UTC()); err != nil {
		return nil, mapFlashSaleError(err, "update schedule")
	}

	sale, err := s.flashSaleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFlashSaleError(err, "find flash sale")
	}

	return sale, nil
}

func mapFlashSaleError(err error, action string) error {
	if errors.Is(err, repository.ErrFlashSaleNotFound) {
		return errors.Wrap(domainerrors.ErrFlashSaleNotFound, action)
	}

	return domainerrors.NewDatabaseExecuteError(err, action)
}
