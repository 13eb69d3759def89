package repository

import (
	"context"
	"time"

	"gadgetshop/internal/domain/entity"
)

// FlashSaleRepository defines the flash sale persistence operations.
type FlashSaleRepository interface {
	// FindActive returns a flash sale whose window contains at, or ErrFlashSaleNotFound.
	FindActive(ctx context.Context, at time.Time) (*entity.FlashSale, error)

	// FindLatest returns the most recently created flash sale, or ErrFlashSaleNotFound.
	FindLatest(ctx context.Context) (*entity.FlashSale, error)

	FindByID(ctx context.Context, id string) (*entity.FlashSale, error)

	// Create persists a new flash sale and assigns its ID.
	Create(ctx context.Context, sale *entity.FlashSale) error

	// UpdateSchedule moves the sale window.
	UpdateSchedule(ctx context.Context, id string, start, end time.Time) error
}
