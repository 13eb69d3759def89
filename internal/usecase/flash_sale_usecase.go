package usecase

import (
	"context"
	"time"

	"gadgetshop/internal/domain/entity"
)

// CreateFlashSaleInput defines a new flash sale.
type CreateFlashSaleInput struct {
	Name       string
	ProductIDs []string
	Discount   float64
	StartTime  time.Time
	EndTime    time.Time
}

// FlashSaleUsecase defines the admin operations on flash sales.
type FlashSaleUsecase interface {
	CreateFlashSale(ctx context.Context, actor *entity.User, input CreateFlashSaleInput) (*entity.FlashSale, error)

	// Reschedule moves the window of an existing sale.
	Reschedule(ctx context.Context, actor *entity.User, id string, start, end time.Time) (*entity.FlashSale, error)
}
