// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gadgetshop/config"
	deliverycontext "gadgetshop/internal/delivery/context"
	"gadgetshop/internal/domain/entity"
	domainerrors "gadgetshop/internal/domain/errors"
	"gadgetshop/internal/domain/repository"
	"gadgetshop/internal/errors"
	"gadgetshop/internal/usecase"
	"gadgetshop/internal/util"

	"go.uber.org/fx"
)

const (
	msgNoFlashSale         = "No flash sale found"
	msgFlashSaleInactive   = "No active flash sale right now, update the schedule of the latest flash sale"
	msgNoValidProducts     = "The active flash sale has no valid products"
	msgNoDiscountedProduct = "No products are discounted in the active flash sale"
	msgFlashSaleActive     = "Flash sale is live"
)

type catalogService struct {
	productRepo   repository.ProductRepository
	flashSaleRepo repository.FlashSaleRepository
	pageSize      int
	maxPageSize   int
	logger        *slog.Logger
	now           func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	FlashSaleRepo repository.FlashSaleRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:   params.ProductRepo,
		flashSaleRepo: params.FlashSaleRepo,
		pageSize:      params.Config.Catalog.DefaultPageSize,
		maxPageSize:   params.Config.Catalog.MaxPageSize,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// ListProducts filters, sorts and pages the product catalog.
func (s *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	page, limit := s.paging(input.Page, input.Limit)
	filter := repository.ProductFilter{
		Search:      strings.TrimSpace(input.Search),
		Category:    strings.TrimSpace(input.Category),
		SubCategory: strings.TrimSpace(input.SubCategory),
		Brand:       strings.TrimSpace(input.Brand),
	}
	sort := repository.ParseSortOrder(input.Sort)

	products, err := s.productRepo.Find(ctx, filter, sort, util.Offset(page, limit), limit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find products")
	}

	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "count products")
	}

	// Facets come from the returned page, not the whole match set
	return &usecase.ListProductsOutput{
		Products:      products,
		Brands:        util.Distinct(products, func(p *entity.Product) string { return p.Brand }),
		Categories:    util.Distinct(products, func(p *entity.Product) string { return p.Category }),
		TotalProducts: total,
		Page:          page,
		Limit:         limit,
	}, nil
}

// GetFlashSaleProducts prices the products of the currently active flash sale.
func (s *catalogService) GetFlashSaleProducts(ctx context.Context, input usecase.FlashSaleProductsInput) (*usecase.FlashSaleProductsOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	now := s.now()
	page, limit := s.paging(input.Page, input.Limit)

	sale, err := s.flashSaleRepo.FindActive(ctx, now)
	if err != nil {
		if errors.Is(err, repository.ErrFlashSaleNotFound) {
			return s.inactiveFlashSale(ctx)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find active flash sale")
	}

	out := &usecase.FlashSaleProductsOutput{
		FlashSaleID: sale.ID,
		Name:        sale.Name,
		Discount:    sale.Discount,
		EndTime:     sale.EndTime,
		Products:    []entity.DiscountedProduct{},
		Pagination:  usecase.Pagination{CurrentPage: page, PageSize: limit},
	}

	ids := entity.ValidIDs(sale.ProductIDs)
	if len(ids) == 0 {
		logger.Warn("Active flash sale has no valid product ids", slog.String("flash_sale_id", sale.ID))
		out.State = usecase.FlashSaleStateNoProducts
		out.Message = msgNoValidProducts

		return out, nil
	}

	products, err := s.productRepo.FindByIDs(ctx, ids, strings.TrimSpace(input.Search))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find flash sale products")
	}

	discounted := make([]entity.DiscountedProduct, 0, len(products))
	for _, p := range products {
		if dp, ok := sale.ApplyDiscount(p); ok {
			discounted = append(discounted, dp)
		}
	}

	out.TotalResolved = len(products)
	out.TotalProducts = len(discounted)
	out.Pagination.TotalProducts = len(discounted)
	out.Pagination.TotalPages = util.TotalPages(len(discounted), limit)
	out.TimeRemaining = util.FormatDuration(sale.EndTime.Sub(now))

	if len(products) > 0 && len(discounted) == 0 {
		out.State = usecase.FlashSaleStateNoDiscounted
		out.Message = msgNoDiscountedProduct

		return out, nil
	}

	out.State = usecase.FlashSaleStateActive
	out.Message = msgFlashSaleActive
	out.Products = util.Paginate(discounted, page, limit)

	return out, nil
}

// inactiveFlashSale points the caller at the most recent sale so its schedule can be updated.
func (s *catalogService) inactiveFlashSale(ctx context.Context) (*usecase.FlashSaleProductsOutput, error) {
	latest, err := s.flashSaleRepo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrFlashSaleNotFound) {
			return &usecase.FlashSaleProductsOutput{
				State:    usecase.FlashSaleStateNone,
				Message:  msgNoFlashSale,
				Products: []entity.DiscountedProduct{},
			}, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find latest flash sale")
	}

	return &usecase.FlashSaleProductsOutput{
		State:       usecase.FlashSaleStateInactive,
		Message:     msgFlashSaleInactive,
		FlashSaleID: latest.ID,
		Name:        latest.Name,
		Products:    []entity.DiscountedProduct{},
	}, nil
}

// paging applies the configured defaults and the page size cap.
func (s *catalogService) paging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.pageSize
	}
	if s.maxPageSize > 0 && limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	// Past this page the skip would overflow. Every such page is empty anyway.
	page = min(page, util.MaxPage(limit))

	return page, limit
}
