package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gadgetshop/config"
	"gadgetshop/internal/domain/entity"
	domainerrors "gadgetshop/internal/domain/errors"
	"gadgetshop/internal/domain/repository"
	"gadgetshop/internal/errors"
	mockRepo "gadgetshop/internal/mocks/repository"
	"gadgetshop/internal/usecase"
	"gadgetshop/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{DefaultPageSize: 9, MaxPageSize: 50},
	}
}

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service       *catalogService
	productRepo   *mockRepo.MockProductRepository
	flashSaleRepo *mockRepo.MockFlashSaleRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	flashSaleRepo := mockRepo.NewMockFlashSaleRepository(t)

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo:   productRepo,
		FlashSaleRepo: flashSaleRepo,
		Config:        testConfig(),
		Logger:        discardLogger(),
	}).(*catalogService)
	svc.now = func() time.Time { return fixedNow }

	return catalogServiceFixtures{
		service:       svc,
		productRepo:   productRepo,
		flashSaleRepo: flashSaleRepo,
	}
}

func hexID(n byte) string {
	const digits = "0123456789abcdef"
	id := []byte("64b7f0c2a1b2c3d4e5f60700")
	id[22] = digits[n>>4]
	id[23] = digits[n&0x0f]

	return string(id)
}

func TestCatalogService_ListProducts_Defaults(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	products := []*entity.Product{
		{ID: hexID(1), Name: "Phone X", Brand: "Acme", Category: "Phones", Price: 500},
		{ID: hexID(2), Name: "Phone Y", Brand: "Acme", Category: "Phones", Price: 400},
		{ID: hexID(3), Name: "Tab Z", Brand: "Zen", Category: "Tablets", Price: 300},
	}

	fx.productRepo.EXPECT().
		Find(ctx, repository.ProductFilter{}, repository.SortDesc, 0, 9).
		Return(products, nil)
	fx.productRepo.EXPECT().
		Count(ctx, repository.ProductFilter{}).
		Return(int64(12), nil)

	out, err := fx.service.ListProducts(ctx, usecase.ListProductsInput{})
	require.NoError(t, err)

	assert.Equal(t, products, out.Products)
	assert.Equal(t, []string{"Acme", "Zen"}, out.Brands)
	assert.Equal(t, []string{"Phones", "Tablets"}, out.Categories)
	assert.Equal(t, int64(12), out.TotalProducts)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 9, out.Limit)
}

func TestCatalogService_ListProducts_FilterAndPaging(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	filter := repository.ProductFilter{Search: "phone", Category: "pho", SubCategory: "smart", Brand: "Acme"}

	fx.productRepo.EXPECT().
		Find(ctx, filter, repository.SortAsc, 10, 5).
		Return([]*entity.Product{}, nil)
	fx.productRepo.EXPECT().
		Count(ctx, filter).
		Return(int64(10), nil)

	out, err := fx.service.ListProducts(ctx, usecase.ListProductsInput{
		Search:      " phone ",
		Category:    "pho",
		SubCategory: "smart",
		Brand:       "Acme",
		Sort:        "asc",
		Page:        3,
		Limit:       5,
	})
	require.NoError(t, err)
	assert.Empty(t, out.Products)
	assert.Empty(t, out.Brands)
	assert.Equal(t, int64(10), out.TotalProducts)
}

func TestCatalogService_ListProducts_CapsPageSize(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		Find(ctx, repository.ProductFilter{}, repository.SortDesc, 50, 50).
		Return(nil, nil)
	fx.productRepo.EXPECT().
		Count(ctx, repository.ProductFilter{}).
		Return(int64(0), nil)

	out, err := fx.service.ListProducts(ctx, usecase.ListProductsInput{Page: 2, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 50, out.Limit)
}

func TestCatalogService_ListProducts_HugePageDoesNotOverflow(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		Find(ctx, repository.ProductFilter{}, repository.SortDesc, mock.MatchedBy(func(skip int) bool { return skip >= 0 }), 9).
		Return(nil, nil)
	fx.productRepo.EXPECT().
		Count(ctx, repository.ProductFilter{}).
		Return(int64(3), nil)

	out, err := fx.service.ListProducts(ctx, usecase.ListProductsInput{Page: 2_000_000_000_000_000_000})
	require.NoError(t, err)
	assert.Equal(t, util.MaxPage(9), out.Page)
	assert.Empty(t, out.Products)
}

func TestCatalogService_ListProducts_StoreError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		Find(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))

	_, err := fx.service.ListProducts(ctx, usecase.ListProductsInput{})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestCatalogService_GetFlashSaleProducts(t *testing.T) {
	sale := &entity.FlashSale{
		ID:         hexID(100),
		Name:       "Summer",
		ProductIDs: []string{hexID(1), hexID(2), "broken", hexID(3)},
		Discount:   20,
		StartTime:  fixedNow.Add(-time.Hour),
		EndTime:    fixedNow.Add(90 * time.Minute),
	}
	valid := []string{hexID(1), hexID(2), hexID(3)}

	t.Run("discounts and paginates", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.flashSaleRepo.EXPECT().FindActive(ctx, fixedNow).Return(sale, nil)
		fx.productRepo.EXPECT().
			FindByIDs(ctx, valid, "phone").
			Return([]*entity.Product{
				{ID: hexID(1), Price: 100},
				{ID: hexID(2), Price: 250},
				{ID: hexID(3), Price: 0},
			}, nil)

		out, err := fx.service.GetFlashSaleProducts(ctx, usecase.FlashSaleProductsInput{Search: "phone", Page: 1, Limit: 1})
		require.NoError(t, err)

		assert.Equal(t, usecase.FlashSaleStateActive, out.State)
		assert.Equal(t, sale.ID, out.FlashSaleID)
		assert.InDelta(t, 20.0, out.Discount, 1e-9)
		assert.Equal(t, sale.EndTime, out.EndTime)
		assert.Equal(t, "1h30m", out.TimeRemaining)
		assert.Equal(t, 3, out.TotalResolved)
		assert.Equal(t, 2, out.TotalProducts)
		assert.Equal(t, usecase.Pagination{TotalProducts: 2, TotalPages: 2, CurrentPage: 1, PageSize: 1}, out.Pagination)

		require.Len(t, out.Products, 1)
		assert.InDelta(t, 100.0, out.Products[0].OriginalPrice, 1e-9)
		assert.InDelta(t, 80.0, out.Products[0].DiscountedPrice, 1e-9)
	})

	t.Run("no valid product ids short-circuits", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		broken := *sale
		broken.ProductIDs = []string{"nope", ""}
		fx.flashSaleRepo.EXPECT().FindActive(ctx, fixedNow).Return(&broken, nil)

		out, err := fx.service.GetFlashSaleProducts(ctx, usecase.FlashSaleProductsInput{})
		require.NoError(t, err)
		assert.Equal(t, usecase.FlashSaleStateNoProducts, out.State)
		assert.Empty(t, out.Products)
	})

	t.Run("resolved products but none discounted", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		zero := *sale
		zero.Discount = 0
		fx.flashSaleRepo.EXPECT().FindActive(ctx, fixedNow).Return(&zero, nil)
		fx.productRepo.EXPECT().
			FindByIDs(ctx, valid, "").
			Return([]*entity.Product{{ID: hexID(1), Price: 100}}, nil)

		out, err := fx.service.GetFlashSaleProducts(ctx, usecase.FlashSaleProductsInput{})
		require.NoError(t, err)
		assert.Equal(t, usecase.FlashSaleStateNoDiscounted, out.State)
		assert.Equal(t, msgNoDiscountedProduct, out.Message)
		assert.Empty(t, out.Products)
		assert.Equal(t, 1, out.TotalResolved)
	})

	t.Run("inactive sale points at the latest one", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.flashSaleRepo.EXPECT().FindActive(ctx, fixedNow).Return(nil, repository.ErrFlashSaleNotFound)
		fx.flashSaleRepo.EXPECT().FindLatest(ctx).Return(sale, nil)

		out, err := fx.service.GetFlashSaleProducts(ctx, usecase.FlashSaleProductsInput{})
		require.NoError(t, err)
		assert.Equal(t, usecase.FlashSaleStateInactive, out.State)
		assert.Equal(t, sale.ID, out.FlashSaleID)
		assert.Equal(t, msgFlashSaleInactive, out.Message)
	})

	t.Run("no flash sale at all", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.flashSaleRepo.EXPECT().FindActive(ctx, fixedNow).Return(nil, repository.ErrFlashSaleNotFound)
		fx.flashSaleRepo.EXPECT().FindLatest(ctx).Return(nil, repository.ErrFlashSaleNotFound)

		out, err := fx.service.GetFlashSaleProducts(ctx, usecase.FlashSaleProductsInput{})
		require.NoError(t, err)
		assert.Equal(t, usecase.FlashSaleStateNone, out.State)
		assert.Empty(t, out.FlashSaleID)
	})
}
