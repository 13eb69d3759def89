package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gadgetshop/config"
	apimiddleware "gadgetshop/internal/delivery/api/middleware"
	"gadgetshop/internal/delivery/api/router"
	"gadgetshop/internal/delivery/api/router/handler"
	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/domain/service"
	"gadgetshop/internal/infra/auth"
	"gadgetshop/internal/infra/persistence"
	"gadgetshop/internal/infra/persistence/memory"
	mockService "gadgetshop/internal/mocks/service"
	"gadgetshop/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testShop struct {
	t         *testing.T
	echo      *echo.Echo
	repos     persistence.Repositories
	tokens    service.TokenService
	publisher *mockService.MockEventPublisher
}

func newTestShop(t *testing.T) *testShop {
	t.Helper()

	cfg := &config.Config{
		Auth:    &config.AuthConfig{TokenTTL: time.Hour},
		Catalog: &config.CatalogConfig{DefaultPageSize: 9, MaxPageSize: 60},
	}
	cfg.SecretKey.Access = "test-secret"
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repos := persistence.NewMemoryRepositories(memory.NewStore())

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil).Maybe()

	authUC := impl.NewAuthService(tokens, repos.UserRepo, cfg)
	orderParams := impl.OrderServiceParams{
		OrderRepo:      repos.OrderRepo,
		ProductRepo:    repos.ProductRepo,
		FlashSaleRepo:  repos.FlashSaleRepo,
		UserRepo:       repos.UserRepo,
		EventPublisher: publisher,
		Logger:         logger,
	}

	routerParams := router.RouterParams{
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: impl.NewCatalogService(impl.CatalogServiceParams{
				ProductRepo:   repos.ProductRepo,
				FlashSaleRepo: repos.FlashSaleRepo,
				Config:        cfg,
				Logger:        logger,
			}),
			Logger: logger,
		}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: impl.NewProductService(repos.ProductRepo, repos.UserRepo, logger),
			Logger:    logger,
		}),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: impl.NewUserService(repos.UserRepo, logger),
			AuthUC: authUC,
			Logger: logger,
		}),
		CollectionHandler: handler.NewCollectionHandler(handler.CollectionHandlerParams{
			CollectionUC: impl.NewCollectionService(repos.UserRepo, repos.ProductRepo, logger),
			Logger:       logger,
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC: impl.NewOrderService(orderParams),
			Logger:  logger,
		}),
		FlashSaleHandler: handler.NewFlashSaleHandler(handler.FlashSaleHandlerParams{
			FlashSaleUC: impl.NewFlashSaleService(repos.FlashSaleRepo, logger),
			Logger:      logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(authUC),
	}

	return &testShop{
		t:         t,
		echo:      newEcho(cfg, logger, routerParams),
		repos:     repos,
		tokens:    tokens,
		publisher: publisher,
	}
}

// seedUser stores a user directly, which is the only way to get an admin.
func (s *testShop) seedUser(email string, role entity.Role) (*entity.User, string) {
	s.t.Helper()

	user := &entity.User{Email: email, Name: email, Role: role, CreatedAt: time.Now()}
	require.NoError(s.t, s.repos.UserRepo.Create(context.Background(), user))

	token, _, err := s.tokens.GenerateToken(email)
	require.NoError(s.t, err)

	return user, token
}

func (s *testShop) seedProduct(name, category, brand string, price float64, owner string) *entity.Product {
	s.t.Helper()

	product := &entity.Product{
		Name:       name,
		Category:   category,
		Brand:      brand,
		Price:      price,
		OwnerEmail: owner,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	require.NoError(s.t, s.repos.ProductRepo.Create(context.Background(), product))

	return product
}

func (s *testShop) do(method, target, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.Nil(t, env.Error, rec.Body.String())

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.NotNil(t, env.Error, rec.Body.String())

	return env.Error.Code
}

func TestRouter_HealthRoutes(t *testing.T) {
	shop := newTestShop(t)

	rec := shop.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server is running")

	rec = shop.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRouter_TokenThenRegister(t *testing.T) {
	shop := newTestShop(t)

	rec := shop.do(http.MethodPost, "/jsonwebtoken", "", map[string]string{"email": "Alice@Example.com"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decode[handler.TokenResponse](t, rec).Token
	require.NotEmpty(t, token)

	// The token is valid but the account does not exist yet.
	rec = shop.do(http.MethodGet, "/user/alice@example.com", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = shop.do(http.MethodPost, "/user", "", map[string]string{"email": "alice@example.com", "name": "Alice"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	user := decode[handler.UserResponse](t, rec)
	assert.Equal(t, "buyer", user.Role)
	assert.Empty(t, user.Cart)

	rec = shop.do(http.MethodPost, "/user", "", map[string]string{"email": "alice@example.com"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, rec))

	rec = shop.do(http.MethodGet, "/user/alice@example.com", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "alice@example.com", decode[handler.UserResponse](t, rec).Email)
}

func TestRouter_RegisterRejectsAdminAndBadInput(t *testing.T) {
	shop := newTestShop(t)

	rec := shop.do(http.MethodPost, "/user", "", map[string]string{"email": "eve@example.com", "role": "admin"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ROLE_NOT_ALLOWED", errorCode(t, rec))

	rec = shop.do(http.MethodPost, "/user", "", map[string]string{"email": "eve@example.com", "role": "root"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	rec = shop.do(http.MethodPost, "/user", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestRouter_AuthFailures(t *testing.T) {
	shop := newTestShop(t)
	_, _ = shop.seedUser("bob@example.com", entity.RoleBuyer)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{name: "missing header", header: "", code: "MISSING_TOKEN"},
		{name: "not a bearer token", header: "Basic abc", code: "INVALID_TOKEN"},
		{name: "garbage token", header: "Bearer not.a.jwt", code: "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user/bob@example.com", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			shop.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestRouter_UserAccessIsSelfOrAdmin(t *testing.T) {
	shop := newTestShop(t)
	_, bobToken := shop.seedUser("bob@example.com", entity.RoleBuyer)
	_, _ = shop.seedUser("carol@example.com", entity.RoleBuyer)
	_, adminToken := shop.seedUser("admin@example.com", entity.RoleAdmin)

	rec := shop.do(http.MethodGet, "/user/carol@example.com", bobToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = shop.do(http.MethodGet, "/user/carol@example.com", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = shop.do(http.MethodGet, "/user/nobody@example.com", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", errorCode(t, rec))
}

func TestRouter_UpdateRole(t *testing.T) {
	shop := newTestShop(t)
	_, bobToken := shop.seedUser("bob@example.com", entity.RoleBuyer)
	_, adminToken := shop.seedUser("admin@example.com", entity.RoleAdmin)

	rec := shop.do(http.MethodPatch, "/users/bob@example.com/role", bobToken, map[string]string{"role": "admin"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = shop.do(http.MethodPatch, "/users/bob@example.com/role", adminToken, map[string]string{"role": "superuser"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = shop.do(http.MethodPatch, "/users/bob@example.com/role", adminToken, map[string]string{"role": "seller"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "seller", decode[handler.UserResponse](t, rec).Role)

	// The new role applies to the next request with the same token.
	rec = shop.do(http.MethodPost, "/add-product", bobToken, map[string]any{
		"name": "Phone", "category": "Mobile", "brand": "Acme", "price": 100,
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRouter_ListProducts(t *testing.T) {
	shop := newTestShop(t)
	shop.seedProduct("Galaxy Phone", "Mobile", "Samsung", 800, "s@example.com")
	shop.seedProduct("Pixel Phone", "Mobile", "Google", 700, "s@example.com")
	shop.seedProduct("ThinkPad", "Laptop", "Lenovo", 1200, "s@example.com")
	shop.seedProduct("Phone Case (Pro)", "Accessory", "Generic", 20, "s@example.com")

	t.Run("default sort is price descending", func(t *testing.T) {
		rec := shop.do(http.MethodGet, "/all-product", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		out := decode[handler.ProductListResponse](t, rec)
		require.Len(t, out.Products, 4)
		assert.Equal(t, "ThinkPad", out.Products[0].Name)
		assert.Equal(t, "Phone Case (Pro)", out.Products[3].Name)
		assert.Equal(t, int64(4), out.TotalProducts)
		assert.Equal(t, 1, out.Page)
		assert.Equal(t, 9, out.Limit)
	})

	t.Run("search is a case-insensitive substring", func(t *testing.T) {
		rec := shop.do(http.MethodGet, "/all-product?search=phone&sort=asc", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		out := decode[handler.ProductListResponse](t, rec)
		require.Len(t, out.Products, 3)
		assert.Equal(t, "Phone Case (Pro)", out.Products[0].Name)
		assert.Equal(t, int64(3), out.TotalProducts)
	})

	t.Run("regex metacharacters are literal", func(t *testing.T) {
		rec := shop.do(http.MethodGet, "/all-product?search=(pro)", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		out := decode[handler.ProductListResponse](t, rec)
		require.Len(t, out.Products, 1)
		assert.Equal(t, "Phone Case (Pro)", out.Products[0].Name)
	})

	t.Run("brand is exact and facets come from the page", func(t *testing.T) {
		rec := shop.do(http.MethodGet, "/all-product?brand=Google", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		out := decode[handler.ProductListResponse](t, rec)
		require.Len(t, out.Products, 1)
		assert.Equal(t, []string{"Google"}, out.Brands)
		assert.Equal(t, []string{"Mobile"}, out.Categories)
	})

	t.Run("pagination", func(t *testing.T) {
		rec := shop.do(http.MethodGet, "/all-product?page=2&limit=3", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		out := decode[handler.ProductListResponse](t, rec)
		require.Len(t, out.Products, 1)
		assert.Equal(t, int64(4), out.TotalProducts)
	})

	t.Run("page far past the end is empty", func(t *testing.T) {
		rec := shop.do(http.MethodGet, "/all-product?page=2000000000000000000", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		out := decode[handler.ProductListResponse](t, rec)
		assert.Empty(t, out.Products)
		assert.Equal(t, int64(4), out.TotalProducts)
	})

	t.Run("invalid sort", func(t *testing.T) {
		rec := shop.do(http.MethodGet, "/all-product?sort=sideways", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty result", func(t *testing.T) {
		rec := shop.do(http.MethodGet, "/all-product?category=fridge", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		out := decode[handler.ProductListResponse](t, rec)
		assert.Empty(t, out.Products)
		assert.NotNil(t, out.Brands)
		assert.Equal(t, int64(0), out.TotalProducts)
	})
}

func TestRouter_GetProduct(t *testing.T) {
	shop := newTestShop(t)
	product := shop.seedProduct("Phone", "Mobile", "Acme", 100, "s@example.com")

	rec := shop.do(http.MethodGet, "/all-product/"+product.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, product.ID, decode[handler.ProductResponse](t, rec).ID)

	rec = shop.do(http.MethodGet, "/all-product/000000000000000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errorCode(t, rec))

	rec = shop.do(http.MethodGet, "/all-product/nope", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, rec))
}

func TestRouter_ProductManagement(t *testing.T) {
	shop := newTestShop(t)
	_, sellerToken := shop.seedUser("seller@example.com", entity.RoleSeller)
	_, otherToken := shop.seedUser("other@example.com", entity.RoleSeller)
	_, buyerToken := shop.seedUser("buyer@example.com", entity.RoleBuyer)

	body := map[string]any{"name": "Tablet", "category": "Tablet", "brand": "Acme", "price": 300, "stock": 5}

	rec := shop.do(http.MethodPost, "/add-product", buyerToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = shop.do(http.MethodPost, "/add-product", sellerToken, map[string]any{"name": "No price"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	rec = shop.do(http.MethodPost, "/add-product", sellerToken, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[handler.ProductResponse](t, rec)
	assert.Equal(t, "seller@example.com", created.OwnerEmail)

	rec = shop.do(http.MethodPut, "/update-product/"+created.ID, otherToken, map[string]any{"price": 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = shop.do(http.MethodPut, "/update-product/"+created.ID, sellerToken, map[string]any{"price": 250})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[handler.ProductResponse](t, rec)
	assert.InDelta(t, 250, updated.Price, 0.0001)
	assert.Equal(t, "Tablet", updated.Name)

	rec = shop.do(http.MethodGet, "/manage-products/seller@example.com", sellerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]handler.ProductResponse](t, rec), 1)

	rec = shop.do(http.MethodGet, "/manage-products/seller@example.com", otherToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = shop.do(http.MethodDelete, "/delete-product/"+created.ID, sellerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = shop.do(http.MethodDelete, "/delete-product/"+created.ID, sellerToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_WishlistAndCart(t *testing.T) {
	shop := newTestShop(t)
	_, bobToken := shop.seedUser("bob@example.com", entity.RoleBuyer)
	bob, err := shop.repos.UserRepo.FindByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	_, carolToken := shop.seedUser("carol@example.com", entity.RoleBuyer)
	product := shop.seedProduct("Phone", "Mobile", "Acme", 100, "s@example.com")

	for _, list := range []string{"wishlist", "cart"} {
		t.Run(list, func(t *testing.T) {
			add := map[string]string{"productId": product.ID}

			rec := shop.do(http.MethodPatch, "/add-"+list, bobToken, add)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.True(t, decode[handler.ModifiedResponse](t, rec).Modified)

			rec = shop.do(http.MethodPatch, "/add-"+list, bobToken, add)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.False(t, decode[handler.ModifiedResponse](t, rec).Modified)

			rec = shop.do(http.MethodGet, fmt.Sprintf("/%s/%s", list, bob.ID), bobToken, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			products := decode[[]handler.ProductResponse](t, rec)
			require.Len(t, products, 1)
			assert.Equal(t, product.ID, products[0].ID)

			rec = shop.do(http.MethodGet, fmt.Sprintf("/%s/%s", list, bob.ID), carolToken, nil)
			assert.Equal(t, http.StatusForbidden, rec.Code)

			rec = shop.do(http.MethodPatch, "/add-"+list, carolToken, map[string]string{
				"userEmail": "bob@example.com", "productId": product.ID,
			})
			assert.Equal(t, http.StatusForbidden, rec.Code)

			rec = shop.do(http.MethodPatch, "/remove-"+list, bobToken, add)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, decode[handler.ModifiedResponse](t, rec).Modified)

			rec = shop.do(http.MethodPatch, "/remove-"+list, bobToken, add)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.False(t, decode[handler.ModifiedResponse](t, rec).Modified)
		})
	}

	rec := shop.do(http.MethodPatch, "/add-cart", bobToken, map[string]string{"productId": "bad"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = shop.do(http.MethodPatch, "/add-cart", bobToken, map[string]string{"productId": "000000000000000000000000"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_FlashSaleLifecycle(t *testing.T) {
	shop := newTestShop(t)
	_, adminToken := shop.seedUser("admin@example.com", entity.RoleAdmin)
	_, buyerToken := shop.seedUser("buyer@example.com", entity.RoleBuyer)
	phone := shop.seedProduct("Phone", "Mobile", "Acme", 200, "s@example.com")
	laptop := shop.seedProduct("Laptop", "Laptop", "Acme", 1000, "s@example.com")

	rec := shop.do(http.MethodGet, "/flash-sale", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "none", decode[handler.FlashSaleProductsResponse](t, rec).State)

	now := time.Now().UTC()
	sale := map[string]any{
		"name":      "Weekend",
		"products":  []string{phone.ID, laptop.ID},
		"discount":  25,
		"startTime": now.Add(time.Hour),
		"endTime":   now.Add(2 * time.Hour),
	}

	rec = shop.do(http.MethodPost, "/flash-sale", buyerToken, sale)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = shop.do(http.MethodPost, "/flash-sale", adminToken, sale)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[handler.FlashSaleResponse](t, rec)

	rec = shop.do(http.MethodGet, "/flash-sale", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inactive := decode[handler.FlashSaleProductsResponse](t, rec)
	assert.Equal(t, "inactive", inactive.State)
	assert.Equal(t, created.ID, inactive.ID)

	rec = shop.do(http.MethodPatch, "/flash-sale/"+created.ID+"/schedule", adminToken, map[string]any{
		"startTime": now.Add(-time.Hour),
		"endTime":   now.Add(time.Hour),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = shop.do(http.MethodGet, "/flash-sale?limit=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	active := decode[handler.FlashSaleProductsResponse](t, rec)
	assert.Equal(t, "active", active.State)
	assert.Equal(t, 2, active.TotalProducts)
	require.Len(t, active.Products, 1)
	require.NotNil(t, active.Pagination)
	assert.Equal(t, 2, active.Pagination.TotalPages)

	rec = shop.do(http.MethodGet, "/flash-sale?page=2000000000000000000", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	farPage := decode[handler.FlashSaleProductsResponse](t, rec)
	assert.Equal(t, "active", farPage.State)
	assert.Empty(t, farPage.Products)
	assert.Equal(t, 2, farPage.TotalProducts)

	rec = shop.do(http.MethodGet, "/flash-sale?search=laptop", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	searched := decode[handler.FlashSaleProductsResponse](t, rec)
	require.Len(t, searched.Products, 1)
	assert.InDelta(t, 1000, searched.Products[0].OriginalPrice, 0.0001)
	assert.InDelta(t, 750, searched.Products[0].DiscountedPrice, 0.0001)

	rec = shop.do(http.MethodPatch, "/flash-sale/"+created.ID+"/schedule", adminToken, map[string]any{
		"startTime": now.Add(time.Hour),
		"endTime":   now,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_SALE_WINDOW", errorCode(t, rec))
}

func TestRouter_PurchaseAndOrders(t *testing.T) {
	shop := newTestShop(t)
	buyer, buyerToken := shop.seedUser("buyer@example.com", entity.RoleBuyer)
	_, otherToken := shop.seedUser("other@example.com", entity.RoleBuyer)
	phone := shop.seedProduct("Phone", "Mobile", "Acme", 200, "s@example.com")
	cable := shop.seedProduct("Cable", "Accessory", "Acme", 10, "s@example.com")

	now := time.Now()
	require.NoError(t, shop.repos.FlashSaleRepo.Create(context.Background(), &entity.FlashSale{
		Name:       "Now",
		ProductIDs: []string{phone.ID},
		Discount:   50,
		StartTime:  now.Add(-time.Hour),
		EndTime:    now.Add(time.Hour),
		CreatedAt:  now,
	}))

	rec := shop.do(http.MethodPost, "/purchase", buyerToken, map[string]any{"productIds": []string{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = shop.do(http.MethodPost, "/purchase", buyerToken, map[string]any{
		"productIds": []string{phone.ID, "000000000000000000000000"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = shop.do(http.MethodPost, "/purchase", buyerToken, map[string]any{"productIds": []string{phone.ID, cable.ID}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decode[handler.OrderResponse](t, rec)
	assert.Equal(t, buyer.ID, order.UserID)
	assert.InDelta(t, 110, order.Total, 0.0001)
	require.Len(t, order.Items, 2)

	shop.publisher.AssertCalled(t, "PublishOrderPlaced", mock.Anything, mock.MatchedBy(func(e *service.OrderPlacedEvent) bool {
		return e.OrderID == order.ID && e.UserEmail == "buyer@example.com"
	}))

	rec = shop.do(http.MethodGet, "/my-order/"+buyer.ID, buyerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decode[[]handler.OrderResponse](t, rec)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	rec = shop.do(http.MethodGet, "/my-order/"+buyer.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_UnknownRouteUsesEnvelope(t *testing.T) {
	shop := newTestShop(t)

	rec := shop.do(http.MethodGet, "/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", errorCode(t, rec))
}
