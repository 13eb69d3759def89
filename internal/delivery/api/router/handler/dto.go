package handler

import (
	"time"

	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/usecase"
)

// ProductResponse is the wire shape of a product. Keys follow the document field names.
type ProductResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	SubCategory string    `json:"sub_category"`
	Brand       string    `json:"brand"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image,omitempty"`
	Stock       int       `json:"stock"`
	OwnerEmail  string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DiscountedProductResponse is a product priced under the active flash sale.
type DiscountedProductResponse struct {
	ProductResponse
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

// UserResponse is the wire shape of a user account.
type UserResponse struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo,omitempty"`
	Role      string    `json:"role"`
	Wishlist  []string  `json:"wishlist"`
	Cart      []string  `json:"cart"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"price"`
	Discounted bool    `json:"discounted"`
}

// OrderResponse is the wire shape of an order.
type OrderResponse struct {
	ID        string              `json:"_id"`
	UserID    string              `json:"userId"`
	UserEmail string              `json:"email"`
	Items     []OrderItemResponse `json:"items"`
	Total     float64             `json:"total"`
	CreatedAt time.Time           `json:"createdAt"`
}

// FlashSaleResponse is the wire shape of a flash sale record.
type FlashSaleResponse struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	ProductIDs []string  `json:"products"`
	Discount   float64   `json:"discount"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProductListResponse is the catalog page.
type ProductListResponse struct {
	Products      []ProductResponse `json:"products"`
	Brands        []string          `json:"brands"`
	Categories    []string          `json:"categories"`
	TotalProducts int64             `json:"totalProducts"`
	Page          int               `json:"page"`
	Limit         int               `json:"limit"`
}

// PaginationResponse describes an in-memory paginated result.
type PaginationResponse struct {
	TotalProducts int `json:"totalProducts"`
	TotalPages    int `json:"totalPages"`
	CurrentPage   int `json:"currentPage"`
	PageSize      int `json:"pageSize"`
}

// FlashSaleProductsResponse is the flash-sale listing. Outside the active state only
// the message, state and _id fields carry information.
type FlashSaleProductsResponse struct {
	ID            string                      `json:"_id,omitempty"`
	State         string                      `json:"state"`
	Message       string                      `json:"message"`
	Name          string                      `json:"name,omitempty"`
	Products      []DiscountedProductResponse `json:"products"`
	TotalProducts int                         `json:"totalProducts"`
	TotalResolved int                         `json:"totalResolved"`
	Pagination    *PaginationResponse         `json:"pagination,omitempty"`
	Discount      float64                     `json:"discount,omitempty"`
	EndTime       *time.Time                  `json:"endTime,omitempty"`
	TimeRemaining string                      `json:"timeRemaining,omitempty"`
}

// ModifiedResponse acknowledges a set-membership change.
type ModifiedResponse struct {
	Modified bool `json:"modified"`
}

// MessageResponse is a plain acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}

func toProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Brand:       p.Brand,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		OwnerEmail:  p.OwnerEmail,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	return out
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role.String(),
		Wishlist:  nonNil(u.Wishlist),
		Cart:      nonNil(u.Cart),
		CreatedAt: u.CreatedAt,
	}
}

func toOrderResponse(o *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:  item.ProductID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Discounted: item.Discounted,
		})
	}

	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		UserEmail: o.UserEmail,
		Items:     items,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}

func toFlashSaleResponse(f *entity.FlashSale) FlashSaleResponse {
	return FlashSaleResponse{
		ID:         f.ID,
		Name:       f.Name,
		ProductIDs: nonNil(f.ProductIDs),
		Discount:   f.Discount,
		StartTime:  f.StartTime,
		EndTime:    f.EndTime,
		CreatedAt:  f.CreatedAt,
	}
}

func toFlashSaleProductsResponse(out *usecase.FlashSaleProductsOutput) FlashSaleProductsResponse {
	products := make([]DiscountedProductResponse, 0, len(out.Products))
	for _, dp := range out.Products {
		products = append(products, DiscountedProductResponse{
			ProductResponse: toProductResponse(dp.Product),
			OriginalPrice:   dp.OriginalPrice,
			DiscountedPrice: dp.DiscountedPrice,
		})
	}

	resp := FlashSaleProductsResponse{
		ID:            out.FlashSaleID,
		State:         string(out.State),
		Message:       out.Message,
		Name:          out.Name,
		Products:      products,
		TotalProducts: out.TotalProducts,
		TotalResolved: out.TotalResolved,
		Discount:      out.Discount,
		TimeRemaining: out.TimeRemaining,
	}

	if out.Pagination.CurrentPage > 0 {
		resp.Pagination = &PaginationResponse{
			TotalProducts: out.Pagination.TotalProducts,
			TotalPages:    out.Pagination.TotalPages,
			CurrentPage:   out.Pagination.CurrentPage,
			PageSize:      out.Pagination.PageSize,
		}
	}
	if !out.EndTime.IsZero() {
		endTime := out.EndTime
		resp.EndTime = &endTime
	}

	return resp
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
