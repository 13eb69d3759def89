// Package memory is an in-process document store with the same semantics as the MongoDB adapter.
// It backs local runs without a database and the end-to-end router tests.
package memory

import (
	"slices"
	"strings"
	"sync"
	"time"

	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds every collection behind a single lock.
type Store struct {
	mu         sync.RWMutex
	products   map[string]*entity.Product
	users      map[string]*entity.User // keyed by email
	flashSales map[string]*entity.FlashSale
	orders     map[string]*entity.Order
	now        func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		products:   make(map[string]*entity.Product),
		users:      make(map[string]*entity.User),
		flashSales: make(map[string]*entity.FlashSale),
		orders:     make(map[string]*entity.Order),
		now:        time.Now,
	}
}

// newID returns a key in the same format the MongoDB adapter produces.
func newID() string {
	return primitive.NewObjectID().Hex()
}

func checkID(id string) error {
	if !entity.IsValidID(id) {
		return repository.ErrInvalidID
	}

	return nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func matchesProduct(p *entity.Product, filter repository.ProductFilter) bool {
	if filter.Search != "" && !containsFold(p.Name, filter.Search) {
		return false
	}
	if filter.Category != "" && !containsFold(p.Category, filter.Category) {
		return false
	}
	if filter.SubCategory != "" && !containsFold(p.SubCategory, filter.SubCategory) {
		return false
	}
	if filter.Brand != "" && p.Brand != filter.Brand {
		return false
	}

	return true
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p

	return &c
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.Wishlist = slices.Clone(u.Wishlist)
	c.Cart = slices.Clone(u.Cart)
	if c.Wishlist == nil {
		c.Wishlist = []string{}
	}
	if c.Cart == nil {
		c.Cart = []string{}
	}

	return &c
}

func cloneFlashSale(f *entity.FlashSale) *entity.FlashSale {
	c := *f
	c.ProductIDs = slices.Clone(f.ProductIDs)

	return &c
}

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Items = slices.Clone(o.Items)

	return &c
}
