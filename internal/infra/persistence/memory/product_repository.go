package memory

import (
	"cmp"
	"context"
	"slices"

	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/domain/repository"
)

type productRepository struct {
	store *Store
}

// NewProductRepository returns a ProductRepository backed by store.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

func (repo *productRepository) Find(_ context.Context, filter repository.ProductFilter, sort repository.SortOrder, skip, limit int) ([]*entity.Product, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	matched := repo.match(filter)
	slices.SortFunc(matched, func(a, b *entity.Product) int {
		byPrice := cmp.Compare(a.Price, b.Price)
		if sort == repository.SortDesc {
			byPrice = -byPrice
		}

		return cmp.Or(byPrice, cmp.Compare(a.ID, b.ID))
	})

	skip = max(skip, 0)
	if skip >= len(matched) {
		return []*entity.Product{}, nil
	}
	end := len(matched)
	if limit > 0 && limit < end-skip {
		end = skip + limit
	}

	return matched[skip:end], nil
}

func (repo *productRepository) Count(_ context.Context, filter repository.ProductFilter) (int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	if filter.IsEmpty() {
		return int64(len(repo.store.products)), nil
	}

	return int64(len(repo.match(filter))), nil
}

// match returns copies of the products satisfying filter. Callers hold the lock.
func (repo *productRepository) match(filter repository.ProductFilter) []*entity.Product {
	out := make([]*entity.Product, 0)
	for _, p := range repo.store.products {
		if matchesProduct(p, filter) {
			out = append(out, cloneProduct(p))
		}
	}

	return out
}

func (repo *productRepository) FindByID(_ context.Context, id string) (*entity.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	p, ok := repo.store.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return cloneProduct(p), nil
}

func (repo *productRepository) FindByIDs(_ context.Context, ids []string, search string) ([]*entity.Product, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	filter := repository.ProductFilter{Search: search}
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range entity.ValidIDs(ids) {
		if p, ok := repo.store.products[id]; ok && matchesProduct(p, filter) {
			out = append(out, cloneProduct(p))
		}
	}
	slices.SortFunc(out, func(a, b *entity.Product) int { return cmp.Compare(a.ID, b.ID) })

	return out, nil
}

func (repo *productRepository) FindByOwner(_ context.Context, ownerEmail string) ([]*entity.Product, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	out := make([]*entity.Product, 0)
	for _, p := range repo.store.products {
		if p.OwnerEmail == ownerEmail {
			out = append(out, cloneProduct(p))
		}
	}
	slices.SortFunc(out, func(a, b *entity.Product) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})

	return out, nil
}

func (repo *productRepository) Create(_ context.Context, product *entity.Product) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	now := repo.store.now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	product.ID = newID()
	repo.store.products[product.ID] = cloneProduct(product)

	return nil
}

func (repo *productRepository) Update(_ context.Context, id string, patch *entity.ProductPatch) (*entity.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	p, ok := repo.store.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	applyPatch(p, patch)
	p.UpdatedAt = repo.store.now()

	return cloneProduct(p), nil
}

func (repo *productRepository) Delete(_ context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(repo.store.products, id)

	return nil
}

func applyPatch(p *entity.Product, patch *entity.ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.SubCategory != nil {
		p.SubCategory = *patch.SubCategory
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
}
