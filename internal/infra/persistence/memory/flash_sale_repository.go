package memory

import (
	"cmp"
	"context"
	"time"

	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/domain/repository"
)

type flashSaleRepository struct {
	store *Store
}

// NewFlashSaleRepository returns a FlashSaleRepository backed by store.
func NewFlashSaleRepository(store *Store) repository.FlashSaleRepository {
	return &flashSaleRepository{store: store}
}

func (repo *flashSaleRepository) FindActive(_ context.Context, at time.Time) (*entity.FlashSale, error) {
	return repo.newest(func(f *entity.FlashSale) bool { return f.IsActiveAt(at) })
}

func (repo *flashSaleRepository) FindLatest(_ context.Context) (*entity.FlashSale, error) {
	return repo.newest(func(*entity.FlashSale) bool { return true })
}

// newest returns the most recently created sale satisfying match.
func (repo *flashSaleRepository) newest(match func(*entity.FlashSale) bool) (*entity.FlashSale, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var found *entity.FlashSale
	for _, f := range repo.store.flashSales {
		if !match(f) {
			continue
		}
		if found == nil || cmp.Or(f.CreatedAt.Compare(found.CreatedAt), cmp.Compare(f.ID, found.ID)) > 0 {
			found = f
		}
	}
	if found == nil {
		return nil, repository.ErrFlashSaleNotFound
	}

	return cloneFlashSale(found), nil
}

func (repo *flashSaleRepository) FindByID(_ context.Context, id string) (*entity.FlashSale, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	f, ok := repo.store.flashSales[id]
	if !ok {
		return nil, repository.ErrFlashSaleNotFound
	}

	return cloneFlashSale(f), nil
}

func (repo *flashSaleRepository) Create(_ context.Context, sale *entity.FlashSale) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = repo.store.now()
	}
	sale.ID = newID()
	repo.store.flashSales[sale.ID] = cloneFlashSale(sale)

	return nil
}

func (repo *flashSaleRepository) UpdateSchedule(_ context.Context, id string, start, end time.Time) error {
	if err := checkID(id); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	f, ok := repo.store.flashSales[id]
	if !ok {
		return repository.ErrFlashSaleNotFound
	}
	f.StartTime = start
	f.EndTime = end

	return nil
}
