package memory

import (
	"cmp"
	"context"
	"slices"

	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/domain/repository"
)

type orderRepository struct {
	store *Store
}

// NewOrderRepository returns an OrderRepository backed by store.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (repo *orderRepository) Create(_ context.Context, order *entity.Order) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	order.ID = newID()
	repo.store.orders[order.ID] = cloneOrder(order)

	return nil
}

func (repo *orderRepository) FindByID(_ context.Context, id string) (*entity.Order, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	o, ok := repo.store.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return cloneOrder(o), nil
}

func (repo *orderRepository) FindByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	out := make([]*entity.Order, 0)
	for _, o := range repo.store.orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	slices.SortFunc(out, func(a, b *entity.Order) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})

	return out, nil
}
