package memory

import (
	"context"
	"slices"

	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/domain/repository"
)

type userRepository struct {
	store *Store
}

// NewUserRepository returns a UserRepository backed by store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, u := range repo.store.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	u, ok := repo.store.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(u), nil
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.users[user.Email]; ok {
		return repository.ErrDuplicateUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = repo.store.now()
	}
	user.ID = newID()
	repo.store.users[user.Email] = cloneUser(user)

	return nil
}

func (repo *userRepository) UpdateRole(_ context.Context, email string, role entity.Role) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	u, ok := repo.store.users[email]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Role = role

	return nil
}

func (repo *userRepository) AddToList(_ context.Context, email string, list entity.SavedList, productID string) (bool, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	u, ok := repo.store.users[email]
	if !ok {
		return false, repository.ErrUserNotFound
	}

	ids := listOf(u, list)
	if slices.Contains(*ids, productID) {
		return false, nil
	}
	*ids = append(*ids, productID)

	return true, nil
}

func (repo *userRepository) RemoveFromList(_ context.Context, email string, list entity.SavedList, productIDs ...string) (bool, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	u, ok := repo.store.users[email]
	if !ok {
		return false, repository.ErrUserNotFound
	}

	ids := listOf(u, list)
	before := len(*ids)
	*ids = slices.DeleteFunc(*ids, func(id string) bool {
		return slices.Contains(productIDs, id)
	})

	return len(*ids) != before, nil
}

func listOf(u *entity.User, list entity.SavedList) *[]string {
	if list == entity.SavedListCart {
		return &u.Cart
	}

	return &u.Wishlist
}
