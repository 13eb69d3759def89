// Package persistence selects the document store backend and exposes its repositories to Fx.
package persistence

import (
	"log/slog"

	"gadgetshop/config"
	"gadgetshop/internal/domain/constants"
	"gadgetshop/internal/domain/repository"
	"gadgetshop/internal/errors"
	"gadgetshop/internal/infra/persistence/memory"
	"gadgetshop/internal/infra/persistence/mongo"

	"go.uber.org/fx"
)

// Params holds dependencies for the store, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of store ports handed to the usecases
type Repositories struct {
	fx.Out

	ProductRepo   repository.ProductRepository
	UserRepo      repository.UserRepository
	FlashSaleRepo repository.FlashSaleRepository
	OrderRepo     repository.OrderRepository
}

// NewRepositories builds the repositories of the configured store driver
func NewRepositories(params Params) (Repositories, error) {
	switch params.Config.Store.Driver {
	case constants.StoreDriverMongo:
		db, err := mongo.New(mongo.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			ProductRepo:   mongo.NewProductRepository(db),
			UserRepo:      mongo.NewUserRepository(db),
			FlashSaleRepo: mongo.NewFlashSaleRepository(db),
			OrderRepo:     mongo.NewOrderRepository(db),
		}, nil

	case constants.StoreDriverMemory:
		params.Logger.Warn("Using in-memory store, data is lost on restart")

		return NewMemoryRepositories(memory.NewStore()), nil

	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", params.Config.Store.Driver)
	}
}

// NewMemoryRepositories wires every repository to the same in-memory store
func NewMemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		ProductRepo:   memory.NewProductRepository(store),
		UserRepo:      memory.NewUserRepository(store),
		FlashSaleRepo: memory.NewFlashSaleRepository(store),
		OrderRepo:     memory.NewOrderRepository(store),
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
