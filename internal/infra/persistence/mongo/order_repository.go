package mongo

import (
	"context"

	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/domain/repository"
	"gadgetshop/internal/errors"
	"gadgetshop/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements repository.OrderRepository on the 'orders' collection.
type orderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{coll: db.Collection(model.OrderCollection)}
}

// Create persists a new order and assigns its ID.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	doc := model.FromOrderDomain(order)
	doc.ID = primitive.NewObjectID()
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to create order")
	}
	order.ID = doc.ID.Hex()

	return nil
}

// FindByID retrieves a single order.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc model.OrderModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return model.ToOrderDomain(&doc), nil
}

// FindByUser lists the orders of userID, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := repo.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	var docs []model.OrderModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, 0, len(docs))
	for i := range docs {
		orders = append(orders, model.ToOrderDomain(&docs[i]))
	}

	return orders, nil
}
