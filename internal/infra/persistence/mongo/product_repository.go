package mongo

import (
	"context"
	"time"

	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/domain/repository"
	"gadgetshop/internal/errors"
	"gadgetshop/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository implements repository.ProductRepository on the 'products' collection.
type productRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{
		coll: db.Collection(model.ProductCollection),
		now:  time.Now,
	}
}

// Find returns one page of the products matching filter.
func (repo *productRepository) Find(ctx context.Context, filter repository.ProductFilter, sort repository.SortOrder, skip, limit int) ([]*entity.Product, error) {
	opts := options.Find().
		SetSort(priceSort(sort)).
		SetSkip(int64(max(skip, 0))).
		SetLimit(int64(limit))

	cursor, err := repo.coll.Find(ctx, buildProductFilter(filter), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return decodeProducts(ctx, cursor)
}

// Count returns how many products match filter.
func (repo *productRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	total, err := repo.coll.CountDocuments(ctx, buildProductFilter(filter))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return total, nil
}

// FindByID retrieves a single product.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc model.ProductModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return model.ToProductDomain(&doc), nil
}

// FindByIDs retrieves the products among ids whose name contains search, ordered by key.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []string, search string) ([]*entity.Product, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*entity.Product{}, nil
	}

	query := bson.M{"_id": bson.M{"$in": oids}}
	if search != "" {
		query["name"] = containsInsensitive(search)
	}

	cursor, err := repo.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return decodeProducts(ctx, cursor)
}

// FindByOwner retrieves the products listed by ownerEmail, newest first.
func (repo *productRepository) FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := repo.coll.Find(ctx, bson.M{"email": ownerEmail}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by owner")
	}

	return decodeProducts(ctx, cursor)
}

// Create persists a new product and assigns its ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	now := repo.now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	doc := model.FromProductDomain(product)
	doc.ID = primitive.NewObjectID()
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to create product")
	}
	product.ID = doc.ID.Hex()

	return nil
}

// Update applies patch with $set and returns the document after the update.
func (repo *productRepository) Update(ctx context.Context, id string, patch *entity.ProductPatch) (*entity.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	fields := model.ProductPatchFields(patch)
	fields["updatedAt"] = repo.now()

	var doc model.ProductModel
	err = repo.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return model.ToProductDomain(&doc), nil
}

// Delete removes a product.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	if result.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Product, error) {
	var docs []model.ProductModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		products = append(products, model.ToProductDomain(&docs[i]))
	}

	return products, nil
}
