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

// newestFirst picks the most recently created sale when several match.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}} //nolint:gochecknoglobals

// flashSaleRepository implements repository.FlashSaleRepository on the 'flashSales' collection.
type flashSaleRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewFlashSaleRepository is the constructor for flashSaleRepository.
func NewFlashSaleRepository(db *mongo.Database) repository.FlashSaleRepository {
	return &flashSaleRepository{
		coll: db.Collection(model.FlashSaleCollection),
		now:  time.Now,
	}
}

// FindActive returns the newest sale whose window contains at.
func (repo *flashSaleRepository) FindActive(ctx context.Context, at time.Time) (*entity.FlashSale, error) {
	filter := bson.M{
		"startTime": bson.M{"$lte": at},
		"endTime":   bson.M{"$gte": at},
	}

	return repo.findOne(ctx, filter, "failed to find active flash sale")
}

// FindLatest returns the most recently created sale.
func (repo *flashSaleRepository) FindLatest(ctx context.Context) (*entity.FlashSale, error) {
	return repo.findOne(ctx, bson.M{}, "failed to find latest flash sale")
}

func (repo *flashSaleRepository) FindByID(ctx context.Context, id string) (*entity.FlashSale, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	return repo.findOne(ctx, bson.M{"_id": oid}, "failed to find flash sale by id")
}

func (repo *flashSaleRepository) findOne(ctx context.Context, filter bson.M, message string) (*entity.FlashSale, error) {
	var doc model.FlashSaleModel
	err := repo.coll.FindOne(ctx, filter, options.FindOne().SetSort(newestFirst)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrFlashSaleNotFound
		}

		return nil, errors.Wrap(err, message)
	}

	return model.ToFlashSaleDomain(&doc), nil
}

// Create persists a new flash sale and assigns its ID.
func (repo *flashSaleRepository) Create(ctx context.Context, sale *entity.FlashSale) error {
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = repo.now()
	}

	doc := model.FromFlashSaleDomain(sale)
	doc.ID = primitive.NewObjectID()
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to create flash sale")
	}
	sale.ID = doc.ID.Hex()

	return nil
}

// UpdateSchedule moves the sale window.
func (repo *flashSaleRepository) UpdateSchedule(ctx context.Context, id string, start, end time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"startTime": start, "endTime": end}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update flash sale schedule")
	}
	if result.MatchedCount == 0 {
		return repository.ErrFlashSaleNotFound
	}

	return nil
}
