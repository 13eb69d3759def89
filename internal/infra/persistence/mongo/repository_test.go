package mongo

import (
	"context"
	"testing"
	"time"

	"gadgetshop/internal/domain/entity"
	"gadgetshop/internal/domain/repository"
	"gadgetshop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testNamespace = "gadgetshop.test"

func newMockMongo(t *testing.T) *mtest.T {
	t.Helper()

	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestFlashSaleRepository_FindActive(t *testing.T) {
	mt := newMockMongo(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mt.Run("window contains the instant", func(mt *mtest.T) {
		saleID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: saleID},
			{Key: "name", Value: "Spring"},
			{Key: "products", Value: bson.A{"64b7f0c2a1b2c3d4e5f60701"}},
			{Key: "discount", Value: 15.0},
			{Key: "startTime", Value: at.Add(-time.Hour)},
			{Key: "endTime", Value: at.Add(time.Hour)},
		}))

		sale, err := NewFlashSaleRepository(mt.DB).FindActive(context.Background(), at)
		require.NoError(mt, err)
		assert.Equal(mt, saleID.Hex(), sale.ID)
		assert.Equal(mt, []string{"64b7f0c2a1b2c3d4e5f60701"}, sale.ProductIDs)
		assert.InDelta(mt, 15.0, sale.Discount, 0.001)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)

		filter := started.Command.Lookup("filter").Document()
		assert.True(mt, at.Equal(filter.Lookup("startTime", "$lte").Time()))
		assert.True(mt, at.Equal(filter.Lookup("endTime", "$gte").Time()))

		sort, err := bson.Marshal(newestFirst)
		require.NoError(mt, err)
		assert.Equal(mt, bson.Raw(sort), started.Command.Lookup("sort").Document())
	})

	mt.Run("no sale in the window", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		_, err := NewFlashSaleRepository(mt.DB).FindActive(context.Background(), at)
		assert.True(mt, errors.Is(err, repository.ErrFlashSaleNotFound))
	})

	mt.Run("server error is wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "bad filter",
		}))

		_, err := NewFlashSaleRepository(mt.DB).FindActive(context.Background(), at)
		require.Error(mt, err)
		assert.False(mt, errors.Is(err, repository.ErrFlashSaleNotFound))
		assert.Contains(mt, err.Error(), "failed to find active flash sale")
	})
}

func updateResponse(matched, modified int32) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: matched},
		bson.E{Key: "nModified", Value: modified},
	)
}

func TestUserRepository_AddToList(t *testing.T) {
	mt := newMockMongo(t)
	productID := "64b7f0c2a1b2c3d4e5f60701"

	mt.Run("new entry is reported as modified", func(mt *mtest.T) {
		mt.AddMockResponses(updateResponse(1, 1))

		modified, err := NewUserRepository(mt.DB).AddToList(context.Background(), "buyer@shop.test", entity.SavedListWishlist, productID)
		require.NoError(mt, err)
		assert.True(mt, modified)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)
		assert.Equal(mt, "buyer@shop.test", started.Command.Lookup("updates", "0", "q", "email").StringValue())
		assert.Equal(mt, productID, started.Command.Lookup("updates", "0", "u", "$addToSet", "wishlist").StringValue())
	})

	mt.Run("entry already present", func(mt *mtest.T) {
		mt.AddMockResponses(updateResponse(1, 0))

		modified, err := NewUserRepository(mt.DB).AddToList(context.Background(), "buyer@shop.test", entity.SavedListCart, productID)
		require.NoError(mt, err)
		assert.False(mt, modified)
	})

	mt.Run("unknown user", func(mt *mtest.T) {
		mt.AddMockResponses(updateResponse(0, 0))

		_, err := NewUserRepository(mt.DB).AddToList(context.Background(), "ghost@shop.test", entity.SavedListCart, productID)
		assert.True(mt, errors.Is(err, repository.ErrUserNotFound))
	})
}

func TestUserRepository_RemoveFromList(t *testing.T) {
	mt := newMockMongo(t)
	ids := []string{"64b7f0c2a1b2c3d4e5f60701", "64b7f0c2a1b2c3d4e5f60702"}

	mt.Run("pulls every id", func(mt *mtest.T) {
		mt.AddMockResponses(updateResponse(1, 1))

		modified, err := NewUserRepository(mt.DB).RemoveFromList(context.Background(), "buyer@shop.test", entity.SavedListCart, ids...)
		require.NoError(mt, err)
		assert.True(mt, modified)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		in := started.Command.Lookup("updates", "0", "u", "$pull", "cart", "$in").Array()
		values, err := in.Values()
		require.NoError(mt, err)
		require.Len(mt, values, 2)
		assert.Equal(mt, ids[0], values[0].StringValue())
		assert.Equal(mt, ids[1], values[1].StringValue())
	})

	mt.Run("absent entry is not modified", func(mt *mtest.T) {
		mt.AddMockResponses(updateResponse(1, 0))

		modified, err := NewUserRepository(mt.DB).RemoveFromList(context.Background(), "buyer@shop.test", entity.SavedListWishlist, ids[0])
		require.NoError(mt, err)
		assert.False(mt, modified)
	})

	mt.Run("no ids sends nothing", func(mt *mtest.T) {
		modified, err := NewUserRepository(mt.DB).RemoveFromList(context.Background(), "buyer@shop.test", entity.SavedListCart)
		require.NoError(mt, err)
		assert.False(mt, modified)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestProductRepository_Update(t *testing.T) {
	mt := newMockMongo(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	productID := primitive.NewObjectID()

	newRepo := func(mt *mtest.T) *productRepository {
		repo := NewProductRepository(mt.DB).(*productRepository)
		repo.now = func() time.Time { return now }

		return repo
	}

	mt.Run("returns the document after the update", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: productID},
			{Key: "name", Value: "Pocket Speaker"},
			{Key: "brand", Value: "Acme"},
			{Key: "price", Value: 49.5},
			{Key: "updatedAt", Value: now},
		}}))

		name := "Pocket Speaker"
		product, err := newRepo(mt).Update(context.Background(), productID.Hex(), &entity.ProductPatch{Name: &name})
		require.NoError(mt, err)
		assert.Equal(mt, productID.Hex(), product.ID)
		assert.Equal(mt, "Pocket Speaker", product.Name)
		assert.InDelta(mt, 49.5, product.Price, 0.001)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "findAndModify", started.CommandName)
		assert.True(mt, started.Command.Lookup("new").Boolean())
		assert.Equal(mt, productID, started.Command.Lookup("query", "_id").ObjectID())
		assert.Equal(mt, name, started.Command.Lookup("update", "$set", "name").StringValue())
		assert.True(mt, now.Equal(started.Command.Lookup("update", "$set", "updatedAt").Time()))
	})

	mt.Run("missing product", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		stock := 3
		_, err := newRepo(mt).Update(context.Background(), productID.Hex(), &entity.ProductPatch{Stock: &stock})
		assert.True(mt, errors.Is(err, repository.ErrProductNotFound))
	})

	mt.Run("malformed id never reaches the store", func(mt *mtest.T) {
		name := "x"
		_, err := newRepo(mt).Update(context.Background(), "nope", &entity.ProductPatch{Name: &name})
		assert.True(mt, errors.Is(err, repository.ErrInvalidID))
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestProductRepository_Find(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("negative skip is sent as zero", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Earbuds"}, {Key: "price", Value: 30.0}},
		))

		products, err := NewProductRepository(mt.DB).Find(context.Background(), repository.ProductFilter{}, repository.SortAsc, -9, 9)
		require.NoError(mt, err)
		require.Len(mt, products, 1)
		assert.Equal(mt, "Earbuds", products[0].Name)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, int64(0), started.Command.Lookup("skip").Int64())
		assert.Equal(mt, int64(9), started.Command.Lookup("limit").Int64())
	})

	mt.Run("count uses the same predicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(4)}}))

		total, err := NewProductRepository(mt.DB).Count(context.Background(), repository.ProductFilter{Brand: "Acme"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(4), total)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "aggregate", started.CommandName)
		assert.Equal(mt, "Acme", started.Command.Lookup("pipeline", "0", "$match", "brand").StringValue())
	})
}
