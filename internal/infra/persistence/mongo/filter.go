package mongo

import (
	"regexp"

	"gadgetshop/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// buildProductFilter turns the catalog predicate into a query document.
// Free text is escaped so it always matches literally.
func buildProductFilter(filter repository.ProductFilter) bson.M {
	query := bson.M{}
	if filter.Search != "" {
		query["name"] = containsInsensitive(filter.Search)
	}
	if filter.Category != "" {
		query["category"] = containsInsensitive(filter.Category)
	}
	if filter.SubCategory != "" {
		query["sub_category"] = containsInsensitive(filter.SubCategory)
	}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}

	return query
}

func containsInsensitive(text string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(text), "$options": "i"}
}

// priceSort orders by price in the requested direction, then by key.
func priceSort(order repository.SortOrder) bson.D {
	direction := -1
	if order == repository.SortAsc {
		direction = 1
	}

	return bson.D{{Key: "price", Value: direction}, {Key: "_id", Value: 1}}
}
