package model

import (
	"time"

	"gadgetshop/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlashSaleCollection is the collection holding flash sale documents.
const FlashSaleCollection = "flashSales"

// FlashSaleModel mirrors a document of the 'flashSales' collection.
// Product ids are kept as hex strings, the way clients submit them.
type FlashSaleModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	ProductIDs []string           `bson:"products"`
	Discount   float64            `bson:"discount"`
	StartTime  time.Time          `bson:"startTime"`
	EndTime    time.Time          `bson:"endTime"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

// ToFlashSaleDomain converts a stored document into the domain entity.
func ToFlashSaleDomain(m *FlashSaleModel) *entity.FlashSale {
	if m == nil {
		return nil
	}

	return &entity.FlashSale{
		ID:         m.ID.Hex(),
		Name:       m.Name,
		ProductIDs: nonNil(m.ProductIDs),
		Discount:   m.Discount,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		CreatedAt:  m.CreatedAt,
	}
}

// FromFlashSaleDomain converts the entity into a document.
func FromFlashSaleDomain(f *entity.FlashSale) *FlashSaleModel {
	m := &FlashSaleModel{
		Name:       f.Name,
		ProductIDs: nonNil(f.ProductIDs),
		Discount:   f.Discount,
		StartTime:  f.StartTime,
		EndTime:    f.EndTime,
		CreatedAt:  f.CreatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(f.ID); err == nil {
		m.ID = oid
	}

	return m
}
