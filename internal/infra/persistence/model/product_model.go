// Package model holds the document shapes stored in MongoDB and their domain mappers.
package model

import (
	"time"

	"gadgetshop/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductCollection is the collection holding product documents.
const ProductCollection = "products"

// ProductModel mirrors a document of the 'products' collection.
type ProductModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	SubCategory string             `bson:"sub_category"`
	Brand       string             `bson:"brand"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"image,omitempty"`
	Stock       int                `bson:"stock"`
	OwnerEmail  string             `bson:"email"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// ToProductDomain converts a stored document into the domain entity.
func ToProductDomain(m *ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	return &entity.Product{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Category:    m.Category,
		SubCategory: m.SubCategory,
		Brand:       m.Brand,
		Price:       m.Price,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Stock:       m.Stock,
		OwnerEmail:  m.OwnerEmail,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromProductDomain converts the entity into a document. A malformed ID leaves the key empty.
func FromProductDomain(p *entity.Product) *ProductModel {
	m := &ProductModel{
		Name:        p.Name,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Brand:       p.Brand,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		OwnerEmail:  p.OwnerEmail,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(p.ID); err == nil {
		m.ID = oid
	}

	return m
}

// ProductPatchFields returns the document fields a patch sets, keyed by bson name.
func ProductPatchFields(patch *entity.ProductPatch) map[string]any {
	fields := make(map[string]any)
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.SubCategory != nil {
		fields["sub_category"] = *patch.SubCategory
	}
	if patch.Brand != nil {
		fields["brand"] = *patch.Brand
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		fields["image"] = *patch.ImageURL
	}
	if patch.Stock != nil {
		fields["stock"] = *patch.Stock
	}

	return fields
}
