package model

import (
	"time"

	"gadgetshop/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCollection is the collection holding user documents.
const UserCollection = "users"

// UserModel mirrors a document of the 'users' collection. Email carries a unique index.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	PhotoURL  string             `bson:"photo,omitempty"`
	Role      string             `bson:"role"`
	Wishlist  []string           `bson:"wishlist"`
	Cart      []string           `bson:"cart"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// ToUserDomain converts a stored document into the domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID.Hex(),
		Email:     m.Email,
		Name:      m.Name,
		PhotoURL:  m.PhotoURL,
		Role:      entity.Role(m.Role),
		Wishlist:  nonNil(m.Wishlist),
		Cart:      nonNil(m.Cart),
		CreatedAt: m.CreatedAt,
	}
}

// FromUserDomain converts the entity into a document. A malformed ID leaves the key empty.
func FromUserDomain(u *entity.User) *UserModel {
	m := &UserModel{
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role.String(),
		Wishlist:  nonNil(u.Wishlist),
		Cart:      nonNil(u.Cart),
		CreatedAt: u.CreatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(u.ID); err == nil {
		m.ID = oid
	}

	return m
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}
