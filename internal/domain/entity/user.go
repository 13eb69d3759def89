// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// SavedList names one of the product-id sets kept on a user document.
type SavedList string

const (
	// SavedListWishlist is the set of products the user wants to keep an eye on.
	SavedListWishlist SavedList = "wishlist"
	// SavedListCart is the set of products the user intends to buy.
	SavedListCart SavedList = "cart"
)

// String returns the document field name of the list.
func (l SavedList) String() string {
	return string(l)
}

// IsValid checks if the SavedList is a known list.
func (l SavedList) IsValid() bool {
	return l == SavedListWishlist || l == SavedListCart
}

// User is a shop account. Email is the natural key used by bearer tokens.
type User struct {
	ID        string    // Opaque store identifier.
	Email     string    // Unique login identifier carried in the token's email claim.
	Name      string    // Display name.
	PhotoURL  string    // Optional avatar.
	Role      Role      // Authorization role; mutated only by an admin.
	Wishlist  []string  // Product ids, set semantics, may contain stale ids.
	Cart      []string  // Product ids, set semantics, may contain stale ids.
	CreatedAt time.Time // Registration time.
}

// List returns the product ids stored in the named list.
func (u *User) List(list SavedList) []string {
	switch list {
	case SavedListWishlist:
		return u.Wishlist
	case SavedListCart:
		return u.Cart
	default:
		return nil
	}
}

// HasRole reports whether the user holds one of roles.
func (u *User) HasRole(roles ...Role) bool {
	return slices.Contains(roles, u.Role)
}

// IsAdmin is shorthand for HasRole(RoleAdmin).
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
