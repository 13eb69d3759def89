package impl

import (
	"strings"

	"gadgetshop/internal/domain/entity"
	domainerrors "gadgetshop/internal/domain/errors"
	"gadgetshop/internal/errors"
)

// requireSelfOrAdmin allows actor to act on resources belonging to email.
func requireSelfOrAdmin(actor *entity.User, email string) error {
	if actor == nil {
		return domainerrors.ErrUnauthorized
	}
	if actor.IsAdmin() || strings.EqualFold(actor.Email, email) {
		return nil
	}

	return errors.Wrap(domainerrors.ErrForbidden, "not the owner")
}

// requireSelfOrAdminByID is requireSelfOrAdmin keyed by user id.
func requireSelfOrAdminByID(actor *entity.User, userID string) error {
	if actor == nil {
		return domainerrors.ErrUnauthorized
	}
	if actor.IsAdmin() || actor.ID == userID {
		return nil
	}

	return errors.Wrap(domainerrors.ErrForbidden, "not the owner")
}

// requireRole allows actor only when it holds one of roles.
func requireRole(actor *entity.User, roles ...entity.Role) error {
	if actor == nil {
		return domainerrors.ErrUnauthorized
	}
	if !actor.HasRole(roles...) {
		return errors.Wrapf(domainerrors.ErrForbidden, "role %s not allowed", actor.Role)
	}

	return nil
}
