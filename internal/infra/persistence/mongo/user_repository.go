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
)

// userRepository implements repository.UserRepository on the 'users' collection.
type userRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(model.UserCollection),
		now:  time.Now,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	return repo.findOne(ctx, bson.M{"_id": oid}, "failed to find user by id")
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email}, "failed to find user by email")
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M, message string) (*entity.User, error) {
	var doc model.UserModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, message)
	}

	return model.ToUserDomain(&doc), nil
}

// Create persists a new user. The unique email index turns a second registration into ErrDuplicateUser.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = repo.now()
	}

	doc := model.FromUserDomain(user)
	doc.ID = primitive.NewObjectID()
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(err, "failed to create user")
	}
	user.ID = doc.ID.Hex()

	return nil
}

// UpdateRole changes the role of the user with email.
func (repo *userRepository) UpdateRole(ctx context.Context, email string, role entity.Role) error {
	result, err := repo.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to update user role")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddToList adds productID to the named list with $addToSet.
func (repo *userRepository) AddToList(ctx context.Context, email string, list entity.SavedList, productID string) (bool, error) {
	update := bson.M{"$addToSet": bson.M{list.String(): productID}}

	return repo.updateList(ctx, email, update, "failed to add to "+list.String())
}

// RemoveFromList removes productIDs from the named list with $pull.
func (repo *userRepository) RemoveFromList(ctx context.Context, email string, list entity.SavedList, productIDs ...string) (bool, error) {
	if len(productIDs) == 0 {
		return false, nil
	}
	update := bson.M{"$pull": bson.M{list.String(): bson.M{"$in": productIDs}}}

	return repo.updateList(ctx, email, update, "failed to remove from "+list.String())
}

func (repo *userRepository) updateList(ctx context.Context, email string, update bson.M, message string) (bool, error) {
	result, err := repo.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return false, errors.Wrap(err, message)
	}
	if result.MatchedCount == 0 {
		return false, repository.ErrUserNotFound
	}

	return result.ModifiedCount > 0, nil
}
