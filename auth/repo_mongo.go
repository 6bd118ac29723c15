package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAccountRepository struct {
	collection *mongo.Collection
}

func NewMongoAccountRepository(c *mongo.Collection) Repository {
	return &mongoAccountRepository{collection: c}
}

// EnsureIndexes creates the unique indexes backing the username and
// email invariants. Call once at startup, before serving.
func EnsureIndexes(ctx context.Context, c *mongo.Collection) error {
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

func (m *mongoAccountRepository) FindByID(ctx context.Context, id ID) (*Account, error) {
	return m.findOne(ctx, bson.M{"_id": string(id)})
}

func (m *mongoAccountRepository) FindByName(ctx context.Context, username string) (*Account, error) {
	return m.findOne(ctx, bson.M{"username": username})
}

func (m *mongoAccountRepository) FindByNameOrEmail(ctx context.Context, username, email string) (*Account, error) {
	return m.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
}

func (m *mongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*Account, error) {
	var acc Account
	if err := m.collection.FindOne(ctx, filter).Decode(&acc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (m *mongoAccountRepository) Store(ctx context.Context, acc *Account) error {
	if _, err := m.collection.InsertOne(ctx, acc); err != nil {
		// A concurrent registration may have slipped past the service's
		// existence check; the unique index reports it here.
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateAccount
		}
		return err
	}
	return nil
}
