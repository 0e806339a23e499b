package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store wraps the Mongo client and the four collections the API uses.
// It is constructed once in main and handed to the handlers; nothing
// reads it from package state.
type Store struct {
	Client *mongo.Client
	Name   string

	Users       *mongo.Collection
	Spots       *mongo.Collection
	Itineraries *mongo.Collection
	Reviews     *mongo.Collection
}

// Connect dials MongoDB and pings it before returning a usable Store.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	database := client.Database(dbName)
	return &Store{
		Client:      client,
		Name:        dbName,
		Users:       database.Collection("users"),
		Spots:       database.Collection("spots"),
		Itineraries: database.Collection("itineraries"),
		Reviews:     database.Collection("reviews"),
	}, nil
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// Ping reports whether the connection is still usable; the /api/test
// diagnostic route surfaces the result as connectionState.
func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, readpref.Primary())
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.Client.Database(s.Name).ListCollectionNames(ctx, bson.M{})
}

// EnsureIndexes creates the unique keys the data model relies on and a
// schema validator keeping review ratings inside [1,5] at the collection
// level, in addition to the handler check.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = s.Itineraries.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "emailId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = s.Reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "spotId", Value: 1}},
	})
	if err != nil {
		return err
	}

	return s.ensureReviewValidator(ctx)
}

func (s *Store) ensureReviewValidator(ctx context.Context) error {
	validator := bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"properties": bson.M{
				"rating": bson.M{
					"bsonType": []string{"int", "long", "double"},
					"minimum":  1,
					"maximum":  5,
				},
			},
		},
	}

	err := s.Client.Database(s.Name).RunCommand(ctx, bson.D{
		{Key: "collMod", Value: "reviews"},
		{Key: "validator", Value: validator},
	}).Err()
	if err == nil {
		return nil
	}

	// collMod fails if the collection does not exist yet; create it with
	// the validator instead.
	opts := options.CreateCollection().SetValidator(validator)
	createErr := s.Client.Database(s.Name).CreateCollection(ctx, "reviews", opts)
	if createErr == nil {
		return nil
	}
	return err
}
