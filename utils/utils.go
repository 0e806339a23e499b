package utils

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NormalizeEmail is the single normalization rule for user identity:
// emails are compared lower-cased everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func GetUUID() string {
	return uuid.New().String()
}

// Finder is the read side of a collection; *mongo.Collection satisfies it.
type Finder interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// FindAndDecode runs a Find and decodes every document into T.
// A query with no matches returns an empty, non-nil slice.
func FindAndDecode[T any](ctx context.Context, coll Finder, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
