// internal/app/store/records/records.go
//
// Package records is the shared Mongo plumbing behind every content store:
// numeric ids from the counters collection, lookups that map a missing
// document to ErrNotFound, and partial updates that always bump updated_at.
package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	counterstore "github.com/dalemusser/chamberhub/internal/app/store/counters"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Now is the store clock, truncated to what Mongo keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Collection is a typed view over one Mongo collection of records keyed by
// a numeric _id.
type Collection[T any] struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

func NewCollection[T any](db *mongo.Database, name string) Collection[T] {
	return Collection[T]{c: db.Collection(name), ids: counterstore.New(db)}
}

// Name is the collection name, also used as the id sequence name.
func (c Collection[T]) Name() string { return c.c.Name() }

// NextID reserves the next id.
func (c Collection[T]) NextID(ctx context.Context) (int64, error) {
	return c.ids.Next(ctx, c.c.Name())
}

// Insert stores doc as is.
func (c Collection[T]) Insert(ctx context.Context, doc T) error {
	if _, err := c.c.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s: %w", c.c.Name(), err)
	}
	return nil
}

// Get loads one record.
func (c Collection[T]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	err := c.c.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return out, ErrNotFound
	}
	if err != nil {
		return out, fmt.Errorf("get %s %d: %w", c.c.Name(), id, err)
	}
	return out, nil
}

// Find returns the records matching filter in id order.
func (c Collection[T]) Find(ctx context.Context, filter any) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := c.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.c.Name(), err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.c.Name(), err)
	}
	return out, nil
}

// Count returns the number of records matching filter.
func (c Collection[T]) Count(ctx context.Context, filter any) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return c.c.CountDocuments(ctx, filter)
}

// Patch applies the non-nil fields of patch, a struct whose fields are
// pointers tagged `bson:"name,omitempty"`, and unsets the named fields.
// updated_at is always refreshed. The updated record is returned.
func (c Collection[T]) Patch(ctx context.Context, id int64, patch any, unset ...string) (T, error) {
	set := bson.M{}
	if patch != nil {
		raw, err := bson.Marshal(patch)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("encode patch: %w", err)
		}
		if err := bson.Unmarshal(raw, &set); err != nil {
			var zero T
			return zero, fmt.Errorf("decode patch: %w", err)
		}
	}
	set["updated_at"] = Now()

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		u := bson.M{}
		for _, f := range unset {
			u[f] = ""
		}
		update["$unset"] = u
	}
	return c.update(ctx, id, update)
}

func (c Collection[T]) update(ctx context.Context, id int64, update bson.M) (T, error) {
	var out T
	err := c.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return out, ErrNotFound
	}
	if err != nil {
		return out, fmt.Errorf("update %s %d: %w", c.c.Name(), id, err)
	}
	return out, nil
}

// Delete removes one record.
func (c Collection[T]) Delete(ctx context.Context, id int64) error {
	res, err := c.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", c.c.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Aggregate runs pipeline and decodes every result into out.
func (c Collection[T]) Aggregate(ctx context.Context, pipeline any, out any) error {
	cur, err := c.c.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", c.c.Name(), err)
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}

// Raw exposes the underlying collection for store-specific queries.
func (c Collection[T]) Raw() *mongo.Collection { return c.c }
