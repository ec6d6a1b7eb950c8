// Package mongostore persists support requests and appointments as
// documents in two MongoDB collections.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"careconnect/pkg/types"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	SupportCollection     = "support_requests"
	AppointmentCollection = "appointments"
)

type Store struct {
	db           *mongo.Database
	support      *mongo.Collection
	appointments *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		db:           db,
		support:      db.Collection(SupportCollection),
		appointments: db.Collection(AppointmentCollection),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

// EnsureIndexes creates the indexes backing the default list orderings.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.support.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to index %s: %w", SupportCollection, err)
	}

	_, err = s.appointments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "appointmentDate", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to index %s: %w", AppointmentCollection, err)
	}

	return nil
}

func findOptions(opts types.ListOptions, fallback types.SortField) *options.FindOptions {
	field := opts.SortField
	if field == "" {
		field = fallback
	}

	dir := 1
	if opts.Descending {
		dir = -1
	}

	fo := options.Find().SetSort(bson.D{{Key: string(field), Value: dir}, {Key: "_id", Value: dir}})
	if opts.Limit > 0 {
		fo.SetLimit(int64(opts.Limit))
	}

	return fo
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, fo *options.FindOptions) ([]*T, error) {
	cur, err := coll.Find(ctx, bson.D{}, fo)
	if err != nil {
		return nil, err
	}

	out := make([]*T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	var out = new(T)
	err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return types.ErrNotFound
	}

	return nil
}
