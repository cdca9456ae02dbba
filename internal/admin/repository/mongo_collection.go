package repository

import (
	"context"
	"errors"
	"math"
	"regexp"
	"time"

	"bizadmin/internal/admin/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection implements Collection for any entity embedding model.Base.
type MongoCollection[T any] struct {
	Coll *mongo.Collection
}

func NewMongoCollection[T any](db *mongo.Database, name string) *MongoCollection[T] {
	return &MongoCollection[T]{Coll: db.Collection(name)}
}

func (r *MongoCollection[T]) Name() string {
	return r.Coll.Name()
}

func meta[T any](doc *T) *model.Base {
	if d, ok := any(doc).(model.Document); ok {
		return d.Meta()
	}
	return nil
}

// liveFilter restricts a filter to documents that are not soft-deleted.
func liveFilter(filter model.Filter) bson.M {
	f := bson.M{"deleted_at": nil}
	for k, v := range filter {
		f[k] = v
	}
	return f
}

// FieldsAtMost is a filter expression matching documents whose field a is not greater
// than their field b. It goes under the "$expr" key of a Filter.
func FieldsAtMost(a, b string) bson.M {
	return bson.M{"$lte": bson.A{"$" + a, "$" + b}}
}

// listFilter adds the case-insensitive search over q.SearchFields to the live filter.
func listFilter(q model.ListQuery) bson.M {
	filter := liveFilter(q.Filter)
	if q.Search != "" && len(q.SearchFields) > 0 {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		or := make(bson.A, 0, len(q.SearchFields))
		for _, field := range q.SearchFields {
			or = append(or, bson.M{field: pattern})
		}
		filter["$or"] = or
	}
	return filter
}

// listSort orders by the requested field, newest first when none is given, with _id as tiebreak.
func listSort(q model.ListQuery) bson.D {
	field, desc := q.SortField, q.SortDesc
	if field == "" {
		field, desc = "created_at", true
	}
	order := 1
	if desc {
		order = -1
	}
	return bson.D{{Key: field, Value: order}, {Key: "_id", Value: 1}}
}

func listPage(q model.ListQuery) (skip, limit int64) {
	page, size := q.Page, q.Size
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = model.DefaultPageSize
	}
	return int64((page - 1) * size), int64(size)
}

func (r *MongoCollection[T]) List(ctx context.Context, q model.ListQuery) ([]*T, int64, error) {
	filter := listFilter(q)

	total, err := r.Coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip, limit := listPage(q)
	findOptions := options.Find().
		SetSort(listSort(q)).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.Coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	results := make([]*T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *MongoCollection[T]) All(ctx context.Context, filter model.Filter) ([]*T, error) {
	cursor, err := r.Coll.Find(ctx, liveFilter(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]*T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *MongoCollection[T]) Count(ctx context.Context, filter model.Filter) (int64, error) {
	return r.Coll.CountDocuments(ctx, liveFilter(filter))
}

func (r *MongoCollection[T]) Get(ctx context.Context, id string) (*T, error) {
	var doc T
	err := r.Coll.FindOne(ctx, liveFilter(model.Filter{"_id": id})).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *MongoCollection[T]) Insert(ctx context.Context, doc *T) error {
	m := meta(doc)
	if m == nil {
		return errors.New("document has no base fields")
	}
	now := time.Now().UTC()
	if m.ID == "" {
		m.ID = primitive.NewObjectID().Hex()
	}
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := r.Coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoCollection[T]) Replace(ctx context.Context, doc *T) error {
	m := meta(doc)
	if m == nil || m.ID == "" {
		return errors.New("document has no id")
	}
	m.UpdatedAt = time.Now().UTC()

	res, err := r.Coll.ReplaceOne(ctx, liveFilter(model.Filter{"_id": m.ID}), doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCollection[T]) SoftDelete(ctx context.Context, id, deletedBy string) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"deleted_at": now,
			"deleted_by": deletedBy,
			"updated_at": now,
		},
	}
	res, err := r.Coll.UpdateOne(ctx, liveFilter(model.Filter{"_id": id}), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// incrementFilter matches the live document and, for a decrement, only while field stays
// non-negative. A delta of math.MinInt64 cannot be negated and is rejected.
func incrementFilter(id, field string, delta int64) (bson.M, error) {
	filter := liveFilter(model.Filter{"_id": id})
	if delta == math.MinInt64 {
		return nil, ErrConstraint
	}
	if delta < 0 {
		filter[field] = bson.M{"$gte": -delta}
	}
	return filter, nil
}

func incrementUpdate(field string, delta int64, updatedBy string, now time.Time) bson.M {
	return bson.M{
		"$inc": bson.M{field: delta},
		"$set": bson.M{"updated_at": now, "updated_by": updatedBy},
	}
}

func (r *MongoCollection[T]) Increment(ctx context.Context, id, field string, delta int64, updatedBy string) (*T, error) {
	filter, err := incrementFilter(id, field, delta)
	if err != nil {
		return nil, err
	}
	update := incrementUpdate(field, delta, updatedBy, time.Now().UTC())
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err = r.Coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return &doc, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// Distinguish a missing document from a failed guard
	if _, getErr := r.Get(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrConstraint
}
