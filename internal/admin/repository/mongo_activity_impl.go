package repository

import (
	"context"
	"time"

	"bizadmin/internal/admin/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoActivityRepository implements ActivityRepository using MongoDB
type MongoActivityRepository struct {
	Collection *mongo.Collection
}

func NewMongoActivityRepository(db *mongo.Database, collectionName string) *MongoActivityRepository {
	return &MongoActivityRepository{Collection: db.Collection(collectionName)}
}

// EnsureIndexes creates indexes for efficient querying
func (r *MongoActivityRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "collection", Value: 1},
				{Key: "document_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_collection_document"),
		},
		{
			Keys: bson.D{
				{Key: "caller_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_caller"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	}

	_, err := r.Collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// CreateActivity appends a new entry
func (r *MongoActivityRepository) CreateActivity(ctx context.Context, entry *model.ActivityLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := r.Collection.InsertOne(ctx, entry)
	return err
}

// FindActivity finds entries with pagination, newest first
func (r *MongoActivityRepository) FindActivity(ctx context.Context, req model.GetActivityLogsReq) ([]*model.ActivityLog, int64, error) {
	filter := bson.M{}
	if req.Collection != "" {
		filter["collection"] = req.Collection
	}
	if req.DocumentID != "" {
		filter["document_id"] = req.DocumentID
	}
	if req.CallerID != "" {
		filter["caller_id"] = req.CallerID
	}

	if req.StartTime != nil || req.EndTime != nil {
		timeFilter := bson.M{}
		if req.StartTime != nil {
			timeFilter["$gte"] = *req.StartTime
		}
		if req.EndTime != nil {
			timeFilter["$lte"] = *req.EndTime
		}
		filter["created_at"] = timeFilter
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((req.Page - 1) * req.Size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(req.Size))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	results := make([]*model.ActivityLog, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}
