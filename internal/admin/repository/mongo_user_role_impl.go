package repository

import (
	"context"
	"time"

	"bizadmin/internal/admin/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRoleRepository struct {
	Collection *mongo.Collection
}

func NewMongoUserRoleRepository(db *mongo.Database, collectionName string) *MongoUserRoleRepository {
	return &MongoUserRoleRepository{Collection: db.Collection(collectionName)}
}

func (r *MongoUserRoleRepository) EnsureIndexes(ctx context.Context) error {
	// One assignment per (user_id, role)
	idxUnique := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "role", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_user_role"),
	}
	idxRole := mongo.IndexModel{
		Keys:    bson.D{{Key: "role", Value: 1}},
		Options: options.Index().SetName("idx_role"),
	}

	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{idxUnique, idxRole})
	return err
}

func (r *MongoUserRoleRepository) UpsertUserRole(ctx context.Context, role *model.UserRole) error {
	filter := bson.M{"user_id": role.UserID, "role": role.Role}
	if role.CreatedAt.IsZero() {
		role.CreatedAt = time.Now().UTC()
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"user_id":    role.UserID,
			"role":       role.Role,
			"created_at": role.CreatedAt,
			"created_by": role.CreatedBy,
		},
	}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil && mongo.IsDuplicateKeyError(err) {
		// concurrent upsert of the same assignment
		return nil
	}
	return err
}

func (r *MongoUserRoleRepository) DeleteUserRole(ctx context.Context, userID, role string) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"user_id": userID, "role": role})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUserRoleRepository) FindUserRoles(ctx context.Context, filter model.UserRoleFilter) ([]*model.UserRole, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.Role != "" {
		query["role"] = filter.Role
	}

	cursor, err := r.Collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "user_id", Value: 1}, {Key: "role", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	roles := make([]*model.UserRole, 0)
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *MongoUserRoleRepository) HasAnyRole(ctx context.Context, userID string, roles []string) (bool, error) {
	if userID == "" || len(roles) == 0 {
		return false, nil
	}
	count, err := r.Collection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"role":    bson.M{"$in": roles},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
