package repository

import (
	"context"
	"time"

	"eduguide_backend/internal/model"
	"eduguide_backend/pkg/database"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoUserRepository 文档存储版本的用户仓库
type MongoUserRepository struct {
	Collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{Collection: db.Collection(database.UsersCollection)}
}

// FindOrCreate 使用 upsert + $setOnInsert，已存在的用户不会被修改
func (r *MongoUserRepository) FindOrCreate(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	update := bson.M{"$setOnInsert": bson.M{
		"username":   user.Username,
		"email":      user.Email,
		"created_at": now,
		"updated_at": now,
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var existing model.User
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": user.ID}, update, opts).Decode(&existing)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &existing, nil
}

// MongoRoadmapRepository 文档存储版本的学习路线仓库
type MongoRoadmapRepository struct {
	Collection *mongo.Collection
}

func NewMongoRoadmapRepository(db *mongo.Database) *MongoRoadmapRepository {
	return &MongoRoadmapRepository{Collection: db.Collection(database.RoadmapsCollection)}
}

func (r *MongoRoadmapRepository) Create(ctx context.Context, roadmap *model.Roadmap) error {
	if roadmap.ID == "" {
		roadmap.ID = model.GenerateUUID()
	}
	if roadmap.CurrentMilestone < 1 {
		roadmap.CurrentMilestone = 1
	}
	roadmap.Touch(time.Now())

	_, err := r.Collection.InsertOne(ctx, roadmap)
	return wrapErr(err)
}

func (r *MongoRoadmapRepository) FindByID(ctx context.Context, id string) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&roadmap); err != nil {
		return nil, wrapErr(err)
	}
	return &roadmap, nil
}

// RecordMilestoneReport 单条原子更新：$set 子键，$max 保证进度只增不减
func (r *MongoRoadmapRepository) RecordMilestoneReport(ctx context.Context, id string, number, total int, report map[string]any) (*model.Roadmap, error) {
	set := bson.M{
		"full_path_data." + model.MilestoneReportKey(number): report,
		"updated_at": time.Now(),
	}
	if total > 0 && number >= total {
		set["is_complete"] = true
	}
	update := bson.M{
		"$set": set,
		"$max": bson.M{"current_milestone": number + 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var roadmap model.Roadmap
	if err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&roadmap); err != nil {
		return nil, wrapErr(err)
	}
	return &roadmap, nil
}
