package repository

import (
	"context"

	"eduguide_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindOrCreate 并发请求同时创建同一用户时，冲突的插入被忽略后再读取
func (r *UserRepository) FindOrCreate(ctx context.Context, user *model.User) (*model.User, error) {
	db := r.DB.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error; err != nil {
		return nil, wrapErr(err)
	}

	var existing model.User
	if err := db.Where("id = ?", user.ID).First(&existing).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &existing, nil
}
