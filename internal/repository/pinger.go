package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"
)

// SQLPinger 健康检查
type SQLPinger struct {
	DB *gorm.DB
}

func (p *SQLPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// MongoPinger 健康检查
type MongoPinger struct {
	Client *mongo.Client
}

func (p *MongoPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, nil)
}
