package service

import (
	"context"

	"eduguide_backend/internal/model"
)

// UserStore 用户存储，gorm 与 mongo 各有一个实现
type UserStore interface {
	// FindOrCreate 按 ID 查找，不存在时插入 user
	FindOrCreate(ctx context.Context, user *model.User) (*model.User, error)
}

// RoadmapStore 学习路线存储。未找到时返回 util.ErrRoadmapNotFound，其余错误包装为 util.ErrPersistence
type RoadmapStore interface {
	Create(ctx context.Context, roadmap *model.Roadmap) error
	FindByID(ctx context.Context, id string) (*model.Roadmap, error)
	// RecordMilestoneReport 把 report 写入 payload 的 milestone_<number>_report，
	// 进度推进到 max(current, number+1)，number >= total 时标记完成；返回更新后的记录
	RecordMilestoneReport(ctx context.Context, id string, number, total int, report map[string]any) (*model.Roadmap, error)
}
