package repository

import (
	"context"

	"eduguide_backend/internal/model"
	"eduguide_backend/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

func (r *RoadmapRepository) Create(ctx context.Context, roadmap *model.Roadmap) error {
	return wrapErr(r.DB.WithContext(ctx).Create(roadmap).Error)
}

func (r *RoadmapRepository) FindByID(ctx context.Context, id string) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&roadmap).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &roadmap, nil
}

// RecordMilestoneReport 在事务中重新读取并加行锁后合并报告，避免并发提交互相覆盖。
// SQLite 不支持 FOR UPDATE，依赖其库级写锁
func (r *RoadmapRepository) RecordMilestoneReport(ctx context.Context, id string, number, total int, report map[string]any) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		if tx.Dialector.Name() != util.DriverSQLite {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := query.Where("id = ?", id).First(&roadmap).Error; err != nil {
			return err
		}

		if roadmap.FullPathData == nil {
			roadmap.FullPathData = datatypes.JSONMap{}
		}
		roadmap.FullPathData[model.MilestoneReportKey(number)] = report
		roadmap.AdvanceTo(number, total)

		return tx.Model(&roadmap).Updates(map[string]any{
			"full_path_data":    roadmap.FullPathData,
			"current_milestone": roadmap.CurrentMilestone,
			"is_complete":       roadmap.IsComplete,
		}).Error
	})
	if err != nil {
		return nil, wrapErr(err)
	}
	return &roadmap, nil
}
