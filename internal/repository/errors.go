package repository

import (
	"errors"
	"fmt"

	"eduguide_backend/internal/util"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"
)

// wrapErr 把驱动错误转换为业务错误：记录不存在归为 ErrRoadmapNotFound，其余归为 ErrPersistence
func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, util.ErrRoadmapNotFound), errors.Is(err, util.ErrPersistence):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%w: %w", util.ErrRoadmapNotFound, err)
	default:
		return fmt.Errorf("%w: %w", util.ErrPersistence, err)
	}
}
