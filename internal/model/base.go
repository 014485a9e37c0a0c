package model

import (
	"time"

	"github.com/google/uuid"
)

// Timestamps gorm 与 mongo 两种存储共用的时间字段
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Touch 写入前补全时间戳，mongo 没有 gorm 的自动维护
func (t *Timestamps) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

func GenerateUUID() string {
	return uuid.New().String()
}
