package model

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// swagger:model Roadmap
type Roadmap struct {
	ID               string            `gorm:"primaryKey;type:varchar(36)" json:"id" bson:"_id"`
	UserID           string            `gorm:"type:varchar(64);index;not null" json:"user_id" bson:"user_id"`
	SkillName        string            `gorm:"size:128;not null" json:"skill_name" bson:"skill_name"`
	Level            string            `gorm:"size:64;not null" json:"level" bson:"level"`
	CurrentMilestone int               `gorm:"not null;default:1" json:"current_milestone" bson:"current_milestone"`
	IsComplete       bool              `gorm:"not null;default:false" json:"is_complete" bson:"is_complete"`
	FullPathData     datatypes.JSONMap `gorm:"not null" json:"full_path_data" bson:"full_path_data"`
	Timestamps       `bson:",inline"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

func (r *Roadmap) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = GenerateUUID()
	}
	if r.CurrentMilestone < 1 {
		r.CurrentMilestone = 1
	}
	if r.FullPathData == nil {
		return fmt.Errorf("roadmap %s has no payload", r.ID)
	}
	return nil
}

// MilestoneReportKey 里程碑报告在 payload 中的键名
func MilestoneReportKey(number int) string {
	return fmt.Sprintf("milestone_%d_report", number)
}

// Milestones 从 payload 中解析出里程碑列表；payload 结构不符时返回错误
func (r *Roadmap) Milestones() ([]Milestone, error) {
	raw, ok := r.FullPathData["roadmap"]
	if !ok {
		return nil, fmt.Errorf("payload has no roadmap field")
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var milestones []Milestone
	if err := json.Unmarshal(b, &milestones); err != nil {
		return nil, fmt.Errorf("decode milestones: %w", err)
	}
	return milestones, nil
}

// FindMilestone 按编号查找里程碑
func (r *Roadmap) FindMilestone(number int) (*Milestone, bool) {
	milestones, err := r.Milestones()
	if err != nil {
		return nil, false
	}
	for i := range milestones {
		if milestones[i].MilestoneNumber == number {
			return &milestones[i], true
		}
	}
	return nil, false
}

// AdvanceTo 完成第 number 个里程碑后推进进度，计数只增不减
func (r *Roadmap) AdvanceTo(number, total int) {
	if next := number + 1; next > r.CurrentMilestone {
		r.CurrentMilestone = next
	}
	if total > 0 && number >= total {
		r.IsComplete = true
	}
}
