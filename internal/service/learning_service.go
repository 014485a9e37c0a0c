package service

import (
	"context"
	"encoding/json"
	"fmt"

	"eduguide_backend/internal/model"
	"eduguide_backend/internal/util"
	"eduguide_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type LearningService struct {
	UserStore    UserStore
	RoadmapStore RoadmapStore
	AIService    *AIService
	Identity     IdentityProvider
}

func NewLearningService(
	userStore UserStore,
	roadmapStore RoadmapStore,
	aiService *AIService,
	identity IdentityProvider,
) *LearningService {
	return &LearningService{
		UserStore:    userStore,
		RoadmapStore: roadmapStore,
		AIService:    aiService,
		Identity:     identity,
	}
}

// RoadmapResult 创建学习路线的结果
type RoadmapResult struct {
	RoadmapID string
	Data      *model.LearningPathOutput
}

// CreateRoadmap 确保用户存在，生成学习路线并以 current_milestone=1 保存
func (s *LearningService) CreateRoadmap(ctx context.Context, skill, level string) (*RoadmapResult, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	output, raw, err := s.AIService.GenerateInitialRoadmap(ctx, skill, level)
	if err != nil {
		return nil, err
	}

	payload, err := toPayload(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", util.ErrGenerationFailed, err)
	}

	roadmap := &model.Roadmap{
		ID:               model.GenerateUUID(),
		UserID:           user.ID,
		SkillName:        skill,
		Level:            level,
		CurrentMilestone: 1,
		FullPathData:     payload,
	}
	if err := s.RoadmapStore.Create(ctx, roadmap); err != nil {
		return nil, err
	}

	logger.Log.Info("Roadmap created",
		zap.String("roadmap_id", roadmap.ID),
		zap.String("user_id", user.ID),
		zap.String("skill", skill),
		zap.String("level", level),
	)

	return &RoadmapResult{RoadmapID: roadmap.ID, Data: output}, nil
}

// CompleteMilestone 为已完成的里程碑生成报告，合并进 payload 并推进进度
func (s *LearningService) CompleteMilestone(ctx context.Context, roadmapID string, number int) (*model.MilestoneReportOutput, error) {
	roadmap, err := s.RoadmapStore.FindByID(ctx, roadmapID)
	if err != nil {
		return nil, err
	}

	milestones, err := roadmap.Milestones()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", util.ErrMilestoneNotFound, err)
	}
	milestone, ok := roadmap.FindMilestone(number)
	if !ok {
		return nil, fmt.Errorf("%w: milestone %d", util.ErrMilestoneNotFound, number)
	}

	// 没有 concepts 时以标题作为已掌握内容
	concepts := milestone.Concepts
	if len(concepts) == 0 {
		concepts = []string{milestone.Title}
	}

	output, raw, err := s.AIService.GenerateMilestoneReport(ctx, concepts)
	if err != nil {
		return nil, err
	}

	report, err := toPayload(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", util.ErrGenerationFailed, err)
	}

	updated, err := s.RoadmapStore.RecordMilestoneReport(ctx, roadmap.ID, number, len(milestones), report)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Milestone completed",
		zap.String("roadmap_id", roadmap.ID),
		zap.Int("milestone", number),
		zap.Int("current_milestone", updated.CurrentMilestone),
		zap.Bool("is_complete", updated.IsComplete),
	)

	return output, nil
}

// GetRoadmap 按 ID 查询
func (s *LearningService) GetRoadmap(ctx context.Context, id string) (*model.Roadmap, error) {
	return s.RoadmapStore.FindByID(ctx, id)
}

func (s *LearningService) currentUser(ctx context.Context) (*model.User, error) {
	identity, err := s.Identity.Current(ctx)
	if err != nil {
		return nil, err
	}
	return s.UserStore.FindOrCreate(ctx, identity)
}

func toPayload(raw json.RawMessage) (datatypes.JSONMap, error) {
	var payload datatypes.JSONMap
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if payload == nil {
		return nil, fmt.Errorf("empty payload")
	}
	return payload, nil
}
