package controller

import (
	"net/http"
	"strings"

	"eduguide_backend/internal/model"
	"eduguide_backend/internal/service"
	"eduguide_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	LearningService *service.LearningService
}

func NewLearningController(learningService *service.LearningService) *LearningController {
	return &LearningController{LearningService: learningService}
}

type CreateRoadmapRequest struct {
	Skill string `json:"skill" example:"Rust"`
	Level string `json:"level" example:"beginner"`
}

type CreateRoadmapResponse struct {
	Status    string                    `json:"status" example:"success"`
	RoadmapID string                    `json:"roadmap_id"`
	Data      *model.LearningPathOutput `json:"data"`
}

type MilestoneCompleteRequest struct {
	RoadmapID          string `json:"roadmap_id"`
	CompletedMilestone *int   `json:"completed_milestone" example:"1"`
}

type MilestoneCompleteResponse struct {
	Status          string                       `json:"status" example:"success"`
	MilestoneReport *model.MilestoneReportOutput `json:"milestone_report"`
}

type RoadmapDetailResponse struct {
	Status  string         `json:"status" example:"success"`
	Roadmap *model.Roadmap `json:"roadmap"`
}

// @Summary 生成学习路线
// @Description 根据技能和水平生成 3 个里程碑的学习路线，以及第一个里程碑的测验、闪卡和小项目
// @Tags 学习路线
// @Accept json
// @Produce json
// @Param request body CreateRoadmapRequest true "技能与水平"
// @Success 200 {object} CreateRoadmapResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Failure 503 {object} util.ErrorResponse
// @Router /learn/roadmap [post]
func (c *LearningController) CreateRoadmap(ctx *gin.Context) {
	var req CreateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Skill and level are required.")
		return
	}
	skill := strings.TrimSpace(req.Skill)
	level := strings.TrimSpace(req.Level)
	if skill == "" || level == "" {
		util.BadRequest(ctx, "Skill and level are required.")
		return
	}

	result, err := c.LearningService.CreateRoadmap(ctx.Request.Context(), skill, level)
	if err != nil {
		respondError(ctx, err, http.StatusServiceUnavailable)
		return
	}

	util.Success(ctx, CreateRoadmapResponse{
		Status:    util.StatusSuccess,
		RoadmapID: result.RoadmapID,
		Data:      result.Data,
	})
}

// @Summary 完成里程碑
// @Description 生成已完成里程碑的学习报告、下一阶段的测验和项目，并推进学习进度
// @Tags 学习路线
// @Accept json
// @Produce json
// @Param request body MilestoneCompleteRequest true "学习路线 ID 与已完成的里程碑编号"
// @Success 200 {object} MilestoneCompleteResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /learn/milestone-complete [post]
func (c *LearningController) CompleteMilestone(ctx *gin.Context) {
	var req MilestoneCompleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "roadmap_id and completed_milestone are required.")
		return
	}
	roadmapID := strings.TrimSpace(req.RoadmapID)
	if roadmapID == "" || req.CompletedMilestone == nil {
		util.BadRequest(ctx, "roadmap_id and completed_milestone are required.")
		return
	}
	if *req.CompletedMilestone < 1 {
		util.BadRequest(ctx, "completed_milestone must be a positive integer.")
		return
	}

	report, err := c.LearningService.CompleteMilestone(ctx.Request.Context(), roadmapID, *req.CompletedMilestone)
	if err != nil {
		respondError(ctx, err, http.StatusInternalServerError)
		return
	}

	util.Success(ctx, MilestoneCompleteResponse{
		Status:          util.StatusSuccess,
		MilestoneReport: report,
	})
}

// @Summary 查询学习路线
// @Description 返回学习路线及其完整的生成内容和进度
// @Tags 学习路线
// @Produce json
// @Param id path string true "学习路线 ID"
// @Success 200 {object} RoadmapDetailResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /learn/roadmap/{id} [get]
func (c *LearningController) GetRoadmap(ctx *gin.Context) {
	roadmap, err := c.LearningService.GetRoadmap(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, http.StatusInternalServerError)
		return
	}

	util.Success(ctx, RoadmapDetailResponse{
		Status:  util.StatusSuccess,
		Roadmap: roadmap,
	})
}
