package controller

import (
	"errors"
	"net/http"

	"eduguide_backend/internal/util"
	"eduguide_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError 将业务错误映射为 HTTP 状态码；generationStatus 为生成失败时使用的状态码
func respondError(ctx *gin.Context, err error, generationStatus int) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, util.ErrInvalidFileType):
		util.BadRequest(ctx, "Invalid file or file type.")
	case errors.Is(err, util.ErrEmptyContent):
		util.BadRequest(ctx, "Could not extract readable content from file.")
	case errors.Is(err, util.ErrFileTooLarge), errors.As(err, &tooLarge):
		util.Error(ctx, http.StatusRequestEntityTooLarge, util.ErrFileTooLarge.Error())
	case errors.Is(err, util.ErrRoadmapNotFound):
		util.NotFound(ctx, "Roadmap not found.")
	case errors.Is(err, util.ErrMilestoneNotFound):
		util.BadRequest(ctx, "Milestone not found in roadmap.")
	case errors.Is(err, util.ErrGenerationFailed):
		logger.Log.Error("AI generation failed",
			zap.String("path", ctx.FullPath()),
			zap.Error(err),
		)
		util.Error(ctx, generationStatus, util.ErrGenerationFailed.Error())
	default:
		logger.Log.Error("Internal server error",
			zap.String("path", ctx.FullPath()),
			zap.Error(err),
		)
		util.InternalServerError(ctx, internalMessage(err))
	}
}

func internalMessage(err error) string {
	switch {
	case errors.Is(err, util.ErrPersistence):
		return "Database operation failed."
	case errors.Is(err, util.ErrStorage):
		return "File storage failed."
	default:
		return ""
	}
}
