package controller

import (
	"context"
	"time"

	"eduguide_backend/internal/util"
	"eduguide_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger 存储连通性检查
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	Store  Pinger
	Driver string
	// AIConfigured 未配置模型凭证时服务仍可启动，生成接口会返回失败
	AIConfigured bool
}

func NewHealthController(store Pinger, driver string, aiConfigured bool) *HealthController {
	return &HealthController{Store: store, Driver: driver, AIConfigured: aiConfigured}
}

// @Summary 健康检查
// @Description 检查服务和数据库状态
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} util.ErrorResponse
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	if err := c.Store.Ping(pingCtx); err != nil {
		logger.Log.Warn("Health check failed", zap.String("driver", c.Driver), zap.Error(err))
		util.ServiceUnavailable(ctx, "Database unavailable")
		return
	}

	ai := "configured"
	if !c.AIConfigured {
		ai = "missing_credentials"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
			"driver":   c.Driver,
			"ai":       ai,
		},
	})
}
